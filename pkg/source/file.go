// Package source is the source-analysis collaborator of the lint engine.
//
// It turns raw text into a stream of classified tokens and answers the two
// questions rules are allowed to ask: what is the full text, and which
// pattern matches fall on tokens of given lexical kinds. No syntax tree is
// ever built.
package source

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"

	"github.com/leapstack-labs/stylecheck/pkg/token"
)

// File is a lexed source artifact. It is immutable after construction and
// safe to share between goroutines.
type File struct {
	Path     string
	Contents string
	Tokens   []token.Token

	lineStarts []int // byte offset of the first byte of every line
}

// Line is one line of a file, without its line terminator.
type Line struct {
	Index   int    // 1-based line number
	Content string // text without "\n" or "\r\n"
	Range   token.Range
}

// NewFile lexes contents and returns the resulting File.
func NewFile(path, contents string) *File {
	f := &File{
		Path:       path,
		Contents:   contents,
		lineStarts: lineStarts(contents),
	}

	raw := lex(contents)
	f.Tokens = make([]token.Token, len(raw))
	for i, rt := range raw {
		f.Tokens[i] = token.Token{
			Kind: rt.kind,
			Text: contents[rt.start:rt.end],
			Span: token.Span{Start: f.Position(rt.start), End: f.Position(rt.end)},
		}
	}
	return f
}

// Load reads path from fsys and lexes it.
func Load(fsys afero.Fs, path string) (*File, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return NewFile(path, string(data)), nil
}

func lineStarts(contents string) []int {
	starts := []int{0}
	for i := 0; i < len(contents); i++ {
		if contents[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// Position converts a byte offset into a line/column position.
// Offsets past the end are clamped to the end of the file.
func (f *File) Position(offset int) token.Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(f.Contents) {
		offset = len(f.Contents)
	}
	line := sort.Search(len(f.lineStarts), func(i int) bool {
		return f.lineStarts[i] > offset
	}) - 1
	start := f.lineStarts[line]
	return token.Position{
		Line:   line + 1,
		Column: utf8.RuneCountInString(f.Contents[start:offset]) + 1,
		Offset: offset,
	}
}

// LineCount returns the number of lines. A trailing newline does not start
// a new line.
func (f *File) LineCount() int {
	n := len(f.lineStarts)
	if n > 1 && f.lineStarts[n-1] == len(f.Contents) {
		n--
	}
	return n
}

// Lines returns every line of the file.
func (f *File) Lines() []Line {
	lines := make([]Line, 0, f.LineCount())
	for i := 0; i < f.LineCount(); i++ {
		lines = append(lines, f.line(i))
	}
	return lines
}

// LineAt returns the line containing offset.
func (f *File) LineAt(offset int) Line {
	return f.line(f.Position(offset).Line - 1)
}

func (f *File) line(idx int) Line {
	start := f.lineStarts[idx]
	end := len(f.Contents)
	if idx+1 < len(f.lineStarts) {
		end = f.lineStarts[idx+1] - 1
	}
	content := strings.TrimSuffix(f.Contents[start:end], "\r")
	return Line{
		Index:   idx + 1,
		Content: content,
		Range:   token.Range{Offset: start, Length: len(content)},
	}
}

// TokensIn returns the classified tokens overlapping [start, end).
func (f *File) TokensIn(start, end int) []token.Token {
	first := sort.Search(len(f.Tokens), func(i int) bool {
		return f.Tokens[i].End() > start
	})
	var out []token.Token
	for i := first; i < len(f.Tokens) && f.Tokens[i].Offset() < end; i++ {
		if f.Tokens[i].Kind.Classified() {
			out = append(out, f.Tokens[i])
		}
	}
	return out
}

// KindAt returns the kind of the classified token covering offset.
func (f *File) KindAt(offset int) (token.Kind, bool) {
	toks := f.TokensIn(offset, offset+1)
	if len(toks) == 0 {
		return token.KindPunctuation, false
	}
	return toks[0].Kind, true
}

// MatchPattern returns the ranges matching re whose overlapping classified
// tokens are all of one of kinds. A match that overlaps no classified token
// is dropped. With no kinds every match is returned.
func (f *File) MatchPattern(re *regexp.Regexp, kinds ...token.Kind) []token.Range {
	var out []token.Range
	for _, loc := range re.FindAllStringIndex(f.Contents, -1) {
		r := token.Range{Offset: loc[0], Length: loc[1] - loc[0]}
		if len(kinds) == 0 {
			out = append(out, r)
			continue
		}
		toks := f.TokensIn(loc[0], max(loc[1], loc[0]+1))
		if len(toks) == 0 {
			continue
		}
		ok := true
		for _, t := range toks {
			if !t.Kind.In(kinds...) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, r)
		}
	}
	return out
}

// MatchPatternExcluding returns the ranges matching re that overlap no
// token of the excluded kinds. Matches over punctuation only are kept.
func (f *File) MatchPatternExcluding(re *regexp.Regexp, excluded ...token.Kind) []token.Range {
	var out []token.Range
	for _, loc := range re.FindAllStringIndex(f.Contents, -1) {
		skip := false
		for _, t := range f.TokensIn(loc[0], max(loc[1], loc[0]+1)) {
			if t.Kind.In(excluded...) {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, token.Range{Offset: loc[0], Length: loc[1] - loc[0]})
		}
	}
	return out
}
