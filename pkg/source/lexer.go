package source

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/leapstack-labs/stylecheck/pkg/token"
)

// rawToken is a classified byte range produced by the lexer.
// Positions are attached later by File, which owns the line index.
type rawToken struct {
	kind       token.Kind
	start, end int
	word       bool // identifier, type identifier or keyword built from name pieces
}

var swiftLexer = sync.OnceValue(func() chroma.Lexer {
	l := lexers.Get("swift")
	if l == nil {
		panic("source: chroma has no swift lexer")
	}
	return l
})

// lex tokenizes contents with the chroma Swift lexer and refines the
// highlighter output into rawTokens. Whitespace is dropped. A lexer failure
// leaves the rest of the file without tokens, so only unfiltered pattern
// matches apply there.
func lex(contents string) []rawToken {
	r := &refiner{contents: contents}
	for r.pos < len(contents) {
		resume, err := r.run()
		if err != nil || !resume {
			break
		}
	}
	return r.finish()
}

// run tokenizes from r.pos to the end of contents. It stops early after a
// raw or multi-line literal, which chroma has no rules for, so the caller
// restarts lexing in the root state right behind it.
func (r *refiner) run() (resume bool, err error) {
	// EnsureLF would rewrite \r\n and shift every offset after it.
	it, err := swiftLexer().Tokenise(&chroma.TokeniseOptions{State: "root"}, r.contents[r.pos:])
	if err != nil {
		return false, err
	}
	for tok := it(); tok != chroma.EOF; tok = it() {
		start := r.pos
		r.pos = advance(r.contents, start, tok.Value)
		if end, ok := r.literalAt(tok, start); ok {
			r.push(token.KindString, start, end)
			r.pos = end
			return true, nil
		}
		r.add(tok.Type, start, r.pos)
	}
	return false, nil
}

// advance returns the byte offset reached after the runes of value, starting
// at pos. chroma lexes a []rune copy of the input, where every invalid byte
// became one U+FFFD, so counting runes keeps offsets aligned.
func advance(s string, pos int, value string) int {
	for range utf8.RuneCountInString(value) {
		if pos >= len(s) {
			break
		}
		_, w := utf8.DecodeRuneInString(s[pos:])
		pos += w
	}
	return pos
}

// refiner folds chroma tokens into one token per comment, string literal,
// attribute and word.
type refiner struct {
	contents string
	pos      int
	interp   int // open string interpolations; their contents belong to the literal
	tokens   []rawToken
}

func (r *refiner) add(typ chroma.TokenType, start, end int) {
	if start >= end {
		return
	}
	text := r.contents[start:end]
	switch {
	case r.interp > 0 || typ.InSubCategory(chroma.LiteralString):
		if typ == chroma.LiteralStringInterpol {
			switch text {
			case `\(`, "(":
				r.interp++
			case ")":
				r.interp = max(0, r.interp-1)
			}
		}
		r.push(token.KindString, start, end)
	case typ.InCategory(chroma.Text):
	case typ == chroma.CommentPreproc:
		if strings.HasPrefix(text, "#") {
			r.push(token.KindKeyword, start, end)
		} else {
			r.addWord(start, end)
		}
	case typ.InCategory(chroma.Comment):
		r.push(token.KindComment, start, end)
	case typ.InSubCategory(chroma.LiteralNumber):
		r.push(token.KindNumber, start, end)
	case typ.InCategory(chroma.Keyword):
		switch text[0] {
		case '@':
			r.push(token.KindAttribute, start, end)
		case '#':
			r.push(token.KindKeyword, start, end)
		default:
			r.addWord(start, end)
		}
	case typ.InCategory(chroma.Name):
		r.addWord(start, end)
	case typ == chroma.Error && isWordRune(text):
		r.addWord(start, end)
	default:
		r.addPunctuation(start, end)
	}
}

// literalAt reports the end of a raw (#"..."#) or multi-line ("""...""")
// literal opening at tok. Unterminated literals run to the end of file.
func (r *refiner) literalAt(tok chroma.Token, start int) (int, bool) {
	opener := tok.Value == "#" && tok.Type.InCategory(chroma.Punctuation) ||
		tok.Value == `"` && tok.Type.InSubCategory(chroma.LiteralString)
	if r.interp > 0 || !opener {
		return 0, false
	}
	rest := r.contents[start:]
	hashes := len(rest) - len(strings.TrimLeft(rest, "#"))
	quote := `"`
	switch {
	case strings.HasPrefix(rest[hashes:], `"""`):
		quote = `"""`
	case hashes > 0 && strings.HasPrefix(rest[hashes:], `"`):
	default:
		return 0, false
	}
	closing := quote + strings.Repeat("#", hashes)
	body := start + hashes + len(quote)
	idx := strings.Index(r.contents[body:], closing)
	if idx < 0 {
		return len(r.contents), true
	}
	return body + idx + len(closing), true
}

func (r *refiner) last() *rawToken {
	if len(r.tokens) == 0 {
		return nil
	}
	return &r.tokens[len(r.tokens)-1]
}

// push appends a token, extending the previous one when a comment or string
// continues without a gap.
func (r *refiner) push(kind token.Kind, start, end int) {
	if prev := r.last(); prev != nil && prev.end == start {
		sameLiteral := kind == token.KindString && prev.kind == token.KindString
		sameComment := kind.IsComment() && prev.kind.IsComment()
		if sameLiteral || sameComment {
			prev.end = end
			return
		}
	}
	r.tokens = append(r.tokens, rawToken{kind: kind, start: start, end: end})
}

// addWord appends a name piece. Adjacent pieces form one word, an "@" right
// before a name makes an attribute and backticks escape an identifier.
func (r *refiner) addWord(start, end int) {
	if prev := r.last(); prev != nil && prev.end == start {
		switch {
		case prev.word || prev.kind == token.KindAttribute:
			prev.end = end
			if prev.kind != token.KindAttribute {
				prev.kind = classifyWord(r.contents[prev.start:end])
			}
			return
		case r.contents[prev.start:prev.end] == "@":
			prev.kind, prev.end = token.KindAttribute, end
			return
		case r.contents[prev.start:prev.end] == "`":
			prev.kind, prev.end, prev.word = token.KindIdentifier, end, false
			return
		}
	}
	r.tokens = append(r.tokens, rawToken{kind: classifyWord(r.contents[start:end]), start: start, end: end, word: true})
}

func (r *refiner) addPunctuation(start, end int) {
	text := r.contents[start:end]
	if prev := r.last(); prev != nil && prev.end == start && text == "`" &&
		prev.kind == token.KindIdentifier && !prev.word && r.contents[prev.start] == '`' {
		prev.end = end
		return
	}
	r.tokens = append(r.tokens, rawToken{kind: token.KindPunctuation, start: start, end: end})
}

// finish marks doc comments once comment pieces are joined.
func (r *refiner) finish() []rawToken {
	for i := range r.tokens {
		t := &r.tokens[i]
		if t.kind != token.KindComment {
			continue
		}
		text := r.contents[t.start:t.end]
		if (strings.HasPrefix(text, "///") && !strings.HasPrefix(text, "////")) ||
			(strings.HasPrefix(text, "/**") && !strings.HasPrefix(text, "/**/")) {
			t.kind = token.KindDocComment
		}
	}
	return r.tokens
}

func classifyWord(word string) token.Kind {
	switch {
	case token.IsKeyword(word):
		return token.KindKeyword
	case word[0] >= 'A' && word[0] <= 'Z':
		return token.KindTypeIdentifier
	default:
		return token.KindIdentifier
	}
}

// isWordRune reports whether a single-rune error token can be part of an
// identifier. chroma names start with ASCII letters, so "é" or "$" in
// "$binding" arrive as errors.
func isWordRune(text string) bool {
	c, size := utf8.DecodeRuneInString(text)
	if size != len(text) {
		return false
	}
	return c == '$' || c == '_' || unicode.IsLetter(c) || unicode.IsDigit(c)
}
