// Package token defines the lexical vocabulary shared by the source
// collaborator and the lint rules.
//
// Tokens are classified the way a syntax highlighter would classify them.
// Punctuation is emitted so rules can balance braces, but it carries
// KindPunctuation and is treated as unclassified by pattern matching.
package token

import "fmt"

// Kind is the lexical classification of a token.
type Kind int

const (
	// KindPunctuation covers operators and delimiters. It is unclassified
	// for the purpose of pattern matching.
	KindPunctuation Kind = iota
	KindComment
	KindDocComment
	KindString
	KindKeyword
	KindIdentifier
	KindTypeIdentifier
	KindNumber
	KindAttribute
)

var kindNames = map[Kind]string{
	KindPunctuation:    "punctuation",
	KindComment:        "comment",
	KindDocComment:     "doccomment",
	KindString:         "string",
	KindKeyword:        "keyword",
	KindIdentifier:     "identifier",
	KindTypeIdentifier: "typeidentifier",
	KindNumber:         "number",
	KindAttribute:      "attribute",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Classified reports whether the kind takes part in pattern matching.
func (k Kind) Classified() bool {
	return k != KindPunctuation
}

// IsComment reports whether the kind is a line, block or doc comment.
func (k Kind) IsComment() bool {
	return k == KindComment || k == KindDocComment
}

// In reports whether k is one of kinds.
func (k Kind) In(kinds ...Kind) bool {
	for _, other := range kinds {
		if k == other {
			return true
		}
	}
	return false
}

// Token is a classified range of source text.
type Token struct {
	Kind Kind
	Text string // exact source text, including delimiters
	Span Span
}

// Offset returns the 0-based byte offset of the first byte of the token.
func (t Token) Offset() int {
	return t.Span.Start.Offset
}

// End returns the byte offset just past the token.
func (t Token) End() int {
	return t.Span.End.Offset
}

// Is reports whether the token is punctuation with the given text.
func (t Token) Is(text string) bool {
	return t.Kind == KindPunctuation && t.Text == text
}

// Range is a half-open byte range [Offset, Offset+Length).
type Range struct {
	Offset int
	Length int
}

// End returns the byte offset just past the range.
func (r Range) End() int {
	return r.Offset + r.Length
}

// Overlaps reports whether r and the half-open range [start, end) intersect.
func (r Range) Overlaps(start, end int) bool {
	return r.Offset < end && start < r.End()
}
