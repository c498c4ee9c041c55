package token

// Position is a point in a source file.
type Position struct {
	Line   int // 1-based
	Column int // 1-based, counted in characters
	Offset int // 0-based byte offset
}

// Span is the extent of a token, End exclusive.
type Span struct {
	Start Position
	End   Position
}

