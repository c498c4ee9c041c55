package rules

import (
	"github.com/leapstack-labs/stylecheck/pkg/source"
	"github.com/leapstack-labs/stylecheck/pkg/token"
)

type scopeKind int

const (
	scopeStatement scopeKind = iota // control flow, closures, accessors
	scopeType
	scopeFunction
)

// scope is one balanced { } pair.
type scope struct {
	kind    scopeKind
	keyword string // declaring keyword for types and functions
	owner   int    // offset of the declaring keyword, or of "{"
	open    int    // offset of "{"
	close   int    // offset of "}", or end of file when unbalanced
	parent  int    // index of the enclosing scope, -1 at top level
}

// cancelKeywords end a pending declaration that never opened a body,
// e.g., a protocol requirement followed by a property.
var cancelKeywords = map[string]bool{
	"var":       true,
	"let":       true,
	"case":      true,
	"typealias": true,
	"import":    true,
}

type pendingDecl struct {
	set     bool
	kind    scopeKind
	keyword string
	offset  int
	parens  int
}

// scopes pairs the braces of file and attributes each body to the type or
// function declaration that opened it. Braces inside comments and strings
// are never seen since they are part of those tokens.
func scopes(file *source.File) []scope {
	var (
		out     []scope
		stack   []int
		pending pendingDecl
		parens  int
	)
	toks := file.Tokens

	for i, t := range toks {
		switch {
		case t.Kind == token.KindKeyword:
			switch {
			case token.TypeDeclKeywords[t.Text] && !afterDot(toks, i) && !beforeKeyword(toks, i):
				pending = pendingDecl{set: true, kind: scopeType, keyword: t.Text, offset: t.Offset(), parens: parens}
			case t.Text == "func" || t.Text == "deinit" ||
				((t.Text == "init" || t.Text == "subscript") && !afterDot(toks, i)):
				pending = pendingDecl{set: true, kind: scopeFunction, keyword: t.Text, offset: t.Offset(), parens: parens}
			case cancelKeywords[t.Text]:
				pending.set = false
			}
		case t.Is("(") || t.Is("["):
			parens++
		case t.Is(")") || t.Is("]"):
			if parens > 0 {
				parens--
			}
		case t.Is("{"):
			s := scope{kind: scopeStatement, owner: t.Offset(), open: t.Offset(), close: -1, parent: -1}
			if len(stack) > 0 {
				s.parent = stack[len(stack)-1]
			}
			if pending.set && pending.parens == parens {
				s.kind = pending.kind
				s.keyword = pending.keyword
				s.owner = pending.offset
				pending.set = false
			}
			out = append(out, s)
			stack = append(stack, len(out)-1)
		case t.Is("}"):
			// a closure in a default argument does not end the declaration
			if pending.parens == parens {
				pending.set = false
			}
			if len(stack) > 0 {
				out[stack[len(stack)-1]].close = t.Offset()
				stack = stack[:len(stack)-1]
			}
		case t.Is(";"):
			if pending.parens == parens {
				pending.set = false
			}
		}
	}

	for _, idx := range stack {
		out[idx].close = len(file.Contents)
	}
	return out
}

// afterDot reports whether the token before i is a member access dot,
// as in ".init(" or "Foo.self".
func afterDot(toks []token.Token, i int) bool {
	return i > 0 && toks[i-1].Is(".")
}

// beforeKeyword reports whether the next classified token is a keyword,
// as in "class func" or "class var".
func beforeKeyword(toks []token.Token, i int) bool {
	for j := i + 1; j < len(toks); j++ {
		if toks[j].Kind.Classified() {
			return toks[j].Kind == token.KindKeyword
		}
	}
	return false
}

// bodyLines counts the lines strictly between the braces of s.
func bodyLines(file *source.File, s scope) int {
	return max(0, file.Position(s.close).Line-file.Position(s.open).Line-1)
}

// depth counts the ancestors of scopes[idx] (inclusive) that match kind,
// stopping at the first ancestor of a kind in stop.
func depth(all []scope, idx int, kind scopeKind, stop ...scopeKind) int {
	n := 0
	for i := idx; i >= 0; i = all[i].parent {
		k := all[i].kind
		if k == kind {
			n++
			continue
		}
		for _, s := range stop {
			if k == s {
				return n
			}
		}
	}
	return n
}
