package token

// keywords holds the reserved and contextual words classified as keywords.
var keywords = map[string]struct{}{}

func init() {
	for _, kw := range []string{
		// declarations
		"associatedtype", "class", "deinit", "enum", "extension", "fileprivate",
		"func", "import", "init", "inout", "internal", "let", "open", "operator",
		"private", "precedencegroup", "protocol", "public", "rethrows", "static",
		"struct", "subscript", "typealias", "var",
		// statements
		"break", "case", "catch", "continue", "default", "defer", "do", "else",
		"fallthrough", "for", "guard", "if", "in", "repeat", "return", "throw",
		"switch", "where", "while",
		// expressions and types
		"Any", "as", "await", "false", "is", "nil", "self", "Self", "super",
		"throws", "true", "try",
		// contextual
		"convenience", "didSet", "dynamic", "final", "get", "indirect", "lazy",
		"mutating", "nonmutating", "optional", "override", "required", "set",
		"unowned", "weak", "willSet",
	} {
		keywords[kw] = struct{}{}
	}
}

// IsKeyword reports whether word is classified as a keyword.
func IsKeyword(word string) bool {
	_, ok := keywords[word]
	return ok
}

// TypeDeclKeywords introduce a type body.
var TypeDeclKeywords = map[string]bool{
	"class":     true,
	"struct":    true,
	"enum":      true,
	"protocol":  true,
	"extension": true,
}
