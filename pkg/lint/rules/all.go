package rules

import (
	"sync"

	"github.com/leapstack-labs/stylecheck/pkg/lint"
)

// Defs returns the built-in rule definitions in catalog order.
// Update this list when a new rule is added.
func Defs() []Def {
	return []Def{
		LineLength,
		LeadingWhitespace,
		TrailingWhitespace,
		ReturnArrowWhitespace,
		TrailingNewline,
		ForceCast,
		FileLength,
		Todo,
		Colon,
		TypeName,
		VariableName,
		TypeBodyLength,
		FunctionBodyLength,
		Nesting,
		ControlStatement,
	}
}

var catalog = sync.OnceValue(func() *lint.Catalog {
	defs := Defs()
	all := make([]lint.Rule, len(defs))
	for i, d := range defs {
		all[i] = Rule(d)
	}
	return lint.NewCatalog(all...)
})

// Catalog returns the built-in catalog. It is built once per process.
func Catalog() *lint.Catalog {
	return catalog()
}
