package rules

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/stylecheck/pkg/core"
	"github.com/leapstack-labs/stylecheck/pkg/lint"
	"github.com/leapstack-labs/stylecheck/pkg/source"
)

const (
	maxTypeNesting      = 1
	maxStatementNesting = 5
)

// Nesting limits how deeply types and statements are nested.
var Nesting = Def{
	ID:          "nesting",
	Name:        "Nesting Rule",
	Description: "Types should be nested at most 1 level deep, and statements should be nested at most 5 levels deep.",
	Check:       checkNesting,

	NonTriggeringExamples: []string{
		"class Class0 { class Class1 {} }\n",
		"struct Class0 { struct Class1 {} }\n",
		"func func0() {\n" + nestedIfs(5) + "}\n",
	},
	TriggeringExamples: []string{
		"class A { class B { class C {} } }\n",
		"enum A { enum B { enum C {} } }\n",
		"func func0() {\n" + nestedIfs(6) + "}\n",
	},
}

// nestedIfs returns n if statements nested in each other.
func nestedIfs(n int) string {
	return strings.Repeat("if true {\n", n) + strings.Repeat("}\n", n)
}

func checkNesting(file *source.File, _ []lint.Parameter) []finding {
	all := scopes(file)
	var out []finding
	for i, s := range all {
		switch s.kind {
		case scopeType:
			if level := depth(all, i, scopeType) - 1; level > maxTypeNesting {
				out = append(out, finding{
					offset:   s.owner,
					severity: core.SeverityWarning,
					reason:   fmt.Sprintf("Types should be nested at most %d level deep", maxTypeNesting),
				})
			}
		case scopeStatement:
			if level := depth(all, i, scopeStatement, scopeFunction, scopeType); level > maxStatementNesting {
				out = append(out, finding{
					offset:   s.open,
					severity: core.SeverityWarning,
					reason:   fmt.Sprintf("Statements should be nested at most %d levels deep", maxStatementNesting),
				})
			}
		}
	}
	return out
}
