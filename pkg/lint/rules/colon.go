package rules

import (
	"regexp"

	"github.com/leapstack-labs/stylecheck/pkg/core"
	"github.com/leapstack-labs/stylecheck/pkg/lint"
	"github.com/leapstack-labs/stylecheck/pkg/source"
	"github.com/leapstack-labs/stylecheck/pkg/token"
)

// Colon requires type annotations to attach the colon to the identifier
// and follow it with a single space.
var Colon = Def{
	ID:          "colon",
	Name:        "Colon Rule",
	Description: "This rule checks whether you associate the colon with the identifier.",
	Check:       checkColon,

	NonTriggeringExamples: []string{
		"let abc: Void\n",
		"let abc: [Void: Void]\n",
		"let abc: (Void, Void)\n",
		"func abc(def: Void) {}\n",
	},
	TriggeringExamples: []string{
		"let abc:Void\n",
		"let abc:  Void\n",
		"let abc :Void\n",
		"let abc : Void\n",
		"func abc(def:Void) {}\n",
		"func abc(def : Void) {}\n",
	},
}

// An identifier followed by a colon and a type name, where the spacing
// around the colon is anything but none-before and one-after.
var colonPattern = regexp.MustCompile(`\b\w+(?:[ \t]+:[ \t]*|:|:[ \t]{2,})[A-Z]\w*`)

func checkColon(file *source.File, _ []lint.Parameter) []finding {
	var out []finding
	for _, m := range file.MatchPattern(colonPattern, token.KindIdentifier, token.KindTypeIdentifier) {
		out = append(out, finding{
			offset:   m.Offset,
			severity: core.SeverityWarning,
			reason:   "When specifying a type, always associate the colon with the identifier",
		})
	}
	return out
}
