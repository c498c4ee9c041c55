package rules

import (
	"regexp"

	"github.com/leapstack-labs/stylecheck/pkg/core"
	"github.com/leapstack-labs/stylecheck/pkg/lint"
	"github.com/leapstack-labs/stylecheck/pkg/source"
	"github.com/leapstack-labs/stylecheck/pkg/token"
)

// ForceCast forbids forced "as!" casts.
var ForceCast = Def{
	ID:          "force_cast",
	Name:        "Force Cast Rule",
	Description: "This rule checks whether you don't do force casts.",
	Check:       checkForceCast,

	NonTriggeringExamples: []string{
		"NSNumber() as? Int\n",
		"// NSNumber() as! Int\n",
	},
	TriggeringExamples: []string{
		"NSNumber() as! Int\n",
	},
}

var forceCastPattern = regexp.MustCompile(`as!`)

func checkForceCast(file *source.File, _ []lint.Parameter) []finding {
	var out []finding
	for _, m := range file.MatchPattern(forceCastPattern, token.KindKeyword) {
		out = append(out, finding{
			offset:   m.Offset,
			severity: core.SeverityError,
			reason:   "Force casts should be avoided",
		})
	}
	return out
}
