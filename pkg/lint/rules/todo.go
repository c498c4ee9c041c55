package rules

import (
	"regexp"

	"github.com/leapstack-labs/stylecheck/pkg/core"
	"github.com/leapstack-labs/stylecheck/pkg/lint"
	"github.com/leapstack-labs/stylecheck/pkg/source"
	"github.com/leapstack-labs/stylecheck/pkg/token"
)

// Todo flags TODO and FIXME markers left in comments.
var Todo = Def{
	ID:          "todo",
	Name:        "Todo Rule",
	Description: "This rule checks for TODO and FIXME comments.",
	Check:       checkTodo,

	NonTriggeringExamples: []string{
		"let string = \"// TODO:\"\n",
		"// notaTODO:\n",
		"// notaFIXME:\n",
	},
	TriggeringExamples: []string{
		"// TODO:\n",
		"// FIXME:\n",
		"// TODO(note)\n",
		"/* FIXME: */\n",
		"/** TODO: */\n",
	},
}

var todoPattern = regexp.MustCompile(`\b(?:TODO|FIXME)\b`)

func checkTodo(file *source.File, _ []lint.Parameter) []finding {
	var out []finding
	for _, m := range file.MatchPattern(todoPattern, token.KindComment, token.KindDocComment) {
		out = append(out, finding{
			offset:   m.Offset,
			severity: core.SeverityWarning,
			reason:   "TODOs and FIXMEs should be avoided",
		})
	}
	return out
}
