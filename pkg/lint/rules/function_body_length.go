package rules

import (
	"strings"

	"github.com/leapstack-labs/stylecheck/pkg/lint"
	"github.com/leapstack-labs/stylecheck/pkg/source"
)

// FunctionBodyLength limits the number of lines in a function body.
var FunctionBodyLength = Def{
	ID:          "function_body_length",
	Name:        "Function Body Length Rule",
	Description: "Functions bodies should not span too many lines.",
	Params:      thresholds(40, 100),
	Check:       checkFunctionBodyLength,

	NonTriggeringExamples: []string{
		"func abc() {\n" + strings.Repeat("let abc = 0\n", 40) + "}\n",
		"func abc() {\n" + strings.Repeat("// comment only\n", 60) + "}\n",
	},
	TriggeringExamples: []string{
		"func abc() {\n" + strings.Repeat("let abc = 0\n", 41) + "}\n",
		"init() {\n" + strings.Repeat("let abc = 0\n", 41) + "}\n",
	},
}

func checkFunctionBodyLength(file *source.File, params []lint.Parameter) []finding {
	var out []finding
	for _, s := range scopes(file) {
		if s.kind != scopeFunction {
			continue
		}
		out = append(out, bodyLength(file, s, params, "Function")...)
	}
	return out
}
