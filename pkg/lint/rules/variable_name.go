package rules

import (
	"regexp"
	"strings"

	"github.com/leapstack-labs/stylecheck/pkg/lint"
	"github.com/leapstack-labs/stylecheck/pkg/source"
	"github.com/leapstack-labs/stylecheck/pkg/token"
)

// VariableName checks the names of let and var bindings.
var VariableName = Def{
	ID:          "variable_name",
	Name:        "Variable Name Rule",
	Description: "Variable name should only contain alphanumeric characters, start with a lowercase character and between 3 and 40 characters in length.",
	Params:      thresholds(40, 60),
	Check:       checkVariableName,

	NonTriggeringExamples: []string{
		"let myLet = 0\n",
		"var myVar = 0\n",
		"var myVar2: Int = 0\n",
		"let _ = 0\n",
		"let (abc, def) = (0, 1)\n",
	},
	TriggeringExamples: []string{
		"let MyLet = 0\n",
		"let _myLet = 0\n",
		"let my_let = 0\n",
		"var id = 0\n",
		"let " + strings.Repeat("a", 41) + " = 0\n",
	},
}

var bindingPattern = regexp.MustCompile(`\b(?:let|var)[ \t]+([^\s:=,()\[\].;{}]+)`)

func checkVariableName(file *source.File, params []lint.Parameter) []finding {
	var out []finding
	for _, m := range file.MatchPattern(bindingPattern,
		token.KindKeyword, token.KindIdentifier, token.KindTypeIdentifier) {
		text := file.Contents[m.Offset:m.End()]
		sub := bindingPattern.FindStringSubmatchIndex(text)
		if sub == nil {
			continue
		}
		name := strings.Trim(text[sub[2]:sub[3]], "`")
		if name == "_" || token.IsKeyword(name) {
			continue
		}
		out = append(out, checkName("Variable", name, m.Offset+sub[2], false, params)...)
	}
	return out
}
