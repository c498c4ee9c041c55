package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/leapstack-labs/stylecheck/pkg/core"
	"github.com/leapstack-labs/stylecheck/pkg/lint"
	"github.com/leapstack-labs/stylecheck/pkg/source"
	"github.com/leapstack-labs/stylecheck/pkg/token"
)

// ControlStatement forbids parentheses around a whole control condition.
var ControlStatement = Def{
	ID:          "control_statement",
	Name:        "Control Statement Rule",
	Description: "if, for, guard, switch and while statements shouldn't wrap their conditionals in parentheses.",
	Check:       checkControlStatement,

	NonTriggeringExamples: []string{
		"if condition {\n}\n",
		"if (a, b) == (0, 1) {\n}\n",
		"if (a || b) && (c || d) {\n}\n",
		"while condition {\n}\n",
		"switch foo {\n}\n",
		"guard condition else {\n}\n",
		"let x = (a)\n",
	},
	TriggeringExamples: []string{
		"if (condition) {\n}\n",
		"if(condition) {\n}\n",
		"while (condition) {\n}\n",
		"switch (foo) {\n}\n",
		"guard (condition) else {\n}\n",
		"for (item) in items {\n}\n",
	},
}

var controlPattern = regexp.MustCompile(
	`\b(if|for|guard|switch|while)[ \t]*\(([^,{\n]*)\)[ \t]*(?:(?:else|in)\b[^{\n]*)?\{`,
)

func checkControlStatement(file *source.File, _ []lint.Parameter) []finding {
	var out []finding
	for _, m := range file.MatchPatternExcluding(controlPattern,
		token.KindComment, token.KindDocComment, token.KindString) {
		if kind, ok := file.KindAt(m.Offset); !ok || kind != token.KindKeyword {
			continue
		}
		text := file.Contents[m.Offset:m.End()]
		sub := controlPattern.FindStringSubmatch(text)
		if sub == nil || !wrapsWhole(sub[2]) {
			continue
		}
		if sub[1] == "for" && !strings.Contains(text, " in ") {
			continue
		}
		out = append(out, finding{
			offset:   m.Offset,
			severity: core.SeverityWarning,
			reason:   fmt.Sprintf("%s statements shouldn't wrap their conditionals in parentheses", sub[1]),
		})
	}
	return out
}

// wrapsWhole reports whether inner, the text between the outer parentheses,
// is balanced on its own, so that the parentheses enclose the whole
// condition.
func wrapsWhole(inner string) bool {
	d := 0
	for _, c := range inner {
		switch c {
		case '(':
			d++
		case ')':
			d--
			if d < 0 {
				return false
			}
		}
	}
	return d == 0
}
