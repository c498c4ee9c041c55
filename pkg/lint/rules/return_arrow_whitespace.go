package rules

import (
	"regexp"

	"github.com/leapstack-labs/stylecheck/pkg/core"
	"github.com/leapstack-labs/stylecheck/pkg/lint"
	"github.com/leapstack-labs/stylecheck/pkg/source"
	"github.com/leapstack-labs/stylecheck/pkg/token"
)

// ReturnArrowWhitespace requires exactly one space on each side of "->".
var ReturnArrowWhitespace = Def{
	ID:          "return_arrow_whitespace",
	Name:        "Returning Whitespace Rule",
	Description: "A return arrow should be surrounded by exactly one space on each side.",
	Check:       checkReturnArrowWhitespace,

	NonTriggeringExamples: []string{
		"func abc() -> Int {}\n",
		"func abc() -> [Int] {}\n",
		"func abc() -> (Int, Int) {}\n",
		"var abc = {(param: Int) -> Void in }\n",
	},
	TriggeringExamples: []string{
		"func abc()->Int {}\n",
		"func abc()->[Int] {}\n",
		"func abc() ->Int {}\n",
		"func abc()-> Int {}\n",
		"func abc()  -> Int {}\n",
		"func abc() ->  Int {}\n",
	},
}

var returnArrowPattern = regexp.MustCompile(`(?:[^ \t\n]|[ \t]{2,})->|->(?:[^ \t\n]|[ \t]{2,})`)

func checkReturnArrowWhitespace(file *source.File, _ []lint.Parameter) []finding {
	var out []finding
	for _, m := range file.MatchPatternExcluding(returnArrowPattern,
		token.KindComment, token.KindDocComment, token.KindString) {
		out = append(out, finding{
			offset:   m.Offset,
			severity: core.SeverityWarning,
			reason:   "File should have 1 space before return arrow and return type",
		})
	}
	return out
}
