package rules

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/leapstack-labs/stylecheck/pkg/lint"
	"github.com/leapstack-labs/stylecheck/pkg/source"
)

// LineLength limits the number of characters on a line.
var LineLength = Def{
	ID:          "line_length",
	Name:        "Line Length Rule",
	Description: "Lines should be 100 characters or less.",
	Params:      thresholds(100, 200),
	Check:       checkLineLength,

	NonTriggeringExamples: []string{
		strings.Repeat("/", 100) + "\n",
	},
	TriggeringExamples: []string{
		strings.Repeat("/", 101) + "\n",
		strings.Repeat("/", 201) + "\n",
	},
}

func checkLineLength(file *source.File, params []lint.Parameter) []finding {
	var out []finding
	for _, line := range file.Lines() {
		n := utf8.RuneCountInString(line.Content)
		sev, ok := lint.SeverityFor(params, n)
		if !ok {
			continue
		}
		out = append(out, finding{
			offset:   line.Range.Offset,
			severity: sev,
			reason: fmt.Sprintf("Line should be %d characters or less: currently %d characters",
				limit(params), n),
		})
	}
	return out
}
