package rules

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/stylecheck/pkg/core"
	"github.com/leapstack-labs/stylecheck/pkg/lint"
	"github.com/leapstack-labs/stylecheck/pkg/source"
)

// TrailingWhitespace forbids spaces and tabs at the end of a line.
var TrailingWhitespace = Def{
	ID:          "trailing_whitespace",
	Name:        "Trailing Whitespace Rule",
	Description: "Lines should not have trailing whitespace.",
	Check:       checkTrailingWhitespace,

	NonTriggeringExamples: []string{
		"//\n",
	},
	TriggeringExamples: []string{
		"// \n",
		"let a = 1\t\n",
	},
}

func checkTrailingWhitespace(file *source.File, _ []lint.Parameter) []finding {
	var out []finding
	for _, line := range file.Lines() {
		trimmed := strings.TrimRight(line.Content, " \t")
		n := len(line.Content) - len(trimmed)
		if n == 0 {
			continue
		}
		out = append(out, finding{
			offset:   line.Range.Offset + len(trimmed),
			severity: core.SeverityWarning,
			reason: fmt.Sprintf("Line #%d should have no trailing whitespace: current has %d trailing whitespace characters",
				line.Index, n),
		})
	}
	return out
}
