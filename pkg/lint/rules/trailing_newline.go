package rules

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/stylecheck/pkg/core"
	"github.com/leapstack-labs/stylecheck/pkg/lint"
	"github.com/leapstack-labs/stylecheck/pkg/source"
)

// TrailingNewline requires a file to end with exactly one newline.
var TrailingNewline = Def{
	ID:          "trailing_newline",
	Name:        "Trailing Newline Rule",
	Description: "Files should have a single trailing newline.",
	Check:       checkTrailingNewline,

	NonTriggeringExamples: []string{
		"let a = 0\n",
	},
	TriggeringExamples: []string{
		"let a = 0",
		"let a = 0\n\n",
	},
}

func checkTrailingNewline(file *source.File, _ []lint.Parameter) []finding {
	if file.Contents == "" {
		return nil
	}
	trimmed := strings.TrimRight(file.Contents, "\r\n")
	n := strings.Count(file.Contents[len(trimmed):], "\n")
	if n == 1 {
		return nil
	}
	return []finding{{
		offset:   len(file.Contents),
		severity: core.SeverityWarning,
		reason:   fmt.Sprintf("File should have a single trailing newline: currently has %d", n),
	}}
}
