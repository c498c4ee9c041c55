package rules

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/stylecheck/pkg/core"
	"github.com/leapstack-labs/stylecheck/pkg/lint"
	"github.com/leapstack-labs/stylecheck/pkg/source"
)

// LeadingWhitespace forbids whitespace at the very start of a file.
var LeadingWhitespace = Def{
	ID:          "leading_whitespace",
	Name:        "Leading Whitespace Rule",
	Description: "Files should not contain leading whitespace.",
	Check:       checkLeadingWhitespace,

	NonTriggeringExamples: []string{
		"//\n",
	},
	TriggeringExamples: []string{
		"\n",
		" //\n",
	},
}

func checkLeadingWhitespace(file *source.File, _ []lint.Parameter) []finding {
	n := len(file.Contents) - len(strings.TrimLeft(file.Contents, " \t\r\n"))
	if n == 0 {
		return nil
	}
	return []finding{{
		offset:   0,
		severity: core.SeverityWarning,
		reason:   fmt.Sprintf("File shouldn't start with whitespace: currently starts with %d whitespace characters", n),
	}}
}
