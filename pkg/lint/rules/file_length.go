package rules

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/stylecheck/pkg/lint"
	"github.com/leapstack-labs/stylecheck/pkg/source"
)

// FileLength limits the number of lines in a file.
var FileLength = Def{
	ID:          "file_length",
	Name:        "File Length Rule",
	Description: "Files should have 400 lines or less.",
	Params:      thresholds(400, 1000),
	Check:       checkFileLength,

	NonTriggeringExamples: []string{
		strings.Repeat("//\n", 400),
	},
	TriggeringExamples: []string{
		strings.Repeat("//\n", 401),
	},
}

func checkFileLength(file *source.File, params []lint.Parameter) []finding {
	n := file.LineCount()
	sev, ok := lint.SeverityFor(params, n)
	if !ok {
		return nil
	}
	return []finding{{
		offset:   len(file.Contents),
		severity: sev,
		reason:   fmt.Sprintf("File should contain %d lines or less: currently contains %d", limit(params), n),
	}}
}
