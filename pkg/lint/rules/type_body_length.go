package rules

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/stylecheck/pkg/lint"
	"github.com/leapstack-labs/stylecheck/pkg/source"
)

// TypeBodyLength limits the number of lines in a type body.
var TypeBodyLength = Def{
	ID:          "type_body_length",
	Name:        "Type Body Length Rule",
	Description: "Type bodies should not span too many lines.",
	Params:      thresholds(200, 350),
	Check:       checkTypeBodyLength,

	NonTriggeringExamples: []string{
		"class Abc {\n" + strings.Repeat("let abc = 0\n", 200) + "}\n",
		"struct Abc {\n" + strings.Repeat("//\n", 250) + "}\n",
	},
	TriggeringExamples: []string{
		"class Abc {\n" + strings.Repeat("let abc = 0\n", 201) + "}\n",
		"enum Abc {\n" + strings.Repeat("case abc\n", 201) + "}\n",
	},
}

func checkTypeBodyLength(file *source.File, params []lint.Parameter) []finding {
	var out []finding
	for _, s := range scopes(file) {
		if s.kind != scopeType {
			continue
		}
		out = append(out, bodyLength(file, s, params, "Type")...)
	}
	return out
}

// bodyLength reports s when its body exceeds a threshold. Lines holding only
// a comment or whitespace are not counted.
func bodyLength(file *source.File, s scope, params []lint.Parameter, kind string) []finding {
	if bodyLines(file, s) <= limit(params) {
		return nil // cheap upper bound
	}
	n := codeLines(file, s)
	sev, ok := lint.SeverityFor(params, n)
	if !ok {
		return nil
	}
	return []finding{{
		offset:   s.owner,
		severity: sev,
		reason: fmt.Sprintf("%s body should span %d lines or less: currently spans %d lines",
			kind, limit(params), n),
	}}
}

// codeLines counts the lines strictly between the braces of s that hold
// something other than comments and whitespace.
func codeLines(file *source.File, s scope) int {
	first := file.Position(s.open).Line + 1
	last := file.Position(s.close).Line - 1

	hasCode := make(map[int]bool)
	for _, t := range file.Tokens {
		if t.Offset() <= s.open || t.Offset() >= s.close || t.Kind.IsComment() {
			continue
		}
		for l := t.Span.Start.Line; l <= t.Span.End.Line; l++ {
			hasCode[l] = true
		}
	}

	n := 0
	for l := first; l <= last; l++ {
		if hasCode[l] {
			n++
		}
	}
	return n
}
