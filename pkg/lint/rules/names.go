package rules

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/leapstack-labs/stylecheck/pkg/core"
	"github.com/leapstack-labs/stylecheck/pkg/lint"
)

const minNameLength = 3

// checkName validates one declared name. kind is "Type" or "Variable";
// upper selects the required case of the first character.
func checkName(kind, name string, offset int, upper bool, params []lint.Parameter) []finding {
	if !isAlphanumeric(name) {
		return []finding{{
			offset:   offset,
			severity: core.SeverityError,
			reason:   fmt.Sprintf("%s name should only contain alphanumeric characters: '%s'", kind, name),
		}}
	}

	first, _ := utf8.DecodeRuneInString(name)
	if upper && !unicode.IsUpper(first) {
		return []finding{{
			offset:   offset,
			severity: core.SeverityError,
			reason:   fmt.Sprintf("%s name should start with an uppercase character: '%s'", kind, name),
		}}
	}
	if !upper && !unicode.IsLower(first) {
		return []finding{{
			offset:   offset,
			severity: core.SeverityError,
			reason:   fmt.Sprintf("%s name should start with a lowercase character: '%s'", kind, name),
		}}
	}

	n := utf8.RuneCountInString(name)
	sev, tooLong := lint.SeverityFor(params, n)
	if n < minNameLength {
		sev = core.SeverityWarning
	} else if !tooLong {
		return nil
	}
	return []finding{{
		offset:   offset,
		severity: sev,
		reason: fmt.Sprintf("%s name should be between %d and %d characters in length: '%s'",
			kind, minNameLength, limit(params), name),
	}}
}

func isAlphanumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}
