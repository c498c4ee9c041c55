package lint

import (
	"github.com/leapstack-labs/stylecheck/pkg/core"
	"github.com/leapstack-labs/stylecheck/pkg/source"
)

// Rule is the interface all lint rules implement.
// Rules are stateless and reentrant; they have no identity beyond ID.
type Rule interface {
	// ID returns the unique identifier, e.g., "force_cast"
	ID() string

	// Description returns the documentation of the rule
	Description() core.RuleDescription

	// Validate scans the whole file and returns every violation found.
	Validate(file *source.File) []Violation
}

// Parameter is one (threshold, severity) pair of a parameterized rule.
// A measured value violates the threshold when it exceeds Value.
type Parameter = core.RuleParameter

// ParameterizedRule is a rule driven by ordered thresholds,
// e.g., line length 100 is a warning and 200 is an error.
type ParameterizedRule interface {
	Rule

	// Parameters returns the thresholds in ascending order of Value.
	Parameters() []Parameter
}

// SeverityFor returns the severity of the highest threshold value exceeds.
// It reports false when value exceeds no threshold.
func SeverityFor(params []Parameter, value int) (core.Severity, bool) {
	best := -1
	for i, p := range params {
		if value > p.Value && (best < 0 || p.Value >= params[best].Value) {
			best = i
		}
	}
	if best < 0 {
		return core.SeverityHint, false
	}
	return params[best].Severity, true
}

// ParseRuleID consumes the longest prefix of s made of lowercase ASCII
// letters and underscores. It returns the identifier and its length;
// an empty identifier means s does not start with one.
func ParseRuleID(s string) (string, int) {
	n := 0
	for n < len(s) && isRuleIDChar(s[n]) {
		n++
	}
	return s[:n], n
}

// ValidRuleID reports whether id is a non-empty rule identifier.
func ValidRuleID(id string) bool {
	_, n := ParseRuleID(id)
	return n > 0 && n == len(id)
}

func isRuleIDChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || c == '_'
}

// GetRuleInfo extracts metadata from a Rule for documentation/tooling.
func GetRuleInfo(r Rule) core.RuleInfo {
	info := core.RuleInfo{RuleDescription: r.Description()}
	info.ID = r.ID()
	if pr, ok := r.(ParameterizedRule); ok {
		info.Parameters = append([]Parameter(nil), pr.Parameters()...)
	}
	return info
}
