package lint

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/leapstack-labs/stylecheck/pkg/core"
	"github.com/leapstack-labs/stylecheck/pkg/source"
)

// Location points at a byte offset in a file.
// Line and Column are 1-based; Column counts characters.
type Location struct {
	Path   string `json:"path" yaml:"path"`
	Offset int    `json:"offset" yaml:"offset"`
	Line   int    `json:"line" yaml:"line"`
	Column int    `json:"column" yaml:"column"`
}

// String formats the location as path:line:col.
func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.Path, l.Line, l.Column)
}

// Violation is one reported issue. It is a value and is never mutated
// after creation.
type Violation struct {
	RuleID   string        `json:"rule_id" yaml:"rule_id"`
	Location Location      `json:"location" yaml:"location"`
	Severity core.Severity `json:"severity" yaml:"severity"`
	Reason   string        `json:"reason" yaml:"reason"`
}

// NewViolation creates a violation at offset in file.
func NewViolation(file *source.File, ruleID string, offset int, severity core.Severity, reason string) Violation {
	pos := file.Position(offset)
	return Violation{
		RuleID: ruleID,
		Location: Location{
			Path:   file.Path,
			Offset: pos.Offset,
			Line:   pos.Line,
			Column: pos.Column,
		},
		Severity: severity,
		Reason:   reason,
	}
}

// String formats the violation the way compilers report diagnostics.
func (v Violation) String() string {
	return fmt.Sprintf("%s: %s: %s (%s)", v.Location, v.Severity, v.Reason, v.RuleID)
}

// SortViolations orders violations by offset, then by rule identifier.
// Equal keys keep their relative order.
func SortViolations(vs []Violation) {
	slices.SortStableFunc(vs, func(a, b Violation) int {
		return cmp.Or(
			cmp.Compare(a.Location.Offset, b.Location.Offset),
			cmp.Compare(a.RuleID, b.RuleID),
		)
	})
}

// FilterSeverity returns the violations at or above threshold.
func FilterSeverity(vs []Violation, threshold core.Severity) []Violation {
	var out []Violation
	for _, v := range vs {
		if v.Severity.AtLeast(threshold) {
			out = append(out, v)
		}
	}
	return out
}
