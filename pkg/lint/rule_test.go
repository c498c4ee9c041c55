package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leapstack-labs/stylecheck/pkg/core"
	"github.com/leapstack-labs/stylecheck/pkg/lint"
	"github.com/leapstack-labs/stylecheck/pkg/source"
)

func TestParseRuleID(t *testing.T) {
	tests := []struct {
		in   string
		id   string
		size int
	}{
		{"force_cast", "force_cast", 10},
		{"force_cast more", "force_cast", 10},
		{"line_length2", "line_length", 11},
		{"My_Rule", "", 0},
		{"", "", 0},
		{"_", "_", 1},
	}
	for _, tt := range tests {
		id, n := lint.ParseRuleID(tt.in)
		assert.Equal(t, tt.id, id, tt.in)
		assert.Equal(t, tt.size, n, tt.in)
	}

	assert.True(t, lint.ValidRuleID("force_cast"))
	assert.False(t, lint.ValidRuleID("force-cast"))
	assert.False(t, lint.ValidRuleID(""))
}

func TestSeverityFor(t *testing.T) {
	params := []lint.Parameter{
		{Value: 100, Severity: core.SeverityWarning},
		{Value: 200, Severity: core.SeverityError},
	}

	tests := []struct {
		value  int
		want   core.Severity
		wantOK bool
	}{
		{99, core.SeverityHint, false},
		{100, core.SeverityHint, false},
		{101, core.SeverityWarning, true},
		{200, core.SeverityWarning, true},
		{201, core.SeverityError, true},
		{5000, core.SeverityError, true},
	}
	for _, tt := range tests {
		sev, ok := lint.SeverityFor(params, tt.value)
		assert.Equal(t, tt.wantOK, ok, "value %d", tt.value)
		if tt.wantOK {
			assert.Equal(t, tt.want, sev, "value %d", tt.value)
		}
	}
}

func TestLineSuppressed(t *testing.T) {
	f := source.NewFile("", "a as! B // $-force_cast\nc as! D // $-force\ne as! F // $-todo // $-force_cast\n")

	assert.True(t, lint.LineSuppressed(f, 2, "force_cast"))
	assert.False(t, lint.LineSuppressed(f, 26, "force_cast"), "prefix of another id")
	assert.True(t, lint.LineSuppressed(f, 26, "force"))
	assert.True(t, lint.LineSuppressed(f, 45, "force_cast"), "second marker on the line")
	assert.False(t, lint.LineSuppressed(f, 45, "colon"))
}

func TestViolation_String(t *testing.T) {
	f := source.NewFile("src/a.swift", "let x\nlet y as! Z\n")
	v := lint.NewViolation(f, "force_cast", 12, core.SeverityError, "Force casts should be avoided")

	assert.Equal(t, 2, v.Location.Line)
	assert.Equal(t, 7, v.Location.Column)
	assert.Equal(t, "src/a.swift:2:7: error: Force casts should be avoided (force_cast)", v.String())
}

func TestSortViolations(t *testing.T) {
	vs := []lint.Violation{
		{RuleID: "b", Location: lint.Location{Offset: 5}},
		{RuleID: "a", Location: lint.Location{Offset: 5}},
		{RuleID: "z", Location: lint.Location{Offset: 1}},
	}
	lint.SortViolations(vs)
	assert.Equal(t, "z", vs[0].RuleID)
	assert.Equal(t, "a", vs[1].RuleID)
	assert.Equal(t, "b", vs[2].RuleID)
}
