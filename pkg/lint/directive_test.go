package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/stylecheck/pkg/lint"
	"github.com/leapstack-labs/stylecheck/pkg/source"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		text string
		want lint.Command
	}{
		{"enable_rule:force_cast", lint.Command{Action: lint.ActionEnable, RuleID: "force_cast"}},
		{"disable_rule:force_cast", lint.Command{Action: lint.ActionDisable, RuleID: "force_cast"}},
		{"disable_rule:todo and more", lint.Command{Action: lint.ActionDisable, RuleID: "todo"}},
		{"disable_rule:line_length2", lint.Command{Action: lint.ActionDisable, RuleID: "line_length"}},
		{"enable_rule:My_Rule", lint.Command{}},
		{"enable_rule:", lint.Command{}},
		{"enable_rule force_cast", lint.Command{}},
		{"toggle_rule:force_cast", lint.Command{}},
		{"", lint.Command{}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, lint.ParseCommand(tt.text))
		})
	}
}

func TestScanDirectives(t *testing.T) {
	contents := "// stylecheck:disable_rule:force_cast\n" +
		"let s = \"stylecheck:disable_rule:todo\"\n" +
		"/* stylecheck:enable_rule:force_cast*/\n" +
		"/// stylecheck:disable_rule:Colon\n"
	f := source.NewFile("a.swift", contents)

	directives := lint.ScanDirectives(f)
	require.Len(t, directives, 3, "the directive inside a string is ignored")

	assert.Equal(t, 3, directives[0].Offset)
	assert.Equal(t, lint.Command{Action: lint.ActionDisable, RuleID: "force_cast"}, directives[0].Command)

	assert.Equal(t, lint.Command{Action: lint.ActionEnable, RuleID: "force_cast"}, directives[1].Command)
	assert.Equal(t, lint.ActionNone, directives[2].Command.Action)

	for i := 1; i < len(directives); i++ {
		assert.Less(t, directives[i-1].Offset, directives[i].Offset)
	}
}

func TestScanDirectives_None(t *testing.T) {
	f := source.NewFile("", "let stylecheck = 1\n")
	assert.Empty(t, lint.ScanDirectives(f))
}
