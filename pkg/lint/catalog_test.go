package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/stylecheck/pkg/core"
	"github.com/leapstack-labs/stylecheck/pkg/lint"
	"github.com/leapstack-labs/stylecheck/pkg/token"
)

func ids(rules []lint.Rule) []string {
	out := make([]string, len(rules))
	for i, r := range rules {
		out[i] = r.ID()
	}
	return out
}

func TestCatalog_Order(t *testing.T) {
	c := testCatalog()
	assert.Equal(t, []string{"force_cast", "todo", "semicolon"}, c.IDs())
	assert.Equal(t, c.IDs(), ids(c.All()))
	assert.Equal(t, 3, c.Len())

	r, ok := c.Lookup("todo")
	require.True(t, ok)
	assert.Equal(t, "todo", r.ID())

	_, ok = c.Lookup("missing")
	assert.False(t, ok)
}

func TestCatalog_Filter(t *testing.T) {
	c := testCatalog()

	tests := []struct {
		name string
		cfg  lint.Configuration
		want []string
	}{
		{
			name: "empty configuration enables everything",
			cfg:  lint.Configuration{},
			want: []string{"force_cast", "todo", "semicolon"},
		},
		{
			name: "disabled rule removed, order kept",
			cfg:  lint.ConfigurationFromRuleMap(map[string]bool{"todo": false}),
			want: []string{"force_cast", "semicolon"},
		},
		{
			name: "unknown ids ignored",
			cfg:  lint.ConfigurationFromRuleMap(map[string]bool{"not_a_rule": false, "other": true}),
			want: []string{"force_cast", "todo", "semicolon"},
		},
		{
			name: "everything disabled",
			cfg:  lint.ConfigurationFromRuleMap(map[string]bool{"force_cast": false, "todo": false, "semicolon": false}),
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(c.Filter(tt.cfg)))
		})
	}
}

func TestCatalog_Defaults(t *testing.T) {
	c := testCatalog()
	d := c.Defaults()
	assert.Equal(t, []string{"force_cast", "semicolon", "todo"}, d.EnabledIDs())
	assert.Empty(t, d.DisabledIDs())
}

func TestCatalog_Infos(t *testing.T) {
	params := []lint.Parameter{{Value: 10, Severity: core.SeverityWarning}}
	c := lint.NewCatalog(&thresholdRule{
		patternRule: newPatternRule("long_thing", `x+`, token.KindIdentifier),
		params:      params,
	})

	infos := c.Infos()
	require.Len(t, infos, 1)
	assert.Equal(t, "long_thing", infos[0].ID)
	assert.Equal(t, params, infos[0].Parameters)
}

func TestNewCatalog_Panics(t *testing.T) {
	assert.Panics(t, func() {
		lint.NewCatalog(newPatternRule("a", "x"), newPatternRule("a", "y"))
	}, "duplicate id")
	assert.Panics(t, func() {
		lint.NewCatalog(newPatternRule("Bad-ID", "x"))
	}, "invalid id")
}
