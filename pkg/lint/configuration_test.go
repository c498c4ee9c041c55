package lint_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"

	"github.com/leapstack-labs/stylecheck/pkg/lint"
)

func TestConfiguration_ZeroValue(t *testing.T) {
	var cfg lint.Configuration
	assert.Equal(t, lint.RuleUnspecified, cfg.State("force_cast"))
	assert.True(t, cfg.IsEnabled("force_cast"))
	assert.Equal(t, 0, cfg.Len())
	assert.Empty(t, cfg.EnabledIDs())
}

func TestConfiguration_EnableDisable(t *testing.T) {
	var cfg lint.Configuration

	cfg.Disable("force_cast")
	assert.Equal(t, lint.RuleDisabled, cfg.State("force_cast"))
	assert.False(t, cfg.IsEnabled("force_cast"))

	cfg.Enable("force_cast")
	assert.Equal(t, lint.RuleEnabled, cfg.State("force_cast"))
	assert.Equal(t, []string{"force_cast"}, cfg.EnabledIDs())
	assert.Empty(t, cfg.DisabledIDs())
}

func TestConfiguration_Overlay(t *testing.T) {
	base := lint.NewConfiguration("a", "b", "c")
	var layer lint.Configuration
	layer.Disable("b")
	layer.Enable("d")

	merged := base.Overlay(layer)
	assert.Equal(t, []string{"a", "c", "d"}, merged.EnabledIDs())
	assert.Equal(t, []string{"b"}, merged.DisabledIDs())

	// Overlay never mutates its inputs.
	assert.Equal(t, lint.RuleEnabled, base.State("b"))
	assert.Equal(t, lint.RuleUnspecified, layer.State("a"))
}

func TestConfiguration_Clone(t *testing.T) {
	orig := lint.NewConfiguration("a")
	clone := orig.Clone()
	clone.Disable("a")

	assert.Equal(t, lint.RuleEnabled, orig.State("a"))
	assert.Equal(t, lint.RuleDisabled, clone.State("a"))
	assert.False(t, orig.Equal(clone))
}

func TestConfiguration_RuleMapRoundTrip(t *testing.T) {
	m := map[string]bool{"force_cast": false, "todo": true, "colon": true}
	cfg := lint.ConfigurationFromRuleMap(m)

	assert.Equal(t, m, cfg.RuleMap())
	assert.True(t, cfg.Equal(lint.ConfigurationFromRuleMap(cfg.RuleMap())))
	assert.Equal(t, lint.RuleDisabled, cfg.State("force_cast"))
	assert.Equal(t, lint.RuleEnabled, cfg.State("todo"))
}

func TestConfiguration_DisjointProperty(t *testing.T) {
	ids := []string{"force_cast", "todo", "colon", "nesting", "line_length"}

	properties := gopter.NewProperties(nil)

	properties.Property("enable and disable keep the enabled and disabled sets disjoint", prop.ForAll(
		func(picks []int, enables []bool) bool {
			var cfg lint.Configuration
			for i, p := range picks {
				id := ids[p]
				if i < len(enables) && enables[i] {
					cfg.Enable(id)
				} else {
					cfg.Disable(id)
				}
			}
			enabled := map[string]bool{}
			for _, id := range cfg.EnabledIDs() {
				enabled[id] = true
			}
			for _, id := range cfg.DisabledIDs() {
				if enabled[id] {
					return false
				}
			}
			return cfg.Len() == len(cfg.EnabledIDs())+len(cfg.DisabledIDs())
		},
		gen.SliceOf(gen.IntRange(0, len(ids)-1)),
		gen.SliceOf(gen.Bool()),
	))

	properties.Property("the last of enable and disable wins", prop.ForAll(
		func(id string, enableLast bool) bool {
			var cfg lint.Configuration
			if enableLast {
				cfg.Disable(id)
				cfg.Enable(id)
				return cfg.State(id) == lint.RuleEnabled && len(cfg.DisabledIDs()) == 0
			}
			cfg.Enable(id)
			cfg.Disable(id)
			return cfg.State(id) == lint.RuleDisabled && len(cfg.EnabledIDs()) == 0
		},
		gen.AlphaString(),
		gen.Bool(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
