package lint_test

import (
	"sort"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/stylecheck/pkg/lint"
)

func disable(offset int, id string) lint.Directive {
	return lint.Directive{Offset: offset, Command: lint.Command{Action: lint.ActionDisable, RuleID: id}}
}

func enable(offset int, id string) lint.Directive {
	return lint.Directive{Offset: offset, Command: lint.Command{Action: lint.ActionEnable, RuleID: id}}
}

func TestBuildTimeline_Seeded(t *testing.T) {
	tl := lint.BuildTimeline(nil)
	regions := tl.Regions()
	require.Len(t, regions, 1)
	assert.Equal(t, 0, regions[0].Offset)
	assert.Equal(t, 0, regions[0].Configuration.Len())
}

func TestBuildTimeline_Regions(t *testing.T) {
	tl := lint.BuildTimeline([]lint.Directive{
		disable(10, "force_cast"),
		{Offset: 20}, // no-op
		disable(30, "todo"),
		enable(40, "force_cast"),
	})
	require.Equal(t, 4, tl.Len())

	tests := []struct {
		offset    int
		forceCast lint.RuleState
		todo      lint.RuleState
	}{
		{0, lint.RuleUnspecified, lint.RuleUnspecified},
		{9, lint.RuleUnspecified, lint.RuleUnspecified},
		{10, lint.RuleDisabled, lint.RuleUnspecified},
		{25, lint.RuleDisabled, lint.RuleUnspecified},
		{30, lint.RuleDisabled, lint.RuleDisabled},
		{40, lint.RuleEnabled, lint.RuleDisabled},
		{1000, lint.RuleEnabled, lint.RuleDisabled},
	}
	for _, tt := range tests {
		cfg := tl.EffectiveAt(tt.offset)
		assert.Equal(t, tt.forceCast, cfg.State("force_cast"), "force_cast at %d", tt.offset)
		assert.Equal(t, tt.todo, cfg.State("todo"), "todo at %d", tt.offset)
	}
}

func TestBuildTimeline_UnorderedInput(t *testing.T) {
	tl := lint.BuildTimeline([]lint.Directive{
		enable(50, "a"),
		disable(10, "a"),
	})
	assert.Equal(t, lint.RuleDisabled, tl.EffectiveAt(20).State("a"))
	assert.Equal(t, lint.RuleEnabled, tl.EffectiveAt(50).State("a"))
}

func TestTimeline_RegionsIsCopy(t *testing.T) {
	tl := lint.BuildTimeline([]lint.Directive{disable(5, "a")})
	regions := tl.Regions()
	regions[1].Configuration.Enable("a")
	assert.Equal(t, lint.RuleDisabled, tl.EffectiveAt(5).State("a"))
}

func TestTimeline_EffectiveAtProperty(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("EffectiveAt agrees with a linear scan of the directives", prop.ForAll(
		func(offsets []int, query int) bool {
			directives := make([]lint.Directive, len(offsets))
			for i, off := range offsets {
				if i%2 == 0 {
					directives[i] = disable(off, "r")
				} else {
					directives[i] = enable(off, "r")
				}
			}
			tl := lint.BuildTimeline(directives)

			sorted := append([]lint.Directive(nil), directives...)
			sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Offset < sorted[j].Offset })
			want := lint.RuleUnspecified
			for _, d := range sorted {
				if d.Offset > query {
					break
				}
				if d.Command.Action == lint.ActionEnable {
					want = lint.RuleEnabled
				} else {
					want = lint.RuleDisabled
				}
			}
			return tl.EffectiveAt(query).State("r") == want
		},
		gen.SliceOf(gen.IntRange(0, 1000)),
		gen.IntRange(0, 1100),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
