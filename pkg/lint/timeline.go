package lint

import (
	"cmp"
	"slices"
	"sort"
)

// Region is the directive state that takes effect at Offset and lasts
// until the next region.
type Region struct {
	Offset        int
	Configuration Configuration
}

// Timeline is the ordered history of directive changes in one file.
// It always starts with an empty configuration at offset 0.
type Timeline struct {
	regions []Region
}

// BuildTimeline folds directives into regions. Each command applies to the
// configuration of the region before it. ActionNone commands produce no
// region.
func BuildTimeline(directives []Directive) *Timeline {
	ordered := slices.Clone(directives)
	slices.SortStableFunc(ordered, func(a, b Directive) int {
		return cmp.Compare(a.Offset, b.Offset)
	})

	t := &Timeline{regions: []Region{{Offset: 0}}}
	for _, d := range ordered {
		if d.Command.Action == ActionNone {
			continue
		}
		prev := t.regions[len(t.regions)-1].Configuration
		t.regions = append(t.regions, Region{
			Offset:        d.Offset,
			Configuration: d.Command.Apply(prev),
		})
	}
	return t
}

// EffectiveAt returns the configuration of the last region whose offset
// is at or before offset.
func (t *Timeline) EffectiveAt(offset int) Configuration {
	i := sort.Search(len(t.regions), func(i int) bool {
		return t.regions[i].Offset > offset
	})
	if i == 0 {
		return t.regions[0].Configuration
	}
	return t.regions[i-1].Configuration
}

// Regions returns a copy of the regions for display.
func (t *Timeline) Regions() []Region {
	out := make([]Region, len(t.regions))
	for i, r := range t.regions {
		out[i] = Region{Offset: r.Offset, Configuration: r.Configuration.Clone()}
	}
	return out
}

// Len returns the number of regions, including the initial one.
func (t *Timeline) Len() int {
	return len(t.regions)
}
