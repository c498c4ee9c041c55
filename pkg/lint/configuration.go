package lint

import (
	"maps"
	"slices"
)

// RuleState is the decision a Configuration records for one rule.
type RuleState int

// Rule states.
const (
	// RuleUnspecified defers to an outer, less specific layer.
	RuleUnspecified RuleState = iota
	RuleEnabled
	RuleDisabled
)

// String returns the string representation of the state.
func (s RuleState) String() string {
	switch s {
	case RuleEnabled:
		return "enabled"
	case RuleDisabled:
		return "disabled"
	default:
		return "unspecified"
	}
}

// Configuration is a layer of explicit enable/disable decisions per rule.
// An identifier is never in both sets. The zero value is an empty layer
// ready to use.
//
// Configuration holds maps, so copies share state: call Clone before
// handing a value to code that may mutate it.
type Configuration struct {
	enabled  map[string]struct{}
	disabled map[string]struct{}
}

// NewConfiguration returns a layer with ids enabled.
func NewConfiguration(enabled ...string) Configuration {
	var c Configuration
	for _, id := range enabled {
		c.Enable(id)
	}
	return c
}

// ConfigurationFromRuleMap converts a persisted rule map into a layer.
func ConfigurationFromRuleMap(m map[string]bool) Configuration {
	var c Configuration
	for id, on := range m {
		if on {
			c.Enable(id)
		} else {
			c.Disable(id)
		}
	}
	return c
}

// Enable records id as enabled and removes it from the disabled set.
func (c *Configuration) Enable(id string) {
	if c.enabled == nil {
		c.enabled = make(map[string]struct{})
	}
	delete(c.disabled, id)
	c.enabled[id] = struct{}{}
}

// Disable records id as disabled and removes it from the enabled set.
func (c *Configuration) Disable(id string) {
	if c.disabled == nil {
		c.disabled = make(map[string]struct{})
	}
	delete(c.enabled, id)
	c.disabled[id] = struct{}{}
}

// State returns the decision recorded for id.
func (c Configuration) State(id string) RuleState {
	if _, ok := c.enabled[id]; ok {
		return RuleEnabled
	}
	if _, ok := c.disabled[id]; ok {
		return RuleDisabled
	}
	return RuleUnspecified
}

// IsEnabled reports whether id runs under this layer alone.
// Unspecified identifiers are enabled by default.
func (c Configuration) IsEnabled(id string) bool {
	return c.State(id) != RuleDisabled
}

// Len returns the number of identifiers the layer mentions.
func (c Configuration) Len() int {
	return len(c.enabled) + len(c.disabled)
}

// Clone returns a deep copy.
func (c Configuration) Clone() Configuration {
	return Configuration{
		enabled:  maps.Clone(c.enabled),
		disabled: maps.Clone(c.disabled),
	}
}

// Overlay returns a copy of c with layer applied on top. The layer wins for
// every identifier it mentions; the rest keep their state in c.
func (c Configuration) Overlay(layer Configuration) Configuration {
	out := c.Clone()
	for id := range layer.enabled {
		out.Enable(id)
	}
	for id := range layer.disabled {
		out.Disable(id)
	}
	return out
}

// RuleMap returns the persisted form of the layer: true for enabled,
// false for disabled. Unspecified identifiers are absent.
func (c Configuration) RuleMap() map[string]bool {
	m := make(map[string]bool, c.Len())
	for id := range c.enabled {
		m[id] = true
	}
	for id := range c.disabled {
		m[id] = false
	}
	return m
}

// EnabledIDs returns the enabled identifiers, sorted.
func (c Configuration) EnabledIDs() []string {
	return slices.Sorted(maps.Keys(c.enabled))
}

// DisabledIDs returns the disabled identifiers, sorted.
func (c Configuration) DisabledIDs() []string {
	return slices.Sorted(maps.Keys(c.disabled))
}

// Equal reports whether both layers record the same decisions.
func (c Configuration) Equal(other Configuration) bool {
	return sameKeys(c.enabled, other.enabled) && sameKeys(c.disabled, other.disabled)
}

func sameKeys(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}
