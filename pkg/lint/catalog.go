package lint

import (
	"fmt"

	"github.com/leapstack-labs/stylecheck/pkg/core"
)

// Catalog is the fixed, ordered list of available rules.
// It is immutable after construction and safe for concurrent use.
type Catalog struct {
	rules []Rule
	byID  map[string]Rule
}

// NewCatalog builds a catalog from rules, keeping their order.
// It panics on an invalid or duplicate identifier, since the rule list is
// compiled in.
func NewCatalog(rules ...Rule) *Catalog {
	c := &Catalog{
		rules: make([]Rule, 0, len(rules)),
		byID:  make(map[string]Rule, len(rules)),
	}
	for _, r := range rules {
		id := r.ID()
		if !ValidRuleID(id) {
			panic(fmt.Sprintf("lint: invalid rule id %q", id))
		}
		if _, dup := c.byID[id]; dup {
			panic(fmt.Sprintf("lint: duplicate rule id %q", id))
		}
		c.rules = append(c.rules, r)
		c.byID[id] = r
	}
	return c
}

// All returns every rule in catalog order.
func (c *Catalog) All() []Rule {
	out := make([]Rule, len(c.rules))
	copy(out, c.rules)
	return out
}

// Filter returns the rules enabled by cfg, in catalog order. Rules cfg does
// not mention are enabled by default. Identifiers in cfg that match no rule
// are ignored.
func (c *Catalog) Filter(cfg Configuration) []Rule {
	var out []Rule
	for _, r := range c.rules {
		if cfg.IsEnabled(r.ID()) {
			out = append(out, r)
		}
	}
	return out
}

// Lookup returns the rule with the given id.
func (c *Catalog) Lookup(id string) (Rule, bool) {
	r, ok := c.byID[id]
	return r, ok
}

// IDs returns the rule identifiers in catalog order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.rules))
	for i, r := range c.rules {
		ids[i] = r.ID()
	}
	return ids
}

// Len returns the number of rules.
func (c *Catalog) Len() int {
	return len(c.rules)
}

// Defaults returns a configuration with every rule enabled.
func (c *Catalog) Defaults() Configuration {
	return NewConfiguration(c.IDs()...)
}

// Infos returns documentation metadata for every rule, in catalog order.
func (c *Catalog) Infos() []core.RuleInfo {
	infos := make([]core.RuleInfo, len(c.rules))
	for i, r := range c.rules {
		infos[i] = GetRuleInfo(r)
	}
	return infos
}
