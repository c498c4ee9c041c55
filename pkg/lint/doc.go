// Package lint is the rule engine of stylecheck.
//
// # Architecture
//
// The package is split in four parts that run in a fixed order for every
// linted file:
//
//  1. Catalog: the compiled-in, ordered list of rules. Filter selects the
//     rules a base Configuration enables.
//  2. Directives: ScanDirectives finds inline comments of the form
//     "stylecheck:disable_rule:<id>" and parses them into Commands.
//  3. Timeline: BuildTimeline folds the commands into offset-indexed
//     Regions. EffectiveAt returns the directive state at any offset.
//  4. Engine: runs the selected rules, then drops every violation whose rule
//     is disabled in the region active at the violation's offset.
//
// The base Configuration comes from a Resolver. The on-disk resolver lives
// in internal/config; StaticResolver serves a fixed value.
//
// # Configuration
//
// A Configuration is two disjoint sets of rule identifiers:
//
//	var cfg lint.Configuration
//	cfg.Disable("force_cast")
//	cfg.State("force_cast") // lint.RuleDisabled
//	cfg.State("todo")       // lint.RuleUnspecified, enabled by default
//
// Layers are merged with Overlay, where the outer layer wins for the
// identifiers it mentions.
//
// # Creating Custom Rules
//
// Implement Rule, and ParameterizedRule when the rule has thresholds:
//
//	type noPrint struct{}
//
//	func (noPrint) ID() string { return "no_print" }
//	func (noPrint) Description() core.RuleDescription { ... }
//	func (noPrint) Validate(f *source.File) []lint.Violation { ... }
//
// Rules must be stateless: the same value is shared by every worker.
package lint
