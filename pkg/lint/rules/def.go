package rules

import (
	"github.com/leapstack-labs/stylecheck/pkg/core"
	"github.com/leapstack-labs/stylecheck/pkg/lint"
	"github.com/leapstack-labs/stylecheck/pkg/source"
)

// CheckFunc scans a file. params holds the thresholds of parameterized
// rules and is nil otherwise.
type CheckFunc func(file *source.File, params []lint.Parameter) []finding

// finding is a violation before the rule id and location are attached.
type finding struct {
	offset   int
	severity core.Severity
	reason   string
}

// Def is a data-driven rule definition.
// Rules are stateless - all context comes via the Check function parameters.
type Def struct {
	ID          string // Unique identifier, e.g., "force_cast"
	Name        string // Human-readable name, e.g., "Force Cast Rule"
	Description string // What the rule checks
	Check       CheckFunc

	// Params makes the rule a lint.ParameterizedRule when non-empty.
	Params []lint.Parameter

	NonTriggeringExamples []string
	TriggeringExamples    []string
}

// Rule wraps d into a lint.Rule. Definitions with parameters are returned
// as lint.ParameterizedRule.
func Rule(d Def) lint.Rule {
	if len(d.Params) > 0 {
		return &parameterizedRule{rule{def: d}}
	}
	return &rule{def: d}
}

type rule struct {
	def Def
}

func (r *rule) ID() string { return r.def.ID }

func (r *rule) Description() core.RuleDescription {
	return core.RuleDescription{
		ID:                    r.def.ID,
		Name:                  r.def.Name,
		Description:           r.def.Description,
		NonTriggeringExamples: r.def.NonTriggeringExamples,
		TriggeringExamples:    r.def.TriggeringExamples,
	}
}

// Validate runs the check and drops findings on lines that opt out of the
// rule with a "// $-<id>" comment.
func (r *rule) Validate(file *source.File) []lint.Violation {
	var out []lint.Violation
	for _, f := range r.def.Check(file, r.def.Params) {
		if lint.LineSuppressed(file, f.offset, r.def.ID) {
			continue
		}
		out = append(out, lint.NewViolation(file, r.def.ID, f.offset, f.severity, f.reason))
	}
	return out
}

type parameterizedRule struct {
	rule
}

func (r *parameterizedRule) Parameters() []lint.Parameter {
	return append([]lint.Parameter(nil), r.def.Params...)
}

// thresholds builds an ascending warning/error parameter list.
func thresholds(warning, errorAt int) []lint.Parameter {
	return []lint.Parameter{
		{Value: warning, Severity: core.SeverityWarning},
		{Value: errorAt, Severity: core.SeverityError},
	}
}

// limit returns the lowest threshold, the value the rule documents.
func limit(params []lint.Parameter) int {
	if len(params) == 0 {
		return 0
	}
	lowest := params[0].Value
	for _, p := range params[1:] {
		lowest = min(lowest, p.Value)
	}
	return lowest
}
