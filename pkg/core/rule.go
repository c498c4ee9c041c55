package core

// =============================================================================
// RuleDescription
// =============================================================================

// RuleDescription documents a rule for tooling and tests.
// This is a DTO (Data Transfer Object) - it carries data without behavior.
type RuleDescription struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`

	// NonTriggeringExamples must lint clean with only this rule enabled.
	NonTriggeringExamples []string `json:"non_triggering_examples,omitempty" yaml:"non_triggering_examples,omitempty"`
	// TriggeringExamples must produce at least one violation of this rule.
	TriggeringExamples []string `json:"triggering_examples,omitempty" yaml:"triggering_examples,omitempty"`
}

// RuleParameter is one threshold of a parameterized rule as shown by tooling.
type RuleParameter struct {
	Value    int      `json:"value" yaml:"value"`
	Severity Severity `json:"severity" yaml:"severity"`
}

// RuleInfo provides metadata about a catalog rule for documentation/tooling.
type RuleInfo struct {
	RuleDescription `yaml:",inline"`

	Parameters []RuleParameter `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}
