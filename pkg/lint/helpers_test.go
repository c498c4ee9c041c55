package lint_test

import (
	"regexp"

	"github.com/leapstack-labs/stylecheck/pkg/core"
	"github.com/leapstack-labs/stylecheck/pkg/lint"
	"github.com/leapstack-labs/stylecheck/pkg/source"
	"github.com/leapstack-labs/stylecheck/pkg/token"
)

// patternRule reports every match of re over tokens of kinds.
type patternRule struct {
	id       string
	re       *regexp.Regexp
	kinds    []token.Kind
	severity core.Severity
}

func newPatternRule(id, pattern string, kinds ...token.Kind) *patternRule {
	return &patternRule{
		id:       id,
		re:       regexp.MustCompile(pattern),
		kinds:    kinds,
		severity: core.SeverityWarning,
	}
}

func (r *patternRule) ID() string { return r.id }

func (r *patternRule) Description() core.RuleDescription {
	return core.RuleDescription{ID: r.id, Name: r.id, Description: "matches " + r.re.String()}
}

func (r *patternRule) Validate(file *source.File) []lint.Violation {
	var out []lint.Violation
	for _, m := range file.MatchPattern(r.re, r.kinds...) {
		if lint.LineSuppressed(file, m.Offset, r.id) {
			continue
		}
		out = append(out, lint.NewViolation(file, r.id, m.Offset, r.severity, "matched"))
	}
	return out
}

type thresholdRule struct {
	*patternRule
	params []lint.Parameter
}

func (r *thresholdRule) Parameters() []lint.Parameter { return r.params }

func forceCastRule() *patternRule {
	r := newPatternRule("force_cast", `as!`, token.KindKeyword)
	r.severity = core.SeverityError
	return r
}

func testCatalog() *lint.Catalog {
	return lint.NewCatalog(
		forceCastRule(),
		newPatternRule("todo", `\b(?:TODO|FIXME)\b`, token.KindComment, token.KindDocComment),
		newPatternRule("semicolon", `;`),
	)
}
