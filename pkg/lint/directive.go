package lint

import (
	"regexp"
	"strings"

	"github.com/leapstack-labs/stylecheck/pkg/source"
	"github.com/leapstack-labs/stylecheck/pkg/token"
)

// DirectiveMarker is the reserved word that starts an inline directive.
const DirectiveMarker = "stylecheck"

// Directive commands.
const (
	CommandEnableRule  = "enable_rule"
	CommandDisableRule = "disable_rule"
)

// Action is what a Command does to a Configuration.
type Action int

// Actions.
const (
	// ActionNone carries no change. Directives without a valid
	// identifier parse to it.
	ActionNone Action = iota
	ActionEnable
	ActionDisable
)

// String returns the string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionEnable:
		return CommandEnableRule
	case ActionDisable:
		return CommandDisableRule
	default:
		return "none"
	}
}

// Command is one parsed directive.
type Command struct {
	Action Action
	RuleID string
}

// Apply returns a copy of cfg with the command applied.
func (c Command) Apply(cfg Configuration) Configuration {
	out := cfg.Clone()
	switch c.Action {
	case ActionEnable:
		out.Enable(c.RuleID)
	case ActionDisable:
		out.Disable(c.RuleID)
	}
	return out
}

// ParseCommand parses "<command>:<identifier>" where command is
// enable_rule or disable_rule. The identifier is the longest run of
// lowercase letters and underscores after the colon; text after it is
// ignored. Anything else yields ActionNone.
func ParseCommand(text string) Command {
	var action Action
	switch {
	case strings.HasPrefix(text, CommandEnableRule+":"):
		action = ActionEnable
		text = text[len(CommandEnableRule)+1:]
	case strings.HasPrefix(text, CommandDisableRule+":"):
		action = ActionDisable
		text = text[len(CommandDisableRule)+1:]
	default:
		return Command{}
	}

	id, n := ParseRuleID(text)
	if n == 0 {
		return Command{}
	}
	return Command{Action: action, RuleID: id}
}

// Directive is a command found at a byte offset of a file.
type Directive struct {
	Offset  int
	Command Command
}

var directivePattern = regexp.MustCompile(
	regexp.QuoteMeta(DirectiveMarker) + `:(?:` + CommandEnableRule + `|` + CommandDisableRule + `):`,
)

// ScanDirectives returns the directives found in the comments of file,
// in ascending offset order. Directives whose identifier cannot be parsed
// are returned with ActionNone.
func ScanDirectives(file *source.File) []Directive {
	matches := file.MatchPattern(directivePattern, token.KindComment, token.KindDocComment)
	directives := make([]Directive, 0, len(matches))
	for _, m := range matches {
		cmdStart := m.Offset + len(DirectiveMarker) + 1
		directives = append(directives, Directive{
			Offset:  m.Offset,
			Command: ParseCommand(file.Contents[cmdStart:]),
		})
	}
	return directives
}
