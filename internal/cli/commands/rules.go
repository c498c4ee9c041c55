package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/stylecheck/internal/cli/output"
	"github.com/leapstack-labs/stylecheck/pkg/core"
	"github.com/leapstack-labs/stylecheck/pkg/lint"
	"github.com/leapstack-labs/stylecheck/pkg/lint/rules"
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Examples bool   // Show examples
	Format   string // Output format
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [rule-id]",
		Short: "List available lint rules",
		Long: `List the built-in lint rules in catalog order.

With a rule identifier, show that rule's description, thresholds and
examples.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON/YAML: Machine-readable format`,
		Example: `  # List all rules
  stylecheck rules

  # Show details for a specific rule
  stylecheck rules force_cast

  # Show examples for every rule
  stylecheck rules --examples

  # Output as JSON
  stylecheck rules --format json`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return rules.Catalog().IDs(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd, opts.Format)
			if err != nil {
				return err
			}
			if len(args) > 0 {
				return showRule(cmdCtx.Renderer, args[0])
			}
			return listRules(cmdCtx.Renderer, opts.Examples)
		},
	}

	cmd.Flags().BoolVarP(&opts.Examples, "examples", "e", false, "Show examples for every rule")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json, yaml")

	return cmd
}

// RulesJSONOutput is the JSON output structure for rules listing.
type RulesJSONOutput struct {
	Rules []core.RuleInfo `json:"rules" yaml:"rules"`
	Count int             `json:"count" yaml:"count"`
}

func listRules(r *output.Renderer, examples bool) error {
	infos := rules.Catalog().Infos()

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(RulesJSONOutput{Rules: infos, Count: len(infos)})
	case output.ModeYAML:
		return r.YAML(RulesJSONOutput{Rules: infos, Count: len(infos)})
	case output.ModeMarkdown:
		r.Println("# Lint Rules")
		r.Println("")
	default:
		r.Println("")
		r.Println(r.Styles().Header1.Render(fmt.Sprintf("Lint Rules (%d)", len(infos))))
		r.Println("")
	}

	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		rows = append(rows, []string{info.ID, info.Name, formatParameters(info.Parameters), info.Description})
	}
	r.Table([]string{"ID", "Name", "Thresholds", "Description"}, rows)

	if examples {
		for i := range infos {
			r.Println("")
			if err := showRuleInfo(r, &infos[i]); err != nil {
				return err
			}
		}
	}

	if r.EffectiveMode() == output.ModeText {
		r.Println("")
		r.Println(r.Styles().Muted.Render("Use 'stylecheck rules <rule-id>' for detailed documentation"))
		r.Println("")
	}
	return nil
}

func showRule(r *output.Renderer, ruleID string) error {
	rule, ok := rules.Catalog().Lookup(ruleID)
	if !ok {
		return fmt.Errorf("rule %q not found", ruleID)
	}
	info := lint.GetRuleInfo(rule)

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(info)
	case output.ModeYAML:
		return r.YAML(info)
	default:
		return showRuleInfo(r, &info)
	}
}

func showRuleInfo(r *output.Renderer, info *core.RuleInfo) error {
	if r.EffectiveMode() == output.ModeMarkdown {
		showRuleMarkdown(r, info)
		return nil
	}
	showRuleText(r, info)
	return nil
}

// showRuleText displays detailed rule info in text format.
func showRuleText(r *output.Renderer, info *core.RuleInfo) {
	styles := r.Styles()

	r.Println(styles.Header1.Render(fmt.Sprintf("%s - %s", info.ID, info.Name)))
	r.Println("")
	r.Println("  " + info.Description)
	r.Println("")

	if len(info.Parameters) > 0 {
		r.Println(styles.Bold.Render("Thresholds"))
		for _, p := range info.Parameters {
			r.Printf("  > %d: %s\n", p.Value, styles.Severity(p.Severity).Render(p.Severity.String()))
		}
		r.Println("")
	}

	if len(info.TriggeringExamples) > 0 {
		r.Println(styles.Bold.Render("Triggering Examples"))
		for _, ex := range info.TriggeringExamples {
			for _, line := range exampleLines(ex) {
				r.Println(styles.Error.Render("  " + line))
			}
		}
		r.Println("")
	}

	if len(info.NonTriggeringExamples) > 0 {
		r.Println(styles.Bold.Render("Non-Triggering Examples"))
		for _, ex := range info.NonTriggeringExamples {
			for _, line := range exampleLines(ex) {
				r.Println(styles.Success.Render("  " + line))
			}
		}
		r.Println("")
	}
}

// showRuleMarkdown displays detailed rule info in markdown format.
func showRuleMarkdown(r *output.Renderer, info *core.RuleInfo) {
	r.Printf("## %s - %s\n\n", info.ID, info.Name)
	r.Println(info.Description)
	r.Println("")

	if len(info.Parameters) > 0 {
		r.Printf("**Thresholds:** %s\n\n", formatParameters(info.Parameters))
	}

	if len(info.TriggeringExamples) > 0 {
		r.Println("### Triggering Examples")
		r.Println("")
		r.Println("```swift")
		for _, ex := range info.TriggeringExamples {
			r.Println(strings.TrimRight(ex, "\n"))
		}
		r.Println("```")
		r.Println("")
	}

	if len(info.NonTriggeringExamples) > 0 {
		r.Println("### Non-Triggering Examples")
		r.Println("")
		r.Println("```swift")
		for _, ex := range info.NonTriggeringExamples {
			r.Println(strings.TrimRight(ex, "\n"))
		}
		r.Println("```")
		r.Println("")
	}
}

// Helper functions

func formatParameters(params []core.RuleParameter) string {
	if len(params) == 0 {
		return "-"
	}
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.Severity.String() + " > " + strconv.Itoa(p.Value)
	}
	return strings.Join(parts, ", ")
}

func exampleLines(ex string) []string {
	return strings.Split(strings.TrimRight(ex, "\n"), "\n")
}
