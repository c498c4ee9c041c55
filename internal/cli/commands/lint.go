package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/stylecheck/internal/cli/output"
	"github.com/leapstack-labs/stylecheck/pkg/core"
	"github.com/leapstack-labs/stylecheck/pkg/lint"
)

// ErrViolations is returned when violations at or above the fail-on
// severity are found.
var ErrViolations = errors.New("lint violations found")

// LintOptions holds options for the lint command.
type LintOptions struct {
	Format string // Output format override
	Watch  bool   // Re-lint changed files until interrupted
}

// NewLintCommand creates the lint command.
func NewLintCommand() *cobra.Command {
	opts := &LintOptions{}
	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Check source files against the style rules",
		Long: `Lint source files and report style violations.

Directories are walked recursively for files with a configured extension
(default .swift); hidden directories are skipped. Files named explicitly
are always linted.

Which rules run is decided per file from the global rule map
(<user config dir>/stylecheck/config.json) and the nearest project rule
map (.stylecheck.json). Both files are rewritten with the merged result
unless --no-write-back is given. Inside a file, comments of the form

  // stylecheck:disable_rule:<rule_id>
  // stylecheck:enable_rule:<rule_id>

switch a rule off and on from that point, and a trailing
"// $-<rule_id>" silences a rule on a single line.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON/YAML: Machine-readable format`,
		Example: `  # Lint the current directory
  stylecheck lint

  # Lint specific paths
  stylecheck lint Sources/App Tests/AppTests/LoginTests.swift

  # Output as JSON
  stylecheck lint --format json

  # Only report warnings and errors, fail on warnings
  stylecheck lint --min-severity warning --fail-on warning

  # Keep linting as files change
  stylecheck lint --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json, yaml")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-lint files when they change")
	cmd.Flags().String("min-severity", "", "Minimum severity to report: hint, info, warning, error")
	cmd.Flags().String("fail-on", "", "Minimum severity that fails the run: hint, info, warning, error")
	cmd.Flags().Bool("no-write-back", false, "Do not rewrite rule configuration files")
	cmd.Flags().StringSlice("extensions", nil, "File extensions to lint when walking directories")
	cmd.Flags().Int("concurrency", 0, "Files linted in parallel (default: number of CPUs)")

	_ = cmd.RegisterFlagCompletionFunc("format", completeModes)
	_ = cmd.RegisterFlagCompletionFunc("min-severity", completeSeverities)
	_ = cmd.RegisterFlagCompletionFunc("fail-on", completeSeverities)

	return cmd
}

func runLint(cmd *cobra.Command, args []string, opts *LintOptions) error {
	cmdCtx, err := NewCommandContext(cmd, opts.Format)
	if err != nil {
		return err
	}
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	if len(args) == 0 {
		args = []string{"."}
	}
	files, err := collectFiles(cmdCtx.FS, args, cfg.Extensions)
	if err != nil {
		return err
	}

	resolver := cmdCtx.NewResolver()
	engine := cmdCtx.NewEngine(resolver)
	cmdCtx.Logger.Debug("linting", "files", len(files), "paths", args)

	report, err := lintBatch(cmd.Context(), engine, files, cfg.MinSeverityLevel(), cfg.FailOnSeverity())
	if err != nil {
		return err
	}
	for _, cfgErr := range resolver.Errors() {
		report.ConfigErrors = append(report.ConfigErrors, cfgErr.Error())
	}
	if err := renderReport(r, report); err != nil {
		return err
	}

	if opts.Watch {
		return watchAndLint(cmd.Context(), cmdCtx, engine, args)
	}
	return report.Err()
}

// LintReport is the result of one lint run.
type LintReport struct {
	Files        int              `json:"files" yaml:"files"`
	Violations   []lint.Violation `json:"violations" yaml:"violations"`
	Errors       []FileError      `json:"errors,omitempty" yaml:"errors,omitempty"`
	ConfigErrors []string         `json:"config_errors,omitempty" yaml:"config_errors,omitempty"` // ignored or unsaved rule files; never fail the run
	Summary      LintSummary      `json:"summary" yaml:"summary"`
}

// FileError reports a file that could not be linted.
type FileError struct {
	Path  string `json:"path" yaml:"path"`
	Error string `json:"error" yaml:"error"`
}

// LintSummary counts violations by severity. Failing counts every
// violation at or above the fail-on severity, reported or not.
type LintSummary struct {
	Errors   int `json:"errors" yaml:"errors"`
	Warnings int `json:"warnings" yaml:"warnings"`
	Infos    int `json:"infos" yaml:"infos"`
	Hints    int `json:"hints" yaml:"hints"`
	Failing  int `json:"failing" yaml:"failing"`
}

// Err returns the error the run should exit with, if any.
func (r *LintReport) Err() error {
	if len(r.Errors) > 0 {
		return fmt.Errorf("%d file(s) could not be read", len(r.Errors))
	}
	if r.Summary.Failing > 0 {
		return ErrViolations
	}
	return nil
}

func lintBatch(ctx context.Context, engine *lint.Engine, files []string, minSeverity, failOn core.Severity) (*LintReport, error) {
	results, err := engine.LintFiles(ctx, files)
	if err != nil {
		return nil, err
	}

	report := &LintReport{Files: len(files), Violations: []lint.Violation{}}
	for _, res := range results {
		if res.Err != nil {
			report.Errors = append(report.Errors, FileError{Path: res.Path, Error: res.Err.Error()})
			continue
		}
		for _, v := range res.Violations {
			if v.Severity.AtLeast(failOn) {
				report.Summary.Failing++
			}
		}
		report.Violations = append(report.Violations, lint.FilterSeverity(res.Violations, minSeverity)...)
	}

	for _, v := range report.Violations {
		switch v.Severity {
		case core.SeverityError:
			report.Summary.Errors++
		case core.SeverityWarning:
			report.Summary.Warnings++
		case core.SeverityInfo:
			report.Summary.Infos++
		default:
			report.Summary.Hints++
		}
	}
	return report, nil
}

func renderReport(r *output.Renderer, report *LintReport) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(report)
	case output.ModeYAML:
		return r.YAML(report)
	case output.ModeMarkdown:
		renderReportMarkdown(r, report)
	default:
		renderReportText(r, report)
	}
	return nil
}

// renderReportText prints one compiler-style line per violation.
func renderReportText(r *output.Renderer, report *LintReport) {
	styles := r.Styles()
	for _, v := range report.Violations {
		r.Printf("%s: %s: %s %s\n",
			styles.Location.Render(v.Location.String()),
			styles.Severity(v.Severity).Render(v.Severity.String()),
			v.Reason,
			styles.Muted.Render("("+v.RuleID+")"),
		)
	}
	for _, fe := range report.Errors {
		r.Error(fmt.Sprintf("%s: %s", fe.Path, fe.Error))
	}
	for _, msg := range report.ConfigErrors {
		r.Warning(msg)
	}

	if len(report.Violations) == 0 {
		r.Success(fmt.Sprintf("No violations in %d file(s)", report.Files))
		return
	}
	r.Println("")
	r.Println(styles.Bold.Render(summaryLine(report)))
}

// renderReportMarkdown outputs the violations in markdown format.
func renderReportMarkdown(r *output.Renderer, report *LintReport) {
	r.Println("# Lint Results")
	r.Println("")

	if len(report.Violations) == 0 && len(report.Errors) == 0 && len(report.ConfigErrors) == 0 {
		r.Success(fmt.Sprintf("No violations in %d file(s)", report.Files))
		return
	}

	if len(report.Violations) > 0 {
		for _, v := range report.Violations {
			r.Printf("- `%s` **%s** %s (`%s`)\n", v.Location, v.Severity, v.Reason, v.RuleID)
		}
		r.Println("")
		r.Println("## Summary")
		r.Println("")
		r.Table([]string{"Rule", "Violations"}, countByRule(report.Violations))
		r.Println("")
		r.Println(summaryLine(report))
	}

	if len(report.Errors) > 0 {
		r.Println("")
		r.Println("## Unreadable Files")
		r.Println("")
		for _, fe := range report.Errors {
			r.Printf("- `%s`: %s\n", fe.Path, fe.Error)
		}
	}

	if len(report.ConfigErrors) > 0 {
		r.Println("")
		r.Println("## Configuration Warnings")
		r.Println("")
		for _, msg := range report.ConfigErrors {
			r.Printf("- %s\n", msg)
		}
	}
}

func summaryLine(report *LintReport) string {
	s := report.Summary
	return fmt.Sprintf("Found %d violation(s) (%d errors, %d warnings, %d infos, %d hints) in %d file(s)",
		len(report.Violations), s.Errors, s.Warnings, s.Infos, s.Hints, report.Files)
}

// countByRule returns one row per rule in order of first appearance.
func countByRule(vs []lint.Violation) [][]string {
	counts := map[string]int{}
	var order []string
	for _, v := range vs {
		if counts[v.RuleID] == 0 {
			order = append(order, v.RuleID)
		}
		counts[v.RuleID]++
	}
	rows := make([][]string, len(order))
	for i, id := range order {
		rows[i] = []string{id, strconv.Itoa(counts[id])}
	}
	return rows
}

func completeModes(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	modes := make([]string, len(output.Modes))
	for i, m := range output.Modes {
		modes[i] = string(m)
	}
	return modes, cobra.ShellCompDirectiveNoFileComp
}

func completeSeverities(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{"hint", "info", "warning", "error"}, cobra.ShellCompDirectiveNoFileComp
}
