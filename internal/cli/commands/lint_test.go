package commands

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/stylecheck/internal/cli/config"
	"github.com/leapstack-labs/stylecheck/internal/cli/output"
	"github.com/leapstack-labs/stylecheck/internal/cli/testutil"
	"github.com/leapstack-labs/stylecheck/pkg/core"
	"github.com/leapstack-labs/stylecheck/pkg/lint"
)

func TestNewLintCommand(t *testing.T) {
	cmd := NewLintCommand()

	assert.Equal(t, "lint [paths...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Example)

	for _, flag := range []string{"format", "watch", "min-severity", "fail-on", "no-write-back", "extensions", "concurrency"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestLintCommand_Markdown(t *testing.T) {
	p := testutil.SetupTestProject(t)

	out, _, err := executeCommand(t, NewLintCommand(), newTestConfig(p), p.Root)
	require.ErrorIs(t, err, ErrViolations)

	testutil.AssertNoANSI(t, out)
	testutil.AssertValidMarkdown(t, out)
	assert.Contains(t, out, "# Lint Results")
	assert.Contains(t, out, "Cast.swift:2:18` **error** Force casts should be avoided (`force_cast`)")
	assert.Contains(t, out, "Notes.swift:1:4` **warning** TODOs and FIXMEs should be avoided (`todo`)")
	assert.Contains(t, out, "Found 2 violation(s) (1 errors, 1 warnings, 0 infos, 0 hints) in 3 file(s)")
	assert.NotContains(t, out, "Generated.swift", "hidden directories are skipped")
}

func decodeReport(t *testing.T, out string) LintReport {
	t.Helper()
	var report LintReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	return report
}

func TestLintCommand_JSON(t *testing.T) {
	p := testutil.SetupTestProject(t)

	out, _, err := executeCommand(t, NewLintCommand(), newTestConfig(p), "--format", "json", p.Path("Sources"))
	require.ErrorIs(t, err, ErrViolations)

	report := decodeReport(t, out)
	assert.Equal(t, 3, report.Files)
	require.Len(t, report.Violations, 2)
	assert.Equal(t, "force_cast", report.Violations[0].RuleID)
	assert.Equal(t, core.SeverityError, report.Violations[0].Severity)
	assert.Equal(t, lint.Location{
		Path:   p.Path("Sources", "App", "Cast.swift"),
		Offset: 51,
		Line:   2,
		Column: 18,
	}, report.Violations[0].Location)
	assert.Equal(t, "todo", report.Violations[1].RuleID)
	assert.Equal(t, LintSummary{Errors: 1, Warnings: 1, Failing: 1}, report.Summary)
}

func TestLintCommand_YAML(t *testing.T) {
	p := testutil.SetupTestProject(t)

	out, _, err := executeCommand(t, NewLintCommand(), newTestConfig(p), "-f", "yaml", p.Path("Sources", "App", "Notes.swift"))
	require.NoError(t, err, "warnings do not fail the run by default")

	var report LintReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	require.Len(t, report.Violations, 1)
	assert.Equal(t, "todo", report.Violations[0].RuleID)
	assert.Equal(t, core.SeverityWarning, report.Violations[0].Severity)
}

func TestLintCommand_SeverityThresholds(t *testing.T) {
	p := testutil.SetupTestProject(t)

	t.Run("min severity hides warnings", func(t *testing.T) {
		cfg := newTestConfig(p)
		cfg.MinSeverity = "error"
		out, _, err := executeCommand(t, NewLintCommand(), cfg, "-f", "json", p.Root)
		require.ErrorIs(t, err, ErrViolations)
		report := decodeReport(t, out)
		require.Len(t, report.Violations, 1)
		assert.Equal(t, "force_cast", report.Violations[0].RuleID)
	})

	t.Run("fail on warning", func(t *testing.T) {
		cfg := newTestConfig(p)
		cfg.FailOn = "warning"
		out, _, err := executeCommand(t, NewLintCommand(), cfg, "-f", "json", p.Path("Sources", "App", "Notes.swift"))
		require.ErrorIs(t, err, ErrViolations)
		assert.Equal(t, 1, decodeReport(t, out).Summary.Failing)
	})
}

func TestLintCommand_ProjectConfiguration(t *testing.T) {
	p := testutil.SetupTestProject(t)
	projectFile := p.Path(".stylecheck.json")
	testutil.WriteFile(t, projectFile, `{"rules": {"force_cast": false}}`)

	out, _, err := executeCommand(t, NewLintCommand(), newTestConfig(p), "-f", "json", p.Root)
	require.NoError(t, err)

	report := decodeReport(t, out)
	require.Len(t, report.Violations, 1)
	assert.Equal(t, "todo", report.Violations[0].RuleID)

	// the project file now lists every rule
	data, err := os.ReadFile(projectFile)
	require.NoError(t, err)
	var persisted struct {
		Rules map[string]bool `json:"rules"`
	}
	require.NoError(t, json.Unmarshal(data, &persisted))
	assert.Len(t, persisted.Rules, 15)
	assert.False(t, persisted.Rules["force_cast"])

	// first run only creates the global directory
	info, err := os.Stat(p.GlobalDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	_, err = os.Stat(filepath.Join(p.GlobalDir, "config.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestLintCommand_NoWriteBack(t *testing.T) {
	p := testutil.SetupTestProject(t)
	projectFile := p.Path(".stylecheck.json")
	const contents = `{"rules": {"todo": false}}`
	testutil.WriteFile(t, projectFile, contents)

	cfg := newTestConfig(p)
	cfg.WriteBack = false
	out, _, err := executeCommand(t, NewLintCommand(), cfg, "-f", "json", p.Path("Sources", "App", "Notes.swift"))
	require.NoError(t, err)
	assert.Empty(t, decodeReport(t, out).Violations)

	data, err := os.ReadFile(projectFile)
	require.NoError(t, err)
	assert.Equal(t, contents, string(data))
}

func TestLintCommand_MalformedProjectConfiguration(t *testing.T) {
	p := testutil.SetupTestProject(t)
	projectFile := p.Path(".stylecheck.json")
	const broken = `{"rules": {"force_cast": false`
	testutil.WriteFile(t, projectFile, broken)

	t.Run("json", func(t *testing.T) {
		out, _, err := executeCommand(t, NewLintCommand(), newTestConfig(p), "-f", "json", p.Root)
		require.ErrorIs(t, err, ErrViolations, "the broken file does not disable force_cast")

		report := decodeReport(t, out)
		require.Len(t, report.ConfigErrors, 1)
		assert.Contains(t, report.ConfigErrors[0], "failed to read rule configuration "+projectFile)
		assert.Len(t, report.Violations, 2)
	})

	t.Run("text", func(t *testing.T) {
		_, errOut, err := executeCommand(t, NewLintCommand(), newTestConfig(p), "-f", "text", p.Path("Sources", "App", "Clean.swift"))
		require.NoError(t, err, "configuration problems never fail the run")
		assert.Contains(t, errOut, "warning: failed to read rule configuration "+projectFile)
	})

	data, err := os.ReadFile(projectFile)
	require.NoError(t, err)
	assert.Equal(t, broken, string(data))
}

func TestRenderReportMarkdown_ConfigErrors(t *testing.T) {
	report := &LintReport{
		Files:        1,
		Violations:   []lint.Violation{},
		ConfigErrors: []string{"failed to read rule configuration /p/.stylecheck.json: unexpected end of JSON input"},
	}

	tr := testutil.NewTestRenderer(output.ModeMarkdown, false)
	require.NoError(t, renderReport(tr.Renderer, report))

	assert.Contains(t, tr.Output(), "## Configuration Warnings")
	assert.Contains(t, tr.Output(), "- failed to read rule configuration /p/.stylecheck.json")
	assert.NoError(t, report.Err())
}

func TestLintCommand_Directives(t *testing.T) {
	p := testutil.SetupTestProject(t)
	file := p.Path("Sources", "App", "Casts.swift")
	testutil.WriteFile(t, file, strings.Join([]string{
		"// stylecheck:disable_rule:force_cast",
		"let first = value as! Int",
		"// stylecheck:enable_rule:force_cast",
		"let second = value as! Int",
		"let third = value as! Int // $-force_cast",
		"",
	}, "\n"))

	out, _, err := executeCommand(t, NewLintCommand(), newTestConfig(p), "-f", "json", file)
	require.ErrorIs(t, err, ErrViolations)

	report := decodeReport(t, out)
	require.Len(t, report.Violations, 1)
	assert.Equal(t, 4, report.Violations[0].Location.Line)
}

func TestLintCommand_Clean(t *testing.T) {
	p := testutil.SetupTestProject(t)

	out, _, err := executeCommand(t, NewLintCommand(), newTestConfig(p), "-f", "text", p.Path("Sources", "App", "Clean.swift"))
	require.NoError(t, err)
	assert.Contains(t, out, "No violations in 1 file(s)")
}

func TestLintCommand_Errors(t *testing.T) {
	p := testutil.SetupTestProject(t)

	_, _, err := executeCommand(t, NewLintCommand(), newTestConfig(p), p.Path("Missing.swift"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to stat")

	_, _, err = executeCommand(t, NewLintCommand(), newTestConfig(p), "--format", "xml", p.Root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestRenderReportText(t *testing.T) {
	file := lint.Violation{
		RuleID:   "force_cast",
		Location: lint.Location{Path: "a.swift", Offset: 10, Line: 2, Column: 3},
		Severity: core.SeverityError,
		Reason:   "Force casts should be avoided",
	}
	report := &LintReport{
		Files:      2,
		Violations: []lint.Violation{file},
		Errors:     []FileError{{Path: "b.swift", Error: "permission denied"}},
		Summary:    LintSummary{Errors: 1, Failing: 1},
	}

	tr := testutil.NewTestRenderer(output.ModeText, false)
	require.NoError(t, renderReport(tr.Renderer, report))

	assert.Contains(t, tr.Output(), file.String()+"\n")
	assert.Contains(t, tr.Output(), "Found 1 violation(s)")
	assert.Contains(t, tr.ErrorOutput(), "error: b.swift: permission denied")
	assert.EqualError(t, report.Err(), "1 file(s) could not be read")
}

func TestCountByRule(t *testing.T) {
	vs := []lint.Violation{{RuleID: "todo"}, {RuleID: "colon"}, {RuleID: "todo"}}
	assert.Equal(t, [][]string{{"todo", "2"}, {"colon", "1"}}, countByRule(vs))
}

func TestCollectFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	for _, path := range []string{
		"/src/a.swift",
		"/src/b.txt",
		"/src/nested/c.swift",
		"/src/.hidden/d.swift",
		"/other/script.sh",
	} {
		require.NoError(t, afero.WriteFile(fs, path, []byte("x"), 0o644))
	}

	files, err := collectFiles(fs, []string{"/src", "/other/script.sh", "/src/a.swift"}, []string{".swift"})
	require.NoError(t, err)
	assert.Equal(t, []string{"/src/a.swift", "/src/nested/c.swift", "/other/script.sh"}, files)

	_, err = collectFiles(fs, []string{"/missing"}, []string{".swift"})
	require.Error(t, err)
}

func TestLintCommand_Watch(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping watch test in short mode")
	}
	p := testutil.SetupTestProject(t)
	clean := p.Path("Sources", "App", "Clean.swift")

	out := &testutil.SyncBuffer{}
	cmd := NewLintCommand()
	cmd.SetOut(out)
	cmd.SetErr(out)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cmd.SetContext(config.WithConfig(ctx, newTestConfig(p)))
	cmd.SetArgs([]string{"--watch", "-f", "text", p.Path("Sources")})

	done := make(chan error, 1)
	go func() { done <- cmd.Execute() }()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "Watching for changes")
	}, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(clean, []byte("let x = y as! Int\n"), 0o644))
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "Clean.swift:1:11: error: Force casts should be avoided")
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}
