// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/leapstack-labs/stylecheck/internal/cli/output"
)

// Project is a temporary Swift project with isolated rule configuration
// directories.
type Project struct {
	Root      string // project directory, also the search boundary
	GlobalDir string // global rule configuration directory
}

// SetupTestProject creates a temporary project with Swift sources:
//
//	Sources/App/Clean.swift   no violations
//	Sources/App/Cast.swift    a force cast on line 2
//	Sources/App/Notes.swift   a TODO comment on line 1
//	.build/Generated.swift    skipped when walking
func SetupTestProject(t *testing.T) *Project {
	t.Helper()

	tmpDir := t.TempDir()
	p := &Project{
		Root:      filepath.Join(tmpDir, "project"),
		GlobalDir: filepath.Join(tmpDir, "config", "stylecheck"),
	}

	WriteFile(t, filepath.Join(p.Root, "Sources", "App", "Clean.swift"),
		"struct Clean {\n    let value: Int\n}\n")
	WriteFile(t, filepath.Join(p.Root, "Sources", "App", "Cast.swift"),
		"func convert(value: Any) -> Int {\n    return value as! Int\n}\n")
	WriteFile(t, filepath.Join(p.Root, "Sources", "App", "Notes.swift"),
		"// TODO: document this\nlet answer = 42\n")
	WriteFile(t, filepath.Join(p.Root, ".build", "Generated.swift"),
		"let generated = value as! Int\n")

	return p
}

// Path joins elem onto the project root.
func (p *Project) Path(elem ...string) string {
	return filepath.Join(append([]string{p.Root}, elem...)...)
}

// WriteFile writes contents to path, creating parent directories.
func WriteFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// TestRenderer wraps a Renderer for testing with captured output buffers.
type TestRenderer struct {
	*output.Renderer
	Out    *SyncBuffer
	ErrOut *SyncBuffer
}

// NewTestRenderer creates a new test renderer with the specified mode and TTY state.
// Output is captured in buffers for inspection.
func NewTestRenderer(mode output.Mode, isTTY bool) *TestRenderer {
	out := &SyncBuffer{}
	errOut := &SyncBuffer{}
	return &TestRenderer{
		Renderer: output.NewRendererWithTTY(out, errOut, isTTY, mode),
		Out:      out,
		ErrOut:   errOut,
	}
}

// Output returns the stdout output as a string.
func (tr *TestRenderer) Output() string {
	return tr.Out.String()
}

// ErrorOutput returns the stderr output as a string.
func (tr *TestRenderer) ErrorOutput() string {
	return tr.ErrOut.String()
}

// SyncBuffer is a bytes.Buffer safe for one writer goroutine and a
// concurrent reader.
type SyncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *SyncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *SyncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// ansiPattern matches ANSI escape codes.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// AssertNoANSI checks that a string contains no ANSI escape codes.
func AssertNoANSI(t *testing.T, s string) {
	t.Helper()
	if ansiPattern.MatchString(s) {
		t.Errorf("string contains ANSI escape codes: %q", s)
	}
}

// AssertValidMarkdown performs basic markdown validation.
// It checks for unclosed code fences and empty headers.
func AssertValidMarkdown(t *testing.T, md string) {
	t.Helper()

	if fenceCount := strings.Count(md, "```"); fenceCount%2 != 0 {
		t.Errorf("unbalanced code fences in markdown: found %d occurrences", fenceCount)
	}

	for i, line := range strings.Split(md, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") && strings.TrimLeft(trimmed, "# ") == "" {
			t.Errorf("empty header at line %d: %q", i+1, line)
		}
	}
}
