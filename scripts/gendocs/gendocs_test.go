package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/stylecheck/pkg/lint/rules"
)

func TestGenerateRuleDocs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generateRuleDocs(dir))

	index, err := os.ReadFile(filepath.Join(dir, "index.md"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "stylecheck ships **15 rules**")
	assert.Contains(t, string(index), "| [`line_length`](/rules/line_length) | Line Length Rule | warning > 100, error > 200 |")

	for _, id := range rules.Catalog().IDs() {
		page, err := os.ReadFile(filepath.Join(dir, id+".md"))
		require.NoError(t, err, id)
		assert.True(t, strings.HasPrefix(string(page), "---\n"), "%s has frontmatter", id)
		assert.Contains(t, string(page), "# "+id+" - ")
		assert.Contains(t, string(page), "## Triggering Examples")
	}
}

func TestGenerateCLIDocs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generateCLIDocs(dir))

	index, err := os.ReadFile(filepath.Join(dir, "index.md"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "`STYLECHECK_GLOBAL_DIR`")
	assert.NotContains(t, string(index), "STYLECHECK_CONFIG`")

	for _, name := range []string{"lint", "rules", "version"} {
		page, err := os.ReadFile(filepath.Join(dir, name+".md"))
		require.NoError(t, err, name)
		assert.Contains(t, string(page), "stylecheck "+name)
	}
}

func TestMarkdownWriter(t *testing.T) {
	w := NewMarkdownWriter()
	w.Header(2, "Title")
	w.Table([]string{"A", "B"}, [][]string{{"x|y", "z"}})

	assert.Equal(t, "## Title\n\n| A | B |\n| --- | --- |\n| x\\|y | z |\n\n", string(w.Bytes()))
}

func TestCleanDescription(t *testing.T) {
	assert.Equal(t, "Some text.", cleanDescription("  Some\n  text "))
	assert.Equal(t, "Done.", cleanDescription("Done."))
	assert.Empty(t, cleanDescription(""))
}

func TestCleanExample(t *testing.T) {
	assert.Equal(t, "a\n  b", cleanExample("    a\n      b\n"))
}
