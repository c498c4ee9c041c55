package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/stylecheck/pkg/core"
	"github.com/leapstack-labs/stylecheck/pkg/lint/rules"
)

// generateRuleDocs writes an index page plus one page per catalog rule.
func generateRuleDocs(outDir string) error {
	log.Printf("Generating rule docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	infos := rules.Catalog().Infos()
	if err := os.WriteFile(filepath.Join(outDir, "index.md"), ruleIndex(infos), 0600); err != nil {
		return err
	}
	log.Printf("  Generated index.md")

	for _, info := range infos {
		name := info.ID + ".md"
		if err := os.WriteFile(filepath.Join(outDir, name), rulePage(info), 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
		log.Printf("  Generated %s", name)
	}
	return nil
}

func ruleIndex(infos []core.RuleInfo) []byte {
	w := NewMarkdownWriter()

	w.Frontmatter("Rules", "Built-in style rules")
	w.GeneratedMarker()

	w.Header(1, "Rules")
	w.Paragraph(fmt.Sprintf("stylecheck ships **%d rules**. Every rule is enabled unless a configuration file turns it off.", len(infos)))

	w.Header(2, "Configuration")
	w.Paragraph("Rules are switched per project in `.stylecheck.json`. The nearest file above a source wins over the global `config.json`:")
	w.CodeBlock("json", `{
  "rules": {
    "force_cast": false,
    "todo": true
  }
}`)
	w.Paragraph("Inside a file, directives switch rules from the next line on:")
	w.CodeBlock("swift", `// stylecheck:disable_rule:force_cast
let n = value as! Int
// stylecheck:enable_rule:force_cast
let m = value as! Int // $-force_cast`)

	w.Header(2, "Catalog")
	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		rows = append(rows, []string{
			fmt.Sprintf("[%s](/rules/%s)", InlineCode(info.ID), info.ID),
			info.Name,
			thresholds(info.Parameters),
			cleanDescription(info.Description),
		})
	}
	w.Table([]string{"ID", "Name", "Thresholds", "Description"}, rows)

	return w.Bytes()
}

func rulePage(info core.RuleInfo) []byte {
	w := NewMarkdownWriter()

	w.Frontmatter(info.Name, info.Description)
	w.GeneratedMarker()

	w.Header(1, fmt.Sprintf("%s - %s", info.ID, info.Name))
	w.Paragraph(cleanDescription(info.Description))

	if len(info.Parameters) > 0 {
		w.Header(2, "Thresholds")
		rows := make([][]string, 0, len(info.Parameters))
		for _, p := range info.Parameters {
			rows = append(rows, []string{fmt.Sprintf("> %d", p.Value), InlineCode(p.Severity.String())})
		}
		w.Table([]string{"Value", "Severity"}, rows)
	}

	if len(info.NonTriggeringExamples) > 0 {
		w.Header(2, "Non Triggering Examples")
		for _, ex := range info.NonTriggeringExamples {
			w.CodeBlock("swift", ex)
		}
	}

	if len(info.TriggeringExamples) > 0 {
		w.Header(2, "Triggering Examples")
		for _, ex := range info.TriggeringExamples {
			w.CodeBlock("swift", ex)
		}
	}

	return w.Bytes()
}

func thresholds(params []core.RuleParameter) string {
	if len(params) == 0 {
		return "-"
	}
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = fmt.Sprintf("%s > %d", p.Severity, p.Value)
	}
	return strings.Join(parts, ", ")
}
