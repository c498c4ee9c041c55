package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/stylecheck/internal/cli/config"
	"github.com/leapstack-labs/stylecheck/internal/cli/testutil"
)

// newTestConfig returns settings that keep rule configuration inside p.
func newTestConfig(p *testutil.Project) *config.Config {
	cfg := config.Default()
	cfg.GlobalDir = p.GlobalDir
	cfg.Boundary = p.Root
	return cfg
}

// executeCommand runs cmd with cfg in its context and returns what it wrote
// to stdout and stderr.
func executeCommand(t *testing.T, cmd *cobra.Command, cfg *config.Config, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetContext(config.WithConfig(context.Background(), cfg))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}
