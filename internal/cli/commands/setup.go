// Package commands implements the stylecheck subcommands.
package commands

import (
	"log/slog"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/stylecheck/internal/cli/config"
	"github.com/leapstack-labs/stylecheck/internal/cli/output"
	intconfig "github.com/leapstack-labs/stylecheck/internal/config"
	"github.com/leapstack-labs/stylecheck/pkg/lint"
	"github.com/leapstack-labs/stylecheck/pkg/lint/rules"
)

// CommandContext holds the shared state every command needs.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
	FS       afero.Fs
}

// NewCommandContext builds a CommandContext from the command's context.
// format, when set, overrides the configured output mode.
func NewCommandContext(cmd *cobra.Command, format string) (*CommandContext, error) {
	cfg := config.GetConfig(cmd.Context())
	logger := config.GetLogger(cmd.Context())

	mode := cfg.OutputMode()
	if format != "" {
		m, err := output.ParseMode(format)
		if err != nil {
			return nil, err
		}
		mode = m
	}

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode),
		FS:       afero.NewOsFs(),
	}, nil
}

// NewResolver creates the rule configuration resolver for the settings.
func (c *CommandContext) NewResolver() *intconfig.Resolver {
	return intconfig.NewResolver(rules.Catalog(),
		intconfig.WithFS(c.FS),
		intconfig.WithGlobalDir(c.Cfg.GlobalDir),
		intconfig.WithBoundary(c.Cfg.Boundary),
		intconfig.WithProjectFileName(c.Cfg.ProjectFile),
		intconfig.WithWriteBack(c.Cfg.WriteBack),
		intconfig.WithLogger(c.Logger),
	)
}

// NewEngine creates an engine over the built-in catalog.
func (c *CommandContext) NewEngine(resolver lint.Resolver) *lint.Engine {
	return lint.NewEngine(rules.Catalog(), resolver,
		lint.WithSourceFS(c.FS),
		lint.WithConcurrency(c.Cfg.Concurrency),
		lint.WithLogger(c.Logger),
	)
}
