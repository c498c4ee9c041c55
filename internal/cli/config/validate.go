package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leapstack-labs/stylecheck/internal/cli/output"
	"github.com/leapstack-labs/stylecheck/pkg/core"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []error

	if _, err := output.ParseMode(c.OutputFormat); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log_format must be text or json, got %q", c.LogFormat))
	}
	if _, ok := core.ParseSeverity(c.FailOn); !ok {
		errs = append(errs, fmt.Errorf("fail_on: unknown severity %q", c.FailOn))
	}
	if _, ok := core.ParseSeverity(c.MinSeverity); !ok {
		errs = append(errs, fmt.Errorf("min_severity: unknown severity %q", c.MinSeverity))
	}
	if c.ProjectFile == "" || strings.ContainsAny(c.ProjectFile, `/\`) {
		errs = append(errs, fmt.Errorf("project_file must be a plain file name, got %q", c.ProjectFile))
	}
	if c.Concurrency < 0 {
		errs = append(errs, fmt.Errorf("concurrency must not be negative, got %d", c.Concurrency))
	}
	if len(c.Extensions) == 0 {
		errs = append(errs, errors.New("extensions must list at least one file extension"))
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			errs = append(errs, fmt.Errorf("extension %q must start with a dot", ext))
		}
	}

	return errors.Join(errs...)
}
