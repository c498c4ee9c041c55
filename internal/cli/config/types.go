// Package config provides configuration management for the stylecheck CLI.
//
// These are the settings of the tool itself: output format, logging, where
// rule configuration files live, and how lint results fail a build. Which
// rules are enabled is decided by internal/config from the persisted rule
// maps, not here.
package config

import (
	"github.com/leapstack-labs/stylecheck/internal/cli/output"
	intconfig "github.com/leapstack-labs/stylecheck/internal/config"
	"github.com/leapstack-labs/stylecheck/pkg/core"
)

// Config holds all CLI configuration options.
type Config struct {
	OutputFormat string   `koanf:"output"`
	LogLevel     string   `koanf:"log_level"`
	LogFormat    string   `koanf:"log_format"`
	GlobalDir    string   `koanf:"global_dir"`
	ProjectFile  string   `koanf:"project_file"`
	Boundary     string   `koanf:"boundary"`
	WriteBack    bool     `koanf:"write_back"`
	Concurrency  int      `koanf:"concurrency"`
	FailOn       string   `koanf:"fail_on"`
	MinSeverity  string   `koanf:"min_severity"`
	Extensions   []string `koanf:"extensions"`
	Verbose      bool     `koanf:"verbose"`

	// ConfigFile is the settings file that was loaded, if any.
	ConfigFile string `koanf:"-"`
}

// Default configuration values.
const (
	DefaultOutput      = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultLogLevel    = "warn"
	DefaultLogFormat   = "text"
	DefaultFailOn      = "error"
	DefaultMinSeverity = "hint"
	EnvPrefix          = "STYLECHECK_"
)

// DefaultExtensions are the file extensions linted when walking directories.
var DefaultExtensions = []string{".swift"}

// Default returns the configuration used when nothing is loaded.
func Default() *Config {
	return &Config{
		OutputFormat: DefaultOutput,
		LogLevel:     DefaultLogLevel,
		LogFormat:    DefaultLogFormat,
		GlobalDir:    intconfig.DefaultGlobalDir(),
		ProjectFile:  intconfig.DefaultProjectFileName,
		Boundary:     intconfig.DefaultBoundary(),
		WriteBack:    true,
		FailOn:       DefaultFailOn,
		MinSeverity:  DefaultMinSeverity,
		Extensions:   append([]string(nil), DefaultExtensions...),
	}
}

// OutputMode returns the parsed output mode. Validate has already
// rejected unknown names.
func (c *Config) OutputMode() output.Mode {
	m, err := output.ParseMode(c.OutputFormat)
	if err != nil {
		return output.ModeAuto
	}
	return m
}

// FailOnSeverity returns the lowest severity that fails a lint run.
func (c *Config) FailOnSeverity() core.Severity {
	sev, ok := core.ParseSeverity(c.FailOn)
	if !ok {
		return core.SeverityError
	}
	return sev
}

// MinSeverityLevel returns the lowest severity that is reported.
func (c *Config) MinSeverityLevel() core.Severity {
	sev, ok := core.ParseSeverity(c.MinSeverity)
	if !ok {
		return core.SeverityHint
	}
	return sev
}
