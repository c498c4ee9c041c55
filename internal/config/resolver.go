// Package config discovers and merges the on-disk rule configuration.
//
// A file's base configuration is built from three layers, each overriding
// only the rule identifiers it mentions:
//
//  1. defaults: every catalog rule enabled
//  2. global: <user config dir>/stylecheck/config.json
//  3. project: the nearest .stylecheck.json found walking up from the file
//
// Every layer that is read is written back with the merged result, so the
// files always list every known rule. Nothing here is fatal: unreadable
// files contribute nothing and failed writes are logged.
package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/spf13/afero"
	"golang.org/x/sync/singleflight"

	"github.com/leapstack-labs/stylecheck/pkg/lint"
)

// Default names and sizes.
const (
	AppDirName             = "stylecheck"
	GlobalFileName         = "config.json"
	DefaultProjectFileName = ".stylecheck.json"
	DefaultCacheSize       = 256
)

// Resolver computes base configurations. It is safe for concurrent use.
// The global layer is resolved once per Resolver; project layers are
// cached per configuration file.
type Resolver struct {
	catalog     *lint.Catalog
	fs          afero.Fs
	globalDir   string
	boundary    string
	projectFile string
	writeBack   bool
	cacheSize   int
	logger      *slog.Logger

	globalOnce sync.Once
	global     lint.Configuration

	projects *lru.Cache[string, lint.Configuration] // config path -> merged result
	group    singleflight.Group

	mu   sync.Mutex
	errs []error
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithFS sets the filesystem configuration files are read from and
// written to.
func WithFS(fs afero.Fs) Option {
	return func(r *Resolver) { r.fs = fs }
}

// WithGlobalDir sets the directory holding the global config.json.
// An empty dir disables the global layer.
func WithGlobalDir(dir string) Option {
	return func(r *Resolver) { r.globalDir = dir }
}

// WithBoundary sets the last directory the project search visits.
func WithBoundary(dir string) Option {
	return func(r *Resolver) { r.boundary = dir }
}

// WithProjectFileName sets the project configuration file name.
func WithProjectFileName(name string) Option {
	return func(r *Resolver) { r.projectFile = name }
}

// WithWriteBack controls whether merged layers are persisted.
func WithWriteBack(enabled bool) Option {
	return func(r *Resolver) { r.writeBack = enabled }
}

// WithCacheSize sets how many project layers are kept in memory.
func WithCacheSize(n int) Option {
	return func(r *Resolver) { r.cacheSize = n }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// DefaultGlobalDir returns <user config dir>/stylecheck, or "" when the
// platform has no user config directory.
func DefaultGlobalDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppDirName)
}

// DefaultBoundary returns the user's home directory, or "" when unknown.
func DefaultBoundary() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}

// NewResolver creates a resolver for the rules of catalog.
func NewResolver(catalog *lint.Catalog, opts ...Option) *Resolver {
	r := &Resolver{
		catalog:     catalog,
		fs:          afero.NewOsFs(),
		globalDir:   DefaultGlobalDir(),
		boundary:    DefaultBoundary(),
		projectFile: DefaultProjectFileName,
		writeBack:   true,
		cacheSize:   DefaultCacheSize,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.cacheSize < 1 {
		r.cacheSize = DefaultCacheSize
	}
	r.projects, _ = lru.New[string, lint.Configuration](r.cacheSize) // size is positive
	return r
}

// Resolve returns the base configuration for the file at path.
// It never fails; problems are logged and available from Errors.
func (r *Resolver) Resolve(path string) lint.Configuration {
	base := r.Global()

	cfgPath := r.FindProjectConfig(filepath.Dir(absPath(path)))
	if cfgPath == "" {
		return base
	}

	if cfg, ok := r.projects.Get(cfgPath); ok {
		return cfg.Clone()
	}
	v, _, _ := r.group.Do(cfgPath, func() (any, error) {
		if cfg, ok := r.projects.Get(cfgPath); ok {
			return cfg, nil
		}
		cfg := r.mergeFile(cfgPath, base)
		r.projects.Add(cfgPath, cfg)
		return cfg, nil
	})
	return v.(lint.Configuration).Clone()
}

// Global returns defaults merged with the global layer. The global file is
// read, and written back, at most once per Resolver.
func (r *Resolver) Global() lint.Configuration {
	r.globalOnce.Do(func() {
		r.global = r.resolveGlobal()
	})
	return r.global.Clone()
}

func (r *Resolver) resolveGlobal() lint.Configuration {
	defaults := r.catalog.Defaults()
	if r.globalDir == "" {
		return defaults
	}

	exists, err := afero.DirExists(r.fs, r.globalDir)
	if err != nil {
		r.report(&ReadError{Path: r.globalDir, Err: err})
		return defaults
	}
	if !exists {
		// first run: create the directory, nothing to merge yet
		if err := r.fs.MkdirAll(r.globalDir, 0o755); err != nil {
			r.report(&WriteError{Path: r.globalDir, Err: err})
		} else {
			r.logger.Debug("created global config directory", "path", r.globalDir)
		}
		return defaults
	}

	return r.mergeFile(filepath.Join(r.globalDir, GlobalFileName), defaults)
}

// mergeFile overlays the rule map of path onto base and writes the result
// back. A file that cannot be read or parsed contributes nothing and stays
// on disk as written, whatever the write-back setting.
func (r *Resolver) mergeFile(path string, base lint.Configuration) lint.Configuration {
	unlock := lockFile(path)
	defer unlock()

	f, err := readRuleFile(r.fs, path)
	if err != nil {
		r.report(err)
		return base
	}

	merged := base.Overlay(f.layer())
	r.logger.Debug("merged rule configuration",
		"path", path,
		"exists", f.exists,
		"enabled", len(merged.EnabledIDs()),
		"disabled", len(merged.DisabledIDs()))

	if r.writeBack {
		if err := f.write(r.fs, merged); err != nil {
			r.report(err)
		}
	}
	return merged
}

// FindProjectConfig walks from dir up through its ancestors and returns the
// first project configuration file found, or "". The walk stops after the
// boundary directory or at the filesystem root.
func (r *Resolver) FindProjectConfig(dir string) string {
	boundary := ""
	if r.boundary != "" {
		boundary = absPath(r.boundary)
	}

	dir = absPath(dir)
	for {
		candidate := filepath.Join(dir, r.projectFile)
		if ok, _ := afero.Exists(r.fs, candidate); ok {
			return candidate
		}
		if dir == boundary {
			return ""
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return ""
		}
		dir = parent
	}
}

// Errors returns the read and write problems met so far.
func (r *Resolver) Errors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]error(nil), r.errs...)
}

func (r *Resolver) report(err error) {
	r.mu.Lock()
	r.errs = append(r.errs, err)
	r.mu.Unlock()

	var we *WriteError
	if errors.As(err, &we) {
		r.logger.Warn("rule configuration not saved", "path", we.Path, "error", we.Err)
		return
	}
	var re *ReadError
	if errors.As(err, &re) {
		r.logger.Warn("rule configuration ignored", "path", re.Path, "error", re.Err)
		return
	}
	r.logger.Warn("rule configuration problem", "error", err)
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}
