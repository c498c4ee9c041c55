package lint

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/stylecheck/pkg/source"
)

// Resolver supplies the base configuration for a file path.
// Implementations must be safe for concurrent use and must not fail.
type Resolver interface {
	Resolve(path string) Configuration
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(path string) Configuration

// Resolve calls f(path).
func (f ResolverFunc) Resolve(path string) Configuration {
	return f(path)
}

// StaticResolver returns a Resolver that serves cfg for every path.
func StaticResolver(cfg Configuration) Resolver {
	return ResolverFunc(func(string) Configuration {
		return cfg.Clone()
	})
}

// Engine selects rules, runs them and filters their violations through the
// directive timeline.
type Engine struct {
	catalog     *Catalog
	resolver    Resolver
	fs          afero.Fs
	concurrency int
	logger      *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithSourceFS sets the filesystem LintFiles reads from.
func WithSourceFS(fs afero.Fs) Option {
	return func(e *Engine) { e.fs = fs }
}

// WithConcurrency bounds the number of files LintFiles lints at once.
// Values below 1 mean GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(e *Engine) { e.concurrency = n }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an engine. A nil resolver enables every catalog rule.
func NewEngine(catalog *Catalog, resolver Resolver, opts ...Option) *Engine {
	if resolver == nil {
		resolver = StaticResolver(catalog.Defaults())
	}
	e := &Engine{
		catalog:  catalog,
		resolver: resolver,
		fs:       afero.NewOsFs(),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.concurrency < 1 {
		e.concurrency = runtime.GOMAXPROCS(0)
	}
	return e
}

// Catalog returns the engine's rule catalog.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// Lint resolves the base configuration for file and lints it.
func (e *Engine) Lint(file *source.File) []Violation {
	return e.LintWith(file, e.resolver.Resolve(file.Path))
}

// LintWith lints file against an explicit base configuration.
//
// Rules disabled in base never run. Rules that run scan the whole file, so
// their violations are then checked against the directive state at each
// violation's offset and dropped where the rule is disabled.
// The result is ordered by offset, then by rule identifier.
func (e *Engine) LintWith(file *source.File, base Configuration) []Violation {
	rules := e.catalog.Filter(base)
	timeline := BuildTimeline(ScanDirectives(file))
	if timeline.Len() > 1 {
		regions := timeline.Regions()
		offsets := make([]int, len(regions))
		for i, r := range regions {
			offsets[i] = r.Offset
		}
		e.logger.Debug("directive regions", "path", file.Path, "offsets", offsets)
	}

	var violations []Violation
	for _, rule := range rules {
		for _, v := range rule.Validate(file) {
			if timeline.EffectiveAt(v.Location.Offset).State(v.RuleID) == RuleDisabled {
				continue
			}
			violations = append(violations, v)
		}
	}
	SortViolations(violations)

	e.logger.Debug("linted file",
		"path", file.Path,
		"rules", len(rules),
		"regions", timeline.Len(),
		"violations", len(violations))
	return violations
}

// FileResult is the outcome of linting one file in a batch.
type FileResult struct {
	Path       string
	Violations []Violation
	Err        error // set when the file could not be read
}

// LintFiles lints paths in parallel. Results are in input order. A file
// that cannot be read gets Err set and does not stop the batch.
// Cancelling ctx stops scheduling new files; the unscheduled ones get
// ctx.Err() and LintFiles returns it.
func (e *Engine) LintFiles(ctx context.Context, paths []string) ([]FileResult, error) {
	results := make([]FileResult, len(paths))
	for i, p := range paths {
		results[i].Path = p
	}

	var g errgroup.Group
	g.SetLimit(e.concurrency)

	scheduled := 0
	for i, p := range paths {
		if ctx.Err() != nil {
			break
		}
		scheduled++
		g.Go(func() error {
			file, err := source.Load(e.fs, p)
			if err != nil {
				e.logger.Warn("failed to load file", "path", p, "error", err)
				results[i].Err = err
				return nil
			}
			results[i].Violations = e.Lint(file)
			return nil
		})
	}
	_ = g.Wait() // workers never return an error

	if err := ctx.Err(); err != nil {
		for i := scheduled; i < len(results); i++ {
			results[i].Err = err
		}
		return results, err
	}
	return results, nil
}
