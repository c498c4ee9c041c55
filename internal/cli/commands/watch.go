package commands

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"

	"github.com/leapstack-labs/stylecheck/pkg/lint"
)

// debounceDelay collapses bursts of events, such as an editor's
// write-then-rename, into one re-lint.
const debounceDelay = 100 * time.Millisecond

// watchAndLint re-lints files under roots as they change, until ctx is
// done. Rule configuration is not re-read; restart to pick up changes.
func watchAndLint(ctx context.Context, cmdCtx *CommandContext, engine *lint.Engine, roots []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	for _, root := range roots {
		if err := watchRoot(cmdCtx.FS, watcher, root); err != nil {
			cmdCtx.Logger.Error("failed to watch path", "path", root, "error", err)
			// Don't fail - continue with the paths that could be watched
		}
	}

	r := cmdCtx.Renderer
	r.Println(r.Styles().Muted.Render("Watching for changes. Press Ctrl+C to stop."))

	pending := map[string]struct{}{}
	var debounce <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if event.Op&fsnotify.Create != 0 {
				if info, err := cmdCtx.FS.Stat(event.Name); err == nil && info.IsDir() {
					if err := watchRoot(cmdCtx.FS, watcher, event.Name); err != nil {
						cmdCtx.Logger.Warn("failed to watch new directory", "path", event.Name, "error", err)
					}
					continue
				}
			}
			if !hasExtension(event.Name, cmdCtx.Cfg.Extensions) {
				continue
			}
			pending[filepath.Clean(event.Name)] = struct{}{}
			debounce = time.After(debounceDelay)

		case <-debounce:
			debounce = nil
			files := make([]string, 0, len(pending))
			for path := range pending {
				files = append(files, path)
			}
			clear(pending)
			slices.Sort(files)

			cmdCtx.Logger.Debug("files changed, re-linting", "files", files)
			report, err := lintBatch(ctx, engine, files, cmdCtx.Cfg.MinSeverityLevel(), cmdCtx.Cfg.FailOnSeverity())
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
			if err := renderReport(r, report); err != nil {
				return err
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			cmdCtx.Logger.Error("watcher error", "error", err)
		}
	}
}

// watchRoot adds root, or the directory holding it when root is a file,
// and every non-hidden subdirectory to the watcher.
func watchRoot(fsys afero.Fs, watcher *fsnotify.Watcher, root string) error {
	info, err := fsys.Stat(root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return watcher.Add(filepath.Dir(root))
	}
	return afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		if path != root && skipDir(info.Name()) {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}
