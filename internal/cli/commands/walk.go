package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"
)

// collectFiles expands args into the files to lint. Files are kept as
// given; directories are walked for files with one of exts. Each file
// appears once, in the order found.
func collectFiles(fsys afero.Fs, args []string, exts []string) ([]string, error) {
	var out []string
	seen := map[string]bool{}
	add := func(path string) {
		clean := filepath.Clean(path)
		if !seen[clean] {
			seen[clean] = true
			out = append(out, clean)
		}
	}

	for _, arg := range args {
		info, err := fsys.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", arg, err)
		}
		if !info.IsDir() {
			add(arg)
			continue
		}

		err = afero.Walk(fsys, arg, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				if path != arg && skipDir(info.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if hasExtension(path, exts) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", arg, err)
		}
	}
	return out, nil
}

// skipDir reports whether a directory is hidden, like .git or .build.
func skipDir(name string) bool {
	return len(name) > 1 && strings.HasPrefix(name, ".")
}

func hasExtension(path string, exts []string) bool {
	return slices.Contains(exts, filepath.Ext(path))
}
