package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"

	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/afero"

	"github.com/leapstack-labs/stylecheck/pkg/lint"
)

// RulesKey is the top-level key holding the persisted rule map.
const RulesKey = "rules"

// ruleFile is one persisted rule map together with the rest of the JSON
// document it lives in, so that write-back keeps unrelated keys.
type ruleFile struct {
	path   string
	exists bool
	doc    map[string]any
}

// readRuleFile loads path. A missing file is an empty document, not an error.
func readRuleFile(fsys afero.Fs, path string) (*ruleFile, error) {
	f := &ruleFile{path: path, doc: map[string]any{}}

	data, err := afero.ReadFile(fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		return f, nil
	}
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	f.exists = true

	if len(bytes.TrimSpace(data)) == 0 {
		return f, nil
	}
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), kjson.Parser()); err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	f.doc = k.Raw()

	if raw, ok := f.doc[RulesKey]; ok {
		if _, isMap := raw.(map[string]any); !isMap {
			return nil, &ReadError{Path: path, Err: fmt.Errorf("%q must be an object, got %T", RulesKey, raw)}
		}
	}
	return f, nil
}

// layer returns the rule map of the document. Entries that are not
// booleans are skipped.
func (f *ruleFile) layer() lint.Configuration {
	m := map[string]bool{}
	if raw, ok := f.doc[RulesKey].(map[string]any); ok {
		for id, v := range raw {
			if on, isBool := v.(bool); isBool {
				m[id] = on
			}
		}
	}
	return lint.ConfigurationFromRuleMap(m)
}

// write replaces the rule map with cfg and persists the document.
// The file is written next to its destination and renamed into place.
func (f *ruleFile) write(fsys afero.Fs, cfg lint.Configuration) error {
	rules := map[string]any{}
	for id, on := range cfg.RuleMap() {
		rules[id] = on
	}
	f.doc[RulesKey] = rules

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(f.doc, ""), nil); err != nil {
		return &WriteError{Path: f.path, Err: err}
	}
	compact, err := k.Marshal(kjson.Parser())
	if err != nil {
		return &WriteError{Path: f.path, Err: err}
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", "  "); err != nil {
		return &WriteError{Path: f.path, Err: err}
	}
	out.WriteByte('\n')

	tmp := f.path + ".tmp"
	if err := afero.WriteFile(fsys, tmp, out.Bytes(), 0o644); err != nil {
		return &WriteError{Path: f.path, Err: err}
	}
	if err := fsys.Rename(tmp, f.path); err != nil {
		_ = fsys.Remove(tmp)
		return &WriteError{Path: f.path, Err: err}
	}
	f.exists = true
	return nil
}

// fileLocks serializes read-modify-write cycles per file path across every
// Resolver in the process.
var fileLocks sync.Map // clean path -> *sync.Mutex

func lockFile(path string) func() {
	v, _ := fileLocks.LoadOrStore(filepath.Clean(path), &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
