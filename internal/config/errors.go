package config

import "fmt"

// ReadError reports a configuration file that could not be read or parsed.
// The layer it belongs to contributes nothing.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read rule configuration %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError reports a merged configuration that could not be persisted.
// The in-memory configuration is still used.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write rule configuration %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
