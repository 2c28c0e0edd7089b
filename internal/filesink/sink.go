// Package filesink is the render.FileSink shared by cmd/oasgen and
// internal/mcpserver: it writes each emitted file under a base
// directory, gofmt-formatting and fixing imports on .go files the same
// way generator.formatAndFixImports does, so the output tree never
// requires a manual goimports pass.
package filesink

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"
)

// IOFailureError wraps an OS-level failure encountered while writing a
// generated file, distinguishing it from the pipeline's own typed
// errors for exit-code/error classification.
type IOFailureError struct {
	Path string
	Err  error
}

func (e *IOFailureError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *IOFailureError) Unwrap() error {
	return e.Err
}

// Disk is the render.FileSink implementation backed by the filesystem.
type Disk struct {
	baseDir string
}

// NewDisk returns a Disk sink rooted at baseDir.
func NewDisk(baseDir string) *Disk {
	return &Disk{baseDir: baseDir}
}

// Write implements render.FileSink.
func (s *Disk) Write(relativePath string, data []byte) error {
	full := filepath.Join(s.baseDir, relativePath)

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return &IOFailureError{Path: full, Err: err}
	}

	out := data
	if filepath.Ext(full) == ".go" {
		if formatted, err := imports.Process(full, data, nil); err == nil {
			out = formatted
		}
		// Formatting is best-effort: a template producing source goimports
		// can't parse shouldn't fail the whole run, so fall back to the
		// unformatted bytes.
	}

	if err := os.WriteFile(full, out, 0o644); err != nil {
		return &IOFailureError{Path: full, Err: err}
	}
	return nil
}
