// Package fs provides file-based output for extracted records.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/drugstock/drugstock"
)

// Ensure Writer implements drugstock.RecordWriter at compile time.
var _ drugstock.RecordWriter = (*Writer)(nil)

// Writer writes record documents to a single file.
// The file is written to path.tmp first and renamed into place, so readers
// never observe a partial document.
type Writer struct {
	path string
}

// NewWriter creates a new Writer that writes to the given path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Path returns the destination file path.
func (w *Writer) Path() string {
	return w.path
}

func (w *Writer) tempPath() string {
	return w.path + ".tmp"
}

// WriteRecord writes the JSON document for rec, replacing any existing file.
func (w *Writer) WriteRecord(ctx context.Context, rec drugstock.Record) error {
	if w.path == "" {
		return drugstock.Errorf(drugstock.EINVALID, "output path required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	content, err := drugstock.EncodeRecord(rec)
	if err != nil {
		return err
	}

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return err
	}

	if err := os.WriteFile(w.tempPath(), content, 0644); err != nil {
		return err
	}

	if err := os.Rename(w.tempPath(), w.path); err != nil {
		_ = os.Remove(w.tempPath())
		return err
	}

	return nil
}
