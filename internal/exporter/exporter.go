// Package exporter writes board export artifacts to the configured out dir.
package exporter

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileExporter writes named artifacts under a directory, overwriting any
// previous artifact of the same name so repeated exports stay idempotent.
type FileExporter struct {
	dir string
}

// New constructs a FileExporter rooted at dir.
func New(dir string) *FileExporter {
	return &FileExporter{dir: dir}
}

// Write stores data under name and returns the artifact path.
func (e *FileExporter) Write(name string, data []byte) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", e.dir, err)
	}
	path := filepath.Join(e.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write export %s: %w", name, err)
	}
	return path, nil
}
