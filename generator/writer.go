package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pgschema/pgdsl/internal/output"
)

// Render returns the schema as a single SQL document with a header.
func (r *Result) Render(includeComments bool) string {
	w := output.NewSingleFileWriter(includeComments)
	w.WriteHeader(r.Header())
	r.collector().WriteAll(w)
	return w.String()
}

// WriteFile writes the single-file document to path.
func (r *Result) WriteFile(path string, includeComments bool) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(r.Render(includeComments)), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// WriteMultiFile writes each statement to its own file next to mainPath and a
// main file that includes them.
func (r *Result) WriteMultiFile(mainPath string, includeComments bool) error {
	w, err := output.NewMultiFileWriter(mainPath, includeComments)
	if err != nil {
		return err
	}
	w.WriteHeader(r.Header())
	r.collector().WriteAll(w)
	return w.Finish()
}

func (r *Result) collector() *output.Collector {
	c := output.NewCollector()
	c.CollectAll(r.Statements)
	return c
}
