package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// MultiFileWriter writes each table and index to its own file and a main file
// that pulls them in with \i directives, tables first
type MultiFileWriter struct {
	baseDir         string
	mainPath        string
	includeComments bool
	header          string
	includes        map[string][]string // directory -> relative paths
	used            map[string]bool
	errs            []error
}

// NewMultiFileWriter creates a new MultiFileWriter. outputPath is the main file
func NewMultiFileWriter(outputPath string, includeComments bool) (*MultiFileWriter, error) {
	baseDir := filepath.Dir(outputPath)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	return &MultiFileWriter{
		baseDir:         baseDir,
		mainPath:        outputPath,
		includeComments: includeComments,
		includes:        make(map[string][]string),
		used:            make(map[string]bool),
	}, nil
}

// WriteHeader sets the header of the main file
func (w *MultiFileWriter) WriteHeader(header string) {
	w.header = header
}

// WriteStep writes one statement to its own file. Objects whose names
// sanitize to the same file get a numeric suffix instead of overwriting it.
func (w *MultiFileWriter) WriteStep(step Step) {
	relPath := w.claimPath(step.ObjectType, step.ObjectName)
	fullPath := filepath.Join(w.baseDir, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		w.errs = append(w.errs, fmt.Errorf("failed to create directory for %s: %w", relPath, err))
		return
	}

	var b strings.Builder
	if w.includeComments {
		writeComment(&b, step)
	}
	b.WriteString(step.SQL)
	b.WriteString(";\n")

	if err := os.WriteFile(fullPath, []byte(b.String()), 0644); err != nil {
		w.errs = append(w.errs, fmt.Errorf("failed to write %s: %w", relPath, err))
		return
	}

	dir := filepath.Dir(relPath)
	w.includes[dir] = append(w.includes[dir], relPath)
}

// Finish writes the main file and reports any error met while writing
func (w *MultiFileWriter) Finish() error {
	var main strings.Builder
	main.WriteString(w.header)

	for _, dir := range []string{"tables", "indexes", "misc"} {
		for _, rel := range w.includes[dir] {
			main.WriteString("\\i " + filepath.ToSlash(rel) + "\n")
		}
	}

	if err := os.WriteFile(w.mainPath, []byte(main.String()), 0644); err != nil {
		w.errs = append(w.errs, fmt.Errorf("failed to write main file: %w", err))
	}
	return errors.Join(w.errs...)
}

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// sanitizeFileName converts an object name to a valid filename
func sanitizeFileName(name string) string {
	sanitized := unsafeFileChars.ReplaceAllString(name, "_")
	sanitized = strings.Trim(sanitized, "_")
	return strings.ToLower(sanitized)
}

// claimPath returns an unused file path for a given object type and name
func (w *MultiFileWriter) claimPath(objectType, objectName string) string {
	dir := objectDir(objectType)
	base := sanitizeFileName(objectName)
	if base == "" {
		base = "unnamed"
	}

	relPath := filepath.Join(dir, base+".sql")
	for n := 2; w.used[relPath]; n++ {
		relPath = filepath.Join(dir, fmt.Sprintf("%s_%d.sql", base, n))
	}
	w.used[relPath] = true
	return relPath
}

// objectDir returns the directory holding files of the given object type
func objectDir(objectType string) string {
	switch strings.ToUpper(objectType) {
	case "TABLE":
		return "tables"
	case "INDEX":
		return "indexes"
	default:
		return "misc"
	}
}
