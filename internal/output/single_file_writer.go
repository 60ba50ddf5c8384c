package output

import (
	"strings"
)

// SingleFileWriter accumulates all statements into one SQL document
type SingleFileWriter struct {
	output          strings.Builder
	includeComments bool
	wrote           bool
}

// NewSingleFileWriter creates a new SingleFileWriter with configurable comment inclusion
func NewSingleFileWriter(includeComments bool) *SingleFileWriter {
	return &SingleFileWriter{includeComments: includeComments}
}

// WriteHeader writes the header to the output
func (w *SingleFileWriter) WriteHeader(header string) {
	w.output.WriteString(header)
}

// WriteStep writes a SQL statement with optional comment header
func (w *SingleFileWriter) WriteStep(step Step) {
	if w.wrote {
		w.output.WriteString("\n")
	}
	if w.includeComments {
		writeComment(&w.output, step)
	}
	w.output.WriteString(step.SQL)
	w.output.WriteString(";\n")
	w.wrote = true
}

// String returns the accumulated SQL output with a single trailing newline
func (w *SingleFileWriter) String() string {
	result := strings.TrimRight(w.output.String(), "\n")
	if result == "" {
		return ""
	}
	return result + "\n"
}
