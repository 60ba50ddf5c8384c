// Package include inlines psql \i and \ir directives so that the main file of
// multi-file output can be read back as one SQL document.
package include

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// matches "\i path" or "\ir path" with an optional trailing semicolon
var directive = regexp.MustCompile(`^\s*\\ir?\s+([^\s;]+)\s*;?\s*$`)

// Expander resolves include directives. Included paths are relative to the
// including file and must stay under the directory of the top-level file.
type Expander struct {
	root  string
	chain []string
}

// Expand reads path and returns its content with every include inlined.
func Expand(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path for %s: %w", path, err)
	}
	e := &Expander{root: filepath.Dir(abs)}
	return e.expandFile(abs)
}

func (e *Expander) expandFile(path string) (string, error) {
	for _, seen := range e.chain {
		if seen == path {
			return "", fmt.Errorf("circular include: %s", e.describeCycle(path))
		}
	}
	e.chain = append(e.chain, path)
	defer func() { e.chain = e.chain[:len(e.chain)-1] }()

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	var out strings.Builder
	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		m := directive.FindStringSubmatch(line)
		if m == nil {
			out.WriteString(line)
			if i < len(lines)-1 {
				out.WriteString("\n")
			}
			continue
		}

		target, err := e.resolve(m[1], filepath.Dir(path))
		if err != nil {
			return "", fmt.Errorf("%s:%d: %w", e.rel(path), i+1, err)
		}
		included, err := e.expandFile(target)
		if err != nil {
			return "", err
		}
		out.WriteString(included)
		if !strings.HasSuffix(included, "\n") {
			out.WriteString("\n")
		}
	}
	return out.String(), nil
}

func (e *Expander) resolve(includePath, dir string) (string, error) {
	if filepath.IsAbs(includePath) {
		return "", fmt.Errorf("absolute include path not allowed: %s", includePath)
	}
	abs := filepath.Join(dir, filepath.Clean(includePath))
	rel, err := filepath.Rel(e.root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("include path %s is outside %s", includePath, e.root)
	}
	if _, err := os.Stat(abs); err != nil {
		return "", fmt.Errorf("included file %s: %w", includePath, err)
	}
	return abs, nil
}

func (e *Expander) rel(path string) string {
	if rel, err := filepath.Rel(e.root, path); err == nil {
		return filepath.ToSlash(rel)
	}
	return path
}

func (e *Expander) describeCycle(path string) string {
	parts := make([]string, 0, len(e.chain)+1)
	for _, p := range e.chain {
		parts = append(parts, e.rel(p))
	}
	return strings.Join(append(parts, e.rel(path)), " -> ")
}
