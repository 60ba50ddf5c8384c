package ignore

import (
	"path/filepath"
	"strings"

	"github.com/pgschema/pgdsl/dsl"
)

// Config lists the generated statements to leave out of the output
type Config struct {
	Tables  []string `toml:"tables,omitempty"`
	Indexes []string `toml:"indexes,omitempty"`
}

// ShouldIgnoreTable checks if a table should be ignored based on the patterns
func (c *Config) ShouldIgnoreTable(tableName string) bool {
	if c == nil {
		return false
	}
	return c.shouldIgnore(tableName, c.Tables)
}

// ShouldIgnoreIndex checks if an index should be ignored based on the patterns.
// Indexes of an ignored table are ignored too.
func (c *Config) ShouldIgnoreIndex(indexName, tableName string) bool {
	if c == nil {
		return false
	}
	return c.shouldIgnore(indexName, c.Indexes) || c.ShouldIgnoreTable(tableName)
}

// Filter returns the statements that are not ignored, in their input order
func (c *Config) Filter(stmts []dsl.Statement) []dsl.Statement {
	if c == nil {
		return stmts
	}
	kept := make([]dsl.Statement, 0, len(stmts))
	for _, s := range stmts {
		switch s.Kind {
		case "table":
			if c.ShouldIgnoreTable(s.Name) {
				continue
			}
		case "index":
			if c.ShouldIgnoreIndex(s.Name, s.Table) {
				continue
			}
		}
		kept = append(kept, s)
	}
	return kept
}

// shouldIgnore checks if a name should be ignored based on the patterns
// Patterns support wildcards (*) and negation (!)
// Negation patterns (starting with !) take precedence over inclusion patterns
func (c *Config) shouldIgnore(name string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}

	matched := false
	for _, pattern := range patterns {
		if strings.HasPrefix(pattern, "!") {
			continue
		}
		if matchPattern(pattern, name) {
			matched = true
			break
		}
	}

	for _, pattern := range patterns {
		if !strings.HasPrefix(pattern, "!") {
			continue
		}
		if matchPattern(pattern[1:], name) {
			return false
		}
	}

	return matched
}

// matchPattern matches a glob-style pattern against a string
func matchPattern(pattern, name string) bool {
	matched, err := filepath.Match(pattern, name)
	if err != nil {
		// If pattern is invalid, treat it as a literal match
		return pattern == name
	}
	return matched
}
