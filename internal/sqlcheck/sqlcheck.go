// Package sqlcheck validates generated DDL against the PostgreSQL grammar.
package sqlcheck

import (
	"fmt"
	"strings"

	pg_query "github.com/pganalyze/pg_query_go/v6"
	"github.com/pgschema/pgdsl/dsl"
)

// Result is the outcome of checking a single statement
type Result struct {
	Statement dsl.Statement
	Err       error
}

// Valid reports whether the statement parsed cleanly
func (r Result) Valid() bool {
	return r.Err == nil
}

// Check parses every statement on its own. Each one must hold exactly one
// PostgreSQL statement.
func Check(stmts []dsl.Statement) []Result {
	results := make([]Result, 0, len(stmts))
	for _, stmt := range stmts {
		results = append(results, Result{Statement: stmt, Err: Validate(stmt.SQL)})
	}
	return results
}

// Validate parses sql and fails unless it is a single valid statement
func Validate(sql string) error {
	result, err := pg_query.Parse(sql)
	if err != nil {
		return fmt.Errorf("syntax error: %w", err)
	}
	if n := len(result.Stmts); n != 1 {
		return fmt.Errorf("expected 1 statement, found %d", n)
	}
	return nil
}

// Failed counts the invalid results
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.Valid() {
			n++
		}
	}
	return n
}

// Format returns the canonical PostgreSQL rendering of sql
func Format(sql string) (string, error) {
	tree, err := pg_query.Parse(sql)
	if err != nil {
		return "", fmt.Errorf("failed to parse statement: %w", err)
	}
	out, err := pg_query.Deparse(tree)
	if err != nil {
		return "", fmt.Errorf("failed to deparse statement: %w", err)
	}
	return out, nil
}

// FormatStatements rewrites the SQL of every statement in canonical form
func FormatStatements(stmts []dsl.Statement) ([]dsl.Statement, error) {
	formatted := make([]dsl.Statement, len(stmts))
	for i, stmt := range stmts {
		sql, err := Format(stmt.SQL)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", stmt.Kind, stmt.Name, err)
		}
		stmt.SQL = sql
		formatted[i] = stmt
	}
	return formatted, nil
}

// Split breaks a program into individual statements using the PostgreSQL
// parser, so semicolons inside literals stay put
func Split(program string) ([]string, error) {
	parts, err := pg_query.SplitWithParser(program, true)
	if err != nil {
		return nil, fmt.Errorf("failed to split program: %w", err)
	}
	stmts := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			stmts = append(stmts, p)
		}
	}
	return stmts, nil
}
