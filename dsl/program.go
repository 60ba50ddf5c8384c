package dsl

import (
	"fmt"
	"strings"
)

// Statement is one rendered root construct.
type Statement struct {
	Kind   string // "table" or "index"
	Name   string // raw name of the construct
	Table  string // owning table of an index; the table itself for a table
	SQL    string
	Source string
}

// Statements renders every root construct in declaration order. The first
// failure aborts rendering; no partial result is returned.
func (c *Context) Statements() ([]Statement, error) {
	if c.err != nil {
		return nil, c.err
	}
	if len(c.frames) != 0 {
		return nil, fmt.Errorf("%w: %d construct(s) still open, innermost %s at %s",
			ErrUnbalanced, len(c.frames), c.Current().Kind(), c.Current().Source())
	}

	stmts := make([]Statement, 0, len(c.roots))
	for _, root := range c.roots {
		sql, err := root.Render()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, describe(root, sql))
	}
	return stmts, nil
}

// Program renders the whole pass as semicolon-terminated statements, one per
// line. It returns "" when nothing was declared.
func (c *Context) Program() (string, error) {
	stmts, err := c.Statements()
	if err != nil {
		return "", err
	}
	if len(stmts) == 0 {
		return "", nil
	}
	sqls := make([]string, len(stmts))
	for i, s := range stmts {
		sqls[i] = s.SQL
	}
	return strings.Join(sqls, ";\n") + ";", nil
}

func describe(root Construct, sql string) Statement {
	stmt := Statement{Kind: root.Kind(), SQL: sql, Source: root.Source()}
	switch e := root.(type) {
	case *Table:
		if n, ok := e.Name(); ok {
			stmt.Name = n.Value()
			stmt.Table = n.Value()
		}
	case *Index:
		if n, ok := e.Name(); ok {
			stmt.Name = n.Value()
		}
		if e.target != nil && e.target.table != nil {
			if n, ok := e.target.table.Name(); ok {
				stmt.Table = n.Value()
			}
		}
	}
	return stmt
}
