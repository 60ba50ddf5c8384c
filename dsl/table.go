package dsl

import (
	"fmt"
	"strings"
)

// Table is a "create table" statement under construction.
type Table struct {
	name        *Name
	ifNotExists Optional
	columns     []*Column
	source      string
}

func newTable(source string) *Table {
	return &Table{source: source, ifNotExists: optional(false, "if not exists")}
}

func (t *Table) Kind() string { return "table" }
func (t *Table) Source() string { return t.source }

// Name returns the table name and whether it has been set.
func (t *Table) Name() (Name, bool) {
	if t.name == nil {
		return Name{}, false
	}
	return *t.name, true
}

// Columns returns the columns in declaration order.
func (t *Table) Columns() []*Column {
	return append([]*Column(nil), t.columns...)
}

func (t *Table) SetName(n Name) {
	t.name = &n
}

func (t *Table) SetIfNotExists() {
	t.ifNotExists = optional(true, "if not exists")
}

func (t *Table) newColumn(source string) *Column {
	col := newColumn(t, source)
	t.columns = append(t.columns, col)
	return col
}

// Render implements Element. The if not exists clause is placed before the
// table name ("create table if not exists t (...)"), the only order
// PostgreSQL accepts, rather than after it.
func (t *Table) Render() (string, error) {
	if t.name == nil {
		return "", &IncompleteError{Kind: "table", Reason: "name is not specified", Source: t.source}
	}
	if len(t.columns) == 0 {
		return "", &IncompleteError{Kind: "table", Reason: "should have at least 1 column", Source: t.source}
	}

	cols := make([]string, 0, len(t.columns))
	for _, col := range t.columns {
		s, err := col.Render()
		if err != nil {
			return "", err
		}
		cols = append(cols, s)
	}

	head, err := renderFragments(Text("create table"), t.ifNotExists, *t.name)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s (%s)", head, strings.Join(cols, ", ")), nil
}

// Table declares a root table. fn sets its name and declares its columns.
func (c *Context) Table(fn func()) *Table {
	t := newTable(callerSource(1))
	build(c, t, true, fn)
	return t
}

// TableWithRefs is Table for callbacks that hand back references to the
// constructs they created, typically columns that later foreign keys or
// indexes point at.
func TableWithRefs[R any](c *Context, fn func() R) (*Table, R) {
	t := newTable(callerSource(1))
	var refs R
	build(c, t, true, func() {
		if fn != nil {
			refs = fn()
		}
	})
	return t, refs
}
