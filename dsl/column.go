package dsl

import "fmt"

// Column belongs to exactly one Table. Its flags default to off.
type Column struct {
	table         *Table
	source        string
	name          *Name
	typ           Type
	notNull       Optional
	autoIncrement Optional
	primaryKey    Optional
	unique        Optional
	defaultValue  Optional
	foreignKeys   []*ForeignKey
}

func newColumn(t *Table, source string) *Column {
	return &Column{table: t, source: source}
}

func (col *Column) Kind() string { return "column" }
func (col *Column) Source() string { return col.source }

// Table returns the owning table. It is nil for a column declared outside any
// table, which only happens after a usage error.
func (col *Column) Table() *Table {
	return col.table
}

// Name returns the column name and whether it has been set.
func (col *Column) Name() (Name, bool) {
	if col.name == nil {
		return Name{}, false
	}
	return *col.name, true
}

// ForeignKeys returns the references declared on the column.
func (col *Column) ForeignKeys() []*ForeignKey {
	return append([]*ForeignKey(nil), col.foreignKeys...)
}

func (col *Column) SetName(n Name) { col.name = &n }
func (col *Column) SetType(t Type) { col.typ = t }
func (col *Column) SetNotNull() { col.notNull = optional(true, "not null") }
func (col *Column) SetAutoIncrement() { col.autoIncrement = optional(true, "auto_increment") }
func (col *Column) SetPrimaryKey() { col.primaryKey = optional(true, "primary key") }
func (col *Column) SetUnique() { col.unique = optional(true, "unique") }

func (col *Column) SetDefault(value Element) {
	col.defaultValue = Optional{Enabled: true, Value: defaultClause{value}}
}

func (col *Column) AddForeignKey(fk *ForeignKey) {
	col.foreignKeys = append(col.foreignKeys, fk)
}

// ResolvedType returns the explicit type, or the type inherited transitively
// through first foreign keys: a column without a type takes the resolved type
// of its first foreign key's target, which may itself be inherited. Cycles
// stop the search. The result is nil when no type is found.
func (col *Column) ResolvedType() Type {
	seen := make(map[*Column]bool)
	for cur := col; cur != nil && !seen[cur]; {
		if cur.typ != nil {
			return cur.typ
		}
		seen[cur] = true
		if len(cur.foreignKeys) == 0 {
			return nil
		}
		cur = cur.foreignKeys[0].Column
	}
	return nil
}

// Render implements Element.
func (col *Column) Render() (string, error) {
	if col.name == nil {
		return "", &IncompleteError{Kind: "column", Reason: "name is not specified", Source: col.source}
	}
	typ := col.ResolvedType()
	if typ == nil {
		return "", &IncompleteError{Kind: "column", Reason: "type is not specified", Source: col.source}
	}

	fragments := []Element{
		*col.name,
		typ,
		col.notNull,
		col.defaultValue,
		col.autoIncrement,
		col.primaryKey,
		col.unique,
	}
	for _, fk := range col.foreignKeys {
		fragments = append(fragments, fk)
	}
	return renderFragments(fragments...)
}

type defaultClause struct {
	value Element
}

func (d defaultClause) Render() (string, error) {
	s, err := d.value.Render()
	if err != nil {
		return "", err
	}
	return "default " + s, nil
}

// ForeignKey renders as "references <table>(<column>)" using the names the
// target carries at render time.
type ForeignKey struct {
	Column *Column
}

// Render implements Element.
func (fk *ForeignKey) Render() (string, error) {
	target := fk.Column
	colName, ok := target.Name()
	if !ok {
		return "", &IncompleteError{Kind: "column", Reason: "name is not specified (referenced by a foreign key)", Source: target.source}
	}
	table, err := owningTableName(target)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("references %s(%s)", table, colName), nil
}

func owningTableName(col *Column) (string, error) {
	if col.table == nil {
		return "", &IncompleteError{Kind: "column", Reason: "does not belong to a table", Source: col.source}
	}
	name, ok := col.table.Name()
	if !ok {
		return "", &IncompleteError{Kind: "table", Reason: "name is not specified", Source: col.table.source}
	}
	return name.String(), nil
}

// Column declares a column of the closest enclosing table.
func (c *Context) Column(fn func()) *Column {
	return c.column(callerSource(1), fn)
}

// ColumnOf is the shorthand form of Column: the callback returns the name and
// type, which are applied after it returns. Anything else the callback does,
// such as calling NotNull, applies as usual.
func (c *Context) ColumnOf(fn func() (string, Type)) *Column {
	return c.column(callerSource(1), func() {
		if fn == nil {
			return
		}
		name, typ := fn()
		c.Name(name)
		c.Type(typ)
	})
}

func (c *Context) column(source string, fn func()) *Column {
	t, ok := Closest[*Table](c, false)
	if !ok {
		c.fail(&UsageError{Op: "column()", Reason: "should only be called inside table()", Source: source})
		col := newColumn(nil, source)
		build(c, col, false, fn)
		return col
	}
	col := t.newColumn(source)
	build(c, col, false, fn)
	return col
}
