package dsl

import "fmt"

// Index is a single-column "create index" statement under construction.
type Index struct {
	name   *Name
	unique Optional
	target *Column
	source string
}

func newIndex(source string) *Index {
	return &Index{source: source}
}

func (i *Index) Kind() string { return "index" }
func (i *Index) Source() string { return i.source }

// Name returns the index name and whether it has been set.
func (i *Index) Name() (Name, bool) {
	if i.name == nil {
		return Name{}, false
	}
	return *i.name, true
}

// Target returns the indexed column, or nil if On was never called.
func (i *Index) Target() *Column {
	return i.target
}

func (i *Index) SetName(n Name) { i.name = &n }
func (i *Index) SetUnique() { i.unique = optional(true, "unique") }
func (i *Index) SetTarget(col *Column) { i.target = col }

// Render implements Element.
func (i *Index) Render() (string, error) {
	if i.name == nil {
		return "", &IncompleteError{Kind: "index", Reason: "name is not specified", Source: i.source}
	}
	if i.target == nil {
		return "", &IncompleteError{Kind: "index", Reason: "column is not specified", Source: i.source}
	}
	colName, ok := i.target.Name()
	if !ok {
		return "", &IncompleteError{Kind: "column", Reason: "name is not specified (indexed by " + i.name.String() + ")", Source: i.target.source}
	}
	table, err := owningTableName(i.target)
	if err != nil {
		return "", err
	}
	head, err := renderFragments(Text("create"), i.unique, Text("index"), *i.name)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s on %s(%s)", head, table, colName), nil
}

// Index declares a root index. fn names it and selects its column with On.
func (c *Context) Index(fn func()) *Index {
	return c.index(callerSource(1), false, fn)
}

// IndexOf is the shorthand form of Index: the callback returns the index
// name and the target column.
func (c *Context) IndexOf(fn func() (string, *Column)) *Index {
	return c.index(callerSource(1), false, indexShorthand(c, fn))
}

// UniqueIndex is Index for a unique index.
func (c *Context) UniqueIndex(fn func()) *Index {
	return c.index(callerSource(1), true, fn)
}

// UniqueIndexOf is IndexOf for a unique index.
func (c *Context) UniqueIndexOf(fn func() (string, *Column)) *Index {
	return c.index(callerSource(1), true, indexShorthand(c, fn))
}

func indexShorthand(c *Context, fn func() (string, *Column)) func() {
	return func() {
		if fn == nil {
			return
		}
		name, target := fn()
		c.Name(name)
		c.On(target)
	}
}

func (c *Context) index(source string, unique bool, fn func()) *Index {
	i := newIndex(source)
	build(c, i, true, func() {
		if fn != nil {
			fn()
		}
		if unique {
			c.Unique()
		}
	})
	return i
}
