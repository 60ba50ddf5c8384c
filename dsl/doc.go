// Package dsl is a declarative builder for relational schema definitions.
//
// Tables, columns and indexes are described with nested builder calls on a
// construction Context. Leaf modifiers (Name, Type, NotNull, References, ...)
// do not receive the construct they change: they resolve it from the stack of
// constructs whose builder callback is currently running.
//
//	c := dsl.New()
//	countries, id := dsl.TableWithRefs(c, func() *dsl.Column {
//	    c.Name("countries")
//	    id := c.Column(func() {
//	        c.Name("id")
//	        c.Type(sqltype.Serial())
//	        c.NotNull()
//	        c.PrimaryKey()
//	    })
//	    c.ColumnOf(func() (string, dsl.Type) { return "name", sqltype.Varchar() })
//	    return id
//	})
//
//	sql, err := c.Program()
//
// A Context is not safe for concurrent use. Independent schemas may be built
// in parallel as long as each goroutine owns its own Context.
package dsl
