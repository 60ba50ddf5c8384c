package shop

import (
	"github.com/pgschema/pgdsl/dsl"
	"github.com/pgschema/pgdsl/dsl/sqltype"
)

func money() dsl.Type { return sqltype.Numeric(100, 2) }

// idSerial declares "id serial not null primary key". extra runs inside the
// column builder, after the defaults.
func idSerial(c *dsl.Context, extra ...func()) *dsl.Column {
	return c.Column(func() {
		c.Name("id")
		c.Type(sqltype.Serial())
		c.NotNull()
		c.PrimaryKey()
		runAll(extra)
	})
}

func createdAt(c *dsl.Context, extra ...func()) *dsl.Column {
	return timestampColumn(c, "created_at", extra)
}

func updatedAt(c *dsl.Context, extra ...func()) *dsl.Column {
	return timestampColumn(c, "updated_at", extra)
}

func timestampColumn(c *dsl.Context, name string, extra []func()) *dsl.Column {
	return c.Column(func() {
		c.Name(name)
		c.Type(sqltype.TimestampWithoutTimeZone())
		c.NotNull()
		c.Default(dsl.Raw("now()"))
		runAll(extra)
	})
}

// tableWithCreatedUpdated is TableWithRefs with created_at and updated_at
// appended after the columns fn declares.
func tableWithCreatedUpdated[R any](c *dsl.Context, fn func() R) (*dsl.Table, R) {
	return dsl.TableWithRefs(c, func() R {
		refs := fn()
		createdAt(c)
		updatedAt(c)
		return refs
	})
}

// col is the tuple shorthand with extra modifiers applied to the new column.
func col(c *dsl.Context, name string, typ dsl.Type, modifiers ...func()) *dsl.Column {
	return c.ColumnOf(func() (string, dsl.Type) {
		runAll(modifiers)
		return name, typ
	})
}

// ref returns a modifier adding a foreign key to target.
func ref(c *dsl.Context, target *dsl.Column) func() {
	return func() { c.References(target) }
}

func runAll(fns []func()) {
	for _, fn := range fns {
		fn()
	}
}
