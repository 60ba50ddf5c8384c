package dsl

// Capabilities a construct may expose. A modifier works on any construct that
// implements the matching interface, so new construct kinds become valid
// targets without changes here.
type (
	NameSetter interface {
		SetName(Name)
	}
	UniqueSetter interface {
		SetUnique()
	}
	IfNotExistsSetter interface {
		SetIfNotExists()
	}
	TypeSetter interface {
		SetType(Type)
	}
	NotNullSetter interface {
		SetNotNull()
	}
	AutoIncrementSetter interface {
		SetAutoIncrement()
	}
	PrimaryKeySetter interface {
		SetPrimaryKey()
	}
	DefaultSetter interface {
		SetDefault(Element)
	}
	ForeignKeyAdder interface {
		AddForeignKey(*ForeignKey)
	}
	TargetSetter interface {
		SetTarget(*Column)
	}
)

// Name sets the name of the current construct.
func (c *Context) Name(value string, opts ...NameOption) {
	if t, ok := resolve[NameSetter](c, "name()", true); ok {
		t.SetName(NewName(value, opts...))
	}
}

// Unique marks the current construct unique.
func (c *Context) Unique() {
	if t, ok := resolve[UniqueSetter](c, "unique()", true); ok {
		t.SetUnique()
	}
}

// IfNotExists adds "if not exists" to the current construct.
func (c *Context) IfNotExists() {
	if t, ok := resolve[IfNotExistsSetter](c, "if_not_exists()", true); ok {
		t.SetIfNotExists()
	}
}

// Type sets the type of the closest enclosing construct that has one.
func (c *Context) Type(typ Type) {
	if typ == nil {
		c.failNil("type()", "type")
		return
	}
	if t, ok := resolve[TypeSetter](c, "type()", false); ok {
		t.SetType(typ)
	}
}

// NotNull marks the current column not null.
func (c *Context) NotNull() {
	if t, ok := resolve[NotNullSetter](c, "not_null()", true); ok {
		t.SetNotNull()
	}
}

// AutoIncrement marks the current column auto_increment.
func (c *Context) AutoIncrement() {
	if t, ok := resolve[AutoIncrementSetter](c, "auto_increment()", true); ok {
		t.SetAutoIncrement()
	}
}

// PrimaryKey marks the current column as the primary key.
func (c *Context) PrimaryKey() {
	if t, ok := resolve[PrimaryKeySetter](c, "primary_key()", true); ok {
		t.SetPrimaryKey()
	}
}

// Default sets the default value expression of the current column.
func (c *Context) Default(value Element) {
	if value == nil {
		c.failNil("default_value()", "value")
		return
	}
	if t, ok := resolve[DefaultSetter](c, "default_value()", true); ok {
		t.SetDefault(value)
	}
}

// References adds a foreign key from the current column to target.
func (c *Context) References(target *Column) {
	if target == nil {
		c.failNil("references()", "target column")
		return
	}
	if t, ok := resolve[ForeignKeyAdder](c, "references()", true); ok {
		t.AddForeignKey(&ForeignKey{Column: target})
	}
}

// On sets the column the current index covers.
func (c *Context) On(target *Column) {
	if target == nil {
		c.failNil("on()", "target column")
		return
	}
	if t, ok := resolve[TargetSetter](c, "on()", true); ok {
		t.SetTarget(target)
	}
}

func (c *Context) failNil(op, what string) {
	src := ""
	if cur := c.Current(); cur != nil {
		src = cur.Source()
	}
	c.fail(&UsageError{Op: op, Reason: what + " is nil", Source: src})
}
