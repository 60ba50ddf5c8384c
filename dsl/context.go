package dsl

import (
	"github.com/pgschema/pgdsl/internal/logger"
)

// Construct is an entity that can be open on the construction stack.
type Construct interface {
	Element
	// Kind is "table", "column" or "index".
	Kind() string
	// Source is the location of the builder call that created the construct.
	Source() string
}

// Context is one construction pass: the stack of constructs whose builder
// callback is currently executing, and the root registry of top-level
// statements in declaration order.
//
// The zero value is ready to use.
type Context struct {
	frames []Construct
	roots  []Construct
	err    error
}

// New returns an empty construction context.
func New() *Context {
	return &Context{}
}

func (c *Context) push(e Construct, isRoot bool) {
	c.frames = append(c.frames, e)
	if isRoot {
		c.roots = append(c.roots, e)
	}
	if logger.IsDebug() {
		logger.Get().Debug("Opened construct", "kind", e.Kind(), "depth", len(c.frames), "root", isRoot, "source", e.Source())
	}
}

// pop removes the top frame. Popping an empty stack means a builder broke the
// push/pop pairing, which is a bug in this package.
func (c *Context) pop() Construct {
	n := len(c.frames)
	if n == 0 {
		panic("dsl: pop on empty construction stack")
	}
	e := c.frames[n-1]
	c.frames[n-1] = nil
	c.frames = c.frames[:n-1]
	if logger.IsDebug() {
		logger.Get().Debug("Closed construct", "kind", e.Kind(), "depth", len(c.frames), "source", e.Source())
	}
	return e
}

// Current returns the innermost open construct, or nil when none is open.
func (c *Context) Current() Construct {
	if len(c.frames) == 0 {
		return nil
	}
	return c.frames[len(c.frames)-1]
}

// Depth returns the number of open constructs.
func (c *Context) Depth() int {
	return len(c.frames)
}

// FindClosest returns the innermost open construct satisfying match. With
// currentOnly set, only the top frame is tested.
func (c *Context) FindClosest(match func(Construct) bool, currentOnly bool) (Construct, bool) {
	if currentOnly {
		cur := c.Current()
		if cur != nil && match(cur) {
			return cur, true
		}
		return nil, false
	}
	for i := len(c.frames) - 1; i >= 0; i-- {
		if match(c.frames[i]) {
			return c.frames[i], true
		}
	}
	return nil, false
}

// Closest is FindClosest with the predicate "implements T". It returns the
// construct already converted to T.
func Closest[T any](c *Context, currentOnly bool) (T, bool) {
	var zero T
	found, ok := c.FindClosest(func(e Construct) bool {
		_, ok := e.(T)
		return ok
	}, currentOnly)
	if !ok {
		return zero, false
	}
	return found.(T), true
}

// Roots returns the top-level constructs in declaration order.
func (c *Context) Roots() []Construct {
	return append([]Construct(nil), c.roots...)
}

// Err returns the first usage error recorded during construction.
func (c *Context) Err() error {
	return c.err
}

// fail records err unless an earlier error is already recorded. Once failed,
// modifiers stop mutating constructs; builders still keep stack discipline.
func (c *Context) fail(err error) {
	if c.err != nil {
		return
	}
	c.err = err
	logger.Get().Debug("Construction failed", "error", err)
}

// resolve finds the construct a modifier applies to. On failure it records a
// UsageError naming op and reports false.
func resolve[T any](c *Context, op string, currentOnly bool) (T, bool) {
	var zero T
	if c.err != nil {
		return zero, false
	}
	cur := c.Current()
	if cur == nil {
		c.fail(&UsageError{Op: op, Reason: "no construct is open"})
		return zero, false
	}
	target, ok := Closest[T](c, currentOnly)
	if !ok {
		c.fail(&UsageError{
			Op:     op,
			Reason: "current " + cur.Kind() + " does not support it",
			Source: cur.Source(),
		})
		return zero, false
	}
	return target, true
}

// build runs one builder: push, callback, pop. The deferred pop keeps the
// stack balanced if the callback panics.
func build(c *Context, e Construct, isRoot bool, fn func()) {
	c.push(e, isRoot)
	defer c.pop()
	if fn != nil {
		fn()
	}
}
