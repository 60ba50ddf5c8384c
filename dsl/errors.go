package dsl

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupported is wrapped by every usage-context error.
	ErrUnsupported = errors.New("unsupported operation in this context")
	// ErrIncomplete is wrapped by every error raised while rendering an
	// entity that is missing a required field.
	ErrIncomplete = errors.New("incomplete definition")
	// ErrUnbalanced is returned when rendering is requested while a builder
	// callback is still running.
	ErrUnbalanced = errors.New("construction stack is not empty")
)

// UsageError reports a modifier or builder called where it cannot apply: no
// construct is open, the resolved construct lacks the capability, or a column
// is declared outside a table.
type UsageError struct {
	Op     string // e.g. "unique()"
	Reason string
	Source string // source location of the construct that was current, if any
}

func (e *UsageError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Op, e.Reason)
	if e.Source != "" {
		msg += fmt.Sprintf(" (inside construct declared at %s)", e.Source)
	}
	return msg
}

func (e *UsageError) Unwrap() error {
	return ErrUnsupported
}

// IncompleteError reports an entity that cannot be rendered. Source is where
// the entity's builder was called, not where rendering happened.
type IncompleteError struct {
	Kind   string // "table", "column" or "index"
	Reason string
	Source string
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("%s %s. Source: %s", e.Kind, e.Reason, e.Source)
}

func (e *IncompleteError) Unwrap() error {
	return ErrIncomplete
}
