package dsl

// Name is an identifier. It renders raw when it is a plain lowercase
// identifier and double-quoted otherwise. Quoting is verbatim: embedded
// double quotes are not escaped.
type Name struct {
	value       string
	forceQuotes bool
}

// NameOption configures a Name.
type NameOption func(*Name)

// ForceQuotes always renders the name in double quotes.
func ForceQuotes() NameOption {
	return func(n *Name) {
		n.forceQuotes = true
	}
}

// NewName creates a Name from a raw identifier.
func NewName(value string, opts ...NameOption) Name {
	n := Name{value: value}
	for _, opt := range opts {
		opt(&n)
	}
	return n
}

// Value returns the raw identifier.
func (n Name) Value() string {
	return n.value
}

// String returns the rendered identifier.
func (n Name) String() string {
	if n.forceQuotes || needsQuoting(n.value) {
		return `"` + n.value + `"`
	}
	return n.value
}

// Render implements Element.
func (n Name) Render() (string, error) {
	return n.String(), nil
}

// needsQuoting reports whether identifier falls outside [a-z_][a-z0-9_]*.
func needsQuoting(identifier string) bool {
	for i, r := range identifier {
		switch {
		case r >= 'a' && r <= 'z', r == '_':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return true
		}
	}
	return false
}
