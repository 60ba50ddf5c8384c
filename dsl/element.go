package dsl

import "strings"

// Element is anything that can produce its textual form. Rendering reads the
// current field values every time; nothing is cached.
type Element interface {
	Render() (string, error)
}

// Type is the element placed after a column name. See package sqltype for the
// catalog of constructors.
type Type = Element

// Text is a fixed textual fragment.
type Text string

// Render returns the fragment verbatim.
func (t Text) Render() (string, error) {
	return string(t), nil
}

// Raw wraps an SQL expression, e.g. Raw("now()") for a default value.
func Raw(expr string) Text {
	return Text(expr)
}

// StringValue wraps s in single quotes. No escaping is performed.
func StringValue(s string) Text {
	return Text("'" + s + "'")
}

// Optional renders Value when Enabled is set and the empty string otherwise.
type Optional struct {
	Enabled bool
	Value   Element
}

// Render implements Element.
func (o Optional) Render() (string, error) {
	if !o.Enabled || o.Value == nil {
		return "", nil
	}
	return o.Value.Render()
}

func optional(enabled bool, text string) Optional {
	return Optional{Enabled: enabled, Value: Text(text)}
}

// renderFragments renders each element and joins the non-empty results with a
// single space.
func renderFragments(elements ...Element) (string, error) {
	parts := make([]string, 0, len(elements))
	for _, el := range elements {
		if el == nil {
			continue
		}
		s, err := el.Render()
		if err != nil {
			return "", err
		}
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " "), nil
}
