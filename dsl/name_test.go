package dsl

import "testing"

func TestNameRendering(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		opts     []NameOption
		expected string
	}{
		{"simple lowercase", "users", nil, "users"},
		{"with underscore", "user_name", nil, "user_name"},
		{"starts with underscore", "_private", nil, "_private"},
		{"digits after first char", "t1", nil, "t1"},
		{"contains space", "User Table", nil, `"User Table"`},
		{"uppercase", "USERS", nil, `"USERS"`},
		{"camelCase", "firstName", nil, `"firstName"`},
		{"starts with number", "1table", nil, `"1table"`},
		{"contains dash", "user-table", nil, `"user-table"`},
		{"non ascii", "café", nil, `"café"`},
		{"embedded quote not escaped", `a"b`, nil, `"a"b"`},
		{"forced quotes", "x", []NameOption{ForceQuotes()}, `"x"`},
		{"empty string", "", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewName(tt.value, tt.opts...).Render()
			if err != nil {
				t.Fatalf("Render() error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("NewName(%q).Render() = %q; want %q", tt.value, got, tt.expected)
			}
		})
	}
}

func TestNameValueIsRaw(t *testing.T) {
	n := NewName("User Table")
	if n.Value() != "User Table" {
		t.Errorf("Value() = %q; want the raw identifier", n.Value())
	}
}

func TestOptionalFragment(t *testing.T) {
	tests := []struct {
		name     string
		opt      Optional
		expected string
	}{
		{"disabled", optional(false, "not null"), ""},
		{"enabled", optional(true, "not null"), "not null"},
		{"enabled without value", Optional{Enabled: true}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.opt.Render()
			if err != nil {
				t.Fatalf("Render() error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Render() = %q; want %q", got, tt.expected)
			}
		})
	}
}

func TestStringValue(t *testing.T) {
	got, _ := StringValue("it's").Render()
	if got != "'it's'" {
		t.Errorf("StringValue rendered %q; want %q", got, "'it's'")
	}
}
