package color

import (
	"errors"
	"strings"
	"testing"
)

func TestDisabledColorIsPlain(t *testing.T) {
	c := New(false)
	if got := c.OK("x"); got != "x" {
		t.Errorf("OK() = %q; want plain text", got)
	}
	if got := c.FormatCheckLine("table", "users", nil); got != "  ✓ table users" {
		t.Errorf("FormatCheckLine() = %q", got)
	}
	got := c.FormatCheckLine("index", "i", errors.New("syntax error"))
	if !strings.HasSuffix(got, "i: syntax error") {
		t.Errorf("FormatCheckLine() = %q; want the error appended", got)
	}
	if got := c.FormatCheckSummary(2, 1); got != "Check: 2 valid, 1 invalid." {
		t.Errorf("FormatCheckSummary() = %q", got)
	}
}

func TestNoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	t.Setenv("TERM", "xterm-256color")
	if New(true).enabled {
		t.Error("NO_COLOR set but colors enabled")
	}
}

func TestEnabledColor(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("TERM", "xterm-256color")
	c := New(true)
	if got := c.Fail("bad"); got != Red+"bad"+Reset {
		t.Errorf("Fail() = %q", got)
	}
}
