package color

import (
	"fmt"
	"os"
)

// ANSI color codes
const (
	Reset  = "\033[0m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
	Bold   = "\033[1m"
)

// Color represents a colorizer that can be enabled or disabled
type Color struct {
	enabled bool
}

// New creates a new Color instance
func New(enabled bool) *Color {
	return &Color{enabled: enabled && shouldEnableColor()}
}

// shouldEnableColor determines if color should be enabled based on environment
func shouldEnableColor() bool {
	// https://no-color.org/
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	term := os.Getenv("TERM")
	return term != "dumb" && term != ""
}

func (c *Color) wrap(code, text string) string {
	if !c.enabled {
		return text
	}
	return code + text + Reset
}

// OK colors text green
func (c *Color) OK(text string) string { return c.wrap(Green, text) }

// Fail colors text red
func (c *Color) Fail(text string) string { return c.wrap(Red, text) }

// Warn colors text yellow
func (c *Color) Warn(text string) string { return c.wrap(Yellow, text) }

// Cyan colors text cyan (for headers and labels)
func (c *Color) Cyan(text string) string { return c.wrap(Cyan, text) }

// Bold makes text bold
func (c *Color) Bold(text string) string { return c.wrap(Bold, text) }

// FormatCheckLine formats one statement of a check report
func (c *Color) FormatCheckLine(kind, name string, err error) string {
	if err != nil {
		return fmt.Sprintf("  %s %s %s: %v", c.Fail("✗"), kind, c.Bold(name), err)
	}
	return fmt.Sprintf("  %s %s %s", c.OK("✓"), kind, c.Bold(name))
}

// FormatCheckSummary formats the totals line of a check report
func (c *Color) FormatCheckSummary(passed, failed int) string {
	summary := fmt.Sprintf("%d valid, %d invalid", passed, failed)
	if failed > 0 {
		return "Check: " + c.Fail(summary) + "."
	}
	return "Check: " + c.OK(summary) + "."
}
