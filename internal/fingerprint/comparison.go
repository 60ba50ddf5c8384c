package fingerprint

import (
	"fmt"
	"strings"
)

// Compare checks the computed fingerprint against an expected hash, which may
// be given in full or as a prefix of at least 8 hex digits
func Compare(expected string, actual *SchemaFingerprint) error {
	expected = strings.ToLower(strings.TrimSpace(expected))
	if len(expected) < 8 {
		return fmt.Errorf("expected fingerprint %q is too short (need at least 8 hex digits)", expected)
	}
	if strings.HasPrefix(actual.Hash, expected) {
		return nil
	}

	expectedPreview := expected
	if len(expectedPreview) > 16 {
		expectedPreview = expectedPreview[:16]
	}

	return fmt.Errorf("schema fingerprint mismatch - expected: %s, actual: %s",
		expectedPreview, actual.Short())
}
