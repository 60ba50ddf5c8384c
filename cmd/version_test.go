package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pgschema/pgdsl/internal/version"
)

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	RootCmd.SetOut(&buf)
	RootCmd.SetErr(&buf)
	RootCmd.SetArgs([]string{"version"})
	defer RootCmd.SetArgs(nil)

	if err := RootCmd.Execute(); err != nil {
		t.Fatalf("version command failed: %v", err)
	}

	output := buf.String()
	if !strings.HasPrefix(output, "pgdsl v"+version.App()+"@") {
		t.Errorf("expected version output to start with 'pgdsl v%s@', got: %s", version.App(), output)
	}
	if !strings.Contains(output, version.Platform()) {
		t.Errorf("expected version output to contain platform, got: %s", output)
	}
}
