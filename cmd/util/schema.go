package util

import (
	"fmt"

	"github.com/pgschema/pgdsl/generator"
	"github.com/pgschema/pgdsl/internal/ignore"
	"github.com/spf13/cobra"
)

// SchemaEnvVar names the default schema when --schema is not given
const SchemaEnvVar = "PGDSL_SCHEMA"

// ResolveSchemas returns the schemas a command should work on: every
// registered schema with --all, otherwise --schema or PGDSL_SCHEMA.
func ResolveSchemas(cmd *cobra.Command, schema string, all bool) ([]string, error) {
	if all {
		if cmd.Flags().Changed("schema") {
			return nil, fmt.Errorf("--schema and --all cannot be used together")
		}
		names := generator.Names()
		if len(names) == 0 {
			return nil, fmt.Errorf("no schemas are registered")
		}
		return names, nil
	}

	ApplyEnvString(cmd, "schema", SchemaEnvVar, &schema)
	if schema == "" {
		return nil, fmt.Errorf("schema is required (use --schema flag, --all, or %s environment variable)", SchemaEnvVar)
	}
	if _, ok := generator.Lookup(schema); !ok {
		return nil, fmt.Errorf("unknown schema %q (registered: %v)", schema, generator.Names())
	}
	return []string{schema}, nil
}

// LoadIgnore reads the ignore file at path. A missing file means nothing is ignored.
func LoadIgnore(path string) (*ignore.Config, error) {
	if path == "" {
		return nil, nil
	}
	cfg, err := ignore.LoadIgnoreFileFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load ignore file %s: %w", path, err)
	}
	return cfg, nil
}
