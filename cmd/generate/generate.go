package generate

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/pgschema/pgdsl/cmd/util"
	"github.com/pgschema/pgdsl/generator"
	"github.com/pgschema/pgdsl/internal/ignore"
	"github.com/spf13/cobra"
)

// OutputEnvVar names the default output file when --file is not given
const OutputEnvVar = "PGDSL_OUTPUT"

var (
	schema            string
	all               bool
	file              string
	outDir            string
	multiFile         bool
	ignoreFile        string
	format            bool
	noComments        bool
	expectFingerprint string
	list              bool
)

var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate SQL DDL from a registered schema",
	Long: `Run a registered schema declaration and write the resulting CREATE TABLE and
CREATE INDEX statements to stdout, a file, or one file per statement.`,
	RunE:         runGenerate,
	SilenceUsage: true,
}

func init() {
	GenerateCmd.Flags().StringVar(&schema, "schema", "", "Registered schema to generate (or "+util.SchemaEnvVar+")")
	GenerateCmd.Flags().BoolVar(&all, "all", false, "Generate every registered schema into --out-dir")
	GenerateCmd.Flags().StringVar(&file, "file", "", "Output file path (or "+OutputEnvVar+"); stdout when empty")
	GenerateCmd.Flags().StringVar(&outDir, "out-dir", ".", "Output directory used with --all")
	GenerateCmd.Flags().BoolVar(&multiFile, "multi-file", false, "Write one file per table and index, plus a main file with \\i includes")
	GenerateCmd.Flags().StringVar(&ignoreFile, "ignore-file", ignore.IgnoreFileName, "Path to the ignore file")
	GenerateCmd.Flags().BoolVar(&format, "format", false, "Rewrite statements in canonical PostgreSQL form")
	GenerateCmd.Flags().BoolVar(&noComments, "no-comments", false, "Omit the per-statement comment blocks")
	GenerateCmd.Flags().StringVar(&expectFingerprint, "expect-fingerprint", "", "Fail unless the schema fingerprint starts with this hash (single schema only)")
	GenerateCmd.Flags().BoolVar(&list, "list", false, "List registered schemas and exit")

	GenerateCmd.MarkFlagsMutuallyExclusive("all", "expect-fingerprint")
}

// GenerateConfig holds the resolved options of one generate run
type GenerateConfig struct {
	Schemas           []string
	All               bool
	File              string
	OutDir            string
	MultiFile         bool
	Ignore            *ignore.Config
	Format            bool
	IncludeComments   bool
	ExpectFingerprint string
}

func runGenerate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if list {
		for _, name := range generator.Names() {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	schemas, err := util.ResolveSchemas(cmd, schema, all)
	if err != nil {
		return err
	}
	ignoreConfig, err := util.LoadIgnore(ignoreFile)
	if err != nil {
		return err
	}

	outputFile := file
	util.ApplyEnvString(cmd, "file", OutputEnvVar, &outputFile)

	if multiFile && outputFile == "" && !all {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: --multi-file flag requires --file to be specified. Fallback to single-file mode.\n")
		multiFile = false
	}

	config := &GenerateConfig{
		Schemas:           schemas,
		All:               all,
		File:              outputFile,
		OutDir:            outDir,
		MultiFile:         multiFile,
		Ignore:            ignoreConfig,
		Format:            format,
		IncludeComments:   !noComments,
		ExpectFingerprint: expectFingerprint,
	}
	return ExecuteGenerate(cmd.Context(), config, out)
}

// ExecuteGenerate renders the configured schemas and writes them out. Single
// schema output goes to out unless a file is configured.
func ExecuteGenerate(ctx context.Context, config *GenerateConfig, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if config.ExpectFingerprint != "" && (config.All || len(config.Schemas) != 1) {
		return fmt.Errorf("--expect-fingerprint checks a single schema and cannot be combined with --all")
	}
	opts := generator.Options{
		Ignore:              config.Ignore,
		Format:              config.Format,
		ExpectedFingerprint: config.ExpectFingerprint,
	}

	results, err := generator.GenerateAll(ctx, config.Schemas, opts)
	if err != nil {
		return err
	}

	if config.All {
		for _, r := range results {
			path := filepath.Join(config.OutDir, r.Schema+".sql")
			if config.MultiFile {
				path = filepath.Join(config.OutDir, r.Schema, r.Schema+".sql")
			}
			if err := write(r, path, config); err != nil {
				return err
			}
			reportWritten(out, r, path)
		}
		return nil
	}

	r := results[0]
	if config.File == "" {
		_, err := io.WriteString(out, r.Render(config.IncludeComments))
		return err
	}
	if err := write(r, config.File, config); err != nil {
		return err
	}
	reportWritten(out, r, config.File)
	return nil
}

func reportWritten(out io.Writer, r *generator.Result, path string) {
	fmt.Fprintf(out, "Wrote %s to %s (%d statements, fingerprint %s)\n",
		r.Schema, path, len(r.Statements), r.Fingerprint.Short())
}

func write(r *generator.Result, path string, config *GenerateConfig) error {
	if config.MultiFile {
		return r.WriteMultiFile(path, config.IncludeComments)
	}
	return r.WriteFile(path, config.IncludeComments)
}
