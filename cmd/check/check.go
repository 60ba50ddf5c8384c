package check

import (
	"context"
	"fmt"
	"io"

	"github.com/pgschema/pgdsl/cmd/util"
	"github.com/pgschema/pgdsl/generator"
	"github.com/pgschema/pgdsl/internal/color"
	"github.com/pgschema/pgdsl/internal/ignore"
	"github.com/pgschema/pgdsl/internal/sqlcheck"
	"github.com/spf13/cobra"
)

var (
	schema     string
	all        bool
	ignoreFile string
	noColor    bool
)

var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate generated SQL against the PostgreSQL grammar",
	Long: `Generate a registered schema and parse every statement with the PostgreSQL
parser. Reports each statement and fails if any of them is not valid PostgreSQL.`,
	RunE:         runCheck,
	SilenceUsage: true,
}

func init() {
	CheckCmd.Flags().StringVar(&schema, "schema", "", "Registered schema to check (or "+util.SchemaEnvVar+")")
	CheckCmd.Flags().BoolVar(&all, "all", false, "Check every registered schema")
	CheckCmd.Flags().StringVar(&ignoreFile, "ignore-file", ignore.IgnoreFileName, "Path to the ignore file")
	CheckCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

// InvalidError is returned when at least one statement failed to parse
type InvalidError struct {
	Failed int
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("%d statement(s) are not valid PostgreSQL", e.Failed)
}

func runCheck(cmd *cobra.Command, args []string) error {
	schemas, err := util.ResolveSchemas(cmd, schema, all)
	if err != nil {
		return err
	}
	ignoreConfig, err := util.LoadIgnore(ignoreFile)
	if err != nil {
		return err
	}
	return ExecuteCheck(cmd.Context(), schemas, ignoreConfig, color.New(!noColor), cmd.OutOrStdout())
}

// ExecuteCheck generates the schemas and writes a per-statement report to out
func ExecuteCheck(ctx context.Context, schemas []string, ignoreConfig *ignore.Config, c *color.Color, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	results, err := generator.GenerateAll(ctx, schemas, generator.Options{Ignore: ignoreConfig})
	if err != nil {
		return err
	}

	passed, failed := 0, 0
	for _, r := range results {
		fmt.Fprintf(out, "%s\n", c.Cyan("Schema "+r.Schema+":"))
		for _, res := range sqlcheck.Check(r.Statements) {
			fmt.Fprintln(out, c.FormatCheckLine(res.Statement.Kind, res.Statement.Name, res.Err))
			if res.Valid() {
				passed++
			} else {
				failed++
			}
		}
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, c.FormatCheckSummary(passed, failed))

	if failed > 0 {
		return &InvalidError{Failed: failed}
	}
	return nil
}
