package apply

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pgschema/pgdsl/cmd/util"
	"github.com/pgschema/pgdsl/generator"
	"github.com/pgschema/pgdsl/internal/database"
	"github.com/pgschema/pgdsl/internal/ignore"
	"github.com/pgschema/pgdsl/internal/include"
	"github.com/pgschema/pgdsl/internal/sqlcheck"
	"github.com/spf13/cobra"
)

var (
	applyHost            string
	applyPort            int
	applyDB              string
	applyUser            string
	applyPassword        string
	applyDriver          string
	applySSLMode         string
	applySchema          string
	applyFile            string
	applyIgnoreFile      string
	applyAutoApprove     bool
	applyDryRun          bool
	applyLockTimeout     string
	applyApplicationName string
)

var ApplyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Create a generated schema in a database",
	Long: `Execute the statements of a registered schema (--schema) or of a previously
generated SQL file (--file) against a database, inside one transaction.`,
	SilenceUsage: true,
	PreRunE: util.PreRunEWithConnectionEnv(util.ConnectionFlags{
		DB:      &applyDB,
		User:    &applyUser,
		Host:    &applyHost,
		Port:    &applyPort,
		AppName: &applyApplicationName,
		SSLMode: &applySSLMode,
	}),
	RunE: runApply,
}

func init() {
	// Target database connection flags
	ApplyCmd.Flags().StringVar(&applyHost, "host", "localhost", "Database server host (or PGHOST)")
	ApplyCmd.Flags().IntVar(&applyPort, "port", 5432, "Database server port (or PGPORT)")
	ApplyCmd.Flags().StringVar(&applyDB, "db", "", "Database name (or PGDATABASE)")
	ApplyCmd.Flags().StringVar(&applyUser, "user", "", "Database user name (or PGUSER)")
	ApplyCmd.Flags().StringVar(&applyPassword, "password", "", "Database password (or PGPASSWORD)")
	ApplyCmd.Flags().StringVar(&applyDriver, "driver", database.DriverPgx, "database/sql driver: pgx or postgres")
	ApplyCmd.Flags().StringVar(&applySSLMode, "sslmode", "", "SSL mode (or PGSSLMODE); defaults to prefer with pgx and require with postgres")
	ApplyCmd.Flags().StringVar(&applyApplicationName, "application-name", "pgdsl", "Application name for database connection (or PGAPPNAME)")

	// What to apply
	ApplyCmd.Flags().StringVar(&applySchema, "schema", "", "Registered schema to apply (or "+util.SchemaEnvVar+")")
	ApplyCmd.Flags().StringVar(&applyFile, "file", "", "Generated SQL file to apply instead of a registered schema")
	ApplyCmd.Flags().StringVar(&applyIgnoreFile, "ignore-file", ignore.IgnoreFileName, "Path to the ignore file")

	// Apply behavior flags
	ApplyCmd.Flags().BoolVar(&applyAutoApprove, "auto-approve", false, "Apply without prompting for approval")
	ApplyCmd.Flags().BoolVar(&applyDryRun, "dry-run", false, "Print the statements without executing them")
	ApplyCmd.Flags().StringVar(&applyLockTimeout, "lock-timeout", "", "Maximum time to wait for database locks (e.g., 500ms, 30s)")

	ApplyCmd.MarkFlagsMutuallyExclusive("schema", "file")
}

// ApplyConfig holds the resolved options of one apply run
type ApplyConfig struct {
	Connection  database.ConnectionConfig
	Statements  []string
	AutoApprove bool
	DryRun      bool
	LockTimeout string
}

func runApply(cmd *cobra.Command, args []string) error {
	conn, err := connectionConfig()
	if err != nil {
		return err
	}

	var stmts []string
	if applyFile != "" {
		stmts, err = StatementsFromFile(applyFile)
	} else {
		stmts, err = statementsFromSchema(cmd)
	}
	if err != nil {
		return err
	}

	config := &ApplyConfig{
		Connection:  conn,
		Statements:  stmts,
		AutoApprove: applyAutoApprove,
		DryRun:      applyDryRun,
		LockTimeout: applyLockTimeout,
	}
	return ExecuteApply(cmd.Context(), config, cmd.InOrStdin(), cmd.OutOrStdout())
}

// connectionConfig builds the connection settings from the flags, failing
// early when the driver cannot use the requested sslmode
func connectionConfig() (database.ConnectionConfig, error) {
	conn := database.ConnectionConfig{
		Driver:          applyDriver,
		Host:            applyHost,
		Port:            applyPort,
		Database:        applyDB,
		User:            applyUser,
		Password:        util.PasswordOrEnv(applyPassword),
		SSLMode:         applySSLMode,
		ApplicationName: applyApplicationName,
	}
	sslMode, err := conn.ResolveSSLMode()
	if err != nil {
		return database.ConnectionConfig{}, err
	}
	conn.SSLMode = sslMode
	return conn, nil
}

func statementsFromSchema(cmd *cobra.Command) ([]string, error) {
	schemas, err := util.ResolveSchemas(cmd, applySchema, false)
	if err != nil {
		return nil, err
	}
	ignoreConfig, err := util.LoadIgnore(applyIgnoreFile)
	if err != nil {
		return nil, err
	}
	r, err := generator.Generate(cmd.Context(), schemas[0], generator.Options{Ignore: ignoreConfig})
	if err != nil {
		return nil, err
	}
	stmts := make([]string, len(r.Statements))
	for i, s := range r.Statements {
		stmts[i] = s.SQL
	}
	return stmts, nil
}

// StatementsFromFile reads a generated SQL file, inlining \i includes of
// multi-file output, and splits it into statements.
func StatementsFromFile(path string) ([]string, error) {
	sql, err := include.Expand(path)
	if err != nil {
		return nil, err
	}
	for _, line := range strings.Split(sql, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "\\") {
			return nil, fmt.Errorf("%s contains unsupported psql meta-command %q", path, strings.TrimSpace(line))
		}
	}
	return sqlcheck.Split(sql)
}

// ExecuteApply prints the statements, asks for confirmation unless
// auto-approved, and executes them in one transaction.
func ExecuteApply(ctx context.Context, config *ApplyConfig, in io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if len(config.Statements) == 0 {
		fmt.Fprintln(out, "Nothing to apply.")
		return nil
	}

	fmt.Fprintf(out, "%d statement(s) to apply:\n\n", len(config.Statements))
	for _, stmt := range config.Statements {
		fmt.Fprintf(out, "%s;\n", stmt)
	}

	if config.DryRun {
		return nil
	}

	if !config.AutoApprove {
		fmt.Fprint(out, "\nDo you want to apply these statements? (yes/no): ")
		response, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("failed to read user input: %w", err)
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "yes" && response != "y" {
			fmt.Fprintln(out, "Apply cancelled.")
			return nil
		}
	}

	fmt.Fprintln(out, "\nApplying statements...")

	conn, err := database.Connect(ctx, &config.Connection)
	if err != nil {
		return err
	}
	defer conn.Close()

	result, err := database.Apply(ctx, conn, config.Statements, database.ApplyOptions{LockTimeout: config.LockTimeout})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Applied %d statement(s).\n", result.Executed)
	return nil
}
