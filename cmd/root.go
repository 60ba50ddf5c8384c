package cmd

import (
	"fmt"
	"os"

	"github.com/pgschema/pgdsl/cmd/apply"
	"github.com/pgschema/pgdsl/cmd/check"
	"github.com/pgschema/pgdsl/cmd/generate"
	"github.com/pgschema/pgdsl/internal/logger"
	"github.com/pgschema/pgdsl/internal/version"
	"github.com/spf13/cobra"
)

var Debug bool

var RootCmd = &cobra.Command{
	Use:   "pgdsl",
	Short: "Declarative PostgreSQL schema builder",
	Long: fmt.Sprintf(`pgdsl turns schemas declared with Go builder calls into PostgreSQL DDL.

Version: %s

Commands:
  generate  Generate SQL from a registered schema
  check     Validate generated SQL against the PostgreSQL grammar
  apply     Create a generated schema in a database

Use "pgdsl [command] --help" for more information about a command.`, version.String()),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger()
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "Enable debug logging")
	RootCmd.AddCommand(generate.GenerateCmd)
	RootCmd.AddCommand(check.CheckCmd)
	RootCmd.AddCommand(apply.ApplyCmd)
	RootCmd.AddCommand(VersionCmd)
}

func setupLogger() {
	logger.Setup(os.Stderr, Debug)
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
