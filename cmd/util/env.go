package util

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

// GetEnvWithDefault returns the value of an environment variable or a default value if not set
func GetEnvWithDefault(envVar, defaultValue string) string {
	if value := os.Getenv(envVar); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvIntWithDefault returns the value of an environment variable as int or a default value if not set
func GetEnvIntWithDefault(envVar string, defaultValue int) int {
	if value := os.Getenv(envVar); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// ApplyEnvString copies envVar into *target unless flag was set on the command line
func ApplyEnvString(cmd *cobra.Command, flag, envVar string, target *string) {
	if target == nil || cmd.Flags().Changed(flag) {
		return
	}
	if value := GetEnvWithDefault(envVar, ""); value != "" {
		*target = value
	}
}

// ConnectionFlags points at the connection flag values of a command
type ConnectionFlags struct {
	DB      *string
	User    *string
	Host    *string
	Port    *int
	AppName *string
	SSLMode *string
}

// PreRunEWithConnectionEnv creates a PreRunE function that fills connection
// parameters from PG* environment variables when the corresponding flags
// weren't explicitly set, then validates the required ones
func PreRunEWithConnectionEnv(flags ConnectionFlags) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ApplyEnvString(cmd, "db", "PGDATABASE", flags.DB)
		ApplyEnvString(cmd, "user", "PGUSER", flags.User)
		ApplyEnvString(cmd, "host", "PGHOST", flags.Host)
		ApplyEnvString(cmd, "application-name", "PGAPPNAME", flags.AppName)
		ApplyEnvString(cmd, "sslmode", "PGSSLMODE", flags.SSLMode)
		if flags.Port != nil && GetEnvIntWithDefault("PGPORT", 0) != 0 && !cmd.Flags().Changed("port") {
			*flags.Port = GetEnvIntWithDefault("PGPORT", 0)
		}

		if flags.DB == nil || *flags.DB == "" {
			return fmt.Errorf("database name is required (use --db flag or PGDATABASE environment variable)")
		}
		if flags.User == nil || *flags.User == "" {
			return fmt.Errorf("database user is required (use --user flag or PGUSER environment variable)")
		}
		return nil
	}
}

// PasswordOrEnv returns the flag value, falling back to PGPASSWORD
func PasswordOrEnv(password string) string {
	if password != "" {
		return password
	}
	return GetEnvWithDefault("PGPASSWORD", "")
}
