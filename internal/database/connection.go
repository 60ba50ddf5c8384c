// Package database connects to PostgreSQL and applies generated programs.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	"github.com/pgschema/pgdsl/internal/logger"
)

// Supported database/sql driver names
const (
	DriverPgx      = "pgx"
	DriverPostgres = "postgres"
)

// ConnectionConfig holds database connection parameters
type ConnectionConfig struct {
	Driver          string
	Host            string
	Port            int
	Database        string
	User            string
	Password        string
	SSLMode         string
	ApplicationName string
}

// DriverName returns the database/sql driver to open, defaulting to pgx
func (c *ConnectionConfig) DriverName() (string, error) {
	switch c.Driver {
	case "", DriverPgx:
		return DriverPgx, nil
	case DriverPostgres:
		return DriverPostgres, nil
	default:
		return "", fmt.Errorf("unsupported driver %q (use %q or %q)", c.Driver, DriverPgx, DriverPostgres)
	}
}

// ResolveSSLMode returns the sslmode sent to the driver. An empty SSLMode
// means the driver default: prefer for pgx, require for lib/pq. lib/pq
// rejects allow and prefer, so those fail here instead of at connect time.
func (c *ConnectionConfig) ResolveSSLMode() (string, error) {
	driver, err := c.DriverName()
	if err != nil {
		return "", err
	}

	switch c.SSLMode {
	case "":
		if driver == DriverPostgres {
			return "require", nil
		}
		return "prefer", nil
	case "disable", "require", "verify-ca", "verify-full":
		return c.SSLMode, nil
	case "allow", "prefer":
		if driver == DriverPostgres {
			return "", fmt.Errorf("sslmode %q is not supported by the %s driver (use disable, require, verify-ca or verify-full, or --driver %s)",
				c.SSLMode, DriverPostgres, DriverPgx)
		}
		return c.SSLMode, nil
	default:
		return "", fmt.Errorf("invalid sslmode %q", c.SSLMode)
	}
}

// Connect opens a connection with the configured driver and pings it
func Connect(ctx context.Context, config *ConnectionConfig) (*sql.DB, error) {
	log := logger.Get()

	driver, err := config.DriverName()
	if err != nil {
		return nil, err
	}
	sslMode, err := config.ResolveSSLMode()
	if err != nil {
		return nil, err
	}
	resolved := *config
	resolved.SSLMode = sslMode
	config = &resolved

	log.Debug("Attempting database connection",
		"driver", driver,
		"host", config.Host,
		"port", config.Port,
		"database", config.Database,
		"user", config.User,
		"sslmode", config.SSLMode,
		"application_name", config.ApplicationName,
	)

	conn, err := sql.Open(driver, buildDSN(config))
	if err != nil {
		log.Debug("Database connection failed", "error", err)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := conn.PingContext(ctx); err != nil {
		log.Debug("Database ping failed", "error", err)
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Debug("Database connection established")
	return conn, nil
}

// buildDSN constructs a key/value connection string understood by both drivers
func buildDSN(config *ConnectionConfig) string {
	var parts []string

	parts = append(parts, fmt.Sprintf("host=%s", config.Host))
	parts = append(parts, fmt.Sprintf("port=%d", config.Port))
	parts = append(parts, fmt.Sprintf("dbname=%s", config.Database))
	parts = append(parts, fmt.Sprintf("user=%s", config.User))

	if config.Password != "" {
		parts = append(parts, fmt.Sprintf("password=%s", quoteValue(config.Password)))
	}
	if config.SSLMode != "" {
		parts = append(parts, fmt.Sprintf("sslmode=%s", config.SSLMode))
	}
	if config.ApplicationName != "" {
		parts = append(parts, fmt.Sprintf("application_name=%s", quoteValue(config.ApplicationName)))
	}

	return strings.Join(parts, " ")
}

// quoteValue single-quotes a DSN value when it holds spaces or quotes
func quoteValue(v string) string {
	if !strings.ContainsAny(v, " '\\") {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}
