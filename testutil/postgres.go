// Package testutil provides a disposable PostgreSQL for integration tests
package testutil

import (
	"context"
	"database/sql"
	"io"
	"log"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var suppressedLogger = log.New(io.Discard, "", 0)

// postgresImage honours PGDSL_POSTGRES_VERSION, defaulting to 17
func postgresImage() string {
	version := "17"
	if v := os.Getenv("PGDSL_POSTGRES_VERSION"); v != "" {
		version = v
	}
	return "postgres:" + version + "-alpine"
}

// Postgres is a running container plus an open connection to it
type Postgres struct {
	Container testcontainers.Container
	Host      string
	Port      int
	Database  string
	User      string
	Password  string
	DSN       string
	Conn      *sql.DB
}

// StartPostgres starts a container and registers its cleanup with t. The
// test is skipped in -short mode.
func StartPostgres(t *testing.T) *Postgres {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping PostgreSQL integration test in short mode")
	}

	ctx := context.Background()
	pg := &Postgres{Database: "shop", User: "pgdsl", Password: "pgdsl"}

	container, err := postgres.Run(ctx,
		postgresImage(),
		postgres.WithDatabase(pg.Database),
		postgres.WithUsername(pg.User),
		postgres.WithPassword(pg.Password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
		testcontainers.WithLogger(suppressedLogger),
	)
	if err != nil {
		t.Fatalf("Failed to start container: %v", err)
	}
	pg.Container = container

	t.Cleanup(func() {
		if pg.Conn != nil {
			pg.Conn.Close()
		}
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	if pg.DSN, err = container.ConnectionString(ctx, "sslmode=disable"); err != nil {
		t.Fatalf("Failed to get connection string: %v", err)
	}
	if pg.Conn, err = sql.Open("pgx", pg.DSN); err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	if pg.Host, err = container.Host(ctx); err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}
	pg.Port = port.Int()

	return pg
}

// TableExists reports whether a table of that name is visible in the public schema
func (p *Postgres) TableExists(t *testing.T, name string) bool {
	t.Helper()
	var exists bool
	err := p.Conn.QueryRow(
		"SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_schema = 'public' AND table_name = $1)",
		name,
	).Scan(&exists)
	if err != nil {
		t.Fatalf("Failed to query table %s: %v", name, err)
	}
	return exists
}
