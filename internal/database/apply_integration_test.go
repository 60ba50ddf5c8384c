package database

import (
	"context"
	"testing"

	"github.com/pgschema/pgdsl/testutil"
)

func TestApplyIntegration(t *testing.T) {
	pg := testutil.StartPostgres(t)
	ctx := context.Background()

	for _, driver := range []string{DriverPgx, DriverPostgres} {
		t.Run(driver, func(t *testing.T) {
			db, err := Connect(ctx, &ConnectionConfig{
				Driver:   driver,
				Host:     pg.Host,
				Port:     pg.Port,
				Database: pg.Database,
				User:     pg.User,
				Password: pg.Password,
				SSLMode:  "disable",
			})
			if err != nil {
				t.Fatalf("Connect: %v", err)
			}
			defer db.Close()

			table := "customers_" + driver
			stmts := []string{
				"create table " + table + " (id serial not null primary key, email varchar(255) unique)",
				"create index " + table + "__email__idx on " + table + "(email)",
			}
			result, err := Apply(ctx, db, stmts, ApplyOptions{LockTimeout: "5s"})
			if err != nil {
				t.Fatalf("Apply: %v", err)
			}
			if result.Executed != 2 {
				t.Errorf("Executed = %d; want 2", result.Executed)
			}
			if !pg.TableExists(t, table) {
				t.Errorf("table %s was not created", table)
			}
		})
	}
}

func TestApplyRollsBackOnFailure(t *testing.T) {
	pg := testutil.StartPostgres(t)
	ctx := context.Background()

	stmts := []string{
		"create table rollback_probe (id int)",
		"create index broken_idx on missing_table(id)",
	}
	if _, err := Apply(ctx, pg.Conn, stmts, ApplyOptions{}); err == nil {
		t.Fatal("Apply should fail when a statement fails")
	}
	if pg.TableExists(t, "rollback_probe") {
		t.Error("rollback_probe must not exist after a failed apply")
	}
}

func TestApplyRejectsBadLockTimeout(t *testing.T) {
	if _, err := Apply(context.Background(), nil, nil, ApplyOptions{LockTimeout: "5s'; drop"}); err == nil {
		t.Fatal("Apply should reject a malformed lock timeout")
	}
}
