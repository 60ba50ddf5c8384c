package database

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	"github.com/pgschema/pgdsl/internal/logger"
)

// ApplyOptions tunes how a program is executed
type ApplyOptions struct {
	// LockTimeout is a PostgreSQL interval such as "5s"; empty leaves the server default
	LockTimeout string
}

// ApplyResult reports what was executed
type ApplyResult struct {
	Executed int
}

var lockTimeoutPattern = regexp.MustCompile(`^[0-9]+(ms|s|min|h)?$`)

// Apply runs the statements in order inside a single transaction. Any failure
// rolls the whole transaction back.
func Apply(ctx context.Context, db *sql.DB, stmts []string, opts ApplyOptions) (*ApplyResult, error) {
	if opts.LockTimeout != "" && !lockTimeoutPattern.MatchString(opts.LockTimeout) {
		return nil, fmt.Errorf("invalid lock timeout %q", opts.LockTimeout)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if opts.LockTimeout != "" {
		stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%s'", opts.LockTimeout)
		if _, err := ExecContextWithLogging(ctx, tx, stmt, "set lock timeout"); err != nil {
			return nil, fmt.Errorf("failed to set lock timeout: %w", err)
		}
	}

	for i, stmt := range stmts {
		desc := fmt.Sprintf("statement %d of %d", i+1, len(stmts))
		if _, err := ExecContextWithLogging(ctx, tx, stmt, desc); err != nil {
			return nil, fmt.Errorf("failed to execute %s: %w", desc, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	logger.Get().Debug("Program applied", "statements", len(stmts))
	return &ApplyResult{Executed: len(stmts)}, nil
}
