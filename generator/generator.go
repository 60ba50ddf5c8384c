// Package generator turns registered schema declarations into DDL documents.
//
// A schema is a BuildFunc that declares tables and indexes on a dsl.Context.
// Each Build runs on its own context, so schemas can be generated in parallel:
//
//	generator.Register("shop", shop.Declare)
//	result, err := generator.Generate(ctx, "shop", generator.Options{})
//	fmt.Print(result.Render(true))
package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/pgschema/pgdsl/dsl"
	"github.com/pgschema/pgdsl/internal/fingerprint"
	"github.com/pgschema/pgdsl/internal/ignore"
	"github.com/pgschema/pgdsl/internal/logger"
	"github.com/pgschema/pgdsl/internal/sqlcheck"
	"github.com/pgschema/pgdsl/internal/version"
	"golang.org/x/sync/errgroup"
)

// Options configures how a schema is turned into statements.
type Options struct {
	Ignore              *ignore.Config // statements to leave out (optional)
	Format              bool           // rewrite statements in canonical PostgreSQL form
	ExpectedFingerprint string         // fail unless the fingerprint matches (optional, one schema)
}

// Result is the rendered output of one schema.
type Result struct {
	Schema      string
	Statements  []dsl.Statement
	Fingerprint *fingerprint.SchemaFingerprint
}

// Build runs build on a fresh construction context and renders it.
func Build(name string, build BuildFunc, opts Options) (*Result, error) {
	log := logger.Get()
	log.Debug("Building schema", "schema", name)

	c := dsl.New()
	build(c)

	stmts, err := c.Statements()
	if err != nil {
		return nil, fmt.Errorf("schema %s: %w", name, err)
	}
	total := len(stmts)
	stmts = opts.Ignore.Filter(stmts)
	if skipped := total - len(stmts); skipped > 0 {
		log.Debug("Ignored statements", "schema", name, "count", skipped)
	}

	fp, err := fingerprint.ComputeFingerprint(stmts)
	if err != nil {
		return nil, fmt.Errorf("schema %s: %w", name, err)
	}
	if opts.ExpectedFingerprint != "" {
		if err := fingerprint.Compare(opts.ExpectedFingerprint, fp); err != nil {
			return nil, fmt.Errorf("schema %s: %w", name, err)
		}
	}

	if opts.Format {
		if stmts, err = sqlcheck.FormatStatements(stmts); err != nil {
			return nil, fmt.Errorf("schema %s: %w", name, err)
		}
	}

	log.Debug("Schema built", "schema", name, "statements", len(stmts), "fingerprint", fp.Short())
	return &Result{Schema: name, Statements: stmts, Fingerprint: fp}, nil
}

// Generate builds the schema registered under name.
func Generate(ctx context.Context, name string, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	build, err := mustLookup(name)
	if err != nil {
		return nil, err
	}
	return Build(name, build, opts)
}

// GenerateAll builds the named schemas concurrently, one construction context
// each. Results come back in the order of names. With no names, every
// registered schema is built. opts applies to every schema, so an
// ExpectedFingerprint only makes sense when names holds a single schema.
func GenerateAll(ctx context.Context, names []string, opts Options) ([]*Result, error) {
	if len(names) == 0 {
		names = Names()
	}
	results := make([]*Result, len(names))

	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			r, err := Generate(ctx, name, opts)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Program joins the statements the same way dsl.Context.Program does.
func (r *Result) Program() string {
	if len(r.Statements) == 0 {
		return ""
	}
	sqls := make([]string, len(r.Statements))
	for i, s := range r.Statements {
		sqls[i] = s.SQL
	}
	return strings.Join(sqls, ";\n") + ";"
}

// Header returns the comment block written at the top of generated files.
func (r *Result) Header() string {
	var header strings.Builder

	header.WriteString("--\n")
	header.WriteString("-- pgdsl generated schema\n")
	header.WriteString("--\n")
	header.WriteString("\n")

	header.WriteString(fmt.Sprintf("-- Schema: %s\n", r.Schema))
	header.WriteString(fmt.Sprintf("-- Generated by pgdsl version %s\n", version.App()))
	header.WriteString(fmt.Sprintf("-- Statements: %d\n", len(r.Statements)))
	if r.Fingerprint != nil {
		header.WriteString(fmt.Sprintf("-- Fingerprint: %s\n", r.Fingerprint.Hash))
	}
	header.WriteString("\n")
	return header.String()
}
