package sqlcheck

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pgschema/pgdsl/dsl"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		sql     string
		wantErr string
	}{
		{name: "create table", sql: "create table users (id serial not null primary key, email varchar(255) unique)"},
		{name: "create index", sql: "create unique index users__email__idx on users(email)"},
		{name: "foreign key", sql: "create table orders (user_id int references users(id))"},
		{name: "auto_increment is not postgres", sql: "create table t (id int auto_increment)", wantErr: "syntax error"},
		{name: "two statements", sql: "select 1; select 2", wantErr: "expected 1 statement, found 2"},
		{name: "empty", sql: "", wantErr: "expected 1 statement, found 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.sql)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate(%q) unexpected error: %v", tt.sql, err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate(%q) error = %v; want containing %q", tt.sql, err, tt.wantErr)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	stmts := []dsl.Statement{
		{Kind: "table", Name: "users", SQL: "create table users (id serial)"},
		{Kind: "table", Name: "broken", SQL: "create table broken (id int auto_increment)"},
	}
	results := Check(stmts)
	if len(results) != 2 {
		t.Fatalf("Check returned %d results; want 2", len(results))
	}
	got := []bool{results[0].Valid(), results[1].Valid()}
	if diff := cmp.Diff([]bool{true, false}, got); diff != "" {
		t.Errorf("validity mismatch (-want +got):\n%s", diff)
	}
	if n := Failed(results); n != 1 {
		t.Errorf("Failed() = %d; want 1", n)
	}
}

func TestFormat(t *testing.T) {
	got, err := Format("create   table users (id serial primary key)")
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !strings.HasPrefix(got, "CREATE TABLE users") {
		t.Errorf("Format() = %q; want canonical upper-case keywords", got)
	}

	if _, err := Format("create tabel users ()"); err == nil {
		t.Error("Format should fail on invalid SQL")
	}
}

func TestFormatStatementsKeepsMetadata(t *testing.T) {
	in := []dsl.Statement{{Kind: "index", Name: "i", Table: "t", SQL: "create index i on t(c)", Source: "x.go:1"}}
	out, err := FormatStatements(in)
	if err != nil {
		t.Fatalf("FormatStatements: %v", err)
	}
	if out[0].Name != "i" || out[0].Table != "t" || out[0].Source != "x.go:1" {
		t.Errorf("metadata lost: %+v", out[0])
	}
	if !strings.HasPrefix(out[0].SQL, "CREATE INDEX i ON") {
		t.Errorf("SQL = %q; want canonical form", out[0].SQL)
	}
	if in[0].SQL != "create index i on t(c)" {
		t.Error("input statements must not be modified")
	}
}

func TestSplit(t *testing.T) {
	program := "create table a (id int);\ncreate table b (note text default 'x;y');\n"
	got, err := Split(program)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	want := []string{
		"create table a (id int)",
		"create table b (note text default 'x;y')",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Split mismatch (-want +got):\n%s", diff)
	}
}
