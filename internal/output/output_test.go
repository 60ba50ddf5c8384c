package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pgschema/pgdsl/dsl"
)

func sampleStatements() []dsl.Statement {
	return []dsl.Statement{
		{Kind: "table", Name: "users", Table: "users", SQL: "create table users (id serial)", Source: "shop.go:10"},
		{Kind: "index", Name: "users__id__idx", Table: "users", SQL: "create index users__id__idx on users(id)", Source: "shop.go:20"},
	}
}

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.CollectAll(sampleStatements())

	want := []Step{
		{SQL: "create table users (id serial)", ObjectType: "TABLE", ObjectName: "users", ObjectPath: "users", Source: "shop.go:10"},
		{SQL: "create index users__id__idx on users(id)", ObjectType: "INDEX", ObjectName: "users__id__idx", ObjectPath: "users.users__id__idx", Source: "shop.go:20"},
	}
	if diff := cmp.Diff(want, c.GetSteps()); diff != "" {
		t.Errorf("steps mismatch (-want +got):\n%s", diff)
	}
}

func TestSingleFileWriter(t *testing.T) {
	tests := []struct {
		name     string
		comments bool
		expected string
	}{
		{
			name:     "without comments",
			comments: false,
			expected: "-- header\n" +
				"create table users (id serial);\n" +
				"\n" +
				"create index users__id__idx on users(id);\n",
		},
		{
			name:     "with comments",
			comments: true,
			expected: "-- header\n" +
				"--\n-- Name: users; Type: TABLE; Source: shop.go:10\n--\n\n" +
				"create table users (id serial);\n" +
				"\n" +
				"--\n-- Name: users__id__idx; Type: INDEX; Source: shop.go:20\n--\n\n" +
				"create index users__id__idx on users(id);\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCollector()
			c.CollectAll(sampleStatements())
			w := NewSingleFileWriter(tt.comments)
			w.WriteHeader("-- header\n")
			c.WriteAll(w)
			if diff := cmp.Diff(tt.expected, w.String()); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSingleFileWriterEmpty(t *testing.T) {
	if got := NewSingleFileWriter(true).String(); got != "" {
		t.Errorf("String() = %q; want empty", got)
	}
}

func TestMultiFileWriter(t *testing.T) {
	dir := t.TempDir()
	mainPath := filepath.Join(dir, "schema.sql")

	w, err := NewMultiFileWriter(mainPath, false)
	if err != nil {
		t.Fatalf("NewMultiFileWriter: %v", err)
	}
	c := NewCollector()
	c.CollectAll(sampleStatements())
	// Index first to check that the main file still lists tables first.
	steps := c.GetSteps()
	w.WriteHeader("-- header\n")
	w.WriteStep(steps[1])
	w.WriteStep(steps[0])
	if err := w.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}

	files := map[string]string{
		"schema.sql":                 "-- header\n\\i tables/users.sql\n\\i indexes/users__id__idx.sql\n",
		"tables/users.sql":           "create table users (id serial);\n",
		"indexes/users__id__idx.sql": "create index users__id__idx on users(id);\n",
	}
	for rel, want := range files {
		data, err := os.ReadFile(filepath.Join(dir, rel))
		if err != nil {
			t.Errorf("reading %s: %v", rel, err)
			continue
		}
		if diff := cmp.Diff(want, string(data)); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", rel, diff)
		}
	}
}

func TestMultiFileWriterNameCollisions(t *testing.T) {
	dir := t.TempDir()
	mainPath := filepath.Join(dir, "schema.sql")

	w, err := NewMultiFileWriter(mainPath, false)
	if err != nil {
		t.Fatalf("NewMultiFileWriter: %v", err)
	}
	w.WriteStep(Step{ObjectType: "TABLE", ObjectName: "User", SQL: `create table "User" (a int)`})
	w.WriteStep(Step{ObjectType: "TABLE", ObjectName: "user", SQL: "create table user (b int)"})
	w.WriteStep(Step{ObjectType: "TABLE", ObjectName: "user_2", SQL: "create table user_2 (c int)"})
	w.WriteStep(Step{ObjectType: "TABLE", ObjectName: "!!", SQL: `create table "!!" (d int)`})
	if err := w.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}

	files := map[string]string{
		"schema.sql":          "\\i tables/user.sql\n\\i tables/user_2.sql\n\\i tables/user_2_2.sql\n\\i tables/unnamed.sql\n",
		"tables/user.sql":     "create table \"User\" (a int);\n",
		"tables/user_2.sql":   "create table user (b int);\n",
		"tables/user_2_2.sql": "create table user_2 (c int);\n",
		"tables/unnamed.sql":  "create table \"!!\" (d int);\n",
	}
	for rel, want := range files {
		data, err := os.ReadFile(filepath.Join(dir, rel))
		if err != nil {
			t.Errorf("reading %s: %v", rel, err)
			continue
		}
		if diff := cmp.Diff(want, string(data)); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", rel, diff)
		}
	}
}

func TestSanitizeFileName(t *testing.T) {
	tests := map[string]string{
		"users":           "users",
		"User Table":      "user_table",
		"__weird!!name__": "weird__name",
	}
	for in, want := range tests {
		if got := sanitizeFileName(in); got != want {
			t.Errorf("sanitizeFileName(%q) = %q; want %q", in, got, want)
		}
	}
}
