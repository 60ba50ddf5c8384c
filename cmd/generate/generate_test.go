package generate

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pgschema/pgdsl/dsl"
	"github.com/pgschema/pgdsl/dsl/sqltype"
	"github.com/pgschema/pgdsl/generator"
	"github.com/pgschema/pgdsl/internal/ignore"
)

func init() {
	generator.Register("generate-test", func(c *dsl.Context) {
		_, id := dsl.TableWithRefs(c, func() *dsl.Column {
			c.Name("accounts")
			return c.ColumnOf(func() (string, dsl.Type) {
				c.PrimaryKey()
				return "id", sqltype.BigSerial()
			})
		})
		c.UniqueIndexOf(func() (string, *dsl.Column) { return "accounts__id__idx", id })
	})
}

func TestGenerateCommand(t *testing.T) {
	if GenerateCmd.Use != "generate" {
		t.Errorf("Expected Use to be 'generate', got '%s'", GenerateCmd.Use)
	}
	if GenerateCmd.Short == "" || GenerateCmd.Long == "" {
		t.Error("Expected descriptions to be set")
	}

	defaults := map[string]string{
		"schema":             "",
		"all":                "false",
		"file":               "",
		"out-dir":            ".",
		"multi-file":         "false",
		"ignore-file":        ".pgdslignore",
		"format":             "false",
		"no-comments":        "false",
		"expect-fingerprint": "",
		"list":               "false",
	}
	for name, def := range defaults {
		flag := GenerateCmd.Flags().Lookup(name)
		if flag == nil {
			t.Errorf("Expected --%s flag to be defined", name)
			continue
		}
		if flag.DefValue != def {
			t.Errorf("Expected default of --%s to be %q, got %q", name, def, flag.DefValue)
		}
	}
}

func TestExecuteGenerateStdout(t *testing.T) {
	var buf bytes.Buffer
	config := &GenerateConfig{Schemas: []string{"generate-test"}, IncludeComments: true}
	if err := ExecuteGenerate(context.Background(), config, &buf); err != nil {
		t.Fatalf("ExecuteGenerate: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"-- Schema: generate-test\n",
		"-- Name: accounts; Type: TABLE;",
		"create table accounts (id bigserial primary key);\n",
		"create unique index accounts__id__idx on accounts(id);\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestExecuteGenerateIgnore(t *testing.T) {
	var buf bytes.Buffer
	config := &GenerateConfig{
		Schemas: []string{"generate-test"},
		Ignore:  &ignore.Config{Indexes: []string{"accounts__*"}},
	}
	if err := ExecuteGenerate(context.Background(), config, &buf); err != nil {
		t.Fatalf("ExecuteGenerate: %v", err)
	}
	if strings.Contains(buf.String(), "create unique index") {
		t.Errorf("ignored index was rendered:\n%s", buf.String())
	}
}

func TestExecuteGenerateFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.sql")

	var buf bytes.Buffer
	config := &GenerateConfig{Schemas: []string{"generate-test"}, File: path}
	if err := ExecuteGenerate(context.Background(), config, &buf); err != nil {
		t.Fatalf("ExecuteGenerate: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "Wrote generate-test to "+path) {
		t.Errorf("unexpected report: %q", buf.String())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "create table accounts") {
		t.Errorf("file content:\n%s", data)
	}
}

func TestExecuteGenerateMultiFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.sql")

	config := &GenerateConfig{Schemas: []string{"generate-test"}, File: path, MultiFile: true}
	if err := ExecuteGenerate(context.Background(), config, &bytes.Buffer{}); err != nil {
		t.Fatalf("ExecuteGenerate: %v", err)
	}
	main, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(main), "\\i tables/accounts.sql\n\\i indexes/accounts__id__idx.sql\n") {
		t.Errorf("main file:\n%s", main)
	}
}

func TestExecuteGenerateAll(t *testing.T) {
	dir := t.TempDir()
	config := &GenerateConfig{Schemas: []string{"generate-test"}, All: true, OutDir: dir}
	if err := ExecuteGenerate(context.Background(), config, &bytes.Buffer{}); err != nil {
		t.Fatalf("ExecuteGenerate: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "generate-test.sql")); err != nil {
		t.Errorf("expected per-schema file: %v", err)
	}
}

func TestExecuteGenerateFingerprintMismatch(t *testing.T) {
	config := &GenerateConfig{Schemas: []string{"generate-test"}, ExpectFingerprint: "deadbeefdeadbeef"}
	err := ExecuteGenerate(context.Background(), config, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "fingerprint mismatch") {
		t.Fatalf("error = %v; want fingerprint mismatch", err)
	}
}

func TestExecuteGenerateFingerprintNeedsSingleSchema(t *testing.T) {
	configs := map[string]*GenerateConfig{
		"all":      {Schemas: []string{"generate-test"}, All: true, OutDir: t.TempDir(), ExpectFingerprint: "deadbeef"},
		"multiple": {Schemas: []string{"generate-test", "generate-test"}, ExpectFingerprint: "deadbeef"},
	}
	for name, config := range configs {
		t.Run(name, func(t *testing.T) {
			err := ExecuteGenerate(context.Background(), config, &bytes.Buffer{})
			if err == nil || !strings.Contains(err.Error(), "cannot be combined with --all") {
				t.Fatalf("error = %v; want single-schema rejection", err)
			}
		})
	}
}

func TestGenerateAllAndExpectFingerprintExclusive(t *testing.T) {
	var stderr bytes.Buffer
	GenerateCmd.SetErr(&stderr)
	GenerateCmd.SetOut(&bytes.Buffer{})
	GenerateCmd.SetArgs([]string{"--all", "--expect-fingerprint", "deadbeef", "--out-dir", t.TempDir()})
	defer func() {
		all = false
		expectFingerprint = ""
		outDir = "."
		for _, name := range []string{"all", "expect-fingerprint", "out-dir"} {
			GenerateCmd.Flags().Lookup(name).Changed = false
		}
		GenerateCmd.SetArgs(nil)
		GenerateCmd.SetOut(nil)
		GenerateCmd.SetErr(nil)
	}()

	err := GenerateCmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "none of the others can be") {
		t.Fatalf("Execute error = %v; want mutually exclusive flag error", err)
	}
}

func TestGenerateList(t *testing.T) {
	var buf bytes.Buffer
	GenerateCmd.SetOut(&buf)
	GenerateCmd.SetArgs([]string{"--list"})
	defer func() {
		list = false
		GenerateCmd.SetArgs(nil)
		GenerateCmd.SetOut(nil)
	}()

	if err := GenerateCmd.Execute(); err != nil {
		t.Fatalf("generate --list: %v", err)
	}
	if !strings.Contains(buf.String(), "generate-test\n") {
		t.Errorf("list output missing schema: %q", buf.String())
	}
}
