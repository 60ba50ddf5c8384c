package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pgschema/pgdsl/cmd"
	"github.com/pgschema/pgdsl/generator"
)

func TestSampleSchemaRegistered(t *testing.T) {
	if _, ok := generator.Lookup("shop"); !ok {
		t.Fatalf("shop schema not registered; have %v", generator.Names())
	}
}

func TestGenerateShop(t *testing.T) {
	var buf bytes.Buffer
	cmd.RootCmd.SetOut(&buf)
	cmd.RootCmd.SetErr(&buf)
	cmd.RootCmd.SetArgs([]string{"generate", "--schema", "shop", "--no-comments", "--ignore-file", ""})
	defer cmd.RootCmd.SetArgs(nil)

	if err := cmd.RootCmd.Execute(); err != nil {
		t.Fatalf("pgdsl generate --schema shop failed: %v\n%s", err, buf.String())
	}

	output := buf.String()
	for _, want := range []string{
		"-- Schema: shop\n",
		"-- Statements: 29\n",
		"create table countries (id serial not null primary key, name varchar, country_code varchar);\n",
		"create index user_request_items__request_id__idx on user_request_items(request_id);\n",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(output, "-- Name:") {
		t.Error("--no-comments should drop per-statement comments")
	}
}

func TestCheckShop(t *testing.T) {
	var buf bytes.Buffer
	cmd.RootCmd.SetOut(&buf)
	cmd.RootCmd.SetErr(&buf)
	cmd.RootCmd.SetArgs([]string{"check", "--schema", "shop", "--no-color", "--ignore-file", ""})
	defer cmd.RootCmd.SetArgs(nil)

	if err := cmd.RootCmd.Execute(); err != nil {
		t.Fatalf("pgdsl check --schema shop failed: %v\n%s", err, buf.String())
	}
	if !strings.Contains(buf.String(), "Check: 29 valid, 0 invalid.") {
		t.Errorf("unexpected check report:\n%s", buf.String())
	}
}
