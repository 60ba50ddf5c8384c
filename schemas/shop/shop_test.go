package shop

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pgschema/pgdsl/dsl"
	"github.com/pgschema/pgdsl/generator"
	"github.com/pgschema/pgdsl/internal/sqlcheck"
)

func statements(t *testing.T) []dsl.Statement {
	t.Helper()
	c := dsl.New()
	Declare(c)
	stmts, err := c.Statements()
	if err != nil {
		t.Fatalf("Statements: %v", err)
	}
	return stmts
}

func TestDeclareCounts(t *testing.T) {
	counts := map[string]int{}
	for _, s := range statements(t) {
		counts[s.Kind]++
	}
	if diff := cmp.Diff(map[string]int{"table": 21, "index": 8}, counts); diff != "" {
		t.Errorf("statement counts mismatch (-want +got):\n%s", diff)
	}
}

func TestDeclareRendering(t *testing.T) {
	bySQLName := map[string]string{}
	for _, s := range statements(t) {
		bySQLName[s.Name] = s.SQL
	}

	tests := map[string]string{
		"countries": "create table countries (id serial not null primary key, name varchar, country_code varchar)",
		"cities": "create table cities (id serial not null primary key, name varchar not null, " +
			"name_ascii varchar, country_id int references countries(id))",
		"buyers_info": "create table buyers_info (customer_id int not null primary key references customers(id))",
		"auth_otp": "create table auth_otp (id serial not null primary key, phone varchar, otp varchar, " +
			"issued_at timestamp without time zone, language varchar, " +
			"created_at timestamp without time zone not null default now(), " +
			"updated_at timestamp without time zone not null default now())",
		"short_links": "create table short_links (id varchar not null primary key, type varchar, " +
			"created_at timestamp without time zone not null default now(), " +
			"updated_at timestamp without time zone not null default now())",
		"user_request_items": "create table user_request_items (id serial not null primary key, " +
			"request_id int references user_requests(id), item_id int references user_items(id), " +
			"created_at timestamp without time zone not null default now(), " +
			"updated_at timestamp without time zone not null default now())",
		"orders__user_id__idx":            "create index orders__user_id__idx on orders(user_id)",
		"user_order_items__order_id__idx": "create index user_order_items__order_id__idx on user_order_items(order_id)",
	}
	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(want, bySQLName[name]); diff != "" {
				t.Errorf("%s mismatch (-want +got):\n%s", name, diff)
			}
		})
	}
}

func TestDeclareTypes(t *testing.T) {
	var products string
	for _, s := range statements(t) {
		if s.Name == "user_products" {
			products = s.SQL
		}
	}
	for _, want := range []string{
		"delivery_time_from time with time zone",
		"standard_charge numeric(100, 2)",
		"product_id text references user_product_categories(id)",
		"short_link_id varchar references short_links(id)",
	} {
		if !strings.Contains(products, want) {
			t.Errorf("user_products missing %q:\n%s", want, products)
		}
	}
}

func TestIndexesFollowTheirTables(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range statements(t) {
		switch s.Kind {
		case "table":
			seen[s.Name] = true
		case "index":
			if !seen[s.Table] {
				t.Errorf("index %s declared before table %s", s.Name, s.Table)
			}
		}
	}
}

func TestDeclareIsValidPostgres(t *testing.T) {
	for _, r := range sqlcheck.Check(statements(t)) {
		if !r.Valid() {
			t.Errorf("%s %s: %v\n%s", r.Statement.Kind, r.Statement.Name, r.Err, r.Statement.SQL)
		}
	}
}

func TestRegistered(t *testing.T) {
	r, err := generator.Generate(context.Background(), Name, generator.Options{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	program := r.Program()
	if !strings.HasPrefix(program, "create table countries (") {
		t.Errorf("program should start with countries:\n%s", program)
	}
	if !strings.HasSuffix(program, "on user_request_items(request_id);") {
		t.Errorf("program should end with the last index:\n%s", program)
	}
	if got := strings.Count(program, ";\n") + 1; got != 29 {
		t.Errorf("program has %d statements; want 29", got)
	}
}
