package output

import (
	"strings"

	"github.com/pgschema/pgdsl/dsl"
)

// Step is a single rendered statement with the context needed to place it
type Step struct {
	SQL        string `json:"sql"`
	ObjectType string `json:"object_type"` // TABLE or INDEX
	ObjectName string `json:"object_name"`
	ObjectPath string `json:"object_path"` // "table" or "table.index"
	Source     string `json:"source"`
}

// Collector collects statements in declaration order
type Collector struct {
	steps []Step
}

// NewCollector creates a new Collector
func NewCollector() *Collector {
	return &Collector{
		steps: []Step{},
	}
}

// Collect records a rendered statement
func (c *Collector) Collect(stmt dsl.Statement) {
	path := stmt.Table
	if stmt.Kind != "table" && stmt.Table != "" {
		path = stmt.Table + "." + stmt.Name
	}
	c.steps = append(c.steps, Step{
		SQL:        strings.TrimSpace(stmt.SQL),
		ObjectType: strings.ToUpper(stmt.Kind),
		ObjectName: stmt.Name,
		ObjectPath: path,
		Source:     stmt.Source,
	})
}

// CollectAll records every statement
func (c *Collector) CollectAll(stmts []dsl.Statement) {
	for _, s := range stmts {
		c.Collect(s)
	}
}

// GetSteps returns all collected steps
func (c *Collector) GetSteps() []Step {
	return c.steps
}

// Writer is an interface for writing collected statements
type Writer interface {
	// WriteHeader writes the file header
	WriteHeader(header string)

	// WriteStep writes one statement, terminated by a semicolon
	WriteStep(step Step)
}

// WriteAll writes every collected step to w
func (c *Collector) WriteAll(w Writer) {
	for _, step := range c.steps {
		w.WriteStep(step)
	}
}

func writeComment(b *strings.Builder, step Step) {
	b.WriteString("--\n")
	b.WriteString("-- Name: " + step.ObjectName + "; Type: " + step.ObjectType + "; Source: " + step.Source + "\n")
	b.WriteString("--\n\n")
}
