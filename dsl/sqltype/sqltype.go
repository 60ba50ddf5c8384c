// Package sqltype is the catalog of column types accepted by dsl.Context.Type.
// Types are plain values; they render the same text every time.
package sqltype

import (
	"strconv"
	"strings"
)

// Type is an SQL type such as varchar(255) or timestamp without time zone.
type Type struct {
	name   string
	args   []int
	suffix string
}

// Render implements dsl.Element.
func (t Type) Render() (string, error) {
	return t.String(), nil
}

func (t Type) String() string {
	var b strings.Builder
	b.WriteString(t.name)
	if len(t.args) > 0 {
		args := make([]string, len(t.args))
		for i, a := range t.args {
			args[i] = strconv.Itoa(a)
		}
		b.WriteString("(" + strings.Join(args, ", ") + ")")
	}
	if t.suffix != "" {
		b.WriteString(" " + t.suffix)
	}
	return b.String()
}

// limit keeps at most n leading arguments.
func limit(args []int, n int) []int {
	if len(args) > n {
		args = args[:n]
	}
	return append([]int(nil), args...)
}

func Serial() Type { return Type{name: "serial"} }
func BigSerial() Type { return Type{name: "bigserial"} }
func Bool() Type { return Type{name: "bool"} }
func Text() Type { return Type{name: "text"} }
func Date() Type { return Type{name: "date"} }
func BigInt() Type { return Type{name: "bigint"} }
func UUID() Type { return Type{name: "uuid"} }
func JSONB() Type { return Type{name: "jsonb"} }

// Int renders "int" or, given a display width, "int(n)".
func Int(width ...int) Type {
	return Type{name: "int", args: limit(width, 1)}
}

// Varchar renders "varchar" or "varchar(n)".
func Varchar(length ...int) Type {
	return Type{name: "varchar", args: limit(length, 1)}
}

// Numeric renders "numeric", "numeric(p)" or "numeric(p, s)".
func Numeric(precisionScale ...int) Type {
	return Type{name: "numeric", args: limit(precisionScale, 2)}
}

// Timestamp renders "timestamp"; TimestampWithoutTimeZone adds the zone clause.
func Timestamp() Type { return Type{name: "timestamp"} }

func TimestampWithoutTimeZone() Type {
	return Type{name: "timestamp", suffix: "without time zone"}
}

func Time() Type { return Type{name: "time"} }

func TimeWithTimeZone() Type {
	return Type{name: "time", suffix: "with time zone"}
}

// Custom renders value verbatim, for types missing from the catalog.
func Custom(value string) Type {
	return Type{name: value}
}
