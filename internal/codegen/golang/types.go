package golang

import (
	"fmt"
	"strings"

	"github.com/querydef/querydef/internal/parser"
)

// wellKnownTypes maps annotation type names onto Go types. Names outside
// the table pass through verbatim so query files can name Go types
// directly.
var wellKnownTypes = map[string]string{
	"Int":       "int64",
	"Integer":   "int64",
	"BigInt":    "int64",
	"SmallInt":  "int16",
	"String":    "string",
	"Text":      "string",
	"UUID":      "string",
	"Bool":      "bool",
	"Boolean":   "bool",
	"Float":     "float64",
	"Double":    "float64",
	"Bytes":     "[]byte",
	"ByteA":     "[]byte",
	"Date":      "time.Time",
	"Time":      "time.Time",
	"Timestamp": "time.Time",
}

// goType maps a type annotation onto the Go type generated bindings use.
// An unannotated parameter defaults to string, the generic text type.
func goType(t parser.TypeExpr) string {
	if t.Kind == parser.TypeAuto {
		return "string"
	}

	base, ok := wellKnownTypes[t.Name]
	if !ok {
		base = t.Name
	}

	if t.Kind == parser.TypeNullable && !strings.HasPrefix(base, "[]") {
		return "*" + base
	}
	return base
}

// scalarGoType maps a scalar return annotation onto the Go type carrying
// the statement's affected-row count.
func scalarGoType(t parser.TypeExpr) (string, error) {
	if t.Kind == parser.TypeAuto {
		return "int64", nil
	}
	if t.Kind == parser.TypeNullable {
		return "", fmt.Errorf("nullable scalar return %q is not supported", t.Name)
	}
	return goType(t), nil
}
