package parser

import (
	"fmt"
	"strings"
)

const maybePrefix = "Maybe "

// ParseTypeExpr parses a trimmed type annotation. The grammar is
// "Maybe" WS Identifier for a nullable type, or a bare Identifier; the
// whitespace after Maybe is mandatory.
func ParseTypeExpr(s string) (TypeExpr, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return TypeExpr{}, fmt.Errorf("%w: empty type", ErrMalformedType)
	}

	kind := TypePlain
	if strings.HasPrefix(s, maybePrefix) {
		kind = TypeNullable
		s = strings.TrimSpace(s[len(maybePrefix):])
	}

	if !isIdentifier(s) {
		return TypeExpr{}, fmt.Errorf("%w: %q", ErrMalformedType, s)
	}

	return TypeExpr{Kind: kind, Name: s}, nil
}

// String renders the expression back into annotation syntax. Auto renders
// as the empty string.
func (t TypeExpr) String() string {
	switch t.Kind {
	case TypeNullable:
		return maybePrefix + t.Name
	case TypePlain:
		return t.Name
	}
	return ""
}

// parseReturnShape parses the return-type part of a name declaration:
// "()" for unit rows, "(T, ...)" for row tuples, or a bare type for a
// scalar result. A one-element tuple "(T)" is distinct from a bare "T".
func parseReturnShape(s string) (ReturnShape, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ReturnShape{}, fmt.Errorf("%w: empty return type", ErrMalformedType)
	}

	if !strings.HasPrefix(s, "(") {
		t, err := ParseTypeExpr(s)
		if err != nil {
			return ReturnShape{}, err
		}
		return ReturnShape{Kind: ReturnScalar, Scalar: t}, nil
	}

	if !strings.HasSuffix(s, ")") {
		return ReturnShape{}, fmt.Errorf("%w: unterminated tuple %q", ErrMalformedType, s)
	}

	inner := strings.TrimSpace(s[1 : len(s)-1])
	if inner == "" {
		return ReturnShape{Kind: ReturnRows}, nil
	}

	parts := strings.Split(inner, ",")
	columns := make([]TypeExpr, 0, len(parts))
	for _, part := range parts {
		t, err := ParseTypeExpr(part)
		if err != nil {
			return ReturnShape{}, err
		}
		columns = append(columns, t)
	}

	return ReturnShape{Kind: ReturnRows, Columns: columns}, nil
}

// String renders the shape back into annotation syntax. Undeclared renders
// as the empty string.
func (r ReturnShape) String() string {
	switch r.Kind {
	case ReturnScalar:
		return r.Scalar.String()
	case ReturnRows:
		parts := make([]string, len(r.Columns))
		for i, c := range r.Columns {
			parts[i] = c.String()
		}
		return "(" + strings.Join(parts, ", ") + ")"
	}
	return ""
}

// isIdentifier reports whether s matches [A-Za-z][A-Za-z0-9_]*.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isLetter(c) || c == '_' && i > 0 || c >= '0' && c <= '9' && i > 0 {
			continue
		}
		return false
	}
	return true
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || c == '_' || c >= '0' && c <= '9'
}
