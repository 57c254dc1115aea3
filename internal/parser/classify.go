package parser

import (
	"fmt"
	"strings"
)

type lineKind int

const (
	lineBody lineKind = iota
	lineDoc
	lineNameDecl
	lineParamDecl
)

// classified is the result of classifying one physical line of input.
type classified struct {
	kind  lineKind
	ident string      // lineNameDecl, lineParamDecl
	ret   ReturnShape // lineNameDecl
	typ   TypeExpr    // lineParamDecl
	text  string      // lineDoc, marker stripped
}

// classifyLine tags one line as a name/return declaration, a parameter
// declaration, a documentation comment, or body text, in that priority
// order. Body classification ends the metadata block for the statement.
func classifyLine(raw string) (classified, error) {
	rest, ok := stripCommentMarker(strings.TrimSpace(raw))
	if !ok {
		return classified{kind: lineBody}, nil
	}

	meta := strings.TrimSpace(rest)
	switch {
	case strings.HasPrefix(meta, "name:"):
		ident, ret, err := parseNameDecl(meta[len("name:"):])
		if err != nil {
			return classified{}, err
		}
		return classified{kind: lineNameDecl, ident: ident, ret: ret}, nil

	case strings.HasPrefix(meta, ":"):
		ident, typ, err := parseParamDecl(meta[1:])
		if err != nil {
			return classified{}, err
		}
		return classified{kind: lineParamDecl, ident: ident, typ: typ}, nil
	}

	return classified{kind: lineDoc, text: rest}, nil
}

// stripCommentMarker removes the leading comment marker, two hyphens
// followed by a space. A line that is exactly "--" counts as an empty
// comment.
func stripCommentMarker(trimmed string) (string, bool) {
	if trimmed == "--" {
		return "", true
	}
	if strings.HasPrefix(trimmed, "-- ") {
		return trimmed[len("-- "):], true
	}
	return "", false
}

// parseNameDecl parses the remainder of a "name:" line: an identifier,
// the :: separator, and a return-type expression.
func parseNameDecl(rest string) (string, ReturnShape, error) {
	sep := strings.Index(rest, "::")
	if sep < 0 {
		return "", ReturnShape{}, fmt.Errorf("%w: name declaration %q is missing '::'", ErrMalformedDeclaration, rest)
	}

	ident := strings.TrimSpace(rest[:sep])
	if !isIdentifier(ident) {
		return "", ReturnShape{}, fmt.Errorf("%w: invalid query name %q", ErrMalformedDeclaration, ident)
	}

	ret, err := parseReturnShape(rest[sep+2:])
	if err != nil {
		return "", ReturnShape{}, fmt.Errorf("%w: query %s: %w", ErrMalformedDeclaration, ident, err)
	}

	return ident, ret, nil
}

// parseParamDecl parses the remainder of a ":" line: an identifier, the
// :: separator, and a type expression.
func parseParamDecl(rest string) (string, TypeExpr, error) {
	sep := strings.Index(rest, "::")
	if sep < 0 {
		return "", TypeExpr{}, fmt.Errorf("%w: parameter declaration %q is missing '::'", ErrMalformedDeclaration, rest)
	}

	ident := strings.TrimSpace(rest[:sep])
	if !isIdentifier(ident) {
		return "", TypeExpr{}, fmt.Errorf("%w: invalid parameter name %q", ErrMalformedDeclaration, ident)
	}

	typ, err := ParseTypeExpr(rest[sep+2:])
	if err != nil {
		return "", TypeExpr{}, fmt.Errorf("%w: parameter %s: %w", ErrMalformedDeclaration, ident, err)
	}

	return ident, typ, nil
}
