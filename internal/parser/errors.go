package parser

import "errors"

// Sentinel errors for the annotated-query grammar. All are returned wrapped
// with location context; match with errors.Is.
var (
	// ErrMalformedType indicates a type annotation that does not match the
	// type grammar (empty, or characters outside [A-Za-z0-9_]).
	ErrMalformedType = errors.New("malformed type expression")

	// ErrMalformedDeclaration indicates a line with a name: or : prefix
	// whose remainder does not parse as an identifier/type pair.
	ErrMalformedDeclaration = errors.New("malformed declaration")

	// ErrDuplicateNameDeclaration indicates more than one name/return
	// declaration in a single statement's metadata block.
	ErrDuplicateNameDeclaration = errors.New("duplicate name declaration")

	// ErrConflictingParameterType indicates the same parameter declared
	// with two different explicit types.
	ErrConflictingParameterType = errors.New("conflicting parameter type")

	// ErrMultipleStatements indicates ParseOne was given input containing
	// more than one statement.
	ErrMultipleStatements = errors.New("multiple statements not expected")

	// ErrEmptyInput indicates no query body was found before end of input.
	ErrEmptyInput = errors.New("no query body found")
)
