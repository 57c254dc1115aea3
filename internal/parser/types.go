package parser

// TypeKind discriminates the forms a type annotation can take.
type TypeKind int

const (
	// TypeAuto marks a parameter that was never annotated. The binding
	// generator decides the concrete default (a generic text type).
	TypeAuto TypeKind = iota
	TypePlain
	TypeNullable
)

// TypeExpr is the parsed form of one type annotation: a bare identifier,
// a "Maybe"-wrapped identifier, or no annotation at all.
type TypeExpr struct {
	Kind TypeKind
	Name string
}

// ReturnKind discriminates the result shapes a query can declare.
type ReturnKind int

const (
	// ReturnUndeclared means no name/return declaration was present.
	// Callers must treat this explicitly rather than assume a shape.
	ReturnUndeclared ReturnKind = iota
	// ReturnScalar yields a single aggregate value per invocation
	// (a row count); result rows, if any, are discarded.
	ReturnScalar
	// ReturnRows yields zero or more rows. The column list is taken from
	// the annotation alone, never inferred from the query body.
	ReturnRows
)

type ReturnShape struct {
	Kind ReturnKind
	// Scalar is the declared type when Kind is ReturnScalar.
	Scalar TypeExpr
	// Columns holds the declared column types when Kind is ReturnRows.
	// Empty means "ignore row contents"; one element means "one value per
	// row from the first column"; more mean "one tuple per row".
	Columns []TypeExpr
}

// Parameter is one logical query parameter. Order within Query.Params is
// first-occurrence order, whether the first occurrence was a declaration
// line or a placeholder in the body.
type Parameter struct {
	Name string
	Type TypeExpr
}

// Query is the descriptor produced for one statement. Once returned from
// the driver it is never mutated again.
type Query struct {
	// Name is empty until declared or synthesized.
	Name string
	// SQL is the statement body before placeholder rewriting, without the
	// terminator.
	SQL string
	// PreparedSQL is the body with every :name placeholder replaced by a
	// positional ? marker, one marker per occurrence.
	PreparedSQL string
	Return      ReturnShape
	Params      []Parameter
	// Occurrences lists the parameter name behind each ? marker of
	// PreparedSQL, in marker order. A parameter used three times appears
	// three times.
	Occurrences []string
	// Docs holds the comment lines that were neither a name/return nor a
	// parameter declaration, joined by newlines in source order.
	Docs       string
	SourceFile string
	LineNumber int
}

// Param returns the parameter with the given name, if present.
func (q *Query) Param(name string) (Parameter, bool) {
	for _, p := range q.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Parameter{}, false
}

// QueryFile groups the descriptors parsed from one source file.
type QueryFile struct {
	Path    string
	Queries []Query
}
