package parser

import (
	"fmt"
	"strings"
)

// accumulator folds classified metadata lines and body placeholder
// occurrences into one query-in-progress. Each statement gets a fresh
// accumulator.
type accumulator struct {
	q     Query
	named bool
	docs  []string
}

func (a *accumulator) apply(cl classified, lineNum int) error {
	switch cl.kind {
	case lineNameDecl:
		if a.named {
			return fmt.Errorf("%w: query already named %s", ErrDuplicateNameDeclaration, a.q.Name)
		}
		a.q.Name = cl.ident
		a.q.Return = cl.ret
		a.named = true

	case lineParamDecl:
		return a.declareParam(cl.ident, cl.typ)

	case lineDoc:
		a.docs = append(a.docs, cl.text)
	}
	return nil
}

// declareParam records an explicit type for an identifier. A parameter
// first seen without a type is upgraded in place; redeclaring with the
// same type is a no-op.
func (a *accumulator) declareParam(name string, typ TypeExpr) error {
	for i := range a.q.Params {
		p := &a.q.Params[i]
		if p.Name != name {
			continue
		}
		if p.Type.Kind == TypeAuto {
			p.Type = typ
			return nil
		}
		if p.Type != typ {
			return fmt.Errorf("%w: parameter %s declared as %s and %s",
				ErrConflictingParameterType, name, p.Type, typ)
		}
		return nil
	}

	a.q.Params = append(a.q.Params, Parameter{Name: name, Type: typ})
	return nil
}

// placeholder records one body occurrence of a named placeholder. New
// identifiers join the parameter list in first-occurrence order with no
// explicit type; repeats only extend the occurrence sequence.
func (a *accumulator) placeholder(name string) {
	a.q.Occurrences = append(a.q.Occurrences, name)
	for _, p := range a.q.Params {
		if p.Name == name {
			return
		}
	}
	a.q.Params = append(a.q.Params, Parameter{Name: name})
}

func (a *accumulator) finalize() Query {
	a.q.Docs = strings.Join(a.docs, "\n")
	return a.q
}
