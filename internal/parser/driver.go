package parser

import (
	"fmt"
	"strings"
)

// ParseOne parses input expected to hold exactly one statement. The
// returned descriptor's name is left empty unless a name declaration was
// present; callers may synthesize one (see DefaultQueryName).
func ParseOne(text string) (Query, error) {
	queries, err := ParseMany(text)
	if err != nil {
		return Query{}, err
	}

	switch len(queries) {
	case 0:
		return Query{}, ErrEmptyInput
	case 1:
		return queries[0], nil
	}
	return Query{}, fmt.Errorf("%w: found %d statements", ErrMultipleStatements, len(queries))
}

// ParseMany parses a block of annotated query definitions into one
// descriptor per statement, in source order.
func ParseMany(text string) ([]Query, error) {
	return parseContent(text, "")
}

func parseContent(content string, sourcePath string) ([]Query, error) {
	d := &driver{src: content, line: 1, source: sourcePath}

	var queries []Query
	for d.pos < len(d.src) {
		q, ok, err := d.next()
		if err != nil {
			if sourcePath != "" {
				return nil, fmt.Errorf("%s: %w", sourcePath, err)
			}
			return nil, err
		}
		if ok {
			queries = append(queries, q)
		}
	}

	return queries, nil
}

// driver walks the input statement by statement, feeding classified
// metadata lines into a fresh accumulator, then handing the remainder to
// the body scanner up to the statement boundary.
type driver struct {
	src    string
	source string
	pos    int
	line   int
}

// next parses the next statement. ok is false when the consumed segment
// held no statement (trailing whitespace or stray comments).
func (d *driver) next() (Query, bool, error) {
	acc := accumulator{}
	acc.q.SourceFile = d.source

	sawDecl := false
	declLine := 0

	for d.pos < len(d.src) {
		start := d.pos
		text, next := d.peekLine()

		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			d.advance(next)
			continue
		}

		cl, err := classifyLine(text)
		if err != nil {
			return Query{}, false, fmt.Errorf("line %d: %w", d.line, err)
		}
		if cl.kind == lineBody {
			d.pos = start
			break
		}

		if err := acc.apply(cl, d.line); err != nil {
			return Query{}, false, fmt.Errorf("line %d: %w", d.line, err)
		}
		if cl.kind != lineDoc && declLine == 0 {
			sawDecl = true
			declLine = d.line
		}
		d.advance(next)
	}

	bodyLine := d.line
	raw, prepared, n := scanBody(d.src[d.pos:], &acc)
	d.line += strings.Count(d.src[d.pos:d.pos+n], "\n")
	d.pos += n

	if raw == "" {
		if sawDecl {
			return Query{}, false, fmt.Errorf("line %d: %w", declLine, ErrEmptyInput)
		}
		return Query{}, false, nil
	}

	q := acc.finalize()
	q.SQL = raw
	q.PreparedSQL = prepared
	if declLine != 0 {
		q.LineNumber = declLine
	} else {
		q.LineNumber = bodyLine
	}
	return q, true, nil
}

// peekLine returns the current line's text and the offset just past its
// newline.
func (d *driver) peekLine() (string, int) {
	end := strings.IndexByte(d.src[d.pos:], '\n')
	if end < 0 {
		return d.src[d.pos:], len(d.src)
	}
	return d.src[d.pos : d.pos+end], d.pos + end + 1
}

func (d *driver) advance(next int) {
	d.pos = next
	d.line++
}
