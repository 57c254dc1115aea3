package parser

import "strings"

// scanBody consumes body text up to a statement terminator or end of
// input, recording every :name placeholder occurrence in acc and emitting
// the rewritten form with a positional ? marker per occurrence. The ';'
// terminator is consumed but excluded from both bodies.
//
// The scanner has no awareness of quoted literals or SQL comments: a ':'
// or ';' inside a string literal is treated like one in code. That
// matches how the rest of the toolchain interprets the body and must not
// change independently.
func scanBody(src string, acc *accumulator) (raw, prepared string, n int) {
	var rawB, prepB strings.Builder

	i := 0
	for i < len(src) {
		c := src[i]

		if c == ';' {
			i++
			break
		}

		if c == ':' && i+1 < len(src) && isLetter(src[i+1]) {
			j := i + 1
			for j < len(src) && isIdentChar(src[j]) {
				j++
			}
			acc.placeholder(src[i+1 : j])
			rawB.WriteString(src[i:j])
			prepB.WriteByte('?')
			i = j
			continue
		}

		rawB.WriteByte(c)
		prepB.WriteByte(c)
		i++
	}

	return strings.TrimSpace(rawB.String()), strings.TrimSpace(prepB.String()), i
}
