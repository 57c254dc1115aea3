package parser

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultQueryName derives a query name from a source identifier such as
// a file path: the base name without extension, leading non-letters
// dropped, remaining separators removed camel-case style, and the first
// character lower-cased. "2_get-user.sql" becomes "getUser". Returns
// "query" when nothing usable remains.
func DefaultQueryName(source string) string {
	base := filepath.Base(source)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	var b strings.Builder
	upperNext := false
	for i := 0; i < len(base); i++ {
		c := base[i]

		if b.Len() == 0 {
			if !isLetter(c) {
				continue
			}
			b.WriteByte(lower(c))
			continue
		}

		if !isLetter(c) && !(c >= '0' && c <= '9') {
			upperNext = true
			continue
		}

		if upperNext {
			c = upper(c)
			upperNext = false
		}
		b.WriteByte(c)
	}

	if b.Len() == 0 {
		return "query"
	}
	return b.String()
}

// synthesizeNames fills in names for descriptors that declared none.
// Multi-descriptor sources get a 0-based index suffix on every
// synthesized name so they stay unique; declared names are never
// altered.
func synthesizeNames(queries []Query, source string) {
	base := DefaultQueryName(source)
	multi := len(queries) > 1

	for i := range queries {
		if queries[i].Name != "" {
			continue
		}
		if multi {
			queries[i].Name = fmt.Sprintf("%s_%d", base, i)
		} else {
			queries[i].Name = base
		}
	}
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
