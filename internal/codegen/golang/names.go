package golang

import (
	"go/token"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English, cases.NoLower)

// exportName turns a query name into an exported Go identifier.
func exportName(name string) string {
	return titleCaser.String(name)
}

// argName makes a parameter identifier safe to use as a Go argument.
func argName(name string) string {
	if token.Lookup(name).IsKeyword() {
		return name + "Arg"
	}
	return name
}

// fileName converts an exported query name into its snake_case file name.
func fileName(name string) string {
	var result strings.Builder
	runes := []rune(name)

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				prevLower := runes[i-1] >= 'a' && runes[i-1] <= 'z'
				nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'

				if prevLower || nextLower {
					result.WriteRune('_')
				}
			}
			result.WriteRune(r + 32)
		} else {
			result.WriteRune(r)
		}
	}

	return result.String() + ".go"
}
