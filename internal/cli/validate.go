package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/querydef/querydef/internal/parser"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the annotated query files",
	Long: `Parse every query file and report grammar errors with their location.

Queries that parse but would fail generation (for example a missing
return declaration) are reported as warnings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		queriesPath, err := cfg.GetQueries(&flags)
		if err != nil {
			return err
		}

		files, err := parser.ParseQueries(queriesPath)
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}

		queries := parser.GetAllQueries(files)
		warnings := lintQueries(queries)
		if len(warnings) > 0 {
			fmt.Println("\nWarnings:")
			for _, w := range warnings {
				fmt.Printf("  - %s\n", w)
			}
			fmt.Println()
		}

		fmt.Printf("Queries are valid. Found %d quer(ies) in %d file(s).\n", len(queries), len(files))
		return nil
	},
}

// lintQueries flags descriptors that parsed cleanly but are likely
// mistakes: no return declaration, or a declared parameter the body
// never references.
func lintQueries(queries []parser.Query) []string {
	var warnings []string

	for _, q := range queries {
		if q.Return.Kind == parser.ReturnUndeclared {
			warnings = append(warnings, fmt.Sprintf("%s (%s:%d): no return declaration", q.Name, q.SourceFile, q.LineNumber))
		}

		used := make(map[string]bool)
		for _, name := range q.Occurrences {
			used[name] = true
		}
		for _, p := range q.Params {
			if !used[p.Name] {
				warnings = append(warnings, fmt.Sprintf("%s (%s:%d): parameter %s is declared but never referenced", q.Name, q.SourceFile, q.LineNumber, p.Name))
			}
		}
	}

	return warnings
}
