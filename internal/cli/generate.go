package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/querydef/querydef/internal/codegen"
	_ "github.com/querydef/querydef/internal/codegen/golang"
	"github.com/querydef/querydef/internal/parser"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate language bindings from annotated query files",
	Long: `Generate typed query bindings from annotated SQL files.

Every statement in the input becomes one callable: its parameters come
from the :name placeholders and declarations, its result type from the
declared return shape.

Example:
  querydef generate --queries db/queries --out internal/queries --package queries`,
	RunE: func(cmd *cobra.Command, args []string) error {
		queriesPath, err := cfg.GetQueries(&flags)
		if err != nil {
			return err
		}

		language := cfg.GetLanguage(&flags)
		outDir := cfg.GetOut(&flags)
		pkg := cfg.GetPackage(&flags)

		generator, err := codegen.Get(language)
		if err != nil {
			return fmt.Errorf("failed to get generator: %w (available: %v)", err, codegen.Languages())
		}

		files, err := parser.ParseQueries(queriesPath)
		if err != nil {
			return fmt.Errorf("failed to parse queries: %w", err)
		}

		queries := parser.GetAllQueries(files)
		fmt.Printf("Generating %s bindings to %s...\n", language, outDir)
		if err := generator.Generate(files, outDir, pkg); err != nil {
			return fmt.Errorf("failed to generate: %w", err)
		}

		fmt.Printf("Generated %d queries from %d file(s)\n", len(queries), len(files))
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&flags.Out, "out", "", "output directory for generated files")
	generateCmd.Flags().StringVar(&flags.Package, "package", "", "package name for generated files (default: queries)")
	generateCmd.Flags().StringVar(&flags.Language, "language", "", "target language (default: go)")
}
