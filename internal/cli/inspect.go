package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/querydef/querydef/internal/parser"
)

var (
	outputFile string
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show the parsed descriptor for each query",
	Long:  `Parse the query files and print every descriptor: name, parameters, return shape and rewritten SQL.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		queriesPath, err := cfg.GetQueries(&flags)
		if err != nil {
			return err
		}

		files, err := parser.ParseQueries(queriesPath)
		if err != nil {
			return fmt.Errorf("failed to parse queries: %w", err)
		}

		out := renderDescriptors(files)

		if outputFile != "" {
			if err := os.WriteFile(outputFile, []byte(out), 0644); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}
			fmt.Printf("Descriptors written to %s\n", outputFile)
		} else {
			fmt.Print(out)
		}

		return nil
	},
}

func renderDescriptors(files []*parser.QueryFile) string {
	var sb strings.Builder

	for _, f := range files {
		fmt.Fprintf(&sb, "%s:\n", f.Path)
		for _, q := range f.Queries {
			ret := q.Return.String()
			if ret == "" {
				ret = "(undeclared)"
			}
			fmt.Fprintf(&sb, "  %s :: %s  (line %d)\n", q.Name, ret, q.LineNumber)

			for _, p := range q.Params {
				typ := p.Type.String()
				if typ == "" {
					typ = "(default)"
				}
				fmt.Fprintf(&sb, "    :%s :: %s\n", p.Name, typ)
			}
			fmt.Fprintf(&sb, "    sql: %s\n", q.PreparedSQL)
			if q.Docs != "" {
				fmt.Fprintf(&sb, "    doc: %s\n", strings.ReplaceAll(q.Docs, "\n", " "))
			}
		}
	}

	return sb.String()
}

func init() {
	inspectCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: stdout)")
}
