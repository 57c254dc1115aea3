package golang

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/querydef/querydef/internal/codegen"
	"github.com/querydef/querydef/internal/parser"
)

const (
	execImport = "github.com/querydef/querydef/exec"
	pgxImport  = "github.com/jackc/pgx/v5"
)

func init() {
	codegen.Register(&GoGenerator{})
}

type GoGenerator struct{}

func (g *GoGenerator) Language() string {
	return "go"
}

func (g *GoGenerator) Generate(files []*parser.QueryFile, outDir string, pkg string) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := writeQuerierFile(outDir, pkg); err != nil {
		return err
	}

	for _, f := range files {
		for _, q := range f.Queries {
			content, err := renderQueryFile(q, pkg)
			if err != nil {
				return fmt.Errorf("failed to generate query %s: %w", q.Name, err)
			}

			path := filepath.Join(outDir, fileName(exportName(q.Name)))
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
		}
	}

	return nil
}

// writeQuerierFile emits the shared Queries struct the per-query methods
// hang off of.
func writeQuerierFile(outDir string, pkg string) error {
	content := fmt.Sprintf(`package %s

import (
	%q

	%q
)

type Queries struct {
	db exec.Querier
}

func New(db exec.Querier) *Queries {
	return &Queries{db: db}
}

func (q *Queries) WithTx(tx pgx.Tx) *Queries {
	return &Queries{db: tx}
}
`, pkg, pgxImport, execImport)

	return os.WriteFile(filepath.Join(outDir, "querier.go"), []byte(content), 0644)
}

// renderQueryFile emits one source file holding the SQL constant and the
// typed callable for a single descriptor.
func renderQueryFile(q parser.Query, pkg string) (string, error) {
	if q.Return.Kind == parser.ReturnUndeclared {
		return "", fmt.Errorf("no return declaration (expected -- name:%s :: <return type>)", q.Name)
	}

	funcName := exportName(q.Name)
	constName := q.Name + "SQL"

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("package %s\n\n", pkg))
	writeImports(&sb, q)

	sb.WriteString(fmt.Sprintf("const %s = `%s`\n\n", constName, numberMarkers(q.PreparedSQL, len(q.Occurrences))))

	if q.Return.Kind == parser.ReturnRows && len(q.Return.Columns) > 1 {
		writeRowStruct(&sb, funcName, q.Return.Columns)
	}

	writeDocs(&sb, q.Docs)

	switch {
	case q.Return.Kind == parser.ReturnScalar:
		if err := writeScalarFunc(&sb, q, funcName, constName); err != nil {
			return "", err
		}
	case len(q.Return.Columns) == 0:
		writeUnitFunc(&sb, q, funcName, constName)
	case len(q.Return.Columns) == 1:
		writeColumnFunc(&sb, q, funcName, constName)
	default:
		writeCollectFunc(&sb, q, funcName, constName)
	}

	return sb.String(), nil
}

func writeImports(sb *strings.Builder, q parser.Query) {
	std := []string{"context"}
	if usesTime(q) {
		std = append(std, "time")
	}

	var third []string
	if q.Return.Kind == parser.ReturnRows && len(q.Return.Columns) > 1 {
		third = append(third, pgxImport)
	}
	third = append(third, execImport)

	sb.WriteString("import (\n")
	for _, imp := range std {
		sb.WriteString(fmt.Sprintf("\t%q\n", imp))
	}
	sb.WriteString("\n")
	for _, imp := range third {
		sb.WriteString(fmt.Sprintf("\t%q\n", imp))
	}
	sb.WriteString(")\n\n")
}

func usesTime(q parser.Query) bool {
	for _, p := range q.Params {
		if strings.Contains(goType(p.Type), "time.") {
			return true
		}
	}
	if q.Return.Kind == parser.ReturnRows {
		for _, c := range q.Return.Columns {
			if strings.Contains(goType(c), "time.") {
				return true
			}
		}
	}
	return false
}

func writeRowStruct(sb *strings.Builder, funcName string, columns []parser.TypeExpr) {
	sb.WriteString(fmt.Sprintf("type %sRow struct {\n", funcName))
	for i, c := range columns {
		sb.WriteString(fmt.Sprintf("\tCol%d %s\n", i+1, goType(c)))
	}
	sb.WriteString("}\n\n")
}

func writeDocs(sb *strings.Builder, docs string) {
	if docs == "" {
		return
	}
	for _, line := range strings.Split(docs, "\n") {
		sb.WriteString("// " + line + "\n")
	}
}

// signature renders the method's parameter list: context first, then the
// query parameters in first-occurrence order.
func signature(q parser.Query) string {
	params := []string{"ctx context.Context"}
	for _, p := range q.Params {
		params = append(params, fmt.Sprintf("%s %s", argName(p.Name), goType(p.Type)))
	}
	return strings.Join(params, ", ")
}

// callArgs renders the values handed to the execution helper: one per
// placeholder occurrence, repeats included, in marker order.
func callArgs(q parser.Query) string {
	if len(q.Occurrences) == 0 {
		return ""
	}
	args := make([]string, len(q.Occurrences))
	for i, name := range q.Occurrences {
		args[i] = argName(name)
	}
	return ", " + strings.Join(args, ", ")
}

func writeScalarFunc(sb *strings.Builder, q parser.Query, funcName, constName string) error {
	goT, err := scalarGoType(q.Return.Scalar)
	if err != nil {
		return err
	}

	sb.WriteString(fmt.Sprintf("func (q *Queries) %s(%s) (%s, error) {\n", funcName, signature(q), goT))
	if goT == "int64" {
		sb.WriteString(fmt.Sprintf("\treturn exec.RowsAffected(ctx, q.db, %s%s)\n", constName, callArgs(q)))
	} else {
		sb.WriteString(fmt.Sprintf("\tn, err := exec.RowsAffected(ctx, q.db, %s%s)\n", constName, callArgs(q)))
		sb.WriteString(fmt.Sprintf("\treturn %s(n), err\n", goT))
	}
	sb.WriteString("}\n")
	return nil
}

func writeUnitFunc(sb *strings.Builder, q parser.Query, funcName, constName string) {
	sb.WriteString(fmt.Sprintf("func (q *Queries) %s(%s) error {\n", funcName, signature(q)))
	sb.WriteString(fmt.Sprintf("\treturn exec.Unit(ctx, q.db, %s%s)\n", constName, callArgs(q)))
	sb.WriteString("}\n")
}

func writeColumnFunc(sb *strings.Builder, q parser.Query, funcName, constName string) {
	elem := goType(q.Return.Columns[0])
	sb.WriteString(fmt.Sprintf("func (q *Queries) %s(%s) ([]%s, error) {\n", funcName, signature(q), elem))
	sb.WriteString(fmt.Sprintf("\treturn exec.Column[%s](ctx, q.db, %s%s)\n", elem, constName, callArgs(q)))
	sb.WriteString("}\n")
}

func writeCollectFunc(sb *strings.Builder, q parser.Query, funcName, constName string) {
	rowType := funcName + "Row"

	sb.WriteString(fmt.Sprintf("func (q *Queries) %s(%s) ([]%s, error) {\n", funcName, signature(q), rowType))
	sb.WriteString(fmt.Sprintf("\treturn exec.Collect(ctx, q.db, %s, func(row pgx.CollectableRow) (%s, error) {\n", constName, rowType))
	sb.WriteString(fmt.Sprintf("\t\tvar r %s\n", rowType))

	scans := make([]string, len(q.Return.Columns))
	for i := range q.Return.Columns {
		scans[i] = fmt.Sprintf("&r.Col%d", i+1)
	}
	sb.WriteString(fmt.Sprintf("\t\terr := row.Scan(%s)\n", strings.Join(scans, ", ")))
	sb.WriteString("\t\treturn r, err\n")
	sb.WriteString(fmt.Sprintf("\t}%s)\n", callArgs(q)))
	sb.WriteString("}\n")
}

// numberMarkers rewrites the first n ? markers into $1..$n, the
// placeholder form pgx expects.
func numberMarkers(sql string, n int) string {
	var b strings.Builder
	k := 0
	for i := 0; i < len(sql); i++ {
		if sql[i] == '?' && k < n {
			k++
			fmt.Fprintf(&b, "$%d", k)
			continue
		}
		b.WriteByte(sql[i])
	}
	return b.String()
}
