package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Loader reads annotated query-definition files. The zero value uses
// os.ReadFile; both hooks exist so a surrounding build tool can substitute
// its own file access and register source-file dependencies.
type Loader struct {
	// ReadFile reads one source file. Defaults to os.ReadFile.
	ReadFile func(path string) ([]byte, error)
	// NoteDependency, when set, is invoked once per source file before it
	// is parsed.
	NoteDependency func(path string)
}

func (l *Loader) readFile(path string) ([]byte, error) {
	if l.ReadFile != nil {
		return l.ReadFile(path)
	}
	return os.ReadFile(path)
}

// ParseFile parses one query file. Descriptors without a declared name
// get one synthesized from the file name.
func (l *Loader) ParseFile(path string) (*QueryFile, error) {
	if l.NoteDependency != nil {
		l.NoteDependency(path)
	}

	content, err := l.readFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read query file %s: %w", path, err)
	}

	queries, err := parseContent(string(content), path)
	if err != nil {
		return nil, err
	}
	synthesizeNames(queries, path)

	return &QueryFile{
		Path:    path,
		Queries: queries,
	}, nil
}

// ParseDir parses every .sql file directly under dirPath, skipping files
// that yield no queries, sorted by path.
func (l *Loader) ParseDir(dirPath string) ([]*QueryFile, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read query directory %s: %w", dirPath, err)
	}

	var files []*QueryFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}

		qf, err := l.ParseFile(filepath.Join(dirPath, entry.Name()))
		if err != nil {
			return nil, err
		}
		if len(qf.Queries) > 0 {
			files = append(files, qf)
		}
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})

	return files, nil
}

// ParseQueries accepts either a single file or a directory of .sql files.
// A path without extension is retried with .sql appended.
func (l *Loader) ParseQueries(path string) ([]*QueryFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		if !strings.HasSuffix(path, ".sql") {
			sqlPath := path + ".sql"
			if _, err := os.Stat(sqlPath); err == nil {
				qf, err := l.ParseFile(sqlPath)
				if err != nil {
					return nil, err
				}
				return []*QueryFile{qf}, nil
			}
		}
		return nil, fmt.Errorf("query path not found: %s", path)
	}

	if info.IsDir() {
		return l.ParseDir(path)
	}

	qf, err := l.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return []*QueryFile{qf}, nil
}

// ParseQueryFile parses one query file with the default loader.
func ParseQueryFile(path string) (*QueryFile, error) {
	return (&Loader{}).ParseFile(path)
}

// ParseQueries parses a query file or directory with the default loader.
func ParseQueries(path string) ([]*QueryFile, error) {
	return (&Loader{}).ParseQueries(path)
}

// GetAllQueries flattens the descriptors of several files into one slice.
func GetAllQueries(files []*QueryFile) []Query {
	var all []Query
	for _, f := range files {
		all = append(all, f.Queries...)
	}
	return all
}
