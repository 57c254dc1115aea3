package parser

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestLoader_ParseFile(t *testing.T) {
	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "get-user.sql")

	content := `-- name:getUser :: (Integer, String)
SELECT id, email FROM users WHERE id = :id;

DELETE FROM sessions WHERE user_id = :id;`

	if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	qf, err := ParseQueryFile(filePath)
	if err != nil {
		t.Fatalf("ParseQueryFile() error = %v", err)
	}

	if qf.Path != filePath {
		t.Errorf("path = %q, want %q", qf.Path, filePath)
	}
	if len(qf.Queries) != 2 {
		t.Fatalf("query count = %d, want 2", len(qf.Queries))
	}
	if qf.Queries[0].Name != "getUser" {
		t.Errorf("declared name = %q, want getUser", qf.Queries[0].Name)
	}
	if qf.Queries[1].Name != "getUser_1" {
		t.Errorf("synthesized name = %q, want getUser_1", qf.Queries[1].Name)
	}
	if qf.Queries[0].SourceFile != filePath {
		t.Errorf("source file = %q, want %q", qf.Queries[0].SourceFile, filePath)
	}
}

func TestLoader_Hooks(t *testing.T) {
	var noted []string
	var read []string

	l := &Loader{
		ReadFile: func(path string) ([]byte, error) {
			read = append(read, path)
			return []byte("SELECT 1;"), nil
		},
		NoteDependency: func(path string) {
			noted = append(noted, path)
		},
	}

	qf, err := l.ParseFile("fake/queries.sql")
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if len(noted) != 1 || noted[0] != "fake/queries.sql" {
		t.Errorf("dependency hook calls = %v", noted)
	}
	if len(read) != 1 {
		t.Errorf("read calls = %v", read)
	}
	if len(qf.Queries) != 1 || qf.Queries[0].Name != "queries" {
		t.Errorf("queries = %+v", qf.Queries)
	}
}

func TestLoader_ReadErrorPropagates(t *testing.T) {
	l := &Loader{
		ReadFile: func(path string) ([]byte, error) {
			return nil, fs.ErrNotExist
		},
	}

	_, err := l.ParseFile("missing.sql")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error = %v, want wrapped fs.ErrNotExist", err)
	}
}

func TestLoader_ParseDir(t *testing.T) {
	tmpDir := t.TempDir()

	files := []struct {
		name    string
		content string
	}{
		{"users.sql", "-- name:getUser :: (Integer)\nSELECT id FROM users WHERE id = :id;"},
		{"posts.sql", "-- name:getPost :: (Integer)\nSELECT id FROM posts WHERE id = :id;"},
		{"empty.sql", "-- nothing here\n"},
		{"readme.md", "not a query file"},
	}

	for _, f := range files {
		if err := os.WriteFile(filepath.Join(tmpDir, f.name), []byte(f.content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", f.name, err)
		}
	}

	queryFiles, err := (&Loader{}).ParseDir(tmpDir)
	if err != nil {
		t.Fatalf("ParseDir() error = %v", err)
	}

	if len(queryFiles) != 2 {
		t.Fatalf("query file count = %d, want 2", len(queryFiles))
	}
	// Sorted by path: posts.sql before users.sql.
	if filepath.Base(queryFiles[0].Path) != "posts.sql" {
		t.Errorf("first file = %q, want posts.sql", queryFiles[0].Path)
	}
}

func TestParseQueries_AutoDetect(t *testing.T) {
	tmpDir := t.TempDir()

	singleFile := filepath.Join(tmpDir, "queries.sql")
	if err := os.WriteFile(singleFile, []byte("-- name:ping :: Integer\nSELECT 1;"), 0644); err != nil {
		t.Fatal(err)
	}

	files, err := ParseQueries(singleFile)
	if err != nil {
		t.Fatalf("ParseQueries(file) error = %v", err)
	}
	if len(files) != 1 {
		t.Errorf("expected 1 file, got %d", len(files))
	}

	files, err = ParseQueries(filepath.Join(tmpDir, "queries"))
	if err != nil {
		t.Fatalf("ParseQueries(file without extension) error = %v", err)
	}
	if len(files) != 1 {
		t.Errorf("expected 1 file from extensionless path, got %d", len(files))
	}

	queryDir := filepath.Join(tmpDir, "more")
	if err := os.MkdirAll(queryDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(queryDir, "a.sql"), []byte("SELECT 2;"), 0644); err != nil {
		t.Fatal(err)
	}

	files, err = ParseQueries(queryDir)
	if err != nil {
		t.Fatalf("ParseQueries(dir) error = %v", err)
	}
	if len(files) != 1 {
		t.Errorf("expected 1 file from directory, got %d", len(files))
	}
}
