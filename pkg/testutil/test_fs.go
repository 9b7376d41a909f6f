package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/massminify/pkg/filesystem"
	"github.com/arthur-debert/massminify/pkg/types"
	"github.com/spf13/afero"
)

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// NewTestFSWithFiles creates an in-memory filesystem holding the given
// files. Keys are paths, values the file content; parent directories are
// created as needed. A key ending in "/" creates an empty directory.
func NewTestFSWithFiles(t testing.TB, files map[string]string) types.FS {
	t.Helper()
	fsys := NewTestFS()
	for path, content := range files {
		if len(path) > 0 && path[len(path)-1] == '/' {
			if err := fsys.MkdirAll(filepath.Clean(path), 0755); err != nil {
				t.Fatalf("failed to create directory %s: %v", path, err)
			}
			continue
		}
		if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create directory for %s: %v", path, err)
		}
		if err := fsys.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}
	return fsys
}

// ReadString reads a file from fsys or fails the test.
func ReadString(t testing.TB, fsys types.FS, path string) string {
	t.Helper()
	data, err := fsys.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}
