package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/artus40/djangoapp-ynh/pkg/filesystem"
	"github.com/artus40/djangoapp-ynh/pkg/types"
)

// MemFS returns an empty in-memory filesystem.
func MemFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// MemTree returns an in-memory filesystem holding files under root.
// Keys are slash-separated paths relative to root.
func MemTree(t *testing.T, root string, files map[string]string) types.FS {
	t.Helper()

	fsys := MemFS()
	if err := fsys.MkdirAll(root, 0755); err != nil {
		t.Fatalf("Failed to create %s: %v", root, err)
	}
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create parent of %s: %v", path, err)
		}
		if err := fsys.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", path, err)
		}
	}
	return fsys
}

// MemRead returns a file of fsys as a string, failing the test when it is missing.
func MemRead(t *testing.T, fsys types.FS, path string) string {
	t.Helper()

	data, err := fsys.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}

// MemExists reports whether path exists on fsys.
func MemExists(fsys types.FS, path string) bool {
	_, err := fsys.Stat(path)
	return err == nil
}
