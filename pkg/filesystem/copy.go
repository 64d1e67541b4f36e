package filesystem

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/artus40/djangoapp-ynh/pkg/types"
)

// ModeFunc picks the permission of a copied file from its slash-separated
// path relative to the copied tree.
type ModeFunc func(rel string) fs.FileMode

// CopyFile copies src into dstDir under the same base name and returns the new path.
func CopyFile(fsys types.FS, src, dstDir string) (string, error) {
	info, err := fsys.Stat(src)
	if err != nil {
		return "", err
	}
	data, err := fsys.ReadFile(src)
	if err != nil {
		return "", err
	}
	dst := filepath.Join(dstDir, filepath.Base(src))
	if err := fsys.WriteFile(dst, data, info.Mode().Perm()); err != nil {
		return "", err
	}
	return dst, nil
}

// CopyTree copies the tree rooted at srcRoot in src to dst on fsys.
// Files are written with the permission returned by mode, or 0644 when mode is nil.
func CopyTree(src fs.FS, srcRoot string, fsys types.FS, dst string, mode ModeFunc) error {
	return fs.WalkDir(src, srcRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel := strings.TrimPrefix(strings.TrimPrefix(path, srcRoot), "/")
		target := filepath.Join(dst, filepath.FromSlash(rel))
		if d.IsDir() {
			return fsys.MkdirAll(target, 0755)
		}
		data, err := fs.ReadFile(src, path)
		if err != nil {
			return err
		}
		perm := fs.FileMode(0644)
		if mode != nil {
			perm = mode(rel)
		}
		return fsys.WriteFile(target, data, perm)
	})
}
