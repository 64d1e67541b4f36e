package filesystem

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/artus40/djangoapp-ynh/pkg/types"
)

// Find recursively searches root for regular files matching pattern, the way
// a "**/<pattern>" glob would: the pattern is matched against every trailing
// run of path components relative to root. Directories for which skipDir
// returns true are not descended into. Results are sorted.
func Find(fsys types.FS, root, pattern string, skipDir func(name string) bool) ([]string, error) {
	if pattern == "" {
		panic("pattern must not be empty")
	}
	pattern = filepath.Clean(strings.TrimPrefix(filepath.ToSlash(pattern), "**/"))

	var files []string
	err := fsys.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path != root && skipDir != nil && skipDir(info.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if matchSuffix(pattern, rel) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

func matchSuffix(pattern, rel string) bool {
	parts := strings.Split(rel, string(filepath.Separator))
	depth := strings.Count(pattern, string(filepath.Separator)) + 1
	if depth > len(parts) {
		return false
	}
	suffix := filepath.Join(parts[len(parts)-depth:]...)
	matched, _ := filepath.Match(pattern, suffix)
	return matched
}
