// Package skeleton holds the embedded YunoHost bundle template and lays it
// out in a destination directory.
package skeleton

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/artus40/djangoapp-ynh/pkg/errors"
	"github.com/artus40/djangoapp-ynh/pkg/filesystem"
	"github.com/artus40/djangoapp-ynh/pkg/logging"
	"github.com/artus40/djangoapp-ynh/pkg/types"
)

//go:embed all:bundle
var bundle embed.FS

const root = "bundle"

// ManifestFile is the manifest name inside the bundle
const ManifestFile = "manifest.json"

// Files returns the template tree, rooted at the bundle directory.
func Files() fs.FS {
	sub, err := fs.Sub(bundle, root)
	if err != nil {
		panic(err)
	}
	return sub
}

// Manifest returns the template manifest content.
func Manifest() []byte {
	data, err := bundle.ReadFile(root + "/" + ManifestFile)
	if err != nil {
		panic(err)
	}
	return data
}

// scriptMode makes lifecycle scripts executable.
func scriptMode(rel string) fs.FileMode {
	if strings.HasPrefix(rel, "scripts/") {
		return 0755
	}
	return 0644
}

// Ensure prepares targetDir. When it does not exist it is created and the
// template is copied in; an existing directory is never overwritten. The
// settings directory is created when missing. It reports whether the
// template was copied.
func Ensure(fsys types.FS, targetDir, settingsDir string) (bool, error) {
	logger := logging.GetLogger("skeleton")

	copied := false
	_, err := fsys.Stat(targetDir)
	switch {
	case os.IsNotExist(err):
		if err := fsys.MkdirAll(targetDir, 0755); err != nil {
			return false, errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", targetDir)
		}
		if err := filesystem.CopyTree(bundle, root, fsys, targetDir, scriptMode); err != nil {
			return false, errors.Wrapf(err, errors.ErrFileWrite, "cannot copy bundle template to %s", targetDir)
		}
		copied = true
		logger.Info().Str("target", targetDir).Msg("Bundle template copied")
	case err != nil:
		return false, errors.Wrapf(err, errors.ErrFileRead, "cannot stat %s", targetDir)
	default:
		logger.Debug().Str("target", targetDir).Msg("Destination exists, template not copied")
	}

	settingsPath := filepath.Join(targetDir, settingsDir)
	if err := fsys.MkdirAll(settingsPath, 0755); err != nil {
		return copied, errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", settingsPath)
	}
	return copied, nil
}
