// Package introspect reads the INSTALLED_APPS list of a Django settings
// module, either by scanning its literal assignments or by importing it
// with a Python interpreter.
package introspect

import (
	"os/exec"

	"github.com/artus40/djangoapp-ynh/pkg/config"
	"github.com/artus40/djangoapp-ynh/pkg/logging"
	"github.com/artus40/djangoapp-ynh/pkg/types"
)

// New returns the introspector selected by cfg.Mode.
func New(cfg config.Introspect, fsys types.FS) types.Introspector {
	scanner := NewScanner(fsys)
	switch cfg.Mode {
	case config.IntrospectScan:
		return scanner
	case config.IntrospectPython:
		return NewPython(cfg.Python)
	}
	if _, err := exec.LookPath(cfg.Python); err != nil {
		logger := logging.GetLogger("introspect")
		logger.Debug().
			Str("interpreter", cfg.Python).
			Msg("Interpreter not found, scanning settings instead")
		return scanner
	}
	return Fallback{NewPython(cfg.Python), scanner}
}

// Fallback tries each introspector in turn and returns the first success.
type Fallback []types.Introspector

// InstalledApps implements types.Introspector
func (f Fallback) InstalledApps(projectDir, module, file string) ([]string, error) {
	logger := logging.GetLogger("introspect")
	var lastErr error
	for _, in := range f {
		apps, err := in.InstalledApps(projectDir, module, file)
		if err == nil {
			return apps, nil
		}
		logger.Debug().Err(err).Msg("Introspector failed, trying next")
		lastErr = err
	}
	return nil, lastErr
}
