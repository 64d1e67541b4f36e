package config

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/artus40/djangoapp-ynh/pkg/errors"
	"github.com/artus40/djangoapp-ynh/pkg/logging"
	"github.com/artus40/djangoapp-ynh/pkg/types"
)

// ProjectFileName is the optional per-project configuration file
const ProjectFileName = ".ynhpack.toml"

// ProjectConfig represents configuration options read from a project's .ynhpack.toml
type ProjectConfig struct {
	Requirements RequirementsConfig `toml:"requirements"`
}

// RequirementsConfig tunes requirements derivation
type RequirementsConfig struct {
	// Extra requirements appended after the derived ones
	Extra []string `toml:"extra"`
	// Ignore lists app identifiers that never become requirements
	Ignore []string `toml:"ignore"`
	// Mappings names the package providing an app when it is not <framework>-<app>
	Mappings map[string]string `toml:"mappings"`
}

// IsIgnored reports whether an app identifier is excluded from requirements.
func (r RequirementsConfig) IsIgnored(app string) bool {
	for _, pattern := range r.Ignore {
		if matched, _ := filepath.Match(pattern, app); matched {
			return true
		}
	}
	return false
}

// PackageFor returns the explicit package name mapped to app, if any.
func (r RequirementsConfig) PackageFor(app string) (string, bool) {
	pkg, ok := r.Mappings[app]
	return pkg, ok && pkg != ""
}

// LoadProjectConfig reads projectDir/.ynhpack.toml. A missing file yields the zero value.
func LoadProjectConfig(fsys types.FS, projectDir string) (ProjectConfig, error) {
	configPath := filepath.Join(projectDir, ProjectFileName)
	logger := logging.GetLogger("config").With().Str("configPath", configPath).Logger()

	data, err := fsys.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return ProjectConfig{}, nil
		}
		return ProjectConfig{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to read project config")
	}

	var pc ProjectConfig
	if err := toml.Unmarshal(data, &pc); err != nil {
		return ProjectConfig{}, errors.Wrap(err, errors.ErrConfigParse, "failed to parse project config")
	}

	logger.Debug().
		Int("extra", len(pc.Requirements.Extra)).
		Int("ignore", len(pc.Requirements.Ignore)).
		Int("mappings", len(pc.Requirements.Mappings)).
		Msg("Project config loaded")

	return pc, nil
}
