package steps

import (
	"path/filepath"
	"strings"

	"github.com/artus40/djangoapp-ynh/pkg/config"
	"github.com/artus40/djangoapp-ynh/pkg/errors"
	"github.com/artus40/djangoapp-ynh/pkg/filesystem"
	"github.com/artus40/djangoapp-ynh/pkg/logging"
	"github.com/artus40/djangoapp-ynh/pkg/types"
)

// Settings step prompts
const (
	QuestionHasSettings      = "I did not find any custom settings. Do you have some ? (y/n)"
	QuestionSettingsLocation = "Where are they located ?"
)

// FindSettings locates the project's custom settings file, rewrites it for
// the bundle and records its INSTALLED_APPS.
type FindSettings struct {
	Deps
}

// NewFindSettings creates the settings discovery step
func NewFindSettings(deps Deps) *FindSettings {
	return &FindSettings{Deps: deps}
}

func (s *FindSettings) Name() string    { return "settings" }
func (s *FindSettings) Message() string { return "Looking for custom settings" }

// Process implements types.Step
func (s *FindSettings) Process(bctx *types.Context) error {
	disc := s.Config.Discovery
	matches, err := filesystem.Find(s.FS, bctx.ProjectDir, disc.SettingsPattern, disc.IsIgnoredDir)
	if err != nil {
		return errors.Wrap(err, errors.ErrFileRead, "failed to search for settings")
	}

	custom := matches[:0]
	for _, m := range matches {
		if filepath.Base(m) != disc.ScaffoldSettings {
			custom = append(custom, m)
		}
	}

	switch len(custom) {
	case 0:
		return s.askLocation(bctx)
	case 1:
		return s.setup(bctx, custom[0])
	default:
		return errors.Newf(errors.ErrAmbiguous, "found %d custom settings files", len(custom)).
			WithDetail("files", custom)
	}
}

func (s *FindSettings) askLocation(bctx *types.Context) error {
	answer, err := confirm(s.Prompter, QuestionHasSettings)
	if err != nil {
		return err
	}
	if answer != types.AnswerConfirmed {
		return errors.Newf(errors.ErrDeclined, "no custom settings (%s)", answer)
	}

	name, err := ask(s.Prompter, QuestionSettingsLocation)
	if err != nil {
		return err
	}
	if name == "" {
		return errors.New(errors.ErrDeclined, "no settings location given")
	}

	matches, err := filesystem.Find(s.FS, bctx.ProjectDir, name, s.Config.Discovery.IsIgnoredDir)
	if err != nil {
		return errors.Wrap(err, errors.ErrFileRead, "failed to search for settings")
	}
	switch len(matches) {
	case 0:
		return errors.Newf(errors.ErrNotFound, "no file matches %q", name)
	case 1:
		return s.setup(bctx, matches[0])
	default:
		return errors.Newf(errors.ErrAmbiguous, "%d files match %q", len(matches), name).
			WithDetail("files", matches)
	}
}

// setup writes the rewritten settings into the bundle and extracts the app list.
func (s *FindSettings) setup(bctx *types.Context, source string) error {
	logger := logging.GetLogger("steps.settings")

	data, err := s.FS.ReadFile(source)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", source)
	}

	content := rewriteSettings(string(data), bctx.ProjectName, s.Config.Framework)
	dst := filepath.Join(bctx.SettingsDir, s.Config.Bundle.SettingsFile)
	if err := s.FS.WriteFile(dst, []byte(content), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", dst)
	}
	logger.Info().Str("source", source).Str("destination", dst).Msg("Settings rewritten")

	module, err := modulePath(bctx.ProjectDir, source)
	if err != nil {
		return err
	}
	apps, err := s.Introspector.InstalledApps(bctx.ProjectDir, module, source)
	if err != nil {
		if errors.GetErrorCode(err) == errors.ErrUnknown {
			err = errors.Wrapf(err, errors.ErrIntrospect, "failed to read installed apps of %s", module)
		}
		return err
	}

	bctx.SetInstalledApps(apps)
	logger.Debug().Str("module", module).Strs("apps", apps).Msg("Installed apps recorded")
	return nil
}

// rewriteSettings swaps the scaffold settings import for the bundle's.
func rewriteSettings(content, projectName string, fw config.Framework) string {
	drop := config.ScaffoldImportLine(projectName)
	lines := strings.Split(content, "\n")

	out := make([]string, 0, len(lines)+1)
	out = append(out, fw.ImportLine())
	for _, line := range lines {
		if strings.TrimRight(line, "\r") == drop {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// modulePath turns a file under projectDir into its dotted import path.
func modulePath(projectDir, file string) (string, error) {
	rel, err := filepath.Rel(projectDir, file)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", errors.Newf(errors.ErrInvalidInput, "%s is outside the project", file)
	}
	rel = strings.TrimSuffix(rel, filepath.Ext(rel))
	return strings.ReplaceAll(rel, string(filepath.Separator), "."), nil
}
