package steps

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/artus40/djangoapp-ynh/pkg/config"
	"github.com/artus40/djangoapp-ynh/pkg/errors"
	"github.com/artus40/djangoapp-ynh/pkg/filesystem"
	"github.com/artus40/djangoapp-ynh/pkg/logging"
	"github.com/artus40/djangoapp-ynh/pkg/types"
)

// QuestionCreateRequirements offers to synthesize a requirements file
const QuestionCreateRequirements = "I could not find any requirements.txt. Create one ? (y/n)"

// FindRequirements copies the project's requirements file into the bundle,
// or derives one from the installed apps.
type FindRequirements struct {
	Deps
}

// NewFindRequirements creates the dependency discovery step
func NewFindRequirements(deps Deps) *FindRequirements {
	return &FindRequirements{Deps: deps}
}

func (s *FindRequirements) Name() string    { return "requirements" }
func (s *FindRequirements) Message() string { return "Looking for requirements" }

// Process implements types.Step
func (s *FindRequirements) Process(bctx *types.Context) error {
	logger := logging.GetLogger("steps.requirements")
	src := filepath.Join(bctx.ProjectDir, s.Config.Discovery.RequirementsFile)

	_, err := s.FS.Stat(src)
	switch {
	case err == nil:
		if _, err := filesystem.CopyFile(s.FS, src, bctx.SettingsDir); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "failed to copy %s", src)
		}
		logger.Info().Str("source", src).Msg("Requirements copied")
		return nil
	case !os.IsNotExist(err):
		return errors.Wrapf(err, errors.ErrFileRead, "cannot stat %s", src)
	}

	answer, err := confirm(s.Prompter, QuestionCreateRequirements)
	if err != nil {
		return err
	}
	if answer == types.AnswerDeclined {
		logger.Info().Msg("Requirements synthesis declined")
		return nil
	}

	pc, err := config.LoadProjectConfig(s.FS, bctx.ProjectDir)
	if err != nil {
		return err
	}

	apps, ok := bctx.InstalledApps()
	if !ok {
		logger.Info().Msg("Installed apps unknown, only the framework is required")
	}
	reqs := Requirements(s.Config.Framework.Name, apps, bctx.IsEmbedded, pc.Requirements)

	dst := filepath.Join(bctx.SettingsDir, s.Config.Discovery.RequirementsFile)
	if err := s.FS.WriteFile(dst, []byte(strings.Join(reqs, "\n")+"\n"), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", dst)
	}
	logger.Info().Strs("requirements", reqs).Msg("Requirements written")
	return nil
}

// Requirements derives the package list for apps.
//
// The framework comes first. Apps in the framework namespace, embedded
// modules and ignored apps are skipped. Dotted identifiers are reduced to
// their top-level package, duplicates collapse to their first occurrence.
// Each remaining app maps to "<framework>-<app>" unless rc names its
// package. rc's extra requirements are appended.
func Requirements(framework string, apps []string, embedded func(string) bool, rc config.RequirementsConfig) []string {
	reqs := []string{framework}
	seen := map[string]bool{framework: true}
	add := func(pkg string) {
		if pkg != "" && !seen[pkg] {
			seen[pkg] = true
			reqs = append(reqs, pkg)
		}
	}

	for _, app := range apps {
		if strings.HasPrefix(app, framework) {
			continue
		}
		top := strings.SplitN(app, ".", 2)[0]
		if embedded != nil && (embedded(app) || embedded(top)) {
			continue
		}
		if rc.IsIgnored(app) || rc.IsIgnored(top) {
			continue
		}
		if pkg, ok := rc.PackageFor(app); ok {
			add(pkg)
			continue
		}
		if pkg, ok := rc.PackageFor(top); ok {
			add(pkg)
			continue
		}
		add(framework + "-" + top)
	}

	for _, extra := range rc.Extra {
		add(strings.TrimSpace(extra))
	}
	return reqs
}
