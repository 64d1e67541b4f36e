package steps

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/artus40/djangoapp-ynh/pkg/errors"
	"github.com/artus40/djangoapp-ynh/pkg/logging"
	"github.com/artus40/djangoapp-ynh/pkg/types"
)

// QuestionModules asks the operator to check the detected modules
const QuestionModules = "Am I right ? (y/n)"

// FindModules detects the applications shipped inside the project tree.
// A top-level directory holding an apps.py marker is an embedded module.
type FindModules struct {
	Deps
}

// NewFindModules creates the embedded module discovery step
func NewFindModules(deps Deps) *FindModules {
	return &FindModules{Deps: deps}
}

func (s *FindModules) Name() string    { return "modules" }
func (s *FindModules) Message() string { return "Finding extra modules" }

// Process implements types.Step
func (s *FindModules) Process(bctx *types.Context) error {
	modules, err := s.detect(bctx.ProjectDir)
	if err != nil {
		return err
	}

	s.Prompter.Say(fmt.Sprintf("found %v", modules))
	answer, err := confirm(s.Prompter, QuestionModules)
	if err != nil {
		return err
	}
	if answer == types.AnswerDeclined {
		return errors.New(errors.ErrDeclined, "detected modules rejected")
	}

	bctx.SetEmbeddedModules(modules)
	logger := logging.GetLogger("steps.modules")
	logger.Debug().Strs("modules", modules).Msg("Embedded modules recorded")
	return nil
}

func (s *FindModules) detect(projectDir string) ([]string, error) {
	entries, err := s.FS.ReadDir(projectDir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to list %s", projectDir)
	}

	modules := []string{}
	for _, entry := range entries {
		if !entry.IsDir() || s.Config.Discovery.IsIgnoredDir(entry.Name()) {
			continue
		}
		info, err := s.FS.Stat(filepath.Join(projectDir, entry.Name(), s.Config.Discovery.AppsMarker))
		if err == nil && !info.IsDir() {
			modules = append(modules, entry.Name())
		}
	}
	sort.Strings(modules)
	return modules, nil
}
