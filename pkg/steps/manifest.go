package steps

import (
	"os"
	"path/filepath"

	"github.com/artus40/djangoapp-ynh/pkg/errors"
	"github.com/artus40/djangoapp-ynh/pkg/logging"
	"github.com/artus40/djangoapp-ynh/pkg/manifest"
	"github.com/artus40/djangoapp-ynh/pkg/skeleton"
	"github.com/artus40/djangoapp-ynh/pkg/types"
)

// Manifest step prompts
const (
	QuestionAppName         = "Name of your app ?"
	QuestionDescription     = "Please write a short description."
	QuestionMaintainerName  = "Your name ?"
	QuestionMaintainerEmail = "Your mail ?"
)

// CreateManifest collects the application identity and writes it into the
// bundle manifest.
type CreateManifest struct {
	Deps
}

// NewCreateManifest creates the manifest authoring step
func NewCreateManifest(deps Deps) *CreateManifest {
	return &CreateManifest{Deps: deps}
}

func (s *CreateManifest) Name() string    { return "manifest" }
func (s *CreateManifest) Message() string { return "Updating the manifest" }

// Process implements types.Step
func (s *CreateManifest) Process(bctx *types.Context) error {
	var id manifest.Identity
	for _, q := range []struct {
		question string
		field    *string
	}{
		{QuestionAppName, &id.Name},
		{QuestionDescription, &id.Description},
		{QuestionMaintainerName, &id.MaintainerName},
		{QuestionMaintainerEmail, &id.MaintainerEmail},
	} {
		reply, err := ask(s.Prompter, q.question)
		if err != nil {
			return err
		}
		*q.field = reply
	}

	path := filepath.Join(bctx.TargetDir, s.Config.Bundle.ManifestFile)
	doc, err := s.FS.ReadFile(path)
	if os.IsNotExist(err) {
		doc, err = skeleton.Manifest(), nil
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", path)
	}

	out, err := manifest.Apply(doc, id, s.Config.Bundle.DescriptionLanguage)
	if err != nil {
		return err
	}
	if err := s.FS.WriteFile(path, out, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
	}

	logger := logging.GetLogger("steps.manifest")
	logger.Info().
		Str("id", id.ID()).
		Str("path", path).
		Msg("Manifest updated")
	return nil
}
