package steps

import (
	"os"
	"path/filepath"

	"github.com/artus40/djangoapp-ynh/pkg/errors"
	"github.com/artus40/djangoapp-ynh/pkg/filesystem"
	"github.com/artus40/djangoapp-ynh/pkg/logging"
	"github.com/artus40/djangoapp-ynh/pkg/types"
)

// FindUrls copies the project's root URL configuration into the bundle.
type FindUrls struct {
	Deps
}

// NewFindUrls creates the URL discovery step
func NewFindUrls(deps Deps) *FindUrls {
	return &FindUrls{Deps: deps}
}

func (s *FindUrls) Name() string    { return "urls" }
func (s *FindUrls) Message() string { return "Looking for 'urls.py'" }

// Process implements types.Step
func (s *FindUrls) Process(bctx *types.Context) error {
	src := filepath.Join(bctx.ProjectDir, bctx.ProjectName, s.Config.Discovery.UrlsFile)
	if _, err := s.FS.Stat(src); err != nil {
		if os.IsNotExist(err) {
			return errors.Newf(errors.ErrNotFound, "%s does not exist", src)
		}
		return errors.Wrapf(err, errors.ErrFileRead, "cannot stat %s", src)
	}

	dst, err := filesystem.CopyFile(s.FS, src, bctx.SettingsDir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to copy %s", src)
	}
	logger := logging.GetLogger("steps.urls")
	logger.Info().Str("destination", dst).Msg("URL configuration copied")
	return nil
}
