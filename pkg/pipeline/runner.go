package pipeline

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/artus40/djangoapp-ynh/pkg/config"
	"github.com/artus40/djangoapp-ynh/pkg/errors"
	"github.com/artus40/djangoapp-ynh/pkg/filesystem"
	"github.com/artus40/djangoapp-ynh/pkg/logging"
	"github.com/artus40/djangoapp-ynh/pkg/progress"
	"github.com/artus40/djangoapp-ynh/pkg/skeleton"
	"github.com/artus40/djangoapp-ynh/pkg/types"
)

// Options contains configuration for the runner
type Options struct {
	// Filesystem operations interface for testing
	FS       types.FS
	Config   *config.Config
	Reporter progress.Reporter
	Steps    []types.Step
	// Logger defaults to the pipeline component logger when nil
	Logger *zerolog.Logger
}

// Runner packages one project per call to Run
type Runner struct {
	fs       types.FS
	config   *config.Config
	reporter progress.Reporter
	steps    []types.Step
	logger   zerolog.Logger
}

// New creates a runner
func New(opts Options) *Runner {
	logger := logging.GetLogger("pipeline")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	reporter := opts.Reporter
	if reporter == nil {
		reporter = progress.NewPlain(os.Stdout)
	}

	return &Runner{
		fs:       fs,
		config:   cfg,
		reporter: reporter,
		steps:    opts.Steps,
		logger:   logger,
	}
}

// Run packages the project at projectPath into destination.
//
// An invalid project path or a destination that cannot be prepared is
// returned as an error before any step runs. Otherwise the summary of all
// step outcomes is returned.
func (r *Runner) Run(projectPath, destination string) (*Summary, error) {
	projectDir, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid project path %q", projectPath)
	}
	info, err := r.fs.Stat(projectDir)
	if err != nil || !info.IsDir() {
		return nil, errors.Newf(errors.ErrInvalidInput, "path must be a directory: %s", projectPath)
	}

	targetDir, err := filepath.Abs(destination)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid destination %q", destination)
	}
	copied, err := skeleton.Ensure(r.fs, targetDir, r.config.Bundle.SettingsDir)
	if err != nil {
		return nil, err
	}

	bctx := types.NewContext(projectDir, targetDir, filepath.Join(targetDir, r.config.Bundle.SettingsDir))
	r.logger.Info().
		Str("project", bctx.ProjectDir).
		Str("target", bctx.TargetDir).
		Bool("templateCopied", copied).
		Int("steps", len(r.steps)).
		Msg("Packaging started")

	r.reporter.Header(bctx.ProjectName, bctx.TargetDir)

	results := make([]types.StepResult, 0, len(r.steps))
	for _, step := range r.steps {
		results = append(results, Execute(step, bctx, r.reporter, r.logger))
	}

	summary := &Summary{Results: results}
	r.reporter.Summary(results)

	r.logger.Info().
		Bool("ok", summary.OK()).
		Int("failed", len(summary.Failed())).
		Msg("Packaging finished")
	return summary, nil
}
