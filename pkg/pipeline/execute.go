package pipeline

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/artus40/djangoapp-ynh/pkg/errors"
	"github.com/artus40/djangoapp-ynh/pkg/progress"
	"github.com/artus40/djangoapp-ynh/pkg/types"
)

// Execute runs a single step between reporter Start and Finish events.
// Errors and panics raised by the step end up in the returned result.
func Execute(step types.Step, bctx *types.Context, reporter progress.Reporter, logger zerolog.Logger) types.StepResult {
	start := time.Now()
	reporter.Start(step.Message())

	logger.Debug().
		Str("step", step.Name()).
		Msg("Executing step")

	err := process(step, bctx)
	result := types.StepResult{
		Name:     step.Name(),
		Message:  step.Message(),
		OK:       err == nil,
		Err:      err,
		Duration: time.Since(start),
	}

	// Info level: warn and above reach stderr during the line redraw.
	if err != nil {
		logger.Info().
			Err(err).
			Str("step", step.Name()).
			Str("code", string(errors.GetErrorCode(err))).
			Msg("Step failed")
	} else {
		logger.Info().
			Str("step", step.Name()).
			Dur("duration", result.Duration).
			Msg("Step succeeded")
	}

	reporter.Finish(result)
	return result
}

func process(step types.Step, bctx *types.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf(errors.ErrStepPanic, "step %s panicked: %v", step.Name(), r)
		}
	}()
	return step.Process(bctx)
}
