package pipeline

import (
	"strings"

	"github.com/artus40/djangoapp-ynh/pkg/errors"
	"github.com/artus40/djangoapp-ynh/pkg/types"
)

// Summary holds the ordered outcomes of a run
type Summary struct {
	Results []types.StepResult
}

// OK reports whether every step succeeded
func (s *Summary) OK() bool {
	return len(s.Failed()) == 0
}

// Failed returns the failing steps in execution order
func (s *Summary) Failed() []types.StepResult {
	var failed []types.StepResult
	for _, r := range s.Results {
		if !r.OK {
			failed = append(failed, r)
		}
	}
	return failed
}

// Err returns an ErrStepsFailed error naming the failing steps, or nil
func (s *Summary) Err() error {
	failed := s.Failed()
	if len(failed) == 0 {
		return nil
	}
	names := make([]string, len(failed))
	for i, r := range failed {
		names[i] = r.Name
	}
	return errors.Newf(errors.ErrStepsFailed, "%d step(s) failed: %s", len(failed), strings.Join(names, ", ")).
		WithDetail("steps", names)
}
