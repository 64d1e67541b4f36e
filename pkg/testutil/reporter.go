package testutil

import (
	"github.com/artus40/djangoapp-ynh/pkg/types"
)

// RecordingReporter keeps every progress event it receives
type RecordingReporter struct {
	Project  string
	Target   string
	Started  []string
	Lines    int
	Finished []types.StepResult
	Results  []types.StepResult
}

// Header records the run header
func (r *RecordingReporter) Header(projectName, targetDir string) {
	r.Project, r.Target = projectName, targetDir
}

// Start records a step start
func (r *RecordingReporter) Start(message string) {
	r.Started = append(r.Started, message)
}

// Update counts prompt lines
func (r *RecordingReporter) Update(lines int) {
	r.Lines += lines
}

// Finish records a step outcome
func (r *RecordingReporter) Finish(result types.StepResult) {
	r.Finished = append(r.Finished, result)
}

// Summary records the final results
func (r *RecordingReporter) Summary(results []types.StepResult) {
	r.Results = results
}
