// Package pipeline runs the packaging steps against a project.
//
// The Runner validates the project path, prepares the bundle destination,
// builds the shared types.Context and executes every step in order. A step
// failure never stops the run: each outcome is captured in a StepResult and
// the Summary tells the caller whether the bundle is complete.
package pipeline
