// Package testutil provides helpers shared by the packager's tests.
//
// Key components:
//   - Tree helpers: CreateFile, CreateDir, FileExists and friends on t.TempDir() trees
//   - MemFS: in-memory filesystem through the types.FS interface
//   - ScriptedPrompter: a types.Prompter replaying canned answers
//   - RecordingReporter: a progress reporter keeping every event
//
// Usage guidelines:
//   - Step tests run against MemFS; only runner and CLI tests touch disk
//   - All test data is defined inline, not in external files
package testutil
