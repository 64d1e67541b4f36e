// Package types defines the core types and interfaces shared by the packager:
// the Context threaded through the step pipeline, the Step contract and its
// StepResult, the three-state prompt Answer, and the narrow interfaces through
// which steps reach the filesystem, the operator and settings introspection.
package types
