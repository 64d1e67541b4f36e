// Package filesystem provides filesystem implementations for the packager.
//
// This package contains implementations of the types.FS interface (the
// standard OS filesystem and an afero-backed one used by tests) together
// with the recursive finder and copy helpers the steps build on.
package filesystem
