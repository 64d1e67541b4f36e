package types

import (
	"io/fs"
	"path/filepath"
)

// FS is the filesystem interface required by the packaging steps
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)
	Walk(root string, fn filepath.WalkFunc) error

	RemoveAll(path string) error
}

// Prompter asks the operator questions on behalf of a step.
type Prompter interface {
	// Ask prints the question and returns the trimmed answer.
	// It returns io.EOF once input is exhausted.
	Ask(question string) (string, error)

	// Confirm asks a yes/no question.
	Confirm(question string) (Answer, error)

	// Say prints an informational line.
	Say(message string)
}

// Introspector reads the INSTALLED_APPS declared by a settings module.
//
// module is the dotted import path of the settings file relative to
// projectDir, file its absolute path.
type Introspector interface {
	InstalledApps(projectDir, module, file string) ([]string, error)
}
