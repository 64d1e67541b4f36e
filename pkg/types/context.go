package types

import (
	"path/filepath"
	"sort"
)

// Context is the configuration record shared by every step of a run.
//
// The path fields are fixed when the run starts. InstalledApps and
// EmbeddedModules are filled in by earlier steps; a later step must check
// the second return value of their accessors since the writer may have failed.
type Context struct {
	// ProjectDir is the absolute path of the project being packaged
	ProjectDir string

	// ProjectName is the base name of ProjectDir
	ProjectName string

	// TargetDir is the absolute path of the bundle
	TargetDir string

	// SettingsDir holds the rewritten project files inside the bundle
	SettingsDir string

	installedApps    []string
	hasInstalledApps bool

	embeddedModules    []string
	embeddedSet        map[string]struct{}
	hasEmbeddedModules bool
}

// NewContext creates a context for packaging projectDir into targetDir.
func NewContext(projectDir, targetDir, settingsDir string) *Context {
	return &Context{
		ProjectDir:  projectDir,
		ProjectName: filepath.Base(projectDir),
		TargetDir:   targetDir,
		SettingsDir: settingsDir,
	}
}

// SetInstalledApps records the ordered application identifiers.
func (c *Context) SetInstalledApps(apps []string) {
	c.installedApps = append([]string(nil), apps...)
	c.hasInstalledApps = true
}

// InstalledApps returns the recorded identifiers and whether they were set.
func (c *Context) InstalledApps() ([]string, bool) {
	if !c.hasInstalledApps {
		return nil, false
	}
	return append([]string(nil), c.installedApps...), true
}

// SetEmbeddedModules records the set of embedded module names.
func (c *Context) SetEmbeddedModules(modules []string) {
	c.embeddedSet = make(map[string]struct{}, len(modules))
	c.embeddedModules = c.embeddedModules[:0]
	for _, m := range modules {
		if _, dup := c.embeddedSet[m]; dup {
			continue
		}
		c.embeddedSet[m] = struct{}{}
		c.embeddedModules = append(c.embeddedModules, m)
	}
	sort.Strings(c.embeddedModules)
	c.hasEmbeddedModules = true
}

// EmbeddedModules returns the sorted embedded module names and whether they were set.
func (c *Context) EmbeddedModules() ([]string, bool) {
	if !c.hasEmbeddedModules {
		return nil, false
	}
	return append([]string(nil), c.embeddedModules...), true
}

// IsEmbedded reports whether name is in the embedded module set.
func (c *Context) IsEmbedded(name string) bool {
	_, ok := c.embeddedSet[name]
	return ok
}
