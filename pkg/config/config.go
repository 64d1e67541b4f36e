package config

import (
	"fmt"
	"strings"
)

// Introspection modes
const (
	IntrospectAuto   = "auto"
	IntrospectScan   = "scan"
	IntrospectPython = "python"
)

// Config is the complete tool configuration
type Config struct {
	Framework  Framework  `koanf:"framework"`
	Discovery  Discovery  `koanf:"discovery"`
	Bundle     Bundle     `koanf:"bundle"`
	Introspect Introspect `koanf:"introspect"`
}

// Framework describes the web framework the packaged project is built on
type Framework struct {
	Name           string `koanf:"name"`
	SettingsModule string `koanf:"settings_module"`
}

// Discovery holds the file names and patterns the steps search for
type Discovery struct {
	SettingsPattern  string   `koanf:"settings_pattern"`
	ScaffoldSettings string   `koanf:"scaffold_settings"`
	AppsMarker       string   `koanf:"apps_marker"`
	UrlsFile         string   `koanf:"urls_file"`
	RequirementsFile string   `koanf:"requirements_file"`
	IgnoreDirs       []string `koanf:"ignore_dirs"`
}

// Bundle describes the layout of the generated package
type Bundle struct {
	Destination         string `koanf:"destination"`
	SettingsDir         string `koanf:"settings_dir"`
	SettingsFile        string `koanf:"settings_file"`
	ManifestFile        string `koanf:"manifest_file"`
	DescriptionLanguage string `koanf:"description_language"`
}

// Introspect selects how INSTALLED_APPS is read
type Introspect struct {
	Mode   string `koanf:"mode"`
	Python string `koanf:"python"`
}

// ImportLine is the statement every rewritten settings file starts with.
func (f Framework) ImportLine() string {
	return fmt.Sprintf("from %s import *", f.SettingsModule)
}

// ScaffoldImportLine is the import the framework's project template writes
// into custom settings files of projectName.
func ScaffoldImportLine(projectName string) string {
	return fmt.Sprintf("from %s.settings import *", projectName)
}

// IsIgnoredDir reports whether a directory name is excluded from discovery.
func (d Discovery) IsIgnoredDir(name string) bool {
	for _, ignored := range d.IgnoreDirs {
		if ignored == name {
			return true
		}
	}
	return false
}

func (c *Config) validate() error {
	switch c.Introspect.Mode {
	case IntrospectAuto, IntrospectScan, IntrospectPython:
	default:
		return fmt.Errorf("unknown introspect.mode %q (want auto, scan or python)", c.Introspect.Mode)
	}
	for _, required := range []struct {
		key   string
		value string
	}{
		{"framework.name", c.Framework.Name},
		{"discovery.settings_pattern", c.Discovery.SettingsPattern},
		{"discovery.scaffold_settings", c.Discovery.ScaffoldSettings},
		{"discovery.apps_marker", c.Discovery.AppsMarker},
		{"discovery.urls_file", c.Discovery.UrlsFile},
		{"discovery.requirements_file", c.Discovery.RequirementsFile},
		{"bundle.settings_dir", c.Bundle.SettingsDir},
		{"bundle.settings_file", c.Bundle.SettingsFile},
		{"bundle.manifest_file", c.Bundle.ManifestFile},
	} {
		if strings.TrimSpace(required.value) == "" {
			return fmt.Errorf("%s cannot be empty", required.key)
		}
	}
	return nil
}
