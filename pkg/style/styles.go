// Package style defines the visual styling of the packager's terminal output.
//
// Block styles (header, banner) are lipgloss styles built from the embedded
// styles.yaml theme; inline step indicators are pterm styles.
package style

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var defaultTheme []byte

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	MarginLeft int    `yaml:"marginLeft,omitempty"`
}

// Theme represents the complete styles configuration
type Theme struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// StyleRegistry maps semantic names to lipgloss styles
var StyleRegistry map[string]lipgloss.Style

func init() {
	if err := LoadTheme(defaultTheme); err != nil {
		panic(fmt.Sprintf("failed to load styles: %v", err))
	}
}

// LoadTheme replaces the style registry with the styles defined in data.
func LoadTheme(data []byte) error {
	var theme Theme
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return fmt.Errorf("failed to parse styles: %w", err)
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(theme.Colors))
	for name, def := range theme.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	registry := make(map[string]lipgloss.Style, len(theme.Styles))
	for name, def := range theme.Styles {
		registry[name] = buildStyle(def, colors)
	}
	StyleRegistry = registry
	return nil
}

func buildStyle(def StyleDef, colors map[string]lipgloss.AdaptiveColor) lipgloss.Style {
	s := lipgloss.NewStyle()
	if def.Bold {
		s = s.Bold(true)
	}
	if def.Italic {
		s = s.Italic(true)
	}
	if color, ok := colors[def.Foreground]; ok {
		s = s.Foreground(color)
	}
	if def.MarginLeft > 0 {
		s = s.MarginLeft(def.MarginLeft)
	}
	return s
}

// GetStyle safely retrieves a style from the registry
func GetStyle(name string) lipgloss.Style {
	if s, ok := StyleRegistry[name]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// Render renders text with the named style
func Render(name, text string) string {
	return GetStyle(name).Render(text)
}
