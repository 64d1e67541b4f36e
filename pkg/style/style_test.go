package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultThemeLoaded(t *testing.T) {
	for _, name := range []string{"Header", "Path", "Ready", "Failed", "FailedItem"} {
		_, ok := StyleRegistry[name]
		assert.True(t, ok, "style %s missing from embedded theme", name)
	}
}

func TestLoadTheme(t *testing.T) {
	saved := StyleRegistry
	t.Cleanup(func() { StyleRegistry = saved })

	err := LoadTheme([]byte(`
colors:
  accent: {light: "#000000", dark: "#ffffff"}
styles:
  Accent: {bold: true, foreground: accent}
`))
	require.NoError(t, err)
	assert.Len(t, StyleRegistry, 1)
	assert.True(t, GetStyle("Accent").GetBold())
}

func TestLoadTheme_Invalid(t *testing.T) {
	saved := StyleRegistry
	t.Cleanup(func() { StyleRegistry = saved })

	assert.Error(t, LoadTheme([]byte("colors: [unterminated")))
	assert.Equal(t, saved, StyleRegistry, "a failed load keeps the previous registry")
}

func TestGetStyle_Unknown(t *testing.T) {
	assert.Contains(t, Render("DoesNotExist", "plain"), "plain")
}

func TestLabels(t *testing.T) {
	assert.Contains(t, StatusLabel(true), "Ok")
	assert.Contains(t, StatusLabel(false), "Error")
	assert.Contains(t, RunningLabel(), "***")
	assert.Contains(t, Fatal("Path must be a directory !"), "Path must be a directory !")
}
