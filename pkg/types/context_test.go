package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewContext(t *testing.T) {
	bctx := NewContext("/src/mysite", "/out/bundle", "/out/bundle/django")

	assert.Equal(t, "mysite", bctx.ProjectName)
	assert.Equal(t, "/src/mysite", bctx.ProjectDir)
	assert.Equal(t, "/out/bundle", bctx.TargetDir)
	assert.Equal(t, "/out/bundle/django", bctx.SettingsDir)

	_, ok := bctx.InstalledApps()
	assert.False(t, ok, "installed apps must be unset on a fresh context")
	_, ok = bctx.EmbeddedModules()
	assert.False(t, ok, "embedded modules must be unset on a fresh context")
}

func TestContext_InstalledApps(t *testing.T) {
	bctx := NewContext("/src/mysite", "/out", "/out/django")
	apps := []string{"django.contrib.admin", "blog"}
	bctx.SetInstalledApps(apps)

	apps[0] = "mutated"
	got, ok := bctx.InstalledApps()
	assert.True(t, ok)
	assert.Equal(t, []string{"django.contrib.admin", "blog"}, got)

	got[1] = "mutated"
	again, _ := bctx.InstalledApps()
	assert.Equal(t, "blog", again[1])
}

func TestContext_InstalledAppsEmptyIsSet(t *testing.T) {
	bctx := NewContext("/src/mysite", "/out", "/out/django")
	bctx.SetInstalledApps(nil)

	got, ok := bctx.InstalledApps()
	assert.True(t, ok)
	assert.Empty(t, got)
}

func TestContext_EmbeddedModules(t *testing.T) {
	bctx := NewContext("/src/mysite", "/out", "/out/django")
	bctx.SetEmbeddedModules([]string{"shop", "blog", "shop"})

	got, ok := bctx.EmbeddedModules()
	assert.True(t, ok)
	assert.Equal(t, []string{"blog", "shop"}, got)
	assert.True(t, bctx.IsEmbedded("blog"))
	assert.False(t, bctx.IsEmbedded("polls"))
}
