package steps

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artus40/djangoapp-ynh/pkg/errors"
	"github.com/artus40/djangoapp-ynh/pkg/testutil"
)

func TestFindUrls(t *testing.T) {
	t.Run("copies_verbatim", func(t *testing.T) {
		content := "from django.urls import path\n\nurlpatterns = []\n"
		f := newFixture(t, map[string]string{"mysite/urls.py": content})

		require.NoError(t, NewFindUrls(f.deps).Process(f.bctx))
		assert.Equal(t, content, testutil.MemRead(t, f.fs, filepath.Join(settingsDir, "urls.py")))
	})

	t.Run("missing", func(t *testing.T) {
		f := newFixture(t, map[string]string{"blog/urls.py": ""})

		err := NewFindUrls(f.deps).Process(f.bctx)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
		assert.False(t, testutil.MemExists(f.fs, filepath.Join(settingsDir, "urls.py")))
	})
}
