package steps

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artus40/djangoapp-ynh/pkg/config"
	"github.com/artus40/djangoapp-ynh/pkg/errors"
	"github.com/artus40/djangoapp-ynh/pkg/testutil"
)

const prodSettings = "from mysite.settings import *\nDEBUG = False\n"

func TestFindSettings_SingleMatch(t *testing.T) {
	f := newFixture(t, map[string]string{
		"mysite/settings.py":      "INSTALLED_APPS = []\n",
		"mysite/prod_settings.py": prodSettings,
		".git/hooks_settings.py":  "",
		"venv/lib/x_settings.py":  "",
	})

	err := NewFindSettings(f.deps).Process(f.bctx)
	require.NoError(t, err)

	assert.Equal(t, "from app.settings import *\nDEBUG = False\n",
		testutil.MemRead(t, f.fs, filepath.Join(settingsDir, "settings.py")))
	assert.Equal(t, "mysite.prod_settings", f.intro.module)
	assert.Equal(t, filepath.Join(projectDir, "mysite/prod_settings.py"), f.intro.file)
	assert.Empty(t, f.prompter.Questions)

	apps, ok := f.bctx.InstalledApps()
	assert.True(t, ok)
	assert.Equal(t, []string{"django.contrib.admin", "blog"}, apps)
}

func TestFindSettings_OutputNameIndependentOfScaffold(t *testing.T) {
	f := newFixture(t, map[string]string{
		"mysite/base.py":     "INSTALLED_APPS = []\n",
		"mysite/settings.py": prodSettings,
	})
	f.deps.Config.Discovery.ScaffoldSettings = "base.py"
	f.deps.Config.Discovery.SettingsPattern = "settings.py"

	require.NoError(t, NewFindSettings(f.deps).Process(f.bctx))

	assert.Equal(t, "mysite.settings", f.intro.module)
	assert.True(t, testutil.MemExists(f.fs, filepath.Join(settingsDir, "settings.py")))
	assert.False(t, testutil.MemExists(f.fs, filepath.Join(settingsDir, "base.py")))
}

func TestFindSettings_Ambiguous(t *testing.T) {
	f := newFixture(t, map[string]string{
		"mysite/prod_settings.py": prodSettings,
		"mysite/dev_settings.py":  prodSettings,
	}, "y", "prod_settings.py")

	err := NewFindSettings(f.deps).Process(f.bctx)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAmbiguous))
	assert.Empty(t, f.prompter.Questions, "no prompt on ambiguity")
	assert.False(t, testutil.MemExists(f.fs, filepath.Join(settingsDir, "settings.py")))
	_, ok := f.bctx.InstalledApps()
	assert.False(t, ok)
}

func TestFindSettings_NoMatchPrompts(t *testing.T) {
	tests := []struct {
		name     string
		files    map[string]string
		answers  []string
		wantCode errors.ErrorCode
		wantOK   bool
	}{
		{
			name:     "declined",
			answers:  []string{"n"},
			wantCode: errors.ErrDeclined,
		},
		{
			name:     "skipped",
			answers:  []string{""},
			wantCode: errors.ErrDeclined,
		},
		{
			name:     "end_of_input",
			wantCode: errors.ErrDeclined,
		},
		{
			name:    "located",
			files:   map[string]string{"conf/production.py": prodSettings},
			answers: []string{"y", "production.py"},
			wantOK:  true,
		},
		{
			name:    "located_with_glob",
			files:   map[string]string{"conf/production.py": prodSettings},
			answers: []string{"yes", "**/conf/production.py"},
			wantOK:  true,
		},
		{
			name:     "location_not_found",
			answers:  []string{"y", "nothing.py"},
			wantCode: errors.ErrNotFound,
		},
		{
			name: "location_ambiguous",
			files: map[string]string{
				"a/production.py": "",
				"b/production.py": "",
			},
			answers:  []string{"y", "production.py"},
			wantCode: errors.ErrAmbiguous,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := map[string]string{"mysite/settings.py": ""}
			for k, v := range tt.files {
				files[k] = v
			}
			f := newFixture(t, files, tt.answers...)

			err := NewFindSettings(f.deps).Process(f.bctx)
			if tt.wantOK {
				require.NoError(t, err)
				assert.Equal(t, "conf.production", f.intro.module)
				assert.Equal(t, QuestionHasSettings, f.prompter.Questions[0])
				assert.Equal(t, QuestionSettingsLocation, f.prompter.Questions[1])
				return
			}
			assert.True(t, errors.IsErrorCode(err, tt.wantCode), "got %v", err)
		})
	}
}

func TestFindSettings_IntrospectionFailure(t *testing.T) {
	f := newFixture(t, map[string]string{"mysite/prod_settings.py": prodSettings})
	f.intro.err = assert.AnError

	err := NewFindSettings(f.deps).Process(f.bctx)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIntrospect))
	_, ok := f.bctx.InstalledApps()
	assert.False(t, ok)
}

func TestRewriteSettings(t *testing.T) {
	fw := config.Framework{SettingsModule: "app.settings"}
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "drops_scaffold_import",
			in:   "from mysite.settings import *\nX = 1",
			want: "from app.settings import *\nX = 1",
		},
		{
			name: "keeps_other_imports",
			in:   "from other.settings import *\nfrom mysite.settings import *  # noqa\n",
			want: "from app.settings import *\nfrom other.settings import *\nfrom mysite.settings import *  # noqa\n",
		},
		{
			name: "crlf",
			in:   "from mysite.settings import *\r\nX = 1\r\n",
			want: "from app.settings import *\nX = 1\r\n",
		},
		{
			name: "empty",
			in:   "",
			want: "from app.settings import *\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rewriteSettings(tt.in, "mysite", fw))
		})
	}
}

func TestModulePath(t *testing.T) {
	m, err := modulePath("/src/mysite", "/src/mysite/mysite/conf/prod.py")
	require.NoError(t, err)
	assert.Equal(t, "mysite.conf.prod", m)

	_, err = modulePath("/src/mysite", "/elsewhere/prod.py")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
