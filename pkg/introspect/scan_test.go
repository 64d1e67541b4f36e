package introspect

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artus40/djangoapp-ynh/pkg/errors"
	"github.com/artus40/djangoapp-ynh/pkg/filesystem"
	"github.com/artus40/djangoapp-ynh/pkg/types"
)

const project = "/src/mysite"

func memProject(t *testing.T, files map[string]string) types.FS {
	t.Helper()
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())
	for name, content := range files {
		path := filepath.Join(project, name)
		require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, fsys.WriteFile(path, []byte(content), 0644))
	}
	return fsys
}

func scan(t *testing.T, files map[string]string, file string) ([]string, error) {
	t.Helper()
	return NewScanner(memProject(t, files)).
		InstalledApps(project, "mysite.prod_settings", filepath.Join(project, file))
}

func TestScanner_LiteralList(t *testing.T) {
	apps, err := scan(t, map[string]string{
		"mysite/prod_settings.py": `
DEBUG = False
INSTALLED_APPS = [
    "django.contrib.admin",  # admin
    'blog',
    "shop",
]
`,
	}, "mysite/prod_settings.py")
	require.NoError(t, err)
	assert.Equal(t, []string{"django.contrib.admin", "blog", "shop"}, apps)
}

func TestScanner_Mutations(t *testing.T) {
	apps, err := scan(t, map[string]string{
		"mysite/prod_settings.py": `
INSTALLED_APPS: list = ("a", "b")
INSTALLED_APPS += ["c"]
INSTALLED_APPS = INSTALLED_APPS + ["d", "e"]
INSTALLED_APPS.append("f"); INSTALLED_APPS.remove("b")
INSTALLED_APPS.insert(0, "first")
INSTALLED_APPS.extend(["g"] + ["h"])
if DEBUG:
    INSTALLED_APPS.append("debug_" "toolbar")
`,
	}, "mysite/prod_settings.py")
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "a", "c", "d", "e", "f", "g", "h", "debug_toolbar"}, apps)
}

func TestScanner_OneLineBlocks(t *testing.T) {
	apps, err := scan(t, map[string]string{
		"mysite/prod_settings.py": `
INSTALLED_APPS = ["blog"]
if DEBUG: INSTALLED_APPS += ["debug_toolbar"]
if LOCALE == {"fr": 1}: INSTALLED_APPS.append("i18n")
else: INSTALLED_APPS.append("plain")
try:
    INSTALLED_APPS.append("shop")
except ImportError: pass
`,
	}, "mysite/prod_settings.py")
	require.NoError(t, err)
	assert.Equal(t, []string{"blog", "debug_toolbar", "i18n", "plain", "shop"}, apps)
}

func TestScanner_SumOfNamedLists(t *testing.T) {
	files := map[string]string{
		"config/settings/base.py": `
DEBUG = False
DJANGO_APPS = [
    "django.contrib.auth",
    "django.contrib.admin",
]
THIRD_PARTY_APPS = ("rest_framework",)
LOCAL_APPS = ["blog"]
LOCAL_APPS.append("shop")
INSTALLED_APPS = DJANGO_APPS + THIRD_PARTY_APPS + LOCAL_APPS
`,
		"config/settings/prod_settings.py": `
from .base import *
EXTRA = ["storages"]
INSTALLED_APPS += EXTRA
`,
	}
	apps, err := scan(t, files, "config/settings/prod_settings.py")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"django.contrib.auth", "django.contrib.admin",
		"rest_framework", "blog", "shop", "storages",
	}, apps)
}

func TestScanner_RebindingDropsNamedList(t *testing.T) {
	_, err := scan(t, map[string]string{
		"prod_settings.py": `
LOCAL_APPS = ["blog"]
LOCAL_APPS = load_apps()
INSTALLED_APPS = LOCAL_APPS
`,
	}, "prod_settings.py")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIntrospect))
	assert.Contains(t, err.Error(), "LOCAL_APPS is not a literal list")
}

func TestScanner_FollowsStarImports(t *testing.T) {
	files := map[string]string{
		"mysite/__init__.py": "",
		"mysite/settings.py": `INSTALLED_APPS = ["django.contrib.auth", "blog"]`,
		"mysite/prod_settings.py": `
from mysite.settings import *
from os import *
INSTALLED_APPS += ["shop"]
`,
	}
	apps, err := scan(t, files, "mysite/prod_settings.py")
	require.NoError(t, err)
	assert.Equal(t, []string{"django.contrib.auth", "blog", "shop"}, apps)
}

func TestScanner_RelativeStarImport(t *testing.T) {
	files := map[string]string{
		"mysite/conf/base.py": `INSTALLED_APPS = ["blog"]`,
		"mysite/conf/prod_settings.py": `
from .base import *
INSTALLED_APPS.append("shop")
`,
	}
	apps, err := scan(t, files, "mysite/conf/prod_settings.py")
	require.NoError(t, err)
	assert.Equal(t, []string{"blog", "shop"}, apps)
}

func TestScanner_ImportCycle(t *testing.T) {
	files := map[string]string{
		"a.py":             "from b import *\nINSTALLED_APPS = ['a']\n",
		"b.py":             "from a import *\n",
		"prod_settings.py": "from a import *\n",
	}
	apps, err := scan(t, files, "prod_settings.py")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, apps)
}

func TestScanner_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"missing", "DEBUG = True\n"},
		{"computed", "INSTALLED_APPS = get_apps()\n"},
		{"unknown_name", "INSTALLED_APPS = BASE_APPS + ['blog']\n"},
		{"fstring", "INSTALLED_APPS = [f\"{x}\"]\n"},
		{"append_before_assign", "INSTALLED_APPS.append('a')\n"},
		{"remove_absent", "INSTALLED_APPS = []\nINSTALLED_APPS.remove('a')\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scan(t, map[string]string{"prod_settings.py": tt.src}, "prod_settings.py")
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrIntrospect))
		})
	}
}

func TestScanner_UnreadableFile(t *testing.T) {
	_, err := scan(t, map[string]string{}, "prod_settings.py")
	assert.True(t, errors.IsErrorCode(err, errors.ErrIntrospect))
}
