package steps

import (
	"testing"

	"github.com/artus40/djangoapp-ynh/pkg/config"
	"github.com/artus40/djangoapp-ynh/pkg/testutil"
	"github.com/artus40/djangoapp-ynh/pkg/types"
)

const (
	projectDir  = "/src/mysite"
	targetDir   = "/out/mysite_ynh"
	settingsDir = "/out/mysite_ynh/django"
)

type fakeIntrospector struct {
	apps   []string
	err    error
	module string
	file   string
}

func (f *fakeIntrospector) InstalledApps(_, module, file string) ([]string, error) {
	f.module, f.file = module, file
	return f.apps, f.err
}

type fixture struct {
	fs       types.FS
	prompter *testutil.ScriptedPrompter
	intro    *fakeIntrospector
	bctx     *types.Context
	deps     Deps
}

func newFixture(t *testing.T, files map[string]string, answers ...string) *fixture {
	t.Helper()
	fsys := testutil.MemTree(t, projectDir, files)
	if err := fsys.MkdirAll(settingsDir, 0755); err != nil {
		t.Fatal(err)
	}
	f := &fixture{
		fs:       fsys,
		prompter: testutil.NewScriptedPrompter(answers...),
		intro:    &fakeIntrospector{apps: []string{"django.contrib.admin", "blog"}},
		bctx:     types.NewContext(projectDir, targetDir, settingsDir),
	}
	f.deps = Deps{FS: fsys, Prompter: f.prompter, Introspector: f.intro, Config: config.Default()}
	return f
}
