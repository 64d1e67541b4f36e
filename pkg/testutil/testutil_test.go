package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artus40/djangoapp-ynh/pkg/types"
)

func TestCreateProject(t *testing.T) {
	dir := CreateProject(t, "mysite", map[string]string{
		"manage.py":        "",
		"mysite/urls.py":   "urlpatterns = []",
		"blog/apps.py":     "",
		"blog/models/x.py": "",
	})
	assert.Equal(t, "mysite", filepath.Base(dir))
	assert.True(t, FileExists(t, filepath.Join(dir, "mysite", "urls.py")))
	assert.True(t, DirExists(t, filepath.Join(dir, "blog", "models")))
	AssertFileContent(t, filepath.Join(dir, "mysite", "urls.py"), "urlpatterns = []")
	AssertNoFile(t, filepath.Join(dir, "requirements.txt"))
}

func TestMemTree(t *testing.T) {
	fsys := MemTree(t, "/p", map[string]string{"a/b.txt": "hi"})
	assert.Equal(t, "hi", MemRead(t, fsys, "/p/a/b.txt"))
	assert.True(t, MemExists(fsys, "/p/a"))
	assert.False(t, MemExists(fsys, "/p/c"))
}

func TestScriptedPrompter(t *testing.T) {
	p := NewScriptedPrompter("y", "", "answer")

	a, err := p.Confirm("first ?")
	require.NoError(t, err)
	assert.Equal(t, types.AnswerConfirmed, a)

	a, err = p.Confirm("second ?")
	require.NoError(t, err)
	assert.Equal(t, types.AnswerSkipped, a)

	reply, err := p.Ask("third ?")
	require.NoError(t, err)
	assert.Equal(t, "answer", reply)

	_, err = p.Ask("fourth ?")
	assert.Error(t, err)

	a, err = p.Confirm("fifth ?")
	require.NoError(t, err)
	assert.Equal(t, types.AnswerSkipped, a)

	p.Say("hello")
	assert.Equal(t, []string{"hello"}, p.Said)
	assert.Len(t, p.Questions, 5)
	assert.Zero(t, p.Remaining())
}
