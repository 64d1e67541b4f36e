package config_test

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artus40/djangoapp-ynh/pkg/config"
	"github.com/artus40/djangoapp-ynh/pkg/errors"
	"github.com/artus40/djangoapp-ynh/pkg/filesystem"
)

func TestLoadProjectConfig(t *testing.T) {
	tests := []struct {
		name        string
		tomlContent string
		noFile      bool
		wantError   bool
		validate    func(t *testing.T, pc config.ProjectConfig)
	}{
		{
			name: "full_requirements_section",
			tomlContent: `
[requirements]
extra = ["gunicorn", "psycopg2"]
ignore = ["debug_*"]

[requirements.mappings]
rest_framework = "djangorestframework"
`,
			validate: func(t *testing.T, pc config.ProjectConfig) {
				assert.Equal(t, []string{"gunicorn", "psycopg2"}, pc.Requirements.Extra)
				assert.True(t, pc.Requirements.IsIgnored("debug_toolbar"))
				assert.False(t, pc.Requirements.IsIgnored("shop"))
				pkg, ok := pc.Requirements.PackageFor("rest_framework")
				assert.True(t, ok)
				assert.Equal(t, "djangorestframework", pkg)
			},
		},
		{
			name:   "missing_file",
			noFile: true,
			validate: func(t *testing.T, pc config.ProjectConfig) {
				assert.Empty(t, pc.Requirements.Extra)
				_, ok := pc.Requirements.PackageFor("anything")
				assert.False(t, ok)
			},
		},
		{
			name:        "invalid_toml",
			tomlContent: `[requirements`,
			wantError:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := afero.NewMemMapFs()
			fsys := filesystem.NewAferoFS(mem)
			projectDir := "/src/mysite"
			require.NoError(t, mem.MkdirAll(projectDir, 0755))
			if !tt.noFile {
				require.NoError(t, afero.WriteFile(mem, filepath.Join(projectDir, config.ProjectFileName), []byte(tt.tomlContent), 0644))
			}

			pc, err := config.LoadProjectConfig(fsys, projectDir)
			if tt.wantError {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
				return
			}
			require.NoError(t, err)
			tt.validate(t, pc)
		})
	}
}
