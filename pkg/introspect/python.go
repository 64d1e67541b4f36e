package introspect

import (
	"bytes"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/artus40/djangoapp-ynh/pkg/errors"
	"github.com/artus40/djangoapp-ynh/pkg/logging"
	"github.com/artus40/djangoapp-ynh/pkg/types"
)

var modulePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)

// Python imports the settings module with a Python interpreter and prints
// its INSTALLED_APPS. The project directory is used as working directory so
// absolute imports of project packages resolve.
type Python struct {
	Interpreter string
}

var _ types.Introspector = (*Python)(nil)

// NewPython creates a subprocess introspector using interpreter
func NewPython(interpreter string) *Python {
	return &Python{Interpreter: interpreter}
}

// InstalledApps implements types.Introspector
func (p *Python) InstalledApps(projectDir, module, _ string) ([]string, error) {
	if !modulePattern.MatchString(module) {
		return nil, errors.Newf(errors.ErrInvalidInput, "invalid settings module %q", module)
	}

	script := fmt.Sprintf("from %s import %s; print(';'.join(%s))", module, Variable, Variable)
	cmd := exec.Command(p.Interpreter, "-c", script)
	cmd.Dir = projectDir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger := logging.GetLogger("introspect.python")
	logger.Debug().Str("interpreter", p.Interpreter).Str("module", module).Msg("Importing settings module")

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrapf(err, errors.ErrIntrospect, "%s could not import %s", p.Interpreter, module).
			WithDetail("stderr", strings.TrimSpace(stderr.String()))
	}
	return parseAppList(stdout.String()), nil
}

func parseAppList(out string) []string {
	out = strings.TrimSpace(out)
	if out == "" {
		return []string{}
	}
	apps := strings.Split(out, ";")
	for i := range apps {
		apps[i] = strings.TrimSpace(apps[i])
	}
	return apps
}
