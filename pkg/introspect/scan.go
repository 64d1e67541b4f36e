package introspect

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/artus40/djangoapp-ynh/pkg/errors"
	"github.com/artus40/djangoapp-ynh/pkg/logging"
	"github.com/artus40/djangoapp-ynh/pkg/types"
)

// Variable is the settings name holding the application list
const Variable = "INSTALLED_APPS"

// Scanner reads INSTALLED_APPS from literal assignments without executing
// any project code. It follows star imports of settings modules that live
// inside the project, so a custom settings file extending the scaffold one
// yields the combined list. Other names bound to literal lists are tracked
// too, so INSTALLED_APPS may be built as a sum of them.
//
// Statements are applied in file order regardless of the blocks they sit
// in: an append under "if DEBUG:" is always applied, whether it sits on its
// own line or after the colon.
type Scanner struct {
	fs types.FS
}

var _ types.Introspector = (*Scanner)(nil)

// NewScanner creates a scanner reading files through fsys
func NewScanner(fsys types.FS) *Scanner {
	return &Scanner{fs: fsys}
}

// InstalledApps implements types.Introspector
func (s *Scanner) InstalledApps(projectDir, module, file string) ([]string, error) {
	st := &scanState{
		scanner:    s,
		projectDir: projectDir,
		visited:    map[string]bool{},
		lists:      map[string][]string{},
	}
	if err := st.scanFile(file); err != nil {
		return nil, errors.Wrapf(err, errors.ErrIntrospect, "failed to scan %s", module)
	}
	apps, found := st.lists[Variable]
	if !found {
		return nil, errors.Newf(errors.ErrIntrospect, "%s does not declare %s", module, Variable)
	}
	logger := logging.GetLogger("introspect.scan")
	logger.Debug().
		Str("module", module).
		Strs("apps", apps).
		Msg("Installed apps scanned")
	return apps, nil
}

// blockKeywords open a block whose body may follow the colon on the same line
var blockKeywords = map[string]bool{
	"if": true, "elif": true, "else": true,
	"try": true, "except": true, "finally": true, "with": true,
}

type scanState struct {
	scanner    *Scanner
	projectDir string
	visited    map[string]bool
	// lists holds every name currently bound to a literal list
	lists map[string][]string
}

func (st *scanState) scanFile(path string) error {
	if st.visited[path] {
		return nil
	}
	st.visited[path] = true

	data, err := st.scanner.fs.ReadFile(path)
	if err != nil {
		return err
	}
	toks, err := lex(string(data))
	if err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	for _, stmt := range statements(toks) {
		if err := st.apply(path, stmt); err != nil {
			return fmt.Errorf("%s:%d: %w", filepath.Base(path), stmt[0].line, err)
		}
	}
	return nil
}

func (st *scanState) apply(path string, stmt []token) error {
	head := stmt[0]
	switch {
	case head.is(tokName, "from"):
		return st.starImport(path, stmt)
	case head.kind == tokName && blockKeywords[head.text]:
		if body := afterColon(stmt); len(body) > 0 {
			return st.apply(path, body)
		}
	case head.kind == tokName && len(stmt) > 1:
		err := st.mutate(head.text, stmt[1:])
		if head.text == Variable {
			return err
		}
		// Any other name stops being tracked once it no longer holds a literal list.
		if err != nil {
			delete(st.lists, head.text)
		}
	}
	return nil
}

// afterColon returns the tokens following the first top-level colon of stmt.
func afterColon(stmt []token) []token {
	depth := 0
	for i, t := range stmt {
		if t.kind != tokOp {
			continue
		}
		switch t.text {
		case "(", "[", "{":
			depth++
		case ")", "]", "}":
			depth--
		case ":":
			if depth == 0 {
				return stmt[i+1:]
			}
		}
	}
	return nil
}

// starImport follows "from <module> import *" when module resolves to a project file.
func (st *scanState) starImport(path string, stmt []token) error {
	var module strings.Builder
	i := 1
	for ; i < len(stmt) && !stmt[i].is(tokName, "import"); i++ {
		module.WriteString(stmt[i].text)
	}
	if i+1 >= len(stmt) || !stmt[i+1].is(tokOp, "*") {
		return nil
	}
	target, ok := st.resolve(path, module.String())
	if !ok {
		return nil
	}
	return st.scanFile(target)
}

func (st *scanState) resolve(from, module string) (string, bool) {
	base := st.projectDir
	if strings.HasPrefix(module, ".") {
		base = filepath.Dir(from)
		for module = module[1:]; strings.HasPrefix(module, "."); module = module[1:] {
			base = filepath.Dir(base)
		}
	}
	rel := filepath.Join(strings.Split(module, ".")...)
	for _, candidate := range []string{
		filepath.Join(base, rel+".py"),
		filepath.Join(base, rel, "__init__.py"),
	} {
		if _, err := st.scanner.fs.Stat(candidate); err == nil {
			return candidate, true
		} else if !os.IsNotExist(err) {
			return "", false
		}
	}
	return "", false
}

// mutate applies an assignment or list method call to name.
func (st *scanState) mutate(name string, rest []token) error {
	// Annotated assignment: INSTALLED_APPS: list[str] = [...]
	if rest[0].is(tokOp, ":") {
		for i, t := range rest {
			if t.is(tokOp, "=") {
				rest = rest[i:]
				break
			}
		}
	}

	switch op := rest[0]; {
	case op.is(tokOp, "="):
		apps, err := st.sum(name, rest[1:])
		if err != nil {
			return err
		}
		st.lists[name] = apps
	case op.is(tokOp, "+="):
		apps, err := st.sum(name, rest[1:])
		if err != nil {
			return err
		}
		if err := st.requireFound(name); err != nil {
			return err
		}
		st.lists[name] = append(st.lists[name], apps...)
	case op.is(tokOp, ".") && len(rest) >= 2:
		return st.call(name, rest[1].text, rest[2:])
	}
	return nil
}

func (st *scanState) requireFound(name string) error {
	if _, ok := st.lists[name]; !ok {
		return fmt.Errorf("%s used before assignment", name)
	}
	return nil
}

// call applies list methods: append, extend, insert, remove.
func (st *scanState) call(name, method string, rest []token) error {
	if len(rest) < 2 || !rest[0].is(tokOp, "(") || !rest[len(rest)-1].is(tokOp, ")") {
		return fmt.Errorf("unsupported use of %s.%s", name, method)
	}
	if err := st.requireFound(name); err != nil {
		return err
	}
	args := split(rest[1:len(rest)-1], ",")
	list := st.lists[name]

	switch method {
	case "append", "remove":
		if len(args) != 1 {
			return fmt.Errorf("%s.%s expects one argument", name, method)
		}
		app, err := stringValue(args[0])
		if err != nil {
			return err
		}
		if method == "append" {
			st.lists[name] = append(list, app)
			return nil
		}
		for i, a := range list {
			if a == app {
				st.lists[name] = append(list[:i], list[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%s.remove(%q): not in list", name, app)
	case "extend":
		apps, err := st.sum(name, rest[1:len(rest)-1])
		if err != nil {
			return err
		}
		st.lists[name] = append(list, apps...)
	case "insert":
		if len(args) != 2 || len(args[0]) != 1 || args[0][0].kind != tokNumber {
			return fmt.Errorf("%s.insert expects a literal index and a string", name)
		}
		var idx int
		if _, err := fmt.Sscanf(args[0][0].text, "%d", &idx); err != nil {
			return fmt.Errorf("%s.insert: bad index %q", name, args[0][0].text)
		}
		app, err := stringValue(args[1])
		if err != nil {
			return err
		}
		if idx < 0 || idx > len(list) {
			idx = len(list)
		}
		st.lists[name] = append(list[:idx], append([]string{app}, list[idx:]...)...)
	default:
		return fmt.Errorf("unsupported method %s.%s", name, method)
	}
	return nil
}

// sum evaluates "term + term ..." for an assignment to name. Each term is a
// literal sequence or a name bound to one.
func (st *scanState) sum(name string, expr []token) ([]string, error) {
	if len(expr) == 0 {
		return nil, fmt.Errorf("missing value")
	}
	out := []string{}
	for _, term := range split(expr, "+") {
		if len(term) == 1 && term[0].kind == tokName {
			if err := st.requireFound(term[0].text); err != nil {
				if term[0].text == name {
					return nil, err
				}
				return nil, fmt.Errorf("%s is not a literal list", term[0].text)
			}
			out = append(out, st.lists[term[0].text]...)
			continue
		}
		apps, err := sequence(name, term)
		if err != nil {
			return nil, err
		}
		out = append(out, apps...)
	}
	return out, nil
}

// sequence parses a list or tuple literal of strings assigned to name
func sequence(name string, term []token) ([]string, error) {
	if len(term) < 2 {
		return nil, fmt.Errorf("%s is not a literal list", name)
	}
	open, last := term[0], term[len(term)-1]
	if !(open.is(tokOp, "[") && last.is(tokOp, "]")) && !(open.is(tokOp, "(") && last.is(tokOp, ")")) {
		return nil, fmt.Errorf("%s is not a literal list", name)
	}
	apps := []string{}
	for _, elem := range split(term[1:len(term)-1], ",") {
		if len(elem) == 0 {
			continue
		}
		app, err := stringValue(elem)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, nil
}

// stringValue joins adjacent string literals
func stringValue(toks []token) (string, error) {
	if len(toks) == 0 {
		return "", fmt.Errorf("empty value")
	}
	var b strings.Builder
	for _, t := range toks {
		if t.kind != tokString {
			return "", fmt.Errorf("non-literal value %q", t.text)
		}
		b.WriteString(t.text)
	}
	return b.String(), nil
}

// split cuts toks on a top-level operator
func split(toks []token, sep string) [][]token {
	var parts [][]token
	depth, start := 0, 0
	for i, t := range toks {
		if t.kind != tokOp {
			continue
		}
		switch t.text {
		case "(", "[", "{":
			depth++
		case ")", "]", "}":
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, toks[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, toks[start:])
}

// statements groups tokens into logical statements
func statements(toks []token) [][]token {
	var stmts [][]token
	var cur []token
	flush := func() {
		if len(cur) > 0 {
			stmts = append(stmts, cur)
		}
		cur = nil
	}
	for _, t := range toks {
		if t.kind == tokNewline {
			flush()
			continue
		}
		cur = append(cur, t)
	}
	flush()

	var out [][]token
	for _, s := range stmts {
		for _, part := range split(s, ";") {
			if len(part) > 0 {
				out = append(out, part)
			}
		}
	}
	return out
}
