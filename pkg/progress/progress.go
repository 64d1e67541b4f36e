// Package progress reports the advance of the packaging pipeline to the operator.
//
// A Reporter receives structured events (a header, start/update/finish per
// step, a final summary) and is fully decoupled from the step logic. The
// terminal renderer redraws each step's running line, and any prompt lines
// printed below it, into a single status line once the step finishes. The
// plain renderer appends lines and never emits escape sequences.
package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/artus40/djangoapp-ynh/pkg/style"
	"github.com/artus40/djangoapp-ynh/pkg/types"
)

// Message formats
const (
	MsgHeader     = "Packaging '%s' in %s :"
	MsgRunning    = "[%s] %s... "
	MsgStatus     = "[%s] %s..."
	MsgReady      = "Your package is ready !"
	MsgErrors     = "There has been some errors !"
	MsgFailedStep = "- %s: %v"
)

// Reporter receives pipeline progress events
type Reporter interface {
	// Header announces the run
	Header(projectName, targetDir string)

	// Start announces a step
	Start(message string)

	// Update records lines printed while the current step runs
	Update(lines int)

	// Finish reports the outcome of the current step
	Finish(result types.StepResult)

	// Summary prints the aggregate outcome
	Summary(results []types.StepResult)
}

// New picks the terminal renderer when w is a terminal and the plain one otherwise
func New(w io.Writer) Reporter {
	if f, ok := w.(*os.File); ok {
		if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
			return NewTerminal(w)
		}
	}
	return NewPlain(w)
}

// base holds what both renderers print identically
type base struct {
	out io.Writer
}

func (b *base) Header(projectName, targetDir string) {
	fmt.Fprintln(b.out, style.Render("Header", fmt.Sprintf(MsgHeader, projectName, targetDir)))
}

func (b *base) Summary(results []types.StepResult) {
	var failed []types.StepResult
	for _, r := range results {
		if !r.OK {
			failed = append(failed, r)
		}
	}
	if len(failed) == 0 {
		fmt.Fprintln(b.out, style.Render("Ready", MsgReady))
		return
	}
	fmt.Fprintln(b.out, style.Render("Failed", MsgErrors))
	for _, r := range failed {
		fmt.Fprintln(b.out, style.Render("FailedItem", fmt.Sprintf(MsgFailedStep, r.Message, r.Err)))
	}
}

// Terminal redraws step lines in place
type Terminal struct {
	base
	term  *termenv.Output
	lines int
}

// NewTerminal creates a terminal renderer writing to w
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{base: base{out: w}, term: termenv.NewOutput(w)}
}

func (t *Terminal) Start(message string) {
	fmt.Fprintf(t.out, MsgRunning+"\n", style.RunningLabel(), message)
	t.lines = 1
}

func (t *Terminal) Update(lines int) {
	t.lines += lines
}

// Finish erases the running line and every line printed since, then writes the status line.
func (t *Terminal) Finish(result types.StepResult) {
	t.term.ClearLines(t.lines)
	fmt.Fprintf(t.out, MsgStatus+"\n", style.StatusLabel(result.OK), result.Message)
	t.lines = 0
}

// Plain appends lines without any cursor movement
type Plain struct {
	base
}

// NewPlain creates a plain renderer writing to w
func NewPlain(w io.Writer) *Plain {
	return &Plain{base: base{out: w}}
}

func (p *Plain) Start(message string) {
	fmt.Fprintf(p.out, MsgRunning+"\n", "***", message)
}

func (p *Plain) Update(int) {}

func (p *Plain) Finish(result types.StepResult) {
	status := "Ok"
	if !result.OK {
		status = "Error"
	}
	fmt.Fprintf(p.out, MsgStatus+"\n", status, result.Message)
}
