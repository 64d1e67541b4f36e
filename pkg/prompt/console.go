// Package prompt asks the operator questions on the console.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/artus40/djangoapp-ynh/pkg/types"
)

// LineCounter is told about every line a prompt prints, so the progress
// renderer can erase them once the step finishes.
type LineCounter interface {
	Update(lines int)
}

// Console implements types.Prompter on a reader/writer pair
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	lines LineCounter
	echo  bool
}

var _ types.Prompter = (*Console)(nil)

// NewConsole creates a console prompter. When in is not a terminal the
// replies are echoed so the transcript keeps one line per question.
func NewConsole(in io.Reader, out io.Writer, lines LineCounter) *Console {
	echo := true
	if f, ok := in.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		echo = false
	}
	return &Console{in: bufio.NewReader(in), out: out, lines: lines, echo: echo}
}

// Ask prints "question> " and reads one line.
func (c *Console) Ask(question string) (string, error) {
	fmt.Fprintf(c.out, "%s> ", question)
	c.count(1)

	line, err := c.in.ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		fmt.Fprintln(c.out)
		if err == io.EOF {
			return "", io.EOF
		}
		return "", fmt.Errorf("failed to read user input: %w", err)
	}

	reply := strings.TrimSpace(line)
	if c.echo {
		fmt.Fprintln(c.out, reply)
	}
	return reply, nil
}

// Confirm asks a yes/no question. End of input is a skipped answer.
func (c *Console) Confirm(question string) (types.Answer, error) {
	reply, err := c.Ask(question)
	if err == io.EOF {
		return types.AnswerSkipped, nil
	}
	if err != nil {
		return types.AnswerSkipped, err
	}
	return types.ParseAnswer(reply), nil
}

// Say prints an informational line
func (c *Console) Say(message string) {
	fmt.Fprintln(c.out, message)
	c.count(1)
}

func (c *Console) count(n int) {
	if c.lines != nil {
		c.lines.Update(n)
	}
}
