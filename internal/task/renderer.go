package task

import (
	"fmt"
	"io"

	"github.com/lattice-dev/lattice/internal/ui"
)

// Renderer is the progress-output strategy for task execution.
type Renderer interface {
	TaskStart(title string)
	TaskDone(title, note string)
	TaskFailed(title string, err error)
}

// Silent discards all progress output. Used for tests and --silent runs.
type Silent struct{}

func (Silent) TaskStart(string)         {}
func (Silent) TaskDone(string, string)  {}
func (Silent) TaskFailed(string, error) {}

// Console prints one line per task with a status symbol.
type Console struct {
	Out io.Writer
}

// NewConsole creates a console renderer writing to out.
func NewConsole(out io.Writer) *Console {
	return &Console{Out: out}
}

func (c *Console) TaskStart(string) {}

func (c *Console) TaskDone(title, note string) {
	if note != "" {
		fmt.Fprintf(c.Out, "%s %s\n", ui.Success(title), ui.Hint("("+note+")"))
		return
	}
	fmt.Fprintln(c.Out, ui.Success(title))
}

func (c *Console) TaskFailed(title string, err error) {
	fmt.Fprintln(c.Out, ui.Errorf("%s: %v", title, err))
}
