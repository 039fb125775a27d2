package initwizard

import (
	"io"

	"github.com/charmbracelet/huh"
)

type FormRunner interface {
	Run(form *huh.Form) error
}

// Runner drives the form on a terminal, either as the full TUI or in
// accessible line-by-line mode for screen readers and dumb terminals.
type Runner struct {
	accessible bool
	output     io.Writer
	input      io.Reader
}

func NewRunner() *Runner {
	return &Runner{}
}

func NewAccessibleRunner(output io.Writer, input io.Reader) *Runner {
	return &Runner{
		accessible: true,
		output:     output,
		input:      input,
	}
}

func (r *Runner) Run(form *huh.Form) error {
	if !r.accessible {
		return form.Run()
	}

	return form.
		WithAccessible(true).
		WithOutput(r.output).
		WithInput(r.input).
		Run()
}
