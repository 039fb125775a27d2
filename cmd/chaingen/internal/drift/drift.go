// Package drift checks that the generated runtime bindings checked into the
// repository match what the generator currently produces. It regenerates,
// reformats, and then inspects the working tree: any remaining change means
// the checked-in artifacts drifted.
package drift

import (
	"context"
	"path/filepath"
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/relayerlabs/chaingen/cmd/chaingen/internal/cmdexec"
	"github.com/relayerlabs/chaingen/cmd/chaingen/internal/config"
	"github.com/relayerlabs/chaingen/cmd/chaingen/internal/gitstatus"
)

// ErrDrift is returned by strict checks when the working tree is dirty
// after regeneration.
var ErrDrift = errors.New("generated artifacts are outdated")

// Checker runs the three-step drift check against an executor rooted at the
// project directory. Steps run strictly in order and the check aborts on the
// first failing collaborator.
type Checker struct {
	exec cmdexec.Executor
	cfg  config.Config
}

func NewChecker(exec cmdexec.Executor, cfg config.Config) *Checker {
	return &Checker{exec: exec, cfg: cfg}
}

// Generate invokes the generator with --path pointing at the configured
// output directory. Partially written output is left in place on failure.
func (c *Checker) Generate(ctx context.Context) error {
	outputPath := filepath.Join(c.exec.Dir(), filepath.FromSlash(c.cfg.Generator.Path))

	exec := c.exec
	if c.cfg.Generator.Dir != "" {
		exec = exec.InSubdir(filepath.FromSlash(c.cfg.Generator.Dir))
	}

	args := slices.Clone(c.cfg.Generator.Args)
	args = append(args, "--path", outputPath)

	return exec.Run(ctx, c.cfg.Generator.Bin, args...)
}

// Format rewrites the project tree in place with the configured formatter.
func (c *Checker) Format(ctx context.Context) error {
	return c.exec.Run(ctx, c.cfg.Formatter.Bin, c.cfg.Formatter.Args...)
}

// Status queries git for the short-form working tree status. The output is
// taken verbatim: porcelain columns are positional and the first one may be
// a space.
func (c *Checker) Status(ctx context.Context) ([]gitstatus.Entry, error) {
	out, err := c.exec.RawOutput(ctx, "git", "status", "--porcelain")
	if err != nil {
		return nil, errors.Wrap(err, "failed to check git status")
	}
	return gitstatus.Parse(out), nil
}

// Report is the outcome of a full drift check.
type Report struct {
	Entries []gitstatus.Entry
}

// Clean reports whether the working tree was clean after regeneration.
func (r Report) Clean() bool {
	return len(r.Entries) == 0
}

// Run executes generate, format and status in order. A failing generator or
// formatter aborts the check; a dirty tree is reported, not an error.
func (c *Checker) Run(ctx context.Context) (Report, error) {
	if err := c.Generate(ctx); err != nil {
		return Report{}, err
	}

	if err := c.Format(ctx); err != nil {
		return Report{}, err
	}

	entries, err := c.Status(ctx)
	if err != nil {
		return Report{}, err
	}

	return Report{Entries: entries}, nil
}
