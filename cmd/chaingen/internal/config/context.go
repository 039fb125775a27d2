package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
)

type contextKey struct{}

// Project is a loaded config together with the directory it was found in.
// All subprocesses run relative to ProjectDir, never the ambient cwd.
type Project struct {
	Config     Config
	ProjectDir string
}

// OutputDir returns the absolute path of the generated-sources directory.
func (p Project) OutputDir() string {
	return filepath.Join(p.ProjectDir, filepath.FromSlash(p.Config.Generator.Path))
}

// MetadataPath returns the absolute path of the runtime metadata file, or
// empty when none is configured.
func (p Project) MetadataPath() string {
	if p.Config.Generator.Metadata == "" {
		return ""
	}
	return filepath.Join(p.ProjectDir, filepath.FromSlash(p.Config.Generator.Metadata))
}

// ConfigPath returns the absolute path of the .chaingen.yml file.
func (p Project) ConfigPath() string {
	return filepath.Join(p.ProjectDir, FileName)
}

func WithContext(ctx context.Context, proj Project) context.Context {
	return context.WithValue(ctx, contextKey{}, proj)
}

func FromContext(ctx context.Context) (Project, bool) {
	proj, ok := ctx.Value(contextKey{}).(Project)
	return proj, ok
}

var defaultFinder = NewFinder(NewLoader())

// Ensure returns the project from context if present, otherwise loads it
// from disk. This enables lazy loading - config is only read when an action
// needs it.
func Ensure(ctx context.Context) (context.Context, Project, error) {
	if proj, ok := FromContext(ctx); ok {
		return ctx, proj, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return ctx, Project{}, err
	}

	cfg, projectDir, err := defaultFinder.Find(cwd)
	if err != nil {
		return ctx, Project{}, err
	}

	proj := Project{Config: cfg, ProjectDir: projectDir}
	return WithContext(ctx, proj), proj, nil
}

// ActionFunc is a command action that receives the loaded project.
type ActionFunc func(ctx context.Context, cmd *cli.Command, proj Project) error

// RunWithProject wraps an ActionFunc to lazily load the project when the
// action runs, not when showing help.
func RunWithProject(fn ActionFunc) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		ctx, proj, err := Ensure(ctx)
		if err != nil {
			return err
		}
		return fn(ctx, cmd, proj)
	}
}
