package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/relayerlabs/chaingen/cmd/chaingen/internal/cmdexec"
	"github.com/relayerlabs/chaingen/cmd/chaingen/internal/config"
	"github.com/relayerlabs/chaingen/cmd/chaingen/internal/drift"
	"github.com/relayerlabs/chaingen/cmd/chaingen/internal/watcher"
)

func devWatch(ctx context.Context, _ *cli.Command, proj config.Project) error {
	paths := []string{proj.ConfigPath()}
	if metadata := proj.MetadataPath(); metadata != "" {
		paths = append(paths, metadata)
	}

	exec := cmdexec.New(proj.ProjectDir).WithOutput(os.Stdout, os.Stderr)
	checker := drift.NewChecker(exec, proj.Config)

	logf := func(format string, args ...any) {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
	logf("watching %d file(s), press ctrl-c to stop", len(paths))

	return watcher.Run(ctx, watcher.Config{Paths: paths, Logf: logf}, func(ctx context.Context) error {
		if err := checker.Generate(ctx); err != nil {
			return err
		}
		return checker.Format(ctx)
	})
}
