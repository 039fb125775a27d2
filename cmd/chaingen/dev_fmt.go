package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/relayerlabs/chaingen/cmd/chaingen/internal/cmdexec"
	"github.com/relayerlabs/chaingen/cmd/chaingen/internal/config"
	"github.com/relayerlabs/chaingen/cmd/chaingen/internal/drift"
)

func devFmt(ctx context.Context, _ *cli.Command, proj config.Project) error {
	exec := cmdexec.New(proj.ProjectDir).WithOutput(os.Stdout, os.Stderr)
	return drift.NewChecker(exec, proj.Config).Format(ctx)
}
