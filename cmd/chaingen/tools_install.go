package main

import (
	"context"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v3"

	"github.com/relayerlabs/chaingen/cmd/chaingen/internal/cmdexec"
	"github.com/relayerlabs/chaingen/cmd/chaingen/internal/config"
)

func toolsInstall(ctx context.Context, _ *cli.Command, proj config.Project) error {
	crate := proj.Config.Generator.Crate
	if crate == "" {
		return errors.Newf("generator.crate is not set in %s", config.FileName)
	}

	exec := cmdexec.New(proj.ProjectDir).WithOutput(os.Stdout, os.Stderr)

	// --locked keeps the installed generator reproducible across machines,
	// otherwise two developers can produce different bindings.
	return exec.Cargo(ctx, "install", "--locked", crate)
}
