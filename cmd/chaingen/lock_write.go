package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/relayerlabs/chaingen/cmd/chaingen/internal/config"
	"github.com/relayerlabs/chaingen/cmd/chaingen/internal/treehash"
)

func lockWrite(ctx context.Context, _ *cli.Command, proj config.Project) error {
	hash, err := treehash.Hash(proj.OutputDir())
	if err != nil {
		return err
	}

	if err := treehash.WriteLock(proj.ProjectDir, proj.Config.Generator.Path, hash); err != nil {
		return err
	}

	fmt.Printf("recorded %s for %s\n", hash[:12], proj.Config.Generator.Path)
	return nil
}
