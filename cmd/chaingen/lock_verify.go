package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v3"

	"github.com/relayerlabs/chaingen/cmd/chaingen/internal/config"
	"github.com/relayerlabs/chaingen/cmd/chaingen/internal/treehash"
)

func lockVerify(ctx context.Context, _ *cli.Command, proj config.Project) error {
	recorded, outputPath, err := treehash.ReadLock(proj.ProjectDir)
	if err != nil {
		return err
	}

	current, err := treehash.Hash(filepath.Join(proj.ProjectDir, filepath.FromSlash(outputPath)))
	if err != nil {
		return err
	}

	if current != recorded {
		return errors.Newf(
			"generated tree %s does not match the lock file (recorded %s, got %s); run 'chaingen dev gen' and 'chaingen lock write'",
			outputPath, recorded[:12], current[:12],
		)
	}

	fmt.Printf("%s matches the lock file\n", outputPath)
	return nil
}
