package main

import (
	"github.com/urfave/cli/v3"

	"github.com/relayerlabs/chaingen/cmd/chaingen/internal/config"
)

func lockCmd() *cli.Command {
	return &cli.Command{
		Name:  "lock",
		Usage: "Record and verify a content hash of the generated tree",
		Commands: []*cli.Command{
			{
				Name:   "write",
				Usage:  "Hash the generated tree and record it in the lock file",
				Action: config.RunWithProject(lockWrite),
			},
			{
				Name:   "verify",
				Usage:  "Check the generated tree against the recorded hash",
				Action: config.RunWithProject(lockVerify),
			},
		},
	}
}
