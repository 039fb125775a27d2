package main

import (
	"github.com/urfave/cli/v3"

	"github.com/relayerlabs/chaingen/cmd/chaingen/internal/config"
)

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Run various checks",
		Commands: []*cli.Command{
			{
				Name:  "drift",
				Usage: "Check that checked-in generated bindings match the generator output",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "strict",
						Usage: "exit non-zero when the bindings are outdated",
					},
				},
				Action: config.RunWithProject(checkDrift),
			},
		},
	}
}
