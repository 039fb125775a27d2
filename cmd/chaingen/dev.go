package main

import (
	"github.com/urfave/cli/v3"

	"github.com/relayerlabs/chaingen/cmd/chaingen/internal/config"
)

func devCmd() *cli.Command {
	return &cli.Command{
		Name:  "dev",
		Usage: "Development commands",
		Commands: []*cli.Command{
			{
				Name:   "gen",
				Usage:  "Generate runtime bindings from chain metadata",
				Action: config.RunWithProject(devGen),
			},
			{
				Name:   "fmt",
				Usage:  "Reformat the project tree in place",
				Action: config.RunWithProject(devFmt),
			},
			{
				Name:   "watch",
				Usage:  "Regenerate and reformat whenever the metadata or config changes",
				Action: config.RunWithProject(devWatch),
			},
		},
	}
}
