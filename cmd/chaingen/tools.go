package main

import (
	"github.com/urfave/cli/v3"

	"github.com/relayerlabs/chaingen/cmd/chaingen/internal/config"
)

func toolsCmd() *cli.Command {
	return &cli.Command{
		Name:  "tools",
		Usage: "Manage the external collaborator tools",
		Commands: []*cli.Command{
			{
				Name:   "install",
				Usage:  "Install or upgrade the generator binary with cargo",
				Action: config.RunWithProject(toolsInstall),
			},
		},
	}
}
