package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v3"

	"github.com/relayerlabs/chaingen/cmd/chaingen/internal/config"
	"github.com/relayerlabs/chaingen/cmd/chaingen/internal/initwizard"
)

func initCmd() *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "Create a " + config.FileName + " in the project root",
		ArgsUsage: "[directory]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "force",
				Usage: "overwrite an existing config file",
			},
			&cli.BoolFlag{
				Name:  "accessible",
				Usage: "run the wizard in accessible (non-TUI) mode",
			},
		},
		Action: runInit,
	}
}

func runInit(ctx context.Context, cmd *cli.Command) error {
	dir := cmd.Args().First()
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return errors.Wrap(err, "failed to get current working directory")
		}
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return errors.Wrap(err, "failed to get absolute path")
	}
	dir = absDir

	configPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(configPath); err == nil && !cmd.Bool("force") {
		return errors.Newf("%s already exists, use --force to overwrite", configPath)
	}

	var runner initwizard.FormRunner = initwizard.NewRunner()
	if cmd.Bool("accessible") {
		runner = initwizard.NewAccessibleRunner(os.Stdout, os.Stdin)
	}

	wizard := initwizard.New(initwizard.NewFormBuilder(), runner)
	result, err := wizard.Run(filepath.Base(dir))
	if err != nil {
		return err
	}

	if err := config.WriteToFile(dir, result.ToConfig(), config.NewWriter()); err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", configPath)
	fmt.Println("next: run 'chaingen dev gen' to generate bindings, 'chaingen check drift' to verify them")
	return nil
}
