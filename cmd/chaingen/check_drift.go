package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/relayerlabs/chaingen/cmd/chaingen/internal/cmdexec"
	"github.com/relayerlabs/chaingen/cmd/chaingen/internal/config"
	"github.com/relayerlabs/chaingen/cmd/chaingen/internal/drift"
)

const (
	upToDateMessage = "generated artifacts are up to date"
	outdatedMessage = "generated artifacts are outdated; run 'chaingen dev gen' and commit the result"
)

func checkDrift(ctx context.Context, cmd *cli.Command, proj config.Project) error {
	exec := cmdexec.New(proj.ProjectDir).WithOutput(os.Stdout, os.Stderr)

	report, err := drift.NewChecker(exec, proj.Config).Run(ctx)
	if err != nil {
		return err
	}

	if report.Clean() {
		fmt.Println(upToDateMessage)
		return nil
	}

	fmt.Println(outdatedMessage)
	for _, entry := range report.Entries {
		fmt.Println("  " + entry.String())
	}

	// Drift is advisory unless strict enforcement is asked for, either on
	// the command line or in the config file.
	if cmd.Bool("strict") || proj.Config.Check.FailOnDrift {
		return drift.ErrDrift
	}

	return nil
}
