package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

// Version is set via ldflags at build time.
var Version = "dev"

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:    "chaingen",
		Usage:   "Keep generated runtime bindings in sync with the chain's metadata",
		Version: Version,
		Commands: []*cli.Command{
			checkCmd(),
			devCmd(),
			initCmd(),
			lockCmd(),
			toolsCmd(),
		},
	}
}

func main() {
	if err := rootCmd().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
