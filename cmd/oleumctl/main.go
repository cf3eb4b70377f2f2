package main

import (
	"context"
	"os"

	"oleum/internal/cli"
)

// Version information (set by build script)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	cli.SetVersionInfo(Version, Commit, BuildTime)
	if err := cli.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
