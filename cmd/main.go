package main

import (
	"context"
	"os"

	"trail-tools/trtools/config"
	"trail-tools/trtools/logging"
	t "trail-tools/trtools/terminal"

	"github.com/google/subcommands"
)

func main() {

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&simplifyCmd{}, "geometry")
	subcommands.Register(&mileMarkersCmd{}, "geometry")
	subcommands.Register(&clusterCmd{}, "geometry")
	subcommands.Register(&pruneByLocationCmd{}, "prune")
	subcommands.Register(&pruneToTopCmd{}, "prune")
	subcommands.Register(&combineCmd{}, "files")
	subcommands.Register(&multLinesToOneCmd{}, "files")
	subcommands.Register(&polygonCmd{}, "files")
	subcommands.Register(&convertCmd{}, "files")
	subcommands.Register(&mergeCmd{}, "files")
	subcommands.Register(&statsCmd{}, "")

	cfg, err := config.Load()
	if err != nil {
		t.Error(err, "Failed to load config")
		os.Exit(1)
	}

	log, err := logging.New(cfg.Verbose)
	if err != nil {
		t.Error(err, "Failed to create logger")
		os.Exit(1)
	}

	ctx := context.Background()
	status := subcommands.Execute(ctx, cfg, log)
	log.Sync()
	os.Exit(int(status))
}
