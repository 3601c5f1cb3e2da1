package main

import (
	"context"
	"flag"
	"strconv"

	"trail-tools/trtools/format"
	"trail-tools/trtools/terminal"
	"trail-tools/trtools/track"

	"github.com/google/subcommands"
	"go.uber.org/zap"
)

type mileMarkersCmd struct {
	reverse    bool
	withTrack  bool
	outputFile string
}

func (*mileMarkersCmd) Name() string     { return "mile-markers" }
func (*mileMarkersCmd) Synopsis() string { return "Create a waypoint at every mile of every track." }
func (*mileMarkersCmd) Usage() string {
	return `mile-markers [-reverse] [-with-track] -out <file> <path>
	Create mile markers. With -reverse the route is an out-and-back recorded one way.
  `
}

func (c *mileMarkersCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.reverse, "reverse", false, "route is up and back, so double the points")
	f.BoolVar(&c.withTrack, "with-track", false, "also write the tracks")
	f.StringVar(&c.outputFile, "out", "", "output file")
}

func (c *mileMarkersCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	e := newEnv(args)

	if err := checkOutput(c.outputFile); err != nil {
		terminal.Error(err, "Invalid output")
		return subcommands.ExitUsageError
	}
	if f.NArg() != 1 {
		terminal.Error(nil, "Expected exactly one input file")
		return subcommands.ExitUsageError
	}

	docs, err := e.read(f.Args())
	if err != nil {
		terminal.Error(err, "Failed to read '%s'", f.Arg(0))
		return subcommands.ExitFailure
	}
	doc := docs[0]

	out := &format.Document{Name: doc.Name}
	if c.withTrack {
		out.Tracks = doc.Tracks
	}

	for _, t := range doc.Tracks {
		markers, err := track.MileMarkers(t.Points, c.reverse)
		if err != nil {
			terminal.Error(err, "Failed to create mile markers for '%s'", t.Name)
			return subcommands.ExitFailure
		}
		e.log.Debug("mile markers",
			zap.String("track", t.Name),
			zap.Bool("reverse", c.reverse),
			zap.Int("markers", len(markers)))

		for _, m := range markers {
			out.Waypoints = append(out.Waypoints, format.Waypoint{
				Name:        strconv.Itoa(m.Mile),
				Description: t.Name,
				Point: track.Point{
					Latitude:  m.Latitude,
					Longitude: m.Longitude,
					Elevation: m.Elevation,
				},
			})
		}
	}

	if err := e.write(c.outputFile, out); err != nil {
		terminal.Error(err, "Failed to write '%s'", c.outputFile)
		return subcommands.ExitFailure
	}
	terminal.Info("%d mile marker(s) written to %s", len(out.Waypoints), c.outputFile)

	return subcommands.ExitSuccess
}
