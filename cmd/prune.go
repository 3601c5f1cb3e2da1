package main

import (
	"context"
	"flag"

	"trail-tools/trtools/convert"
	"trail-tools/trtools/format"
	"trail-tools/trtools/terminal"
	"trail-tools/trtools/track"

	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// OffTrackDistance is the distance in meters past which a -start or -end location
// is reported as not being on the track
const OffTrackDistance = 100

type pruneByLocationCmd struct {
	start      string
	end        string
	outputFile string
}

func (*pruneByLocationCmd) Name() string { return "prune-by-location" }
func (*pruneByLocationCmd) Synopsis() string {
	return "Keep the part of a track between the points closest to two locations."
}
func (*pruneByLocationCmd) Usage() string {
	return `prune-by-location [-start <lat,lon>] [-end <lat,lon>] -out <file> <path>
	Drop the points before -start or from -end onward. Give one of them, not both.
  `
}

func (c *pruneByLocationCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "start", "", "keep the points from the one closest to this location")
	f.StringVar(&c.end, "end", "", "keep the points before the one closest to this location")
	f.StringVar(&c.outputFile, "out", "", "output file")
}

func (c *pruneByLocationCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	e := newEnv(args)

	if err := checkOutput(c.outputFile); err != nil {
		terminal.Error(err, "Invalid output")
		return subcommands.ExitUsageError
	}
	if f.NArg() != 1 {
		terminal.Error(nil, "Expected exactly one input file")
		return subcommands.ExitUsageError
	}

	start, err := parseLocation(c.start)
	if err != nil {
		terminal.Error(err, "Invalid -start")
		return subcommands.ExitUsageError
	}
	end, err := parseLocation(c.end)
	if err != nil {
		terminal.Error(err, "Invalid -end")
		return subcommands.ExitUsageError
	}

	doc, tr, err := e.readFirstTrack(f.Arg(0))
	if err != nil {
		terminal.Error(err, "Failed to read '%s'", f.Arg(0))
		return subcommands.ExitFailure
	}

	pts, err := track.PruneByLocation(tr.Points, start, end)
	if err != nil {
		terminal.Error(err, "Failed to prune '%s'", tr.Name)
		return subcommands.ExitFailure
	}
	checkOnTrack(e, tr, "start", start)
	checkOnTrack(e, tr, "end", end)

	out := &format.Document{
		Name:      doc.Name,
		Tracks:    []*track.Track{track.New(tr.Name, pts)},
		Waypoints: doc.Waypoints,
	}
	if err := e.write(c.outputFile, out); err != nil {
		terminal.Error(err, "Failed to write '%s'", c.outputFile)
		return subcommands.ExitFailure
	}
	terminal.Info("Kept %d of %d points", len(pts), len(tr.Points))

	e.log.Info("prune by location done",
		zap.String("track", tr.Name),
		zap.Int("before", len(tr.Points)),
		zap.Int("after", len(pts)))
	return subcommands.ExitSuccess
}

type pruneToTopCmd struct {
	outputFile string
}

func (*pruneToTopCmd) Name() string     { return "prune-to-top" }
func (*pruneToTopCmd) Synopsis() string { return "Keep the part of a track up to its highest point." }
func (*pruneToTopCmd) Usage() string {
	return `prune-to-top -out <file> <path>
	Drop every point after the summit. Useful to turn an out-and-back into an ascent.
  `
}

func (c *pruneToTopCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputFile, "out", "", "output file")
}

func (c *pruneToTopCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	e := newEnv(args)

	if err := checkOutput(c.outputFile); err != nil {
		terminal.Error(err, "Invalid output")
		return subcommands.ExitUsageError
	}
	if f.NArg() != 1 {
		terminal.Error(nil, "Expected exactly one input file")
		return subcommands.ExitUsageError
	}

	doc, tr, err := e.readFirstTrack(f.Arg(0))
	if err != nil {
		terminal.Error(err, "Failed to read '%s'", f.Arg(0))
		return subcommands.ExitFailure
	}

	pts, err := track.PruneToTop(tr.Points)
	if err != nil {
		terminal.Error(err, "Failed to prune '%s'", tr.Name)
		return subcommands.ExitFailure
	}

	out := &format.Document{
		Name:      doc.Name,
		Tracks:    []*track.Track{track.New(tr.Name, pts)},
		Waypoints: doc.Waypoints,
	}
	if err := e.write(c.outputFile, out); err != nil {
		terminal.Error(err, "Failed to write '%s'", c.outputFile)
		return subcommands.ExitFailure
	}

	_, top, _ := track.FindHighest(tr.Points)
	terminal.Info("Kept %d of %d points, summit at %sm", len(pts), len(tr.Points), convert.Ftoan(top))

	e.log.Info("prune to top done",
		zap.String("track", tr.Name),
		zap.Float64("summit", top),
		zap.Int("before", len(tr.Points)),
		zap.Int("after", len(pts)))
	return subcommands.ExitSuccess
}

// checkOnTrack warns when a location given on the command line is far from the track,
// the pruning then happens at whatever point is closest.
func checkOnTrack(e env, tr *track.Track, flagName string, loc *track.Point) {
	if loc == nil {
		return
	}

	closest, index := tr.ClosestPoint(loc)
	d := tr.DistanceFromPoint(loc)
	e.log.Debug("location resolved on track",
		zap.String("flag", flagName),
		zap.Int("index", index),
		zap.Float64("latitude", closest.Latitude),
		zap.Float64("longitude", closest.Longitude),
		zap.Float64("distance", d))

	if !tr.IsNear(loc, OffTrackDistance) {
		terminal.Warn("-%s is %sm away from the track, using point %d (%.5f,%.5f)",
			flagName, convert.Ftoan(d), index, closest.Latitude, closest.Longitude)
		e.log.Warn("location is off track",
			zap.String("flag", flagName),
			zap.Float64("distance", d))
	}
}
