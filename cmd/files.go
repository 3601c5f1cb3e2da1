package main

import (
	"context"
	"flag"

	"trail-tools/trtools/format"
	"trail-tools/trtools/merge"
	"trail-tools/trtools/terminal"
	"trail-tools/trtools/track"

	"github.com/google/subcommands"
	"go.uber.org/zap"
)

type combineCmd struct {
	outputFile string
}

func (*combineCmd) Name() string     { return "combine" }
func (*combineCmd) Synopsis() string { return "Put the tracks of several files in a single file." }
func (*combineCmd) Usage() string {
	return `combine -out <file> <paths...>
	Every track keeps its own line.
  `
}

func (c *combineCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputFile, "out", "", "output file")
}

func (c *combineCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	e := newEnv(args)

	if err := checkOutput(c.outputFile); err != nil {
		terminal.Error(err, "Invalid output")
		return subcommands.ExitUsageError
	}

	docs, err := e.read(f.Args())
	if err != nil {
		terminal.Error(err, "Failed to read input files")
		return subcommands.ExitFailure
	}

	out := &format.Document{Name: "combined"}
	for _, d := range docs {
		out.Tracks = append(out.Tracks, d.Tracks...)
		out.Waypoints = append(out.Waypoints, d.Waypoints...)
	}

	if err := e.write(c.outputFile, out); err != nil {
		terminal.Error(err, "Failed to write '%s'", c.outputFile)
		return subcommands.ExitFailure
	}
	terminal.Info("%d track(s) from %d file(s) written to %s", len(out.Tracks), len(docs), c.outputFile)

	return subcommands.ExitSuccess
}

type multLinesToOneCmd struct {
	name       string
	outputFile string
}

func (*multLinesToOneCmd) Name() string { return "mult-lines-to-one" }
func (*multLinesToOneCmd) Synopsis() string {
	return "Join the tracks of several files into a single line."
}
func (*multLinesToOneCmd) Usage() string {
	return `mult-lines-to-one [-name <name>] -out <file> <paths...>
	Points are concatenated in file order then track order.
  `
}

func (c *multLinesToOneCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "name of the resulting track (defaults to the first track name)")
	f.StringVar(&c.outputFile, "out", "", "output file")
}

func (c *multLinesToOneCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	e := newEnv(args)

	if err := checkOutput(c.outputFile); err != nil {
		terminal.Error(err, "Invalid output")
		return subcommands.ExitUsageError
	}

	docs, err := e.read(f.Args())
	if err != nil {
		terminal.Error(err, "Failed to read input files")
		return subcommands.ExitFailure
	}

	name := c.name
	var points []track.Point
	lines := 0
	for _, d := range docs {
		for _, t := range d.Tracks {
			if name == "" {
				name = t.Name
			}
			points = append(points, t.Points...)
			lines++
		}
	}
	if len(points) == 0 {
		terminal.Error(track.ErrEmptyTrack, "Nothing to join")
		return subcommands.ExitFailure
	}

	out := &format.Document{
		Name:   name,
		Tracks: []*track.Track{track.New(name, points)},
	}
	if err := e.write(c.outputFile, out); err != nil {
		terminal.Error(err, "Failed to write '%s'", c.outputFile)
		return subcommands.ExitFailure
	}
	terminal.Info("%d line(s) joined into '%s' (%d points)", lines, name, len(points))

	return subcommands.ExitSuccess
}

type polygonCmd struct {
	name       string
	outputFile string
}

func (*polygonCmd) Name() string { return "polygon" }
func (*polygonCmd) Synopsis() string {
	return "Turn the points of several files into a closed polygon."
}
func (*polygonCmd) Usage() string {
	return `polygon [-name <name>] -out <file.kml> <paths...>
	Points are used in file order, the ring is closed if needed.
  `
}

func (c *polygonCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "area", "name of the polygon")
	f.StringVar(&c.outputFile, "out", "", "output file")
}

func (c *polygonCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	e := newEnv(args)

	if err := checkOutput(c.outputFile); err != nil {
		terminal.Error(err, "Invalid output")
		return subcommands.ExitUsageError
	}

	docs, err := e.read(f.Args())
	if err != nil {
		terminal.Error(err, "Failed to read input files")
		return subcommands.ExitFailure
	}

	var ring []track.Point
	for _, d := range docs {
		ring = append(ring, d.Points()...)
	}
	if len(ring) < 3 {
		terminal.Error(nil, "A polygon needs at least 3 points, got %d", len(ring))
		return subcommands.ExitFailure
	}
	first, last := ring[0], ring[len(ring)-1]
	if first.Latitude != last.Latitude || first.Longitude != last.Longitude {
		ring = append(ring, first)
	}

	out := &format.Document{
		Name:     c.name,
		Polygons: []*track.Track{track.New(c.name, ring)},
	}
	if err := e.write(c.outputFile, out); err != nil {
		terminal.Error(err, "Failed to write '%s'", c.outputFile)
		return subcommands.ExitFailure
	}
	terminal.Info("Polygon '%s' with %d vertices written to %s", c.name, len(ring), c.outputFile)

	return subcommands.ExitSuccess
}

type convertCmd struct {
	outputFile string
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "Convert a file to another format." }
func (*convertCmd) Usage() string {
	return `convert -out <file> <path>
	The formats are picked from the file extensions: .gpx, .kml, .csv or .txt (encoded polylines).
  `
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputFile, "out", "", "output file")
}

func (c *convertCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
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

	if err := e.write(c.outputFile, docs[0]); err != nil {
		terminal.Error(err, "Failed to write '%s'", c.outputFile)
		return subcommands.ExitFailure
	}
	terminal.Info("%s converted to %s", f.Arg(0), c.outputFile)

	return subcommands.ExitSuccess
}

type mergeCmd struct {
	maxDistance float64
	outputFile  string
}

func (*mergeCmd) Name() string { return "merge" }
func (*mergeCmd) Synopsis() string {
	return "Average several recordings of the same route into one track."
}
func (*mergeCmd) Usage() string {
	return `merge [-max-distance <meters>] -out <file> <base> <paths...>
	Every point of the first track of <base> is moved to the median of its nearest
	neighbours in the other files.
  `
}

func (c *mergeCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.maxDistance, "max-distance", -1, "ignore neighbours further than this many meters (defaults to TRAIL_MERGE_MAX_DISTANCE)")
	f.StringVar(&c.outputFile, "out", "", "output file")
}

func (c *mergeCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	e := newEnv(args)

	if err := checkOutput(c.outputFile); err != nil {
		terminal.Error(err, "Invalid output")
		return subcommands.ExitUsageError
	}
	if f.NArg() < 2 {
		terminal.Error(nil, "Expected a base file and at least one other file")
		return subcommands.ExitUsageError
	}
	maxDistance := c.maxDistance
	if maxDistance < 0 {
		maxDistance = e.cfg.MergeMaxDistance
	}

	tracks := make([]*track.Track, 0, f.NArg())
	for _, p := range f.Args() {
		_, t, err := e.readFirstTrack(p)
		if err != nil {
			terminal.Error(err, "Failed to read '%s'", p)
			return subcommands.ExitFailure
		}
		tracks = append(tracks, t)
	}

	others := make([][]track.Point, 0, len(tracks)-1)
	for _, t := range tracks[1:] {
		others = append(others, t.Points)
	}

	o := terminal.NewOperation("Merging %d track(s) onto '%s'", len(others), tracks[0].Name)
	merged := merge.Tracks(tracks[0].Points, maxDistance, others...)
	o.Success("Merged %d points", len(merged))

	out := &format.Document{
		Name:   tracks[0].Name,
		Tracks: []*track.Track{track.New(tracks[0].Name, merged)},
	}
	if err := e.write(c.outputFile, out); err != nil {
		terminal.Error(err, "Failed to write '%s'", c.outputFile)
		return subcommands.ExitFailure
	}

	e.log.Info("merge done",
		zap.String("base", tracks[0].Name),
		zap.Int("others", len(others)),
		zap.Float64("max_distance", maxDistance),
		zap.Int("points", len(merged)))
	return subcommands.ExitSuccess
}
