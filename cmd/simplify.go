package main

import (
	"context"
	"flag"

	"trail-tools/trtools/format"
	"trail-tools/trtools/terminal"

	"github.com/google/subcommands"
	"go.uber.org/zap"
)

type simplifyCmd struct {
	tolerance  float64
	outputFile string
}

func (*simplifyCmd) Name() string { return "simplify" }
func (*simplifyCmd) Synopsis() string {
	return "Reduce the number of points of every track while keeping its shape."
}
func (*simplifyCmd) Usage() string {
	return `simplify [-tolerance <meters>] -out <file> <path>
	Simplify every track of the file (Ramer-Douglas-Peucker).
  `
}

func (c *simplifyCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.tolerance, "tolerance", -1, "maximum deviation in meters (defaults to TRAIL_TOLERANCE)")
	f.StringVar(&c.outputFile, "out", "", "output file")
}

func (c *simplifyCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	e := newEnv(args)

	if err := checkOutput(c.outputFile); err != nil {
		terminal.Error(err, "Invalid output")
		return subcommands.ExitUsageError
	}
	if f.NArg() != 1 {
		terminal.Error(nil, "Expected exactly one input file")
		return subcommands.ExitUsageError
	}
	tolerance := c.tolerance
	if tolerance < 0 {
		tolerance = e.cfg.Tolerance
	}

	docs, err := e.read(f.Args())
	if err != nil {
		terminal.Error(err, "Failed to read '%s'", f.Arg(0))
		return subcommands.ExitFailure
	}
	doc := docs[0]

	o := terminal.NewOperation("Simplifying %d track(s) with a %.1fm tolerance", len(doc.Tracks), tolerance)
	out := &format.Document{Name: doc.Name, Waypoints: doc.Waypoints}
	before, after := 0, 0
	for _, t := range doc.Tracks {
		s := t.Simplify(tolerance)
		before += len(t.Points)
		after += len(s.Points)
		e.log.Debug("simplified track",
			zap.String("track", t.Name),
			zap.Int("before", len(t.Points)),
			zap.Int("after", len(s.Points)))
		out.Tracks = append(out.Tracks, s)
	}

	if err := e.write(c.outputFile, out); err != nil {
		o.Error(err, "Failed to write '%s'", c.outputFile)
		return subcommands.ExitFailure
	}
	o.Success("Simplified %d points down to %d", before, after)

	e.log.Info("simplify done",
		zap.Float64("tolerance", tolerance),
		zap.Int("points_before", before),
		zap.Int("points_after", after),
		zap.String("out", c.outputFile))
	return subcommands.ExitSuccess
}
