package main

import (
	"context"
	"flag"
	"fmt"

	"trail-tools/trtools/convert"
	"trail-tools/trtools/terminal"

	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// DistanceToWaypointThreshold is the default maximum distance in meters between a
// waypoint and a track for the waypoint to be listed as on the track
const DistanceToWaypointThreshold = 25

type statsCmd struct {
	metric bool
	near   float64
}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "Print distance, elevation and duration of every track." }
func (*statsCmd) Usage() string {
	return `stats [-metric] [-near <meters>] <paths...>
	Print track statistics, in miles and feet unless -metric is given, and the
	waypoints of the file lying on each track.
  `
}

func (c *statsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.metric, "metric", false, "print kilometers and meters")
	f.Float64Var(&c.near, "near", DistanceToWaypointThreshold, "maximum distance in meters from a waypoint to a track")
}

func (c *statsCmd) distance(meters float64) string {
	if c.metric {
		return fmt.Sprintf("%.2fkm", meters/1000)
	}
	return fmt.Sprintf("%.2fmi", convert.ToMiles(meters))
}

func (c *statsCmd) meters(meters float64) string {
	if c.metric {
		return convert.Ftoan(meters) + "m"
	}
	return convert.Ftoan(convert.ToFeet(meters)) + "ft"
}

func (c *statsCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	e := newEnv(args)

	docs, err := e.read(f.Args())
	if err != nil {
		terminal.Error(err, "Failed to read input files")
		return subcommands.ExitFailure
	}

	for i, d := range docs {
		fmt.Printf("%s\n", f.Arg(i))
		if len(d.Tracks) == 0 {
			terminal.Warn("no track")
			continue
		}

		for _, t := range d.Tracks {
			s := t.Stats()
			b := t.Bounds()
			days, hours, minutes := convert.ToDaysHoursMin(s.Duration)

			fmt.Printf("  %s (%d points)\n", t.Name, s.Points)
			fmt.Printf("    distance:  %s\n", c.distance(s.Distance))
			fmt.Printf("    gain/loss: +%s / -%s\n", c.meters(s.ElevationGain), c.meters(s.ElevationLoss))
			fmt.Printf("    elevation: start %s, end %s, max %s, mean %s\n",
				c.meters(s.StartElevation), c.meters(s.EndElevation),
				c.meters(s.MaxElevation), c.meters(s.MeanElevation))
			fmt.Printf("    duration:  %dd %dh %dmin\n", days, hours, minutes)
			fmt.Printf("    bounds:    %.5f,%.5f %.5f,%.5f\n", b.MinLat, b.MinLng, b.MaxLat, b.MaxLng)
			center := b.Center()
			fmt.Printf("    center:    %.5f,%.5f\n", center.Latitude, center.Longitude)

			for _, wp := range d.Waypoints {
				if !t.IsNear(wp.Point, c.near) {
					continue
				}
				_, index := t.ClosestPoint(wp.Point)
				fmt.Printf("    waypoint:  '%s' %s from the track at point %d\n",
					wp.Name, c.meters(t.DistanceFromPoint(wp.Point)), index)
			}

			e.log.Debug("track stats",
				zap.String("track", t.Name),
				zap.Float64("distance", s.Distance),
				zap.Float64("gain", s.ElevationGain),
				zap.Float64("loss", s.ElevationLoss),
				zap.Duration("duration", s.Duration))
		}
	}

	return subcommands.ExitSuccess
}
