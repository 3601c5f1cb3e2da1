package main

import (
	"context"
	"flag"
	"fmt"

	"trail-tools/trtools/format"
	"trail-tools/trtools/terminal"
	"trail-tools/trtools/track"

	"github.com/google/subcommands"
	"go.uber.org/zap"
)

type clusterCmd struct {
	radius        float64
	iterations    int
	maxJump       float64
	keepRemaining bool
	outputFile    string
}

func (*clusterCmd) Name() string { return "cluster" }
func (*clusterCmd) Synopsis() string {
	return "Group the points of all files into clusters and write their medoids."
}
func (*clusterCmd) Usage() string {
	return `cluster [-radius <meters>] [-iterations <n>] [-max-jump <meters>] [-keep-remaining] -out <file> <paths...>
	Find waypoint hubs: every cluster is written as a waypoint at its median position.
  `
}

func (c *clusterCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.radius, "radius", -1, "cluster radius in meters (defaults to TRAIL_CLUSTER_RADIUS)")
	f.IntVar(&c.iterations, "iterations", 0, "maximum number of clusters (defaults to TRAIL_CLUSTER_ITERATIONS)")
	f.Float64Var(&c.maxJump, "max-jump", -1, "stop when the next cluster is further than this many meters, 0 to disable (defaults to TRAIL_CLUSTER_MAX_JUMP)")
	f.BoolVar(&c.keepRemaining, "keep-remaining", false, "also write the points left out of any cluster")
	f.StringVar(&c.outputFile, "out", "", "output file")
}

func (c *clusterCmd) options(e env) track.ClusterOptions {
	opts := track.ClusterOptions{
		Radius:        e.cfg.ClusterRadius,
		MaxIterations: e.cfg.ClusterIterations,
		MaxJump:       e.cfg.ClusterMaxJump,
		Logger:        e.log,
	}
	if c.radius >= 0 {
		opts.Radius = c.radius
	}
	if c.iterations > 0 {
		opts.MaxIterations = c.iterations
	}
	if c.maxJump >= 0 {
		opts.MaxJump = c.maxJump
	}
	return opts
}

func (c *clusterCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
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

	var points []track.Point
	for _, d := range docs {
		points = append(points, d.Points()...)
	}

	opts := c.options(e)
	o := terminal.NewOperation("Clustering %d points with a %.1fm radius", len(points), opts.Radius)
	res, err := track.ClusterWithOptions(points, opts)
	if err != nil {
		o.Error(err, "Clustering failed, try a larger radius")
		return subcommands.ExitFailure
	}
	o.Success("Found %d cluster(s)", len(res.Clusters))

	out := &format.Document{Name: "clusters"}
	for i, cl := range res.Clusters {
		out.Waypoints = append(out.Waypoints, format.Waypoint{
			Name:        fmt.Sprintf("cluster %d", i+1),
			Description: fmt.Sprintf("%d points", len(cl)),
			Point:       cl.Medoid(),
		})
	}
	if len(res.Remaining) > 0 {
		terminal.Warn("%d point(s) were not clustered", len(res.Remaining))
		if c.keepRemaining {
			out.Tracks = append(out.Tracks, track.New("unclustered", res.Remaining))
		}
	}

	if err := e.write(c.outputFile, out); err != nil {
		terminal.Error(err, "Failed to write '%s'", c.outputFile)
		return subcommands.ExitFailure
	}

	e.log.Info("cluster done",
		zap.Int("points", len(points)),
		zap.Int("clusters", len(res.Clusters)),
		zap.Int("remaining", len(res.Remaining)),
		zap.String("out", c.outputFile))
	return subcommands.ExitSuccess
}
