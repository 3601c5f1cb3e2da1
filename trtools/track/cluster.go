package track

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"
)

// DefaultMaxAttempts is the number of times the search radius is grown before giving up.
const DefaultMaxAttempts = 10

// DefaultMaxJump is the ceiling (in meters) suggested for ClusterOptions.MaxJump.
const DefaultMaxJump = 1000

// Cluster is a group of points close to each other
type Cluster []Point

// Medoid returns a synthetic point made of the median latitude and median
// longitude of the cluster members. Its elevation is always 0.
func (c Cluster) Medoid() Point {
	lat, lng := Median(c)
	return NewPoint(lat, lng, 0)
}

// ClusterOptions configures ClusterWithOptions
type ClusterOptions struct {
	// Radius in meters of a single cluster.
	Radius float64
	// MaxIterations bounds the number of clusters produced.
	MaxIterations int
	// MaxAttempts bounds how many times the radius is multiplied when no point
	// matches. Zero means DefaultMaxAttempts.
	MaxAttempts int
	// MaxJump stops the walk when the next seed is further than MaxJump meters
	// from the current one. Zero disables the ceiling.
	MaxJump float64
	// Logger receives per iteration debug traces. Nil discards them.
	Logger *zap.Logger
}

// ClusterResult holds the output of a clustering run. Every input point is either
// in one of Clusters or in Remaining.
type ClusterResult struct {
	Clusters  []Cluster
	Remaining []Point
	// Current is the seed the walk stopped on.
	Current Point
}

// FindClusters groups points into clusters of radius meters, walking from one cluster
// to the closest point not clustered yet. It stops after maxIterations clusters
// or when every point has been clustered.
func FindClusters(points []Point, radius float64, maxIterations int) (ClusterResult, error) {
	return ClusterWithOptions(points, ClusterOptions{
		Radius:        radius,
		MaxIterations: maxIterations,
	})
}

// ClusterWithOptions is FindClusters with full control over the walk
func ClusterWithOptions(points []Point, opts ClusterOptions) (ClusterResult, error) {
	if len(points) == 0 {
		return ClusterResult{}, ErrEmptyTrack
	}
	if opts.Radius < 0 || opts.MaxIterations <= 0 || opts.MaxAttempts < 0 || opts.MaxJump < 0 {
		return ClusterResult{}, fmt.Errorf("%w: radius=%v iterations=%d attempts=%d max jump=%v",
			ErrInvalidArgument, opts.Radius, opts.MaxIterations, opts.MaxAttempts, opts.MaxJump)
	}
	if opts.MaxAttempts == 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	current := points[0]
	pool := append([]Point(nil), points...)
	clusters := []Cluster{}

	for i := 0; i < opts.MaxIterations && len(pool) > 0; i++ {
		members, rest, attempt, err := collect(current, pool, opts.Radius, opts.MaxAttempts)
		if err != nil {
			return ClusterResult{}, err
		}
		clusters = append(clusters, members)
		pool = rest

		log.Debug("cluster formed",
			zap.Int("iteration", i),
			zap.Int("members", len(members)),
			zap.Int("attempt", attempt),
			zap.Int("remaining", len(pool)))

		next, ok := closestToCluster(members, pool)
		if !ok {
			break
		}

		jump := Distance2D(current, next)
		if opts.MaxJump > 0 && jump > opts.MaxJump {
			log.Debug("next seed too far, stopping",
				zap.Float64("jump", jump),
				zap.Float64("max_jump", opts.MaxJump))
			break
		}
		current = next
	}

	return ClusterResult{
		Clusters:  clusters,
		Remaining: pool,
		Current:   current,
	}, nil
}

// collect splits pool into the points within radius*attempt of center and the
// others, growing attempt until something matches.
func collect(center Point, pool []Point, radius float64, maxAttempts int) (Cluster, []Point, int, error) {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		r := radius * float64(attempt)

		var members Cluster
		rest := make([]Point, 0, len(pool))
		for _, p := range pool {
			if Distance2D(center, p) <= r {
				members = append(members, p)
			} else {
				rest = append(rest, p)
			}
		}

		if len(members) > 0 {
			return members, rest, attempt, nil
		}
	}

	return nil, nil, 0, fmt.Errorf("%w after %d attempts around (%f, %f)",
		ErrNoCluster, maxAttempts, center.Latitude, center.Longitude)
}

// closestToCluster returns the point of pool nearest to any member of the cluster
func closestToCluster(cluster Cluster, pool []Point) (Point, bool) {
	best := -1
	var bestDistance float64
	for _, m := range cluster {
		for i, p := range pool {
			d := Distance2D(m, p)
			if best < 0 || d < bestDistance {
				best = i
				bestDistance = d
			}
		}
	}

	if best < 0 {
		return Point{}, false
	}
	return pool[best], true
}

// Median returns the median latitude and the median longitude of points,
// computed independently. It returns zeros for an empty slice.
func Median(points []Point) (float64, float64) {
	if len(points) == 0 {
		return 0, 0
	}

	lats := make([]float64, len(points))
	lngs := make([]float64, len(points))
	for i, p := range points {
		lats[i] = p.Latitude
		lngs[i] = p.Longitude
	}

	return median(lats), median(lngs)
}

// median sorts values in place
func median(values []float64) float64 {
	sort.Float64s(values)
	n := len(values)
	if n%2 == 1 {
		return values[n/2]
	}
	return stat.Mean(values[n/2-1:n/2+1], nil)
}
