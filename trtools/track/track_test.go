package track_test

import (
	"math"
	"testing"
	"time"
	"trail-tools/trtools/track"

	"github.com/stretchr/testify/require"
)

var hikePoints = []float64{47.58358925699506, -121.95062398910524, 47.58878498470957, -121.94446563720703, 47.58622336725498, -121.9381356239319, 47.59581793370288, -121.93571090698244}

func TestClosestPoint(t *testing.T) {
	require := require.New(t)

	tr := getTrack(hikePoints)

	tests := map[string]struct {
		input []float64
		want  []float64
	}{
		"point_between_mid_seg":     {input: []float64{47.5896, -121.9411}, want: []float64{47.58878498470957, -121.94446563720703, 1}},
		"point_between_first_seg":   {input: []float64{47.5898, -121.9519}, want: []float64{47.58878498470957, -121.94446563720703, 1}},
		"point_outside_all_segment": {input: []float64{47.5980, -121.9299}, want: []float64{47.59581793370288, -121.93571090698244, 3}},
		"far_point":                 {input: []float64{47.5733, -121.8346}, want: []float64{47.58622336725498, -121.9381356239319, 2}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			p, i := tr.ClosestPoint(track.Point{Latitude: tc.input[0], Longitude: tc.input[1]})
			require.Equal(tc.want[0], p.Latitude)
			require.Equal(tc.want[1], p.Longitude)
			require.Equal(int(tc.want[2]), i)
		})
	}
}

func TestDistanceFromPoint(t *testing.T) {
	require := require.New(t)

	tr := getTrack(hikePoints)

	tests := map[string]struct {
		input []float64
		want  int
	}{
		"point_between_mid_seg":     {input: []float64{47.5896, -121.9411}, want: 208},
		"point_between_first_seg":   {input: []float64{47.5898, -121.9519}, want: 507},
		"point_outside_all_segment": {input: []float64{47.5980, -121.9299}, want: 499},
		"far_point":                 {input: []float64{47.5733, -121.8346}, want: 7907},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			d := tr.DistanceFromPoint(track.Point{Latitude: tc.input[0], Longitude: tc.input[1]})
			require.InDelta(tc.want, d, 1.5)
		})
	}
}

func TestIsNear(t *testing.T) {
	tr := getTrack(hikePoints)

	tests := map[string]struct {
		input       []float64
		maxDistance float64
		want        bool
	}{
		"on_vertex":          {input: []float64{47.58878498470957, -121.94446563720703}, maxDistance: 1, want: true},
		"mid_seg_in_range":   {input: []float64{47.5896, -121.9411}, maxDistance: 250, want: true},
		"mid_seg_too_far":    {input: []float64{47.5896, -121.9411}, maxDistance: 100, want: false},
		"outside_bounds":     {input: []float64{47.5733, -121.8346}, maxDistance: 1000, want: false},
		"outside_bounds_far": {input: []float64{47.5733, -121.8346}, maxDistance: 8000, want: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			p := track.Point{Latitude: tc.input[0], Longitude: tc.input[1]}
			require.Equal(tc.want, tr.IsNear(p, tc.maxDistance))
		})
	}
}

func TestIsNearEmptyTrack(t *testing.T) {
	require := require.New(t)

	require.False(track.New("empty", nil).IsNear(track.NewPoint(47.5, -121.9, 0), 1000))
}

func TestBounds(t *testing.T) {
	require := require.New(t)

	tr := getTrack(hikePoints)

	b := tr.Bounds()

	require.Equal(47.58358925699506, b.MinLat)
	require.Equal(47.59581793370288, b.MaxLat)
	require.Equal(-121.95062398910524, b.MinLng)
	require.Equal(-121.93571090698244, b.MaxLng)
}

func TestStats(t *testing.T) {
	require := require.New(t)

	elevations := []float64{100, 200, 300, 400, 300}
	points := make([]track.Point, 0, len(elevations))
	for i, e := range elevations {
		p := track.NewPoint(hikePoints[(2*i)%len(hikePoints)], hikePoints[(2*i+1)%len(hikePoints)], e)
		p.Time = time.Date(2009, time.November, 10, 14, 20+i, 0, 0, time.UTC)
		points = append(points, p)
	}
	points[4].Latitude = 47.62581793370288
	points[4].Longitude = -121.93371090698244

	tr := track.New("stats", points)
	stats := tr.Stats()

	require.Equal(5, stats.Points)
	require.Equal(100.0, stats.StartElevation)
	require.Equal(300.0, stats.EndElevation)
	require.Equal(300.0, stats.ElevationGain)
	require.Equal(100.0, stats.ElevationLoss)
	require.Equal(400.0, stats.MaxElevation)
	require.InDelta(260.0, stats.MeanElevation, 1e-9)
	require.Equal(4*time.Minute, stats.Duration)
	require.Equal(5743, int(math.Round(stats.Distance)))
}

func TestStatsEmptyTrack(t *testing.T) {
	require := require.New(t)

	require.Equal(track.Stats{}, track.New("empty", nil).Stats())
}

func getTrack(pts []float64) *track.Track {
	ln := len(pts)
	if ln%2 != 0 {
		panic("must provide a pair number of points")
	}

	tPts := make([]track.Point, ln/2)
	j := 0
	for i := 0; i < ln-1; i += 2 {
		tPts[j] = track.Point{
			Latitude:  pts[i],
			Longitude: pts[i+1],
		}
		j++
	}

	return track.New("test", tPts)
}
