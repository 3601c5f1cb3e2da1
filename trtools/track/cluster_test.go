package track_test

import (
	"testing"
	"trail-tools/trtools/track"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// twoPairs returns two pairs of points 5m apart, the pairs being 2km apart
func twoPairs() []track.Point {
	a := track.NewPoint(47, -122, 0)
	b := offsetNorth(a, 2000)
	return []track.Point{a, offsetNorth(a, 5), b, offsetNorth(b, 5)}
}

// flatten returns all the points of the result, clusters first
func flatten(res track.ClusterResult) []track.Point {
	var all []track.Point
	for _, c := range res.Clusters {
		all = append(all, c...)
	}
	return append(all, res.Remaining...)
}

func TestClusterTwoPairs(t *testing.T) {
	require := require.New(t)

	pts := twoPairs()

	res, err := track.FindClusters(pts, 50, 10)

	require.NoError(err)
	require.Len(res.Clusters, 2)
	require.ElementsMatch(pts[:2], res.Clusters[0])
	require.ElementsMatch(pts[2:], res.Clusters[1])
	require.Empty(res.Remaining)
	require.Equal(pts[2], res.Current)
}

func TestClusterMaxJump(t *testing.T) {
	require := require.New(t)

	pts := twoPairs()

	res, err := track.ClusterWithOptions(pts, track.ClusterOptions{
		Radius:        50,
		MaxIterations: 10,
		MaxJump:       track.DefaultMaxJump,
		Logger:        zaptest.NewLogger(t),
	})

	require.NoError(err)
	require.Len(res.Clusters, 1)
	require.ElementsMatch(pts[2:], res.Remaining)
	require.Equal(pts[0], res.Current)
}

func TestClusterMaxIterations(t *testing.T) {
	require := require.New(t)

	pts := twoPairs()

	res, err := track.FindClusters(pts, 50, 1)

	require.NoError(err)
	require.Len(res.Clusters, 1)
	require.Len(res.Remaining, 2)
	require.ElementsMatch(pts, flatten(res))
}

func TestClusterWalksAlongTrack(t *testing.T) {
	require := require.New(t)

	// points every 30m, clusters of 50m hold two to four of them
	pts := northLine(20, 30)

	res, err := track.FindClusters(pts, 50, 100)

	require.NoError(err)
	require.Empty(res.Remaining)
	require.True(len(res.Clusters) > 1)
	for _, c := range res.Clusters {
		require.NotEmpty(c)
		require.True(len(c) <= 4)
	}
	require.ElementsMatch(pts, flatten(res))
}

func TestClusterCompleteness(t *testing.T) {
	require := require.New(t)

	tests := map[string]struct {
		points     []track.Point
		radius     float64
		iterations int
	}{
		"zigzag":          {points: zigzag(300), radius: 40, iterations: 1000},
		"few_iterations":  {points: zigzag(300), radius: 40, iterations: 3},
		"zero_radius":     {points: northLine(10, 10), radius: 0, iterations: 100},
		"duplicates":      {points: append(northLine(5, 10), northLine(5, 10)...), radius: 5, iterations: 100},
		"single":          {points: northLine(1, 0), radius: 10, iterations: 1},
		"one_big_cluster": {points: zigzag(50), radius: 100000, iterations: 5},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			res, err := track.FindClusters(tc.points, tc.radius, tc.iterations)
			require.NoError(err)
			require.ElementsMatch(tc.points, flatten(res))
			require.True(len(res.Clusters) <= tc.iterations)
		})
	}
}

func TestClusterErrors(t *testing.T) {
	require := require.New(t)

	_, err := track.FindClusters(nil, 50, 10)
	require.ErrorIs(err, track.ErrEmptyTrack)

	_, err = track.FindClusters(northLine(3, 10), 50, 0)
	require.ErrorIs(err, track.ErrInvalidArgument)

	_, err = track.FindClusters(northLine(3, 10), -1, 10)
	require.ErrorIs(err, track.ErrInvalidArgument)
}

func TestMedoid(t *testing.T) {
	require := require.New(t)

	tests := map[string]struct {
		cluster track.Cluster
		wantLat float64
		wantLng float64
	}{
		"odd": {
			cluster: track.Cluster{track.NewPoint(3, 10, 5), track.NewPoint(1, 30, 5), track.NewPoint(2, 20, 5)},
			wantLat: 2,
			wantLng: 20,
		},
		"even": {
			cluster: track.Cluster{track.NewPoint(4, 1, 0), track.NewPoint(1, 2, 0), track.NewPoint(2, 8, 0), track.NewPoint(3, 4, 0)},
			wantLat: 2.5,
			wantLng: 3,
		},
		"single": {
			cluster: track.Cluster{track.NewPoint(47.5, -121.5, 1000)},
			wantLat: 47.5,
			wantLng: -121.5,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			m := tc.cluster.Medoid()
			require.Equal(tc.wantLat, m.Latitude)
			require.Equal(tc.wantLng, m.Longitude)
			e, ok := m.Ele()
			require.True(ok)
			require.Equal(0.0, e)
		})
	}
}

func TestMedianDoesNotReorder(t *testing.T) {
	require := require.New(t)

	pts := []track.Point{track.NewPoint(3, 3, 0), track.NewPoint(1, 1, 0), track.NewPoint(2, 2, 0)}
	original := append([]track.Point{}, pts...)

	lat, lng := track.Median(pts)

	require.Equal(2.0, lat)
	require.Equal(2.0, lng)
	require.Equal(original, pts)

	lat, lng = track.Median(nil)
	require.Equal(0.0, lat)
	require.Equal(0.0, lng)
}
