package track_test

import (
	"testing"
	"trail-tools/trtools/track"

	"github.com/stretchr/testify/require"
)

func TestPruneByLocation(t *testing.T) {
	require := require.New(t)

	pts := northLine(10, 100)
	nearThree := offsetNorth(pts[3], 20)
	nearSix := offsetNorth(pts[6], -30)

	tests := map[string]struct {
		start, end *track.Point
		want       []track.Point
	}{
		"start":         {start: &nearThree, want: pts[3:9]},
		"end":           {end: &nearSix, want: pts[0:6]},
		"none":          {want: pts[0:9]},
		"start_on_last": {start: &pts[9], want: []track.Point{}},
		"end_on_first":  {end: &pts[0], want: []track.Point{}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := track.PruneByLocation(pts, tc.start, tc.end)
			require.NoError(err)
			require.Equal(tc.want, got)
		})
	}
}

func TestPruneByLocationErrors(t *testing.T) {
	require := require.New(t)

	pts := northLine(10, 100)

	_, err := track.PruneByLocation(pts, &pts[1], &pts[5])
	require.ErrorIs(err, track.ErrConflictingBounds)

	_, err = track.PruneByLocation(nil, &pts[1], nil)
	require.ErrorIs(err, track.ErrEmptyTrack)
}

func TestPruneByLocationCopies(t *testing.T) {
	require := require.New(t)

	pts := northLine(5, 100)

	got, err := track.PruneByLocation(pts, nil, nil)
	require.NoError(err)
	got[0].Latitude = 0

	require.Equal(47.0, pts[0].Latitude)
}

func TestPruneToTop(t *testing.T) {
	require := require.New(t)

	pts := northLine(5, 100)
	for i, e := range []float64{100, 300, 500, 200, 50} {
		pts[i].Elevation.SetValue(e)
	}

	got, err := track.PruneToTop(pts)

	require.NoError(err)
	require.Equal(pts[:2], got)

	_, err = track.PruneToTop(nil)
	require.ErrorIs(err, track.ErrEmptyTrack)

	_, err = track.PruneToTop([]track.Point{{Latitude: 1, Longitude: 2}})
	require.ErrorIs(err, track.ErrNoElevation)
}
