package track_test

import (
	"testing"
	"trail-tools/trtools/track"

	"github.com/stretchr/testify/require"
)

func TestFindNearest(t *testing.T) {
	require := require.New(t)

	line := northLine(5, 100)

	tests := map[string]struct {
		point  track.Point
		points []track.Point
		want   int
	}{
		"nearer_second": {
			point:  track.NewPoint(0, 0, 0),
			points: []track.Point{track.NewPoint(0, 1, 0), track.NewPoint(0, 0.1, 0)},
			want:   1,
		},
		"on_track":   {point: line[3], points: line, want: 3},
		"off_track":  {point: offsetNorth(line[1], 40), points: line, want: 1},
		"first_tie":  {point: line[3], points: []track.Point{line[2], line[2], line[0]}, want: 0},
		"past_end":   {point: offsetNorth(line[4], 1000), points: line, want: 4},
		"duplicates": {point: line[0], points: []track.Point{line[1], line[0], line[0]}, want: 1},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			i, d, ok := track.FindNearest(tc.point, tc.points)
			require.True(ok)
			require.Equal(tc.want, i)
			require.Equal(track.Distance2D(tc.point, tc.points[i]), d)
		})
	}
}

func TestFindNearestEmpty(t *testing.T) {
	require := require.New(t)

	i, d, ok := track.FindNearest(track.NewPoint(0, 0, 0), nil)
	require.False(ok)
	require.Equal(-1, i)
	require.Equal(0.0, d)
}

func TestFindWithinDistance(t *testing.T) {
	require := require.New(t)

	line := northLine(5, 100)

	tests := map[string]struct {
		radius float64
		want   []track.Point
	}{
		"only_itself": {radius: 0, want: line[:1]},
		"two":         {radius: 100.5, want: line[:2]},
		"three":       {radius: 250, want: line[:3]},
		"all":         {radius: 10000, want: line},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			require.Equal(tc.want, track.FindWithinDistance(line[0], line, tc.radius))
		})
	}

	require.Empty(track.FindWithinDistance(offsetNorth(line[4], 1000), line, 10))
}

func TestFindHighest(t *testing.T) {
	require := require.New(t)

	noEle := track.Point{Latitude: 47, Longitude: -122}

	tests := map[string]struct {
		input   []track.Point
		wantIdx int
		wantEle float64
		wantOk  bool
	}{
		"simple":       {input: []track.Point{track.NewPoint(0, 0, 10), track.NewPoint(0, 0, 30), track.NewPoint(0, 0, 20)}, wantIdx: 1, wantEle: 30, wantOk: true},
		"first_tie":    {input: []track.Point{track.NewPoint(0, 0, 30), track.NewPoint(0, 0, 30)}, wantIdx: 0, wantEle: 30, wantOk: true},
		"skip_null":    {input: []track.Point{noEle, track.NewPoint(0, 0, -5), noEle}, wantIdx: 1, wantEle: -5, wantOk: true},
		"zero_counts":  {input: []track.Point{track.NewPoint(0, 0, -10), noEle, track.NewPoint(0, 0, 0)}, wantIdx: 2, wantEle: 0, wantOk: true},
		"no_elevation": {input: []track.Point{noEle, noEle}, wantIdx: -1, wantOk: false},
		"empty":        {input: nil, wantIdx: -1, wantOk: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			i, e, ok := track.FindHighest(tc.input)
			require.Equal(tc.wantOk, ok)
			require.Equal(tc.wantIdx, i)
			require.Equal(tc.wantEle, e)
		})
	}
}
