// Package merge combines several recordings of the same route into a single line.
package merge

import (
	"trail-tools/trtools/track"
)

// DefaultMaxDistance is the distance in meters past which a point of another
// recording is not considered to be the same location.
const DefaultMaxDistance = 15

// Tracks walks the base track and, for each of its points, looks up the nearest
// point of every other track. Points closer than maxDistance are averaged with the
// base point (coordinate-wise median). The result has one point per base point and
// no elevation data beyond 0.
func Tracks(base []track.Point, maxDistance float64, others ...[]track.Point) []track.Point {
	merged := make([]track.Point, 0, len(base))
	for _, p := range base {
		group := []track.Point{p}
		for _, other := range others {
			i, d, ok := track.FindNearest(p, other)
			if ok && d < maxDistance {
				group = append(group, other[i])
			}
		}

		lat, lng := track.Median(group)
		merged = append(merged, track.NewPoint(lat, lng, 0))
	}

	return merged
}
