package track

import (
	"math"

	"trail-tools/trtools/convert"
)

// Reverse returns the points followed by the same points in reverse order,
// which is what an out-and-back hike recorded one way looks like.
func Reverse(points []Point) []Point {
	doubled := make([]Point, 0, 2*len(points))
	doubled = append(doubled, points...)
	for i := len(points) - 1; i >= 0; i-- {
		doubled = append(doubled, points[i])
	}

	return doubled
}

// MileMarkers walks the track and returns one marker for every whole mile it enters.
// The marker is placed on the first point past the mile, it is not interpolated.
func MileMarkers(points []Point, reverse bool) ([]MileMarker, error) {
	if len(points) == 0 {
		return nil, ErrEmptyTrack
	}

	if reverse {
		points = Reverse(points)
	}

	markers := []MileMarker{}
	var total float64
	prevMile := 0
	for i := 1; i < len(points); i++ {
		p := points[i]
		total += Distance(points[i-1], p, false)

		mile := int(math.Floor(convert.ToMiles(total)))
		for m := prevMile + 1; m <= mile; m++ {
			markers = append(markers, MileMarker{
				Mile:      m,
				Latitude:  p.Latitude,
				Longitude: p.Longitude,
				Elevation: p.Elevation,
			})
		}
		prevMile = mile
	}

	return markers, nil
}
