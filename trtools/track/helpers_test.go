package track_test

import (
	"math"
	"trail-tools/trtools/track"
)

var oneDegree = 2 * math.Pi * track.EarthRadius / 360

// northLine returns n points going north from (47, -122), spaced by step meters
func northLine(n int, step float64) []track.Point {
	pts := make([]track.Point, n)
	for i := range pts {
		pts[i] = track.NewPoint(47+float64(i)*step/oneDegree, -122, 0)
	}
	return pts
}

// offsetNorth moves p north by the given meters
func offsetNorth(p track.Point, meters float64) track.Point {
	p.Latitude += meters / oneDegree
	return p
}

func isSubsequence(sub, seq []track.Point) bool {
	j := 0
	for i := 0; i < len(seq) && j < len(sub); i++ {
		if seq[i] == sub[j] {
			j++
		}
	}
	return j == len(sub)
}
