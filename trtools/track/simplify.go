package track

import (
	"math"
)

// DefaultTolerance is the default maximum deviation (in meters) kept by Simplify
const DefaultTolerance = 10

type span struct {
	begin, end int
}

// Simplify reduces the number of points of a track while keeping its shape
// within tolerance meters (Ramer-Douglas-Peucker). The first and last points are
// always kept and the result is a subsequence of points.
func Simplify(points []Point, tolerance float64) []Point {
	if len(points) < 3 {
		return append([]Point(nil), points...)
	}

	keep := make([]bool, len(points))
	keep[0] = true
	keep[len(points)-1] = true

	stack := []span{{0, len(points) - 1}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if s.end-s.begin < 2 {
			continue
		}

		anchor := farthestFromChord(points, s.begin, s.end)
		d := distanceFromLine(points[anchor], points[s.begin], points[s.end])
		if d < tolerance {
			continue
		}

		keep[anchor] = true
		stack = append(stack, span{anchor, s.end}, span{s.begin, anchor})
	}

	simplified := make([]Point, 0, len(points))
	for i, p := range points {
		if keep[i] {
			simplified = append(simplified, p)
		}
	}

	return simplified
}

// farthestFromChord returns the index of the interior point with the largest
// deviation from the cartesian line through points[begin] and points[end]. The
// deviation is not a real distance, it is only used to rank points.
func farthestFromChord(points []Point, begin, end int) int {
	a, b, c := lineCoefficients(points[begin], points[end])

	var maxDeviation float64
	position := begin + 1
	for i := begin + 1; i < end; i++ {
		p := points[i]
		d := math.Abs(a*p.Latitude + b*p.Longitude + c)
		if d > maxDeviation {
			maxDeviation = d
			position = i
		}
	}

	return position
}

// lineCoefficients returns a, b, c such that latitude*a + longitude*b + c = 0
// for every point of the (planar) line going through p1 and p2.
func lineCoefficients(p1, p2 Point) (float64, float64, float64) {
	if p1.Longitude == p2.Longitude {
		return 0, 1, -p1.Longitude
	}

	slope := (p1.Latitude - p2.Latitude) / (p1.Longitude - p2.Longitude)
	intercept := p1.Latitude - p1.Longitude*slope
	return 1, -slope, -intercept
}

// distanceFromLine returns the distance in meters of pt from the line going through
// l1 and l2, using the area of the triangle they form.
func distanceFromLine(pt, l1, l2 Point) float64 {
	a := Distance2D(l1, l2)
	if a == 0 {
		return Distance2D(l1, pt)
	}

	b := Distance2D(l1, pt)
	c := Distance2D(l2, pt)

	s := (a + b + c) / 2
	return 2 * math.Sqrt(math.Abs(s*(s-a)*(s-b)*(s-c))) / a
}
