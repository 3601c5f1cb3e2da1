package track

// FindNearest returns the index of the point closest to p along with its distance
// in meters. When several points are at the same distance the first one wins.
// ok is false when points is empty.
func FindNearest(p Point, points []Point) (index int, distance float64, ok bool) {
	index = -1
	for i, pt := range points {
		d := Distance2D(p, pt)
		if index < 0 || d < distance {
			index = i
			distance = d
		}
	}

	return index, distance, index >= 0
}

// FindWithinDistance returns, in track order, every point at most radius meters away from p
func FindWithinDistance(p Point, points []Point, radius float64) []Point {
	found := []Point{}
	for _, pt := range points {
		if Distance2D(p, pt) <= radius {
			found = append(found, pt)
		}
	}

	return found
}

// FindHighest returns the index and elevation of the highest point. Points without
// elevation are skipped and ties keep the first point. ok is false when no point
// has an elevation.
func FindHighest(points []Point) (index int, elevation float64, ok bool) {
	index = -1
	for i, pt := range points {
		e, known := pt.Ele()
		if !known {
			continue
		}
		if index < 0 || e > elevation {
			index = i
			elevation = e
		}
	}

	return index, elevation, index >= 0
}
