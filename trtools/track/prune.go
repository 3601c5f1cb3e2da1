package track

// PruneByLocation returns the part of the track going from the point closest to
// start up to, but excluding, the point closest to end. A nil start means the
// first point and a nil end means the last point. Only one of start and end may
// be given.
func PruneByLocation(points []Point, start, end *Point) ([]Point, error) {
	if start != nil && end != nil {
		return nil, ErrConflictingBounds
	}
	if len(points) == 0 {
		return nil, ErrEmptyTrack
	}

	startIndex := 0
	if start != nil {
		startIndex, _, _ = FindNearest(*start, points)
	}

	endIndex := len(points) - 1
	if end != nil {
		endIndex, _, _ = FindNearest(*end, points)
	}

	return append([]Point{}, points[startIndex:endIndex]...), nil
}

// PruneToTop returns the way up: every point before the highest one
func PruneToTop(points []Point) ([]Point, error) {
	if len(points) == 0 {
		return nil, ErrEmptyTrack
	}

	index, _, ok := FindHighest(points)
	if !ok {
		return nil, ErrNoElevation
	}

	return append([]Point{}, points[:index]...), nil
}
