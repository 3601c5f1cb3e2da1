package track

// Bounds represents track coordinate boundaries
type Bounds struct {
	MinLat, MinLng float64
	MaxLat, MaxLng float64
}

// Extend extends boundaries from given decimal degrees
func (b Bounds) Extend(inc float64) Bounds {
	b.MinLat -= inc
	b.MinLng -= inc
	b.MaxLat += inc
	b.MaxLng += inc
	return b
}

// Contains reports whether the location lies within the boundaries
func (b Bounds) Contains(pt LatLng) bool {
	return pt.Lat() >= b.MinLat && pt.Lat() <= b.MaxLat &&
		pt.Lng() >= b.MinLng && pt.Lng() <= b.MaxLng
}

// Center returns the middle of the boundaries
func (b Bounds) Center() Point {
	return Point{
		Latitude:  (b.MinLat + b.MaxLat) / 2,
		Longitude: (b.MinLng + b.MaxLng) / 2,
	}
}
