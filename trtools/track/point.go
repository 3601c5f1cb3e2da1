package track

import (
	"time"

	"github.com/tkrajina/gpxgo/gpx"
)

// Point point in 3D coordinates with an optional timestamp
type Point struct {
	Latitude, Longitude float64
	Elevation           gpx.NullableFloat64
	Time                time.Time
}

// NewPoint creates a point with a known elevation (in meters)
func NewPoint(lat, lng, ele float64) Point {
	return Point{
		Latitude:  lat,
		Longitude: lng,
		Elevation: *gpx.NewNullableFloat64(ele),
	}
}

// Lat returns the latitude in degrees
func (p Point) Lat() float64 {
	return p.Latitude
}

// Lng returns the longitude in degrees
func (p Point) Lng() float64 {
	return p.Longitude
}

// Ele returns the elevation in meters and whether it is known
func (p Point) Ele() (float64, bool) {
	if p.Elevation.Null() {
		return 0, false
	}
	return p.Elevation.Value(), true
}

// MileMarker is emitted each time a track enters a new whole mile
type MileMarker struct {
	Mile                int
	Latitude, Longitude float64
	Elevation           gpx.NullableFloat64
}
