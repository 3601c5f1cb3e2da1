package track

import (
	"math"
)

// EarthRadius is the equatorial radius used by every distance computation, in meters.
const EarthRadius = 6378137.0

// oneDegree is the length of one degree on the equator (~111.319 km)
const oneDegree = 2 * math.Pi * EarthRadius / 360

// Past this separation (in degrees) the planar approximation is no longer trusted.
const haversineThreshold = 0.2

// Distance returns the distance in meters between two points.
//
// Points further apart than 0.2 degrees in latitude or longitude (or every pair when
// useHaversine is set) use the great-circle distance and ignore elevation. Closer
// points use an equirectangular approximation and fold in the elevation difference
// when both elevations are known.
func Distance(p1, p2 Point, useHaversine bool) float64 {
	if useHaversine ||
		math.Abs(p1.Latitude-p2.Latitude) > haversineThreshold ||
		math.Abs(p1.Longitude-p2.Longitude) > haversineThreshold {
		return HaversineDistance(p1.Latitude, p1.Longitude, p2.Latitude, p2.Longitude)
	}

	d := planarDistance(p1, p2)

	e1, ok1 := p1.Ele()
	e2, ok2 := p2.Ele()
	if !ok1 || !ok2 || e1 == e2 {
		return d
	}

	de := e1 - e2
	return math.Sqrt(d*d + de*de)
}

// Distance2D returns the distance in meters between two points, ignoring elevation
func Distance2D(p1, p2 Point) float64 {
	p1.Elevation.SetNull()
	p2.Elevation.SetNull()
	return Distance(p1, p2, false)
}

// HaversineDistance returns the great-circle distance in meters between two coordinates
// given in decimal degrees.
func HaversineDistance(lat1, lng1, lat2, lng2 float64) float64 {
	dLng := toRadians(lng1 - lng2)
	rLat1 := toRadians(lat1)
	rLat2 := toRadians(lat2)
	dLat := rLat1 - rLat2

	cosProduct := math.Cos(rLat1) * math.Cos(rLat2)
	a := math.Pow(math.Sin(dLat/2), 2) + math.Pow(math.Sin(dLng/2), 2)*cosProduct

	return EarthRadius * 2 * math.Asin(math.Sqrt(a))
}

// planarDistance scales the longitude delta by the cosine of the mean latitude,
// which keeps it symmetric.
func planarDistance(p1, p2 Point) float64 {
	coef := math.Cos(toRadians((p1.Latitude + p2.Latitude) / 2))
	x := p1.Latitude - p2.Latitude
	y := (p1.Longitude - p2.Longitude) * coef

	return math.Sqrt(x*x+y*y) * oneDegree
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
