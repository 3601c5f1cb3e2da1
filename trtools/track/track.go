package track

import (
	"math"
	"time"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/tkrajina/gpxgo/gpx"
	"gonum.org/v1/gonum/stat"
)

// Track represents a named gps track made of an ordered serie of points
type Track struct {
	Name   string
	Points []Point

	polyline *s2.Polyline
	segment  gpx.GPXTrackSegment
}

// LatLng latlng
type LatLng interface {
	Lat() float64
	Lng() float64
}

// Stats track statistics
type Stats struct {
	Points         int
	Duration       time.Duration
	ElevationGain  float64
	ElevationLoss  float64
	StartElevation float64
	EndElevation   float64
	MaxElevation   float64
	MeanElevation  float64
	Distance       float64
}

// Elevation changes below this many meters are considered gps noise.
const elevationChangeThreshold = 18

// New creates a track from the given points. The points are not copied.
func New(name string, pts []Point) *Track {
	latLngs := make([]s2.LatLng, len(pts))
	gPts := make([]gpx.GPXPoint, len(pts))
	for i, p := range pts {
		latLngs[i] = toS2LatLng(p)
		gPts[i] = toGPXPoint(p)
	}

	return &Track{
		Name:     name,
		Points:   pts,
		polyline: s2.PolylineFromLatLngs(latLngs),
		segment:  gpx.GPXTrackSegment{Points: gPts},
	}
}

// ClosestPoint returns the closest point of the track (along with its position on the track)
func (t *Track) ClosestPoint(pt LatLng) (Point, int) {
	p := s2.PointFromLatLng(toS2LatLng(pt))

	projectedPt, index := t.polyline.Project(p)
	l := len(t.Points)

	if index >= l {
		return t.Points[l-1], l - 1
	}

	var closestPtIndex = index - 1
	pts := *t.polyline
	if projectedPt.Distance(pts[index]) < projectedPt.Distance(pts[index-1]) {
		closestPtIndex = index
	}

	return t.Points[closestPtIndex], closestPtIndex
}

// DistanceFromPoint returns the shortest distance in meters from the given point to the track,
// the point being projected on the track segments rather than snapped to a vertex.
func (t *Track) DistanceFromPoint(pt LatLng) float64 {
	ptLatLng := toS2LatLng(pt)
	p := s2.PointFromLatLng(ptLatLng)

	projectedPoint, _ := t.polyline.Project(p)
	projectedLatLng := s2.LatLngFromPoint(projectedPoint)

	d := ptLatLng.Distance(projectedLatLng)

	return d.Radians() * EarthRadius
}

// Stats retrieves statistics from the track
func (t *Track) Stats() Stats {
	if len(t.Points) == 0 {
		return Stats{}
	}

	tb := t.segment.TimeBounds()
	gain, loss := t.elevationGainLoss(elevationChangeThreshold)

	var distance float64
	for i := 1; i < len(t.Points); i++ {
		distance += Distance(t.Points[i-1], t.Points[i], false)
	}

	var elevations []float64
	for _, p := range t.Points {
		if e, ok := p.Ele(); ok {
			elevations = append(elevations, e)
		}
	}

	s := Stats{
		Points:        len(t.Points),
		Duration:      tb.EndTime.Sub(tb.StartTime),
		ElevationGain: gain,
		ElevationLoss: loss,
		Distance:      distance,
	}
	s.StartElevation, _ = t.Points[0].Ele()
	s.EndElevation, _ = t.Points[len(t.Points)-1].Ele()
	if _, highest, ok := FindHighest(t.Points); ok {
		s.MaxElevation = highest
		s.MeanElevation = stat.Mean(elevations, nil)
	}

	return s
}

// IsNear reports whether the location is at most maxDistance meters away from the track.
// Locations outside the track boundaries extended by maxDistance are rejected
// without projecting them on the track.
func (t *Track) IsNear(pt LatLng, maxDistance float64) bool {
	if len(t.Points) == 0 {
		return false
	}

	inc := maxDistance / oneDegree / math.Max(math.Cos(toRadians(pt.Lat())), 0.01)
	if !t.Bounds().Extend(inc).Contains(pt) {
		return false
	}

	return t.DistanceFromPoint(pt) <= maxDistance
}

// Simplify returns a new track simplified with the given tolerance in meters
func (t *Track) Simplify(tolerance float64) *Track {
	return New(t.Name, Simplify(t.Points, tolerance))
}

// Bounds returns the boundaries of the track
func (t *Track) Bounds() Bounds {
	b := t.segment.Bounds()
	return Bounds{
		MinLat: b.MinLatitude,
		MinLng: b.MinLongitude,
		MaxLat: b.MaxLatitude,
		MaxLng: b.MaxLongitude,
	}
}

func (t *Track) elevationGainLoss(threshold float64) (float64, float64) {
	elevations := t.segment.Elevations()
	selectedElevations := []float64{}
	i := 0
	for _, e := range elevations {
		if e.NotNull() {
			if i == 0 || math.Abs(e.Value()-selectedElevations[i-1]) > threshold {
				selectedElevations = append(selectedElevations, e.Value())
				i++
			}
		}
	}

	var gain float64
	var loss float64

	for i := 1; i < len(selectedElevations); i++ {
		d := selectedElevations[i] - selectedElevations[i-1]
		if d > 0.0 {
			gain += d
		} else {
			loss -= d
		}
	}

	return gain, loss
}

func toGPXPoint(p Point) gpx.GPXPoint {
	return gpx.GPXPoint{
		Point: gpx.Point{
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
			Elevation: p.Elevation,
		},
		Timestamp: p.Time,
	}
}

func toS2LatLng(p LatLng) s2.LatLng {
	return s2.LatLng{
		Lat: s1.Angle(p.Lat()) * s1.Degree,
		Lng: s1.Angle(p.Lng()) * s1.Degree,
	}
}
