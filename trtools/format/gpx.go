package format

import (
	"io"
	"io/ioutil"
	"time"

	"github.com/tkrajina/gpxgo/gpx"
	"trail-tools/trtools/track"
)

// GpxVersion GPX version
const GpxVersion = "1.1"

const gpxXMLNs = "http://www.topografix.com/GPX/1/1"
const gpxXMLNsXsi = "http://www.w3.org/2001/XMLSchema-instance"

// ReadGPX reads every track of a GPX file, all segments of a track being joined,
// and its waypoints.
func ReadGPX(r io.Reader, opts Options) (*Document, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}

	g, err := gpx.ParseBytes(data)
	if err != nil {
		return nil, err
	}

	doc := &Document{Name: g.Name}
	for i, t := range g.Tracks {
		var pts []track.Point
		for _, s := range t.Segments {
			for _, p := range s.Points {
				pts = append(pts, fromGPXPoint(p, opts))
			}
		}
		doc.Tracks = append(doc.Tracks, track.New(trackName(t.Name, i), pts))
	}

	for _, w := range g.Waypoints {
		doc.Waypoints = append(doc.Waypoints, Waypoint{
			Name:        w.Name,
			Description: w.Description,
			Point:       fromGPXPoint(w, opts),
		})
	}

	return doc, nil
}

// WriteGPX writes the document as GPX 1.1. Polygons are written as closed tracks.
func WriteGPX(w io.Writer, doc *Document, opts Options) error {
	g := gpx.GPX{
		XMLNs:        gpxXMLNs,
		XmlNsXsi:     gpxXMLNsXsi,
		XmlSchemaLoc: gpxXMLNs,

		Version: GpxVersion,
		Creator: opts.Creator,
		Name:    doc.Name,
	}

	for _, wp := range doc.Waypoints {
		p := toGPXPoint(wp.Point)
		p.Name = wp.Name
		p.Description = wp.Description
		g.Waypoints = append(g.Waypoints, p)
	}

	tracks := append(append([]*track.Track{}, doc.Tracks...), doc.Polygons...)
	for _, t := range tracks {
		points := make([]gpx.GPXPoint, len(t.Points))
		for i, p := range t.Points {
			points[i] = toGPXPoint(p)
		}

		g.Tracks = append(g.Tracks, gpx.GPXTrack{
			Name:     t.Name,
			Segments: []gpx.GPXTrackSegment{{Points: points}},
		})
	}

	xmlBytes, err := g.ToXml(gpx.ToXmlParams{Version: GpxVersion, Indent: true})
	if err != nil {
		return err
	}

	_, err = w.Write(xmlBytes)
	return err
}

func fromGPXPoint(p gpx.GPXPoint, opts Options) track.Point {
	return track.Point{
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		Elevation: p.Elevation,
		Time:      normalize(p.Timestamp, opts),
	}
}

func toGPXPoint(p track.Point) gpx.GPXPoint {
	var ts time.Time
	if !p.Time.IsZero() {
		ts = p.Time.UTC()
	}

	return gpx.GPXPoint{
		Point: gpx.Point{
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
			Elevation: p.Elevation,
		},
		Timestamp: ts,
	}
}
