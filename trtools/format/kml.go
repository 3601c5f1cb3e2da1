package format

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tkrajina/gpxgo/gpx"
	"github.com/twpayne/go-kml"
	"trail-tools/trtools/track"
)

type kmlCoordinates struct {
	Coordinates string `xml:"coordinates"`
}

type kmlPlacemark struct {
	Name        string          `xml:"name"`
	Description string          `xml:"description"`
	Point       *kmlCoordinates `xml:"Point"`
	LineString  *kmlCoordinates `xml:"LineString"`
	Polygon     *struct {
		Outer kmlCoordinates `xml:"outerBoundaryIs>LinearRing"`
	} `xml:"Polygon"`
}

// ReadKML reads the placemarks of a KML file: lines become tracks, points become
// waypoints and polygon outer boundaries become polygons. Placemarks are found
// at any depth (Document, Folder...).
func ReadKML(r io.Reader, opts Options) (*Document, error) {
	doc := &Document{}
	decoder := xml.NewDecoder(r)

	depth := 0
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch el := tok.(type) {
		case xml.EndElement:
			depth--
		case xml.StartElement:
			depth++
			if el.Name.Local == "name" && depth == 3 && doc.Name == "" {
				// kml > Document > name
				var name string
				if err := decoder.DecodeElement(&name, &el); err != nil {
					return nil, err
				}
				doc.Name = strings.TrimSpace(name)
				depth--
				continue
			}
			if el.Name.Local != "Placemark" {
				continue
			}

			var pm kmlPlacemark
			if err := decoder.DecodeElement(&pm, &el); err != nil {
				return nil, err
			}
			depth--

			if err := doc.addPlacemark(pm); err != nil {
				return nil, err
			}
		}
	}

	return doc, nil
}

func (d *Document) addPlacemark(pm kmlPlacemark) error {
	name := strings.TrimSpace(pm.Name)

	switch {
	case pm.LineString != nil:
		pts, err := parseCoordinates(pm.LineString.Coordinates)
		if err != nil {
			return err
		}
		d.Tracks = append(d.Tracks, track.New(trackName(name, len(d.Tracks)), pts))
	case pm.Polygon != nil:
		pts, err := parseCoordinates(pm.Polygon.Outer.Coordinates)
		if err != nil {
			return err
		}
		d.Polygons = append(d.Polygons, track.New(name, pts))
	case pm.Point != nil:
		pts, err := parseCoordinates(pm.Point.Coordinates)
		if err != nil {
			return err
		}
		if len(pts) == 0 {
			return fmt.Errorf("placemark '%s' has no coordinates", name)
		}
		d.Waypoints = append(d.Waypoints, Waypoint{
			Name:        name,
			Description: strings.TrimSpace(pm.Description),
			Point:       pts[0],
		})
	}

	return nil
}

// parseCoordinates parses a KML coordinate list: "lon,lat[,alt] lon,lat[,alt]..."
func parseCoordinates(s string) ([]track.Point, error) {
	fields := strings.Fields(s)
	pts := make([]track.Point, 0, len(fields))
	for _, f := range fields {
		parts := strings.Split(f, ",")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, fmt.Errorf("invalid KML coordinate '%s'", f)
		}

		values := make([]float64, len(parts))
		for i, part := range parts {
			v, err := strconv.ParseFloat(part, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid KML coordinate '%s': %w", f, err)
			}
			values[i] = v
		}

		p := track.Point{Latitude: values[1], Longitude: values[0]}
		if len(values) == 3 {
			p.Elevation = *gpx.NewNullableFloat64(values[2])
		}
		pts = append(pts, p)
	}

	return pts, nil
}

// WriteKML writes the document as a KML file with one folder per kind of placemark
func WriteKML(w io.Writer, doc *Document, opts Options) error {
	children := []kml.Element{}
	if doc.Name != "" {
		children = append(children, kml.Name(doc.Name))
	}

	if len(doc.Tracks) > 0 {
		folder := kml.Folder(kml.Name("Tracks"))
		for _, t := range doc.Tracks {
			folder.Add(kml.Placemark(
				kml.Name(t.Name),
				kml.LineString(kml.Coordinates(toKMLCoordinates(t.Points)...)),
			))
		}
		children = append(children, folder)
	}

	if len(doc.Polygons) > 0 {
		folder := kml.Folder(kml.Name("Polygons"))
		for _, p := range doc.Polygons {
			folder.Add(kml.Placemark(
				kml.Name(p.Name),
				kml.Polygon(kml.OuterBoundaryIs(kml.LinearRing(kml.Coordinates(toKMLCoordinates(p.Points)...)))),
			))
		}
		children = append(children, folder)
	}

	if len(doc.Waypoints) > 0 {
		folder := kml.Folder(kml.Name("Waypoints"))
		for _, wp := range doc.Waypoints {
			placemark := kml.Placemark(kml.Name(wp.Name))
			if wp.Description != "" {
				placemark.Add(kml.Description(wp.Description))
			}
			placemark.Add(kml.Point(kml.Coordinates(toKMLCoordinates([]track.Point{wp.Point})...)))
			folder.Add(placemark)
		}
		children = append(children, folder)
	}

	return kml.KML(kml.Document(children...)).WriteIndent(w, "", "  ")
}

func toKMLCoordinates(pts []track.Point) []kml.Coordinate {
	coords := make([]kml.Coordinate, len(pts))
	for i, p := range pts {
		ele, _ := p.Ele()
		coords[i] = kml.Coordinate{Lon: p.Longitude, Lat: p.Latitude, Alt: ele}
	}
	return coords
}
