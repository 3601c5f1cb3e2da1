package format

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/twpayne/go-polyline"
	"trail-tools/trtools/track"
)

// WritePolyline writes one line per track: its name, a tab and the track encoded
// with Google's polyline algorithm (5 digits precision, no elevation). Waypoints
// are written together as a last line named "waypoints".
func WritePolyline(w io.Writer, doc *Document, opts Options) error {
	bw := bufio.NewWriter(w)

	tracks := append(append([]*track.Track{}, doc.Tracks...), doc.Polygons...)
	for _, t := range tracks {
		fmt.Fprintf(bw, "%s\t%s\n", t.Name, encode(t.Points))
	}

	if len(doc.Waypoints) > 0 {
		pts := make([]track.Point, len(doc.Waypoints))
		for i, wp := range doc.Waypoints {
			pts[i] = wp.Point
		}
		fmt.Fprintf(bw, "waypoints\t%s\n", encode(pts))
	}

	return bw.Flush()
}

// ReadPolyline reads files written by WritePolyline. A line without a tab is an
// unnamed track.
func ReadPolyline(r io.Reader, opts Options) (*Document, error) {
	doc := &Document{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		name, encoded := "", line
		if i := strings.LastIndex(line, "\t"); i >= 0 {
			name, encoded = line[:i], line[i+1:]
		}

		coords, _, err := polyline.DecodeCoords([]byte(encoded))
		if err != nil {
			return nil, fmt.Errorf("failed to decode polyline: %w", err)
		}

		pts := make([]track.Point, len(coords))
		for i, c := range coords {
			pts[i] = track.Point{Latitude: c[0], Longitude: c[1]}
		}

		if name == "waypoints" {
			for _, p := range pts {
				doc.Waypoints = append(doc.Waypoints, Waypoint{Point: p})
			}
			continue
		}
		doc.Tracks = append(doc.Tracks, track.New(trackName(name, len(doc.Tracks)), pts))
	}

	return doc, scanner.Err()
}

func encode(pts []track.Point) []byte {
	coords := make([][]float64, len(pts))
	for i, p := range pts {
		coords[i] = []float64{p.Latitude, p.Longitude}
	}
	return polyline.EncodeCoords(coords)
}
