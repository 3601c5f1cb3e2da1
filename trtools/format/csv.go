package format

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"trail-tools/trtools/track"
)

var csvHeader = []string{"kind", "name", "index", "latitude", "longitude", "elevation", "time"}

// WriteCSV writes one row per point: track points first, then polygons and waypoints.
// Unknown elevations and timestamps are left empty.
func WriteCSV(w io.Writer, doc *Document, opts Options) error {
	csvW := csv.NewWriter(w)
	if err := csvW.Write(csvHeader); err != nil {
		return err
	}

	for _, t := range doc.Tracks {
		for i, p := range t.Points {
			if err := csvW.Write(csvRow("track", t.Name, i, p)); err != nil {
				return err
			}
		}
	}
	for _, t := range doc.Polygons {
		for i, p := range t.Points {
			if err := csvW.Write(csvRow("polygon", t.Name, i, p)); err != nil {
				return err
			}
		}
	}
	for i, wp := range doc.Waypoints {
		if err := csvW.Write(csvRow("waypoint", wp.Name, i, wp.Point)); err != nil {
			return err
		}
	}

	csvW.Flush()
	return csvW.Error()
}

func csvRow(kind, name string, i int, p track.Point) []string {
	var ele, ts string
	if e, ok := p.Ele(); ok {
		ele = strconv.FormatFloat(e, 'f', -1, 64)
	}
	if !p.Time.IsZero() {
		ts = p.Time.Format(time.RFC3339)
	}

	return []string{
		kind,
		name,
		strconv.Itoa(i),
		strconv.FormatFloat(p.Latitude, 'f', -1, 64),
		strconv.FormatFloat(p.Longitude, 'f', -1, 64),
		ele,
		ts,
	}
}
