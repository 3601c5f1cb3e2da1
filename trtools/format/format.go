// Package format reads and writes tracks from/to GPX, KML, CSV and encoded polyline files.
package format

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"trail-tools/trtools/track"
)

// ErrUnsupportedFormat is returned for file extensions no reader or writer handles
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Waypoint is a named location, a mile marker or a cluster medoid for instance
type Waypoint struct {
	Name        string
	Description string
	Point       track.Point
}

// Document is the content of a file: lines, standalone locations and areas
type Document struct {
	Name      string
	Tracks    []*track.Track
	Waypoints []Waypoint
	Polygons  []*track.Track
}

// Points returns the points of every track of the document, in order
func (d *Document) Points() []track.Point {
	var pts []track.Point
	for _, t := range d.Tracks {
		pts = append(pts, t.Points...)
	}
	return pts
}

// Options tweaks how files are read and written
type Options struct {
	// Location timestamps are converted to when reading. Nil keeps them as parsed.
	Location *time.Location
	// Creator is written in the files metadata when the format has one.
	Creator string
}

type reader func(io.Reader, Options) (*Document, error)
type writer func(io.Writer, *Document, Options) error

var readers = map[string]reader{
	".gpx": ReadGPX,
	".kml": ReadKML,
	".txt": ReadPolyline,
}

var writers = map[string]writer{
	".gpx": WriteGPX,
	".kml": WriteKML,
	".csv": WriteCSV,
	".txt": WritePolyline,
}

// Read parses the file at path, the format being picked from its extension
func Read(path string, opts Options) (*Document, error) {
	read, ok := readers[ext(path)]
	if !ok {
		return nil, fmt.Errorf("%w: cannot read '%s'", ErrUnsupportedFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := read(f, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse '%s': %w", path, err)
	}

	if doc.Name == "" {
		doc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return doc, nil
}

// Write writes the document to path, the format being picked from its extension
func Write(path string, doc *Document, opts Options) (err error) {
	write, ok := writers[ext(path)]
	if !ok {
		return fmt.Errorf("%w: cannot write '%s'", ErrUnsupportedFormat, path)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return write(f, doc, opts)
}

// Supported reports whether files with the extension of path can be written
func Supported(path string) bool {
	_, ok := writers[ext(path)]
	return ok
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// trackName names unnamed tracks after their position in the file
func trackName(name string, i int) string {
	if name != "" {
		return name
	}
	return fmt.Sprintf("track_%d", i)
}

func normalize(t time.Time, opts Options) time.Time {
	if t.IsZero() || opts.Location == nil {
		return t
	}
	return t.In(opts.Location)
}
