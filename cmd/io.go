package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"trail-tools/trtools/config"
	"trail-tools/trtools/format"
	"trail-tools/trtools/track"

	"go.uber.org/zap"
)

// env is what every command receives from main
type env struct {
	cfg *config.Config
	log *zap.Logger
}

func newEnv(args []interface{}) env {
	return env{
		cfg: args[0].(*config.Config),
		log: args[1].(*zap.Logger),
	}
}

func (e env) options() format.Options {
	return format.Options{
		Location: e.cfg.Location(),
		Creator:  e.cfg.Creator,
	}
}

// read parses every file, failing on the first error
func (e env) read(paths []string) ([]*format.Document, error) {
	if len(paths) == 0 {
		return nil, errors.New("no input file given")
	}

	docs := make([]*format.Document, 0, len(paths))
	for _, p := range paths {
		doc, err := format.Read(p, e.options())
		if err != nil {
			return nil, err
		}
		e.log.Debug("read file",
			zap.String("path", p),
			zap.Int("tracks", len(doc.Tracks)),
			zap.Int("waypoints", len(doc.Waypoints)),
			zap.Int("points", len(doc.Points())))
		docs = append(docs, doc)
	}

	return docs, nil
}

// readFirstTrack returns the first track of the file
func (e env) readFirstTrack(path string) (*format.Document, *track.Track, error) {
	docs, err := e.read([]string{path})
	if err != nil {
		return nil, nil, err
	}

	doc := docs[0]
	if len(doc.Tracks) == 0 {
		return nil, nil, fmt.Errorf("'%s': %w", path, track.ErrEmptyTrack)
	}
	if len(doc.Tracks) > 1 {
		e.log.Info("file has several tracks, only the first one is used",
			zap.String("path", path),
			zap.Int("tracks", len(doc.Tracks)))
	}

	return doc, doc.Tracks[0], nil
}

func (e env) write(path string, doc *format.Document) error {
	if err := format.Write(path, doc, e.options()); err != nil {
		return err
	}

	e.log.Debug("wrote file",
		zap.String("path", path),
		zap.Int("tracks", len(doc.Tracks)),
		zap.Int("polygons", len(doc.Polygons)),
		zap.Int("waypoints", len(doc.Waypoints)))
	return nil
}

// checkOutput validates the -out flag before doing any work
func checkOutput(out string) error {
	if out == "" {
		return errors.New("missing -out flag")
	}
	if !format.Supported(out) {
		return fmt.Errorf("%w: '%s' (use .gpx, .kml, .csv or .txt)", format.ErrUnsupportedFormat, out)
	}
	return nil
}

// parseLocation parses a "latitude,longitude" flag value. An empty value means no location.
func parseLocation(s string) (*track.Point, error) {
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid location '%s', expected 'latitude,longitude'", s)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude in '%s': %w", s, err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude in '%s': %w", s, err)
	}

	return &track.Point{Latitude: lat, Longitude: lng}, nil
}
