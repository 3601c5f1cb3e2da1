package track

import "errors"

var (
	// ErrEmptyTrack is returned by operations that need at least one point.
	ErrEmptyTrack = errors.New("track has no points")
	// ErrNoCluster is returned when the search radius was expanded the maximum number of times without matching a point.
	ErrNoCluster = errors.New("no cluster found")
	// ErrConflictingBounds is returned when both a start and an end location are given to PruneByLocation.
	ErrConflictingBounds = errors.New("must pass either start or end, not both")
	// ErrNoElevation is returned when no point of the track carries an elevation.
	ErrNoElevation = errors.New("track has no elevation data")
	// ErrInvalidArgument is returned for out of range numeric parameters.
	ErrInvalidArgument = errors.New("invalid argument")
)
