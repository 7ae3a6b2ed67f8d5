package dataset

import "errors"

var (
	// ErrNoManifest indicates the dataset directory has no plexus.toml.
	ErrNoManifest = errors.New("plexus.toml not found in dataset directory")

	// ErrMissingColumn indicates a headered CSV lacks a required column.
	ErrMissingColumn = errors.New("required column missing")

	// ErrBadEdge indicates an interaction line does not hold exactly two identifiers.
	ErrBadEdge = errors.New("malformed interaction line")

	// ErrNoFile indicates a manifest names no path for a required input.
	ErrNoFile = errors.New("input file not named in manifest")
)
