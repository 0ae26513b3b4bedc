package csvio

import "errors"

// Sentinel kinds for CSV artifact errors.
var (
	ErrMissingSource = errors.New("input file not found")
	ErrReadSource    = errors.New("read input file")
	ErrBadHeader     = errors.New("input file missing required columns")
	ErrWriteArtifact = errors.New("write output file")
)
