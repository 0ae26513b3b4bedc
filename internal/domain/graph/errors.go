package graph

import "errors"

// Sentinel kinds for graph errors.
var (
	ErrUnknownPolicy = errors.New("unknown draw policy")
)
