package service

import "errors"

// Sentinel kinds for pipeline errors.
var (
	ErrEnqueueSeason = errors.New("enqueue season partition")
)
