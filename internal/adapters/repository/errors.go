package repository

import "errors"

// Sentinel kinds for match source errors.
var (
	ErrMissingDSN   = errors.New("database dsn is empty")
	ErrOpenDatabase = errors.New("open database")
	ErrQueryMatches = errors.New("query matches")
	ErrScanRow      = errors.New("scan match row")
)
