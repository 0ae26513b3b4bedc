// Package repository provides access to stored match results.
package repository

import (
	"context"

	"github.com/okian/footrank/internal/domain/model"
)

// Source supplies raw match rows for the ranking pipeline.
type Source interface {
	// Matches returns every recorded match with its season, league and
	// country metadata. Missing metadata fields come back as empty strings.
	Matches(ctx context.Context) ([]model.Match, error)
}
