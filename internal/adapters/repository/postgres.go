package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/okian/footrank/internal/domain/model"
	"github.com/okian/footrank/pkg/logger"
)

// matchQuery joins matches with their league, country and team names.
// Metadata joins are LEFT JOINs so a match without league or team rows
// still surfaces with empty metadata instead of disappearing.
const matchQuery = `
SELECT
    m.season,
    l.name  AS league_name,
    c.name  AS country_name,
    th.team_long_name AS home_team,
    ta.team_long_name AS away_team,
    m.home_team_goal  AS home_score,
    m.away_team_goal  AS away_score
FROM match AS m
LEFT JOIN league  AS l  ON m.league_id = l.id
LEFT JOIN country AS c  ON l.country_id = c.id
LEFT JOIN team    AS th ON m.home_team_api_id = th.team_api_id
LEFT JOIN team    AS ta ON m.away_team_api_id = ta.team_api_id
WHERE m.season IS NOT NULL`

// Postgres reads match results from a PostgreSQL database.
type Postgres struct {
	db *sql.DB

	maxOpenConns    int
	maxIdleConns    int
	connMaxLifetime time.Duration
}

// OpenPostgres opens a connection pool against dsn and verifies it with a ping.
func OpenPostgres(ctx context.Context, dsn string, opts ...Option) (*Postgres, error) {
	if dsn == "" {
		return nil, ErrMissingDSN
	}

	p := &Postgres{
		maxOpenConns:    defaultMaxOpenConns,
		maxIdleConns:    defaultMaxIdleConns,
		connMaxLifetime: defaultConnMaxLifetime,
	}
	for _, opt := range opts {
		opt(p)
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenDatabase, err)
	}

	db.SetMaxOpenConns(p.maxOpenConns)
	db.SetMaxIdleConns(p.maxIdleConns)
	db.SetConnMaxLifetime(p.connMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %w", ErrOpenDatabase, err)
	}

	p.db = db
	return p, nil
}

// NewPostgresFromDB wraps an existing connection, used by tests.
func NewPostgresFromDB(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// Matches implements Source. NULL metadata columns are mapped to empty
// strings so downstream cleaning can treat database and CSV input alike.
func (p *Postgres) Matches(ctx context.Context) ([]model.Match, error) {
	rows, err := p.db.QueryContext(ctx, matchQuery)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQueryMatches, err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			logger.Get().Warn(ctx, "closing match rows", logger.Error(cerr))
		}
	}()

	var out []model.Match
	for rows.Next() {
		var (
			season, league, country sql.NullString
			home, away              sql.NullString
			homeScore, awayScore    sql.NullInt64
		)
		if err := rows.Scan(&season, &league, &country, &home, &away, &homeScore, &awayScore); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanRow, err)
		}
		out = append(out, model.Match{
			Season:    season.String,
			League:    league.String,
			Country:   country.String,
			HomeTeam:  home.String,
			AwayTeam:  away.String,
			HomeScore: int(homeScore.Int64),
			AwayScore: int(awayScore.Int64),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQueryMatches, err)
	}
	return out, nil
}

// Ping verifies the database connection is alive.
func (p *Postgres) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

// Close releases the connection pool.
func (p *Postgres) Close() error {
	if p.db == nil {
		return nil
	}
	return p.db.Close()
}
