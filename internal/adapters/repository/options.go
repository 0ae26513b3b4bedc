package repository

import "time"

// Connection pool defaults, tuned for a batch pipeline that opens few
// concurrent queries.
const (
	defaultMaxOpenConns    = 4
	defaultMaxIdleConns    = 2
	defaultConnMaxLifetime = 5 * time.Minute
)

// Option applies a configuration option to the Postgres source.
type Option func(*Postgres)

// WithMaxOpenConns sets the maximum number of open connections.
func WithMaxOpenConns(n int) Option {
	return func(p *Postgres) {
		if n > 0 {
			p.maxOpenConns = n
		}
	}
}

// WithMaxIdleConns sets the maximum number of idle connections.
func WithMaxIdleConns(n int) Option {
	return func(p *Postgres) {
		if n > 0 {
			p.maxIdleConns = n
		}
	}
}

// WithConnMaxLifetime sets how long a connection may be reused.
func WithConnMaxLifetime(d time.Duration) Option {
	return func(p *Postgres) {
		if d > 0 {
			p.connMaxLifetime = d
		}
	}
}
