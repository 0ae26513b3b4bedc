// Package service wires the ranking pipeline together: normalization,
// graph building, ranking, and the per-season worker pool.
package service

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	jobqueue "github.com/okian/footrank/internal/adapters/mq/queue"
	workerpool "github.com/okian/footrank/internal/adapters/mq/worker"
	"github.com/okian/footrank/internal/domain/graph"
	"github.com/okian/footrank/internal/domain/model"
	"github.com/okian/footrank/internal/domain/normalize"
	"github.com/okian/footrank/internal/domain/rank"
	"github.com/okian/footrank/internal/domain/types"
	"github.com/okian/footrank/pkg/logger"
	"github.com/okian/footrank/pkg/metrics"
)

// Service computes influence rankings over match data.
type Service struct {
	// Configuration
	workerCount      int
	queueSize        int
	damping          float64
	tolerance        float64
	maxIterations    int
	globalDrawPolicy graph.DrawPolicy
	seasonDrawPolicy graph.DrawPolicy

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkerCount sets the number of season-ranking workers.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueSize sets the capacity of the season job queue.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithDamping sets the ranking damping factor.
func WithDamping(d float64) Option {
	return func(s *Service) {
		if d > 0 && d < 1 {
			s.damping = d
		}
	}
}

// WithTolerance sets the ranking convergence tolerance.
func WithTolerance(tol float64) Option {
	return func(s *Service) {
		if tol > 0 {
			s.tolerance = tol
		}
	}
}

// WithMaxIterations caps the ranking iteration budget.
func WithMaxIterations(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxIterations = n
		}
	}
}

// WithGlobalDrawPolicy sets how draws contribute to the global graph.
func WithGlobalDrawPolicy(p graph.DrawPolicy) Option {
	return func(s *Service) {
		s.globalDrawPolicy = p
	}
}

// WithSeasonDrawPolicy sets how draws contribute to per-season graphs.
func WithSeasonDrawPolicy(p graph.DrawPolicy) Option {
	return func(s *Service) {
		s.seasonDrawPolicy = p
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount:      runtime.NumCPU(),
		queueSize:        1024,
		damping:          0.85,
		tolerance:        1e-9,
		maxIterations:    100,
		globalDrawPolicy: graph.DrawBidirectionalHalfWeight,
		seasonDrawPolicy: graph.DrawIgnored,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logger.Get().Named("pipeline")
	}

	return s
}

func (s *Service) newRanker() *rank.Ranker {
	return rank.New(
		rank.WithDamping(s.damping),
		rank.WithTolerance(s.tolerance),
		rank.WithMaxIterations(s.maxIterations),
	)
}

// GlobalRanking ranks every team over the full dataset. Draws contribute
// according to the global draw policy. An input with no valid matches yields
// an empty ranking, not an error.
func (s *Service) GlobalRanking(ctx context.Context, matches []model.Match) ([]types.Entry, error) {
	start := time.Now()
	defer func() {
		metrics.RecordPipelineDuration(float64(time.Since(start).Milliseconds()))
	}()

	cleaned := normalize.Clean(matches)
	metrics.RecordMatchesLoaded(len(cleaned.Matches))
	s.logger.Info(ctx, "building global graph",
		logger.Int("matches", len(cleaned.Matches)),
		logger.Int("dropped", cleaned.Dropped),
	)

	g := graph.Build(cleaned.Matches, graph.WithDrawPolicy(s.globalDrawPolicy))
	metrics.UpdateGraphSize(g.NodeCount(), g.EdgeCount())

	res, err := s.newRanker().Rank(ctx, g)
	if err != nil {
		if errors.Is(err, rank.ErrEmptyGraph) {
			s.logger.Warn(ctx, "no valid matches, global ranking is empty")
			return []types.Entry{}, nil
		}
		return nil, fmt.Errorf("ranking global graph: %w", err)
	}
	if !res.Converged {
		s.logger.Warn(ctx, "global ranking did not converge",
			logger.Int("iterations", res.Iterations),
		)
	}

	return rank.Entries(res.Scores), nil
}

// SeasonRankings ranks every season independently using the worker pool.
// Draws contribute according to the season draw policy. Seasons whose graph
// is empty produce no rows. Rows come back sorted by season ascending, then
// score descending, then team name.
func (s *Service) SeasonRankings(ctx context.Context, matches []model.Match) ([]types.SeasonRow, error) {
	start := time.Now()
	defer func() {
		metrics.RecordPipelineDuration(float64(time.Since(start).Milliseconds()))
	}()

	cleaned := normalize.Clean(matches)

	partitions := partitionBySeason(cleaned.Matches)
	seasons := make([]string, 0, len(partitions))
	for season := range partitions {
		seasons = append(seasons, season)
	}
	sort.Strings(seasons)

	s.logger.Info(ctx, "ranking seasons",
		logger.Int("seasons", len(seasons)),
		logger.Int("workers", s.workerCount),
	)

	proc := &seasonProcessor{
		ranker: s.newRanker(),
		policy: s.seasonDrawPolicy,
		logger: s.logger,
	}

	q := jobqueue.NewInMemoryQueue(
		jobqueue.WithCapacity(s.queueSize),
		jobqueue.WithBufferSize(s.queueSize),
	)
	pool := workerpool.NewPool(s.workerCount, q, proc)
	pool.Start(ctx)

	for _, season := range seasons {
		if !q.Enqueue(ctx, jobqueue.Job{Season: season, Matches: partitions[season]}) {
			_ = q.Close()
			pool.Stop()
			return nil, fmt.Errorf("%w: season %s", ErrEnqueueSeason, season)
		}
	}
	if err := q.Close(); err != nil {
		return nil, fmt.Errorf("closing season queue: %w", err)
	}
	if err := pool.Wait(ctx); err != nil {
		return nil, err
	}

	rows := proc.rows()
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Season != rows[j].Season {
			return rows[i].Season < rows[j].Season
		}
		if rows[i].Score != rows[j].Score {
			return rows[i].Score > rows[j].Score
		}
		return rows[i].Team < rows[j].Team
	})
	return rows, nil
}

// partitionBySeason groups matches by season, preserving input order inside
// each partition. Matches without a season value are excluded.
func partitionBySeason(matches []model.Match) map[string][]model.Match {
	out := make(map[string][]model.Match)
	for _, m := range matches {
		if m.Season == "" {
			continue
		}
		out[m.Season] = append(out[m.Season], m)
	}
	return out
}

// seasonProcessor ranks one season partition per job and collects rows.
type seasonProcessor struct {
	ranker *rank.Ranker
	policy graph.DrawPolicy
	logger logger.Logger

	mu        sync.Mutex
	collected []types.SeasonRow
}

// Process implements worker.Processor.
func (p *seasonProcessor) Process(ctx context.Context, job jobqueue.Job) error {
	g := graph.Build(job.Matches, graph.WithDrawPolicy(p.policy))
	if g.Empty() {
		metrics.RecordSeasonEmpty()
		p.logger.Debug(ctx, "season has no rankable matches",
			logger.String("season", job.Season),
		)
		return nil
	}

	res, err := p.ranker.Rank(ctx, g)
	if err != nil {
		if errors.Is(err, rank.ErrEmptyGraph) {
			metrics.RecordSeasonEmpty()
			return nil
		}
		return fmt.Errorf("ranking season %s: %w", job.Season, err)
	}
	if !res.Converged {
		p.logger.Warn(ctx, "season ranking did not converge",
			logger.String("season", job.Season),
			logger.Int("iterations", res.Iterations),
		)
	}

	rows := make([]types.SeasonRow, 0, len(res.Scores))
	for team, score := range res.Scores {
		league, country := resolveMeta(job.Matches, team)
		rows = append(rows, types.SeasonRow{
			Season:  job.Season,
			Team:    team,
			Score:   score,
			League:  league,
			Country: country,
		})
	}

	p.mu.Lock()
	p.collected = append(p.collected, rows...)
	p.mu.Unlock()

	metrics.RecordSeasonRanked()
	return nil
}

func (p *seasonProcessor) rows() []types.SeasonRow {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]types.SeasonRow, len(p.collected))
	copy(out, p.collected)
	return out
}

// resolveMeta picks the first non-empty league and country seen for a team
// within the season, scanning home appearances before away ones. The choice
// is best-effort: a team spanning leagues gets whichever appears first.
func resolveMeta(matches []model.Match, team string) (league, country string) {
	pick := func(appears func(model.Match) bool) {
		for _, m := range matches {
			if !appears(m) {
				continue
			}
			if league == "" && m.League != "" {
				league = m.League
			}
			if country == "" && m.Country != "" {
				country = m.Country
			}
			if league != "" && country != "" {
				return
			}
		}
	}
	pick(func(m model.Match) bool { return m.HomeTeam == team })
	if league == "" || country == "" {
		pick(func(m model.Match) bool { return m.AwayTeam == team })
	}
	return league, country
}
