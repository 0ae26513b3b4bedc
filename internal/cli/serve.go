package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/okian/footrank/internal/adapters/csvio"
	"github.com/okian/footrank/internal/adapters/http/api"
	service "github.com/okian/footrank/internal/app"
	"github.com/okian/footrank/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the rankings dashboard and read-only API",
	Long: "serve computes the rankings once from the match data and serves them\n" +
		"as an immutable snapshot. Nothing re-triggers computation at runtime.",
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("input", "", "matches CSV path (overrides config)")
	serveCmd.Flags().String("addr", "", "listen address (overrides config)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	log := logger.Get()

	input := cfg.MatchesCSV
	if v, _ := cmd.Flags().GetString("input"); v != "" {
		input = v
	}
	addr := cfg.Addr
	if v, _ := cmd.Flags().GetString("addr"); v != "" {
		addr = v
	}

	matches, err := csvio.ReadMatches(input)
	if err != nil {
		return fmt.Errorf("reading matches: %w", err)
	}

	svc, err := newService()
	if err != nil {
		return err
	}

	entries, err := svc.GlobalRanking(ctx, matches)
	if err != nil {
		return fmt.Errorf("global ranking: %w", err)
	}
	rows, err := svc.SeasonRankings(ctx, matches)
	if err != nil {
		return fmt.Errorf("season rankings: %w", err)
	}

	snap := service.NewSnapshot(entries, rows)

	mux := http.NewServeMux()
	api.NewServer(snap, api.WithDefaultLimit(cfg.TopN)).Register(ctx, mux)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "starting HTTP server",
			logger.String("addr", addr),
			logger.Int("teams", len(entries)),
			logger.Int("season_rows", len(rows)),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	log.Info(ctx, "shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	log.Info(ctx, "server stopped")
	return nil
}
