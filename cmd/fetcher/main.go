package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/matchday/external/apifootball"
	"github.com/riskibarqy/matchday/internal/config"
	"github.com/riskibarqy/matchday/internal/matchfile"
	"github.com/riskibarqy/matchday/internal/platform/logging"
	"github.com/riskibarqy/matchday/internal/platform/resilience"
)

// fetcher downloads fixture and player statistics for one or more league
// rounds and writes them as match JSON files for the loader to pick up.
func main() {
	var (
		rounds  = flag.String("rounds", "", "comma-separated round names, e.g. 'Regular Season - 1,Regular Season - 2'")
		outDir  = flag.String("out", "", "output directory (defaults to MATCH_DATA_DIR)")
		workers = flag.Int("workers", 3, "concurrent round fetches")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	if !cfg.APIFootballEnabled {
		logger.Error("api-football is disabled, set APIFOOTBALL_ENABLED=true and APIFOOTBALL_TOKEN")
		os.Exit(1)
	}

	roundNames := splitRounds(*rounds)
	if len(roundNames) == 0 {
		logger.Error("no rounds given, pass -rounds")
		os.Exit(1)
	}

	dir := cfg.MatchDataDir
	if *outDir != "" {
		dir = *outDir
	}

	client := apifootball.NewClient(apifootball.ClientConfig{
		BaseURL:    cfg.APIFootballBaseURL,
		Token:      cfg.APIFootballToken,
		Timeout:    cfg.APIFootballTimeout,
		MaxRetries: cfg.APIFootballMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.APIFootballCircuitEnabled,
			FailureThreshold: cfg.APIFootballCircuitFailureCount,
			OpenTimeout:      cfg.APIFootballCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.APIFootballCircuitHalfOpenMaxReq,
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	p := pool.NewWithResults[[]matchfile.Record]().WithContext(ctx).WithMaxGoroutines(max(*workers, 1))
	for _, round := range roundNames {
		p.Go(func(ctx context.Context) ([]matchfile.Record, error) {
			records, err := client.FetchRoundRecords(ctx, cfg.APIFootballLeagueID, cfg.APIFootballSeason, round)
			if err != nil {
				logger.Error("fetch round failed", "round", round, "error", err)
				return nil, err
			}
			logger.Info("fetched round", "round", round, "matches", len(records))
			return records, nil
		})
	}

	results, err := p.Wait()
	if err != nil {
		os.Exit(1)
	}

	var records []matchfile.Record
	for _, batch := range results {
		records = append(records, batch...)
	}

	files, err := client.SaveRecords(dir, records)
	if err != nil {
		logger.Error("save records", "dir", dir, "error", err)
		os.Exit(1)
	}

	logger.Info("fetch finished", "dir", dir, "matches", len(records), "files", len(files))
}

func splitRounds(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
