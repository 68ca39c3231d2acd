package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/riskibarqy/matchday/internal/app"
	"github.com/riskibarqy/matchday/internal/config"
	"github.com/riskibarqy/matchday/internal/domain/matchstats"
	"github.com/riskibarqy/matchday/internal/platform/logging"
)

// loader walks a directory of match JSON files and persists every record it
// can parse. It exits non-zero when at least one file failed so cron jobs
// surface the problem.
func main() {
	var (
		dir   = flag.String("dir", "", "directory of match JSON files (defaults to MATCH_DATA_DIR)")
		onDup = flag.String("on-duplicate", "", "duplicate policy: skip, error or replace (defaults to ON_DUPLICATE)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	components, err := app.Build(cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		os.Exit(1)
	}
	defer func() { _ = components.Close() }()

	loader := components.Loader
	if *onDup != "" {
		policy, err := matchstats.ParseDuplicatePolicy(*onDup)
		if err != nil {
			logger.Error("invalid duplicate policy", "error", err)
			os.Exit(1)
		}
		loader = loader.WithPolicy(policy)
	}

	matchDir := cfg.MatchDataDir
	if *dir != "" {
		matchDir = *dir
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	summary, err := loader.LoadDirectory(ctx, matchDir)
	if err != nil {
		logger.Error("load directory", "dir", matchDir, "error", err)
		os.Exit(1)
	}

	for _, failure := range summary.Failures {
		logger.Warn("file failed", "file", failure.File, "reason", failure.Message)
	}
	logger.Info("load finished",
		"dir", matchDir,
		"total_files", summary.TotalFiles,
		"loaded", summary.Loaded,
		"failed", summary.Failed,
		"parse_issues", summary.ParseIssues,
	)

	if summary.Failed > 0 {
		os.Exit(1)
	}
}
