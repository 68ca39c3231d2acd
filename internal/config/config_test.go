package config

import (
	"testing"
	"time"

	"github.com/riskibarqy/matchday/internal/domain/matchstats"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected HTTPAddr: %q", cfg.HTTPAddr)
	}
	if cfg.OnDuplicate != matchstats.PolicySkip {
		t.Fatalf("unexpected default duplicate policy: %q", cfg.OnDuplicate)
	}
	if cfg.CacheTTL != 5*time.Minute {
		t.Fatalf("unexpected CacheTTL: %s", cfg.CacheTTL)
	}
	if cfg.ReportWorkers != 4 {
		t.Fatalf("unexpected ReportWorkers: %d", cfg.ReportWorkers)
	}
}

func TestLoad_OnDuplicateValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("ON_DUPLICATE", "upsert")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid ON_DUPLICATE")
	}
}

func TestLoad_OnDuplicateParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("ON_DUPLICATE", "REPLACE")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.OnDuplicate != matchstats.PolicyReplace {
		t.Fatalf("unexpected duplicate policy: %q", cfg.OnDuplicate)
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_APIFootballRequiresTokenWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APIFOOTBALL_ENABLED", "true")
	t.Setenv("APIFOOTBALL_TOKEN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when APIFOOTBALL_ENABLED=true without APIFOOTBALL_TOKEN")
	}
}

func TestLoad_APIFootballConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APIFOOTBALL_ENABLED", "true")
	t.Setenv("APIFOOTBALL_TOKEN", "token-123")
	t.Setenv("APIFOOTBALL_LEAGUE_ID", "39")
	t.Setenv("APIFOOTBALL_SEASON", "2023")
	t.Setenv("APIFOOTBALL_TIMEOUT", "7s")
	t.Setenv("APIFOOTBALL_MAX_RETRIES", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.APIFootballEnabled || cfg.APIFootballToken != "token-123" {
		t.Fatalf("unexpected provider config: %+v", cfg)
	}
	if cfg.APIFootballLeagueID != 39 || cfg.APIFootballSeason != 2023 {
		t.Fatalf("unexpected league/season: %d/%d", cfg.APIFootballLeagueID, cfg.APIFootballSeason)
	}
	if cfg.APIFootballTimeout != 7*time.Second || cfg.APIFootballMaxRetries != 5 {
		t.Fatalf("unexpected timeout/retries: %s/%d", cfg.APIFootballTimeout, cfg.APIFootballMaxRetries)
	}
}

func TestLoad_LogLevelParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LogLevel.String() != "warn" {
		t.Fatalf("unexpected LogLevel: %s", cfg.LogLevel.String())
	}
}
