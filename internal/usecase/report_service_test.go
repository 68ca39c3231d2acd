package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/matchday/internal/domain/matchstats"
	"github.com/riskibarqy/matchday/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/matchday/internal/matchfile"
	"github.com/riskibarqy/matchday/internal/platform/cache"
	"github.com/riskibarqy/matchday/internal/platform/logging"
)

func newReportFixture(t *testing.T, store *cache.Store) (*ReportService, *LoaderService, *memory.MatchStatsRepository) {
	t.Helper()

	teams := memory.NewTeamRepository()
	players := memory.NewPlayerRepository()
	stats := memory.NewMatchStatsRepository(teams, players)
	resolver := NewResolverService(teams, players, logging.NewNop())
	loader := NewLoaderService(resolver, stats, matchstats.PolicySkip, logging.NewNop())
	report := NewReportService(teams, stats, stats, store, logging.NewNop())

	return report, loader, stats
}

func loadReportRecord(t *testing.T, loader *LoaderService, record matchfile.Record) int64 {
	t.Helper()
	matchID, err := loader.LoadRecord(context.Background(), record)
	if err != nil {
		t.Fatalf("LoadRecord: %v", err)
	}
	return matchID
}

func reportRecord(season string, homeGoals int) matchfile.Record {
	return matchfile.Record{
		HomeTeam:    "Arsenal",
		AwayTeam:    "Chelsea",
		MatchDate:   "2024-03-09",
		Competition: "Premier League",
		Season:      season,
		HomePlayers: []matchfile.PlayerStat{
			{
				Name:           "John Smith",
				Position:       "FW",
				Minutes:        matchfile.FlexInt{Value: 90},
				Goals:          matchfile.FlexInt{Value: homeGoals},
				Passes:         matchfile.FlexInt{Value: 40},
				PassesComplete: matchfile.FlexInt{Value: 30},
				Rating:         matchfile.FlexFloat{Value: 8.0},
			},
		},
		AwayPlayers: []matchfile.PlayerStat{
			{
				Name:    "Dan Cole",
				Minutes: matchfile.FlexInt{Value: 90},
				Rating:  matchfile.FlexFloat{Value: 6.5},
			},
		},
	}
}

func TestMatchSheetJoinsNames(t *testing.T) {
	ctx := context.Background()
	report, loader, _ := newReportFixture(t, nil)
	matchID := loadReportRecord(t, loader, reportRecord("2023/24", 2))

	sheet, err := report.MatchSheet(ctx, matchID)
	if err != nil {
		t.Fatalf("MatchSheet: %v", err)
	}
	if len(sheet.Lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(sheet.Lines))
	}
	names := make(map[string]string)
	for _, line := range sheet.Lines {
		names[line.PlayerName] = line.TeamName
	}
	if names["John Smith"] != "Arsenal" || names["Dan Cole"] != "Chelsea" {
		t.Fatalf("unexpected name join: %v", names)
	}
}

func TestMatchSheetNotFound(t *testing.T) {
	report, _, _ := newReportFixture(t, nil)
	if _, err := report.MatchSheet(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestSeasonTotalsAggregatesAcrossMatches(t *testing.T) {
	ctx := context.Background()
	report, loader, _ := newReportFixture(t, nil)
	loadReportRecord(t, loader, reportRecord("2023/24", 2))
	loadReportRecord(t, loader, reportRecord("2023/24", 1))
	loadReportRecord(t, loader, reportRecord("2024/25", 5))

	teams, err := report.Teams(ctx)
	if err != nil {
		t.Fatalf("Teams: %v", err)
	}
	var arsenalID int64
	for _, item := range teams {
		if item.Name == "Arsenal" {
			arsenalID = item.ID
		}
	}
	if arsenalID == 0 {
		t.Fatalf("Arsenal not found in %v", teams)
	}

	totals, err := report.SeasonTotals(ctx, arsenalID, "2023/24")
	if err != nil {
		t.Fatalf("SeasonTotals: %v", err)
	}
	if len(totals) != 1 {
		t.Fatalf("got %d players, want 1", len(totals))
	}
	smith := totals[0]
	if smith.Appearances != 2 || smith.Goals != 3 || smith.MinutesPlayed != 180 {
		t.Fatalf("unexpected totals: %+v", smith)
	}
	if smith.AvgRating != 8.0 {
		t.Fatalf("AvgRating = %v, want 8", smith.AvgRating)
	}

	// Empty season spans everything, picking up the 2024/25 hat-trick.
	all, err := report.SeasonTotals(ctx, arsenalID, "")
	if err != nil {
		t.Fatalf("SeasonTotals all: %v", err)
	}
	if len(all) != 1 || all[0].Goals != 8 {
		t.Fatalf("all-season totals unexpected: %+v", all)
	}
}

func TestSeasonTotalsServedFromCache(t *testing.T) {
	ctx := context.Background()
	store := cache.NewStore(time.Minute)
	report, loader, stats := newReportFixture(t, store)
	loadReportRecord(t, loader, reportRecord("2023/24", 2))

	first, err := report.SeasonTotals(ctx, 1, "2023/24")
	if err != nil {
		t.Fatalf("first SeasonTotals: %v", err)
	}

	// New rows behind a warm cache stay invisible until the entry expires
	// or a refresh overwrites it.
	loadReportRecord(t, loader, reportRecord("2023/24", 4))
	second, err := report.SeasonTotals(ctx, 1, "2023/24")
	if err != nil {
		t.Fatalf("second SeasonTotals: %v", err)
	}
	if second[0].Goals != first[0].Goals {
		t.Fatalf("cached totals changed: %d vs %d", second[0].Goals, first[0].Goals)
	}

	if _, err := report.RefreshSeasonReports(ctx, RefreshInput{Season: "2023/24"}); err != nil {
		t.Fatalf("RefreshSeasonReports: %v", err)
	}
	third, err := report.SeasonTotals(ctx, 1, "2023/24")
	if err != nil {
		t.Fatalf("third SeasonTotals: %v", err)
	}
	if third[0].Goals != 6 {
		t.Fatalf("refreshed totals goals = %d, want 6", third[0].Goals)
	}
	_ = stats
}

func TestRefreshSeasonReports(t *testing.T) {
	ctx := context.Background()
	store := cache.NewStore(time.Minute)
	report, loader, _ := newReportFixture(t, store)
	loadReportRecord(t, loader, reportRecord("2023/24", 2))

	result, err := report.RefreshSeasonReports(ctx, RefreshInput{Season: "2023/24", MaxWorkers: 2})
	if err != nil {
		t.Fatalf("RefreshSeasonReports: %v", err)
	}
	if result.TeamCount != 2 || result.SuccessCount != 2 || result.FailedCount != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if len(result.Tasks) != 2 {
		t.Fatalf("got %d tasks, want 2", len(result.Tasks))
	}
	for i := 1; i < len(result.Tasks); i++ {
		if result.Tasks[i-1].TeamID > result.Tasks[i].TeamID {
			t.Fatalf("tasks not sorted by team id: %+v", result.Tasks)
		}
	}
}

func TestRenderMatchSheet(t *testing.T) {
	ctx := context.Background()
	report, loader, _ := newReportFixture(t, nil)
	matchID := loadReportRecord(t, loader, reportRecord("2023/24", 2))

	text, err := report.RenderMatchSheet(ctx, matchID)
	if err != nil {
		t.Fatalf("RenderMatchSheet: %v", err)
	}
	for _, want := range []string{"Arsenal vs Chelsea", "Premier League", "John Smith", "75.0"} {
		if !strings.Contains(text, want) {
			t.Fatalf("rendered sheet missing %q:\n%s", want, text)
		}
	}
}
