package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/matchday/internal/domain/match"
	"github.com/riskibarqy/matchday/internal/domain/matchstats"
	"github.com/riskibarqy/matchday/internal/domain/team"
	"github.com/riskibarqy/matchday/internal/platform/cache"
	"github.com/riskibarqy/matchday/internal/platform/logging"
)

const (
	refreshStatusSuccess = "success"
	refreshStatusFailed  = "failed"

	defaultRefreshWorkers = 4
	maxRefreshWorkers     = 32
)

// MatchSheet is one match with its joined statistic lines.
type MatchSheet struct {
	Match match.Match
	Lines []matchstats.SheetLine
}

type RefreshInput struct {
	Season     string
	MaxWorkers int
}

type RefreshResult struct {
	TeamCount    int                 `json:"team_count"`
	SuccessCount int                 `json:"success_count"`
	FailedCount  int                 `json:"failed_count"`
	WorkerCount  int                 `json:"worker_count"`
	Tasks        []RefreshTaskResult `json:"tasks"`
}

type RefreshTaskResult struct {
	TeamID     int64  `json:"team_id"`
	TeamName   string `json:"team_name"`
	Status     string `json:"status"`
	Players    int    `json:"players"`
	DurationMs int64  `json:"duration_ms"`
	Message    string `json:"message,omitempty"`
}

// ReportService serves the read side: match sheets, per-team season
// totals, and a bulk cache refresh for the latter.
type ReportService struct {
	teamRepo  team.Repository
	matchRepo match.Repository
	statsRepo matchstats.Repository
	store     *cache.Store
	logger    *logging.Logger
}

func NewReportService(teamRepo team.Repository, matchRepo match.Repository, statsRepo matchstats.Repository, store *cache.Store, logger *logging.Logger) *ReportService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ReportService{
		teamRepo:  teamRepo,
		matchRepo: matchRepo,
		statsRepo: statsRepo,
		store:     store,
		logger:    logger,
	}
}

func (s *ReportService) Teams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.Teams")
	defer span.End()

	items, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return items, nil
}

// Matches lists match rows, optionally narrowed to one team.
func (s *ReportService) Matches(ctx context.Context, teamID int64) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.Matches")
	defer span.End()

	if teamID > 0 {
		items, err := s.matchRepo.ListByTeam(ctx, teamID)
		if err != nil {
			return nil, fmt.Errorf("list matches team=%d: %w", teamID, err)
		}
		return items, nil
	}

	items, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	return items, nil
}

func (s *ReportService) MatchSheet(ctx context.Context, matchID int64) (MatchSheet, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.MatchSheet")
	defer span.End()

	if matchID <= 0 {
		return MatchSheet{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	m, ok, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return MatchSheet{}, fmt.Errorf("get match %d: %w", matchID, err)
	}
	if !ok {
		return MatchSheet{}, fmt.Errorf("%w: match %d", ErrNotFound, matchID)
	}

	lines, err := s.statsRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return MatchSheet{}, fmt.Errorf("list match sheet %d: %w", matchID, err)
	}

	return MatchSheet{Match: m, Lines: lines}, nil
}

// SeasonTotals aggregates one team's player statistics, cached per
// (team, season) when a store is configured. An empty season spans all.
func (s *ReportService) SeasonTotals(ctx context.Context, teamID int64, season string) ([]matchstats.SeasonTotals, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.SeasonTotals")
	defer span.End()

	if teamID <= 0 {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if _, ok, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		return nil, fmt.Errorf("get team %d: %w", teamID, err)
	} else if !ok {
		return nil, fmt.Errorf("%w: team %d", ErrNotFound, teamID)
	}

	if s.store == nil {
		return s.statsRepo.SeasonTotalsByTeam(ctx, teamID, season)
	}

	key := seasonTotalsCacheKey(teamID, season)
	value, err := s.store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return s.statsRepo.SeasonTotalsByTeam(ctx, teamID, season)
	})
	if err != nil {
		return nil, fmt.Errorf("season totals team=%d season=%q: %w", teamID, season, err)
	}

	totals, ok := value.([]matchstats.SeasonTotals)
	if !ok {
		return nil, fmt.Errorf("season totals cache holds %T for key %s", value, key)
	}

	return totals, nil
}

// RefreshSeasonReports recomputes season totals for every team on a
// worker pool and primes the cache with the results.
func (s *ReportService) RefreshSeasonReports(ctx context.Context, input RefreshInput) (RefreshResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.RefreshSeasonReports")
	defer span.End()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return RefreshResult{}, fmt.Errorf("list teams: %w", err)
	}

	workerCount := normalizeRefreshWorkerCount(input.MaxWorkers, len(teams))
	result := RefreshResult{
		TeamCount:   len(teams),
		WorkerCount: workerCount,
		Tasks:       make([]RefreshTaskResult, 0, len(teams)),
	}
	if len(teams) == 0 {
		return result, nil
	}

	results := make(chan RefreshTaskResult, len(teams))

	var successCount atomic.Int32
	var failedCount atomic.Int32

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return RefreshResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, item := range teams {
		item := item
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := RefreshTaskResult{
				TeamID:   item.ID,
				TeamName: item.Name,
			}

			totals, err := s.statsRepo.SeasonTotalsByTeam(ctx, item.ID, input.Season)
			if err != nil {
				row.Status = refreshStatusFailed
				row.Message = err.Error()
				failedCount.Add(1)
			} else {
				if s.store != nil {
					s.store.Set(ctx, seasonTotalsCacheKey(item.ID, input.Season), totals)
				}
				row.Status = refreshStatusSuccess
				row.Players = len(totals)
				successCount.Add(1)
			}
			row.DurationMs = time.Since(start).Milliseconds()

			results <- row
		}); err != nil {
			workers.Done()
			return RefreshResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		result.Tasks = append(result.Tasks, row)
	}
	sort.SliceStable(result.Tasks, func(i, j int) bool {
		return result.Tasks[i].TeamID < result.Tasks[j].TeamID
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())

	return result, nil
}

// RenderMatchSheet formats a sheet as fixed-width text for terminal and
// log output.
func (s *ReportService) RenderMatchSheet(ctx context.Context, matchID int64) (string, error) {
	sheet, err := s.MatchSheet(ctx, matchID)
	if err != nil {
		return "", err
	}

	homeName, awayName := s.sheetTeamNames(ctx, sheet)

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	fmt.Fprintf(buf, "%s vs %s\n", homeName, awayName)
	fmt.Fprintf(buf, "%s  %s  %s\n", sheet.Match.MatchDate.Format("2006-01-02"), sheet.Match.Competition, sheet.Match.Season)
	fmt.Fprintf(buf, "%-24s %-16s %-3s %3s %3s %3s %6s %6s\n", "PLAYER", "TEAM", "POS", "MIN", "G", "A", "PASS%", "RATING")
	for _, line := range sheet.Lines {
		fmt.Fprintf(buf, "%-24s %-16s %-3s %3d %3d %3d %6.1f %6.2f\n",
			line.PlayerName,
			line.TeamName,
			line.Position,
			line.MinutesPlayed,
			line.Goals,
			line.Assists,
			line.PassAccuracy,
			line.Rating,
		)
	}

	return buf.String(), nil
}

func (s *ReportService) sheetTeamNames(ctx context.Context, sheet MatchSheet) (string, string) {
	name := func(teamID int64) string {
		item, ok, err := s.teamRepo.GetByID(ctx, teamID)
		if err != nil || !ok {
			return fmt.Sprintf("team %d", teamID)
		}
		return item.Name
	}
	return name(sheet.Match.HomeTeamID), name(sheet.Match.AwayTeamID)
}

func seasonTotalsCacheKey(teamID int64, season string) string {
	return fmt.Sprintf("season-totals:%d:%s", teamID, season)
}

func normalizeRefreshWorkerCount(requested, taskCount int) int {
	count := requested
	if count <= 0 {
		count = defaultRefreshWorkers
	}
	if count > maxRefreshWorkers {
		count = maxRefreshWorkers
	}
	if taskCount > 0 && count > taskCount {
		count = taskCount
	}
	if count < 1 {
		count = 1
	}
	return count
}
