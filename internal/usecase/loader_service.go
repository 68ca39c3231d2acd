package usecase

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/riskibarqy/matchday/internal/domain/match"
	"github.com/riskibarqy/matchday/internal/domain/matchstats"
	"github.com/riskibarqy/matchday/internal/matchfile"
	"github.com/riskibarqy/matchday/internal/platform/logging"
)

// LoadSummary reports one directory run. Parse issues are coercion
// failures inside records that still loaded; failures are records that did
// not load at all.
type LoadSummary struct {
	TotalFiles  int           `json:"total_files"`
	Loaded      int           `json:"loaded"`
	Failed      int           `json:"failed"`
	ParseIssues int           `json:"parse_issues"`
	Failures    []LoadFailure `json:"failures,omitempty"`
	Issues      []FileIssue   `json:"issues,omitempty"`
}

type LoadFailure struct {
	File    string `json:"file"`
	Message string `json:"message"`
}

type FileIssue struct {
	File   string `json:"file"`
	Player string `json:"player"`
	Field  string `json:"field"`
	Raw    string `json:"raw"`
}

// LoaderService converts parsed match records into persisted rows. Files
// are processed strictly one at a time; a record that fails rolls back on
// its own and never stops the batch.
type LoaderService struct {
	resolver  *ResolverService
	statsRepo matchstats.Repository
	policy    matchstats.DuplicatePolicy
	logger    *logging.Logger
}

func NewLoaderService(resolver *ResolverService, statsRepo matchstats.Repository, policy matchstats.DuplicatePolicy, logger *logging.Logger) *LoaderService {
	if logger == nil {
		logger = logging.Default()
	}
	if policy == "" {
		policy = matchstats.PolicySkip
	}
	return &LoaderService{
		resolver:  resolver,
		statsRepo: statsRepo,
		policy:    policy,
		logger:    logger,
	}
}

// WithPolicy returns a loader sharing this one's resolver and store but
// applying a different duplicate policy. Used by per-request overrides.
func (s *LoaderService) WithPolicy(policy matchstats.DuplicatePolicy) *LoaderService {
	if policy == "" || policy == s.policy {
		return s
	}
	clone := *s
	clone.policy = policy
	return &clone
}

// LoadDirectory loads every .json file under dir in sorted name order.
// A cancelled context stops before the next file, never mid-record.
func (s *LoaderService) LoadDirectory(ctx context.Context, dir string) (LoadSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LoaderService.LoadDirectory")
	defer span.End()

	files, err := matchfile.ListFiles(dir)
	if err != nil {
		return LoadSummary{}, fmt.Errorf("%w: %v", ErrDependencyUnavailable, err)
	}

	summary := LoadSummary{TotalFiles: len(files)}
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		matchID, issues, err := s.LoadFile(ctx, path)
		name := filepath.Base(path)
		for _, issue := range issues {
			summary.Issues = append(summary.Issues, FileIssue{
				File:   name,
				Player: issue.Player,
				Field:  issue.Field,
				Raw:    issue.Raw,
			})
		}
		summary.ParseIssues += len(issues)

		if err != nil {
			summary.Failed++
			summary.Failures = append(summary.Failures, LoadFailure{File: name, Message: err.Error()})
			s.logger.ErrorContext(ctx, "match record failed", "file", name, "error", err)
			continue
		}

		summary.Loaded++
		s.logger.InfoContext(ctx, "match record loaded", "file", name, "match_id", matchID, "parse_issues", len(issues))
	}

	return summary, nil
}

// LoadFile loads one source file and returns the new match id along with
// any coercion issues found while parsing.
func (s *LoaderService) LoadFile(ctx context.Context, path string) (int64, []matchfile.Issue, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LoaderService.LoadFile")
	defer span.End()

	record, issues, err := matchfile.ParseFile(path)
	if err != nil {
		return 0, nil, err
	}

	matchID, err := s.LoadRecord(ctx, record)
	if err != nil {
		return 0, issues, err
	}

	return matchID, issues, nil
}

// LoadRecord resolves the record's entities and persists it. Either team
// failing to resolve aborts the whole record before any match or
// statistic write.
func (s *LoaderService) LoadRecord(ctx context.Context, record matchfile.Record) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LoaderService.LoadRecord")
	defer span.End()

	homeTeamID, err := s.resolver.ResolveTeam(ctx, record.HomeTeam)
	if err != nil {
		return 0, fmt.Errorf("resolve home team: %w", err)
	}
	awayTeamID, err := s.resolver.ResolveTeam(ctx, record.AwayTeam)
	if err != nil {
		return 0, fmt.Errorf("resolve away team: %w", err)
	}

	lines := make([]matchstats.Line, 0, len(record.HomePlayers)+len(record.AwayPlayers))
	for _, stat := range record.HomePlayers {
		line, err := s.buildLine(ctx, stat, homeTeamID)
		if err != nil {
			return 0, err
		}
		lines = append(lines, line)
	}
	for _, stat := range record.AwayPlayers {
		line, err := s.buildLine(ctx, stat, awayTeamID)
		if err != nil {
			return 0, err
		}
		lines = append(lines, line)
	}

	m := match.Match{
		HomeTeamID:  homeTeamID,
		AwayTeamID:  awayTeamID,
		MatchDate:   record.Date(),
		Competition: record.Competition,
		Season:      record.Season,
	}

	matchID, err := s.statsRepo.InsertMatchWithLines(ctx, m, lines, s.policy)
	if err != nil {
		return 0, fmt.Errorf("persist match record: %w", err)
	}

	return matchID, nil
}

func (s *LoaderService) buildLine(ctx context.Context, stat matchfile.PlayerStat, teamID int64) (matchstats.Line, error) {
	playerID, err := s.resolver.ResolvePlayer(ctx, stat.Name, teamID)
	if err != nil {
		return matchstats.Line{}, fmt.Errorf("resolve player: %w", err)
	}

	return matchstats.Line{
		PlayerID:       playerID,
		TeamID:         teamID,
		Position:       stat.Position,
		MinutesPlayed:  stat.Minutes.Value,
		Goals:          stat.Goals.Value,
		Assists:        stat.Assists.Value,
		ShotsTotal:     stat.Shots.Value,
		ShotsOnTarget:  stat.ShotsOnTarget.Value,
		PassesTotal:    stat.Passes.Value,
		PassesComplete: stat.PassesComplete.Value,
		PassAccuracy:   matchstats.PassAccuracy(stat.PassesComplete.Value, stat.Passes.Value),
		TacklesTotal:   stat.Tackles.Value,
		TacklesWon:     stat.TacklesWon.Value,
		Interceptions:  stat.Interceptions.Value,
		FoulsCommitted: stat.FoulsCommitted.Value,
		FoulsDrawn:     stat.FoulsDrawn.Value,
		YellowCards:    stat.YellowCards.Value,
		RedCards:       stat.RedCards.Value,
		Rating:         stat.Rating.Value,
	}, nil
}
