package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/riskibarqy/matchday/internal/domain/match"
	"github.com/riskibarqy/matchday/internal/domain/matchstats"
)

type lineKey struct {
	matchID  int64
	playerID int64
}

// MatchStatsRepository keeps matches and their statistic lines together,
// mirroring the transactional coupling of the postgres implementation. It
// satisfies both match.Repository and matchstats.Repository.
type MatchStatsRepository struct {
	mu          sync.RWMutex
	nextMatchID int64
	nextLineID  int64
	matches     map[int64]match.Match
	lines       map[lineKey]matchstats.Line

	teams   *TeamRepository
	players *PlayerRepository
}

func NewMatchStatsRepository(teams *TeamRepository, players *PlayerRepository) *MatchStatsRepository {
	return &MatchStatsRepository{
		nextMatchID: 1,
		nextLineID:  1,
		matches:     make(map[int64]match.Match),
		lines:       make(map[lineKey]matchstats.Line),
		teams:       teams,
		players:     players,
	}
}

func (r *MatchStatsRepository) InsertMatchWithLines(_ context.Context, m match.Match, lines []matchstats.Line, policy matchstats.DuplicatePolicy) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matchID := r.nextMatchID

	staged := make(map[lineKey]matchstats.Line, len(lines))
	for _, line := range lines {
		key := lineKey{matchID: matchID, playerID: line.PlayerID}
		_, exists := r.lines[key]
		if !exists {
			_, exists = staged[key]
		}
		if exists {
			switch policy {
			case matchstats.PolicySkip:
				continue
			case matchstats.PolicyReplace:
			default:
				// Nothing staged is visible, so the whole record rolls back.
				return 0, fmt.Errorf("insert stat line match_id=%d player_id=%d: %w", matchID, line.PlayerID, matchstats.ErrDuplicateLine)
			}
		}

		line.ID = r.nextLineID
		r.nextLineID++
		line.MatchID = matchID
		staged[key] = line
	}

	r.nextMatchID++
	m.ID = matchID
	r.matches[matchID] = m
	for key, line := range staged {
		r.lines[key] = line
	}

	return matchID, nil
}

func (r *MatchStatsRepository) GetByID(_ context.Context, matchID int64) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.matches[matchID]
	return m, ok, nil
}

func (r *MatchStatsRepository) ListByTeam(_ context.Context, teamID int64) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0)
	for _, m := range r.matches {
		if m.HomeTeamID == teamID || m.AwayTeamID == teamID {
			out = append(out, m)
		}
	}
	sortMatches(out)

	return out, nil
}

func (r *MatchStatsRepository) List(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.matches))
	for _, m := range r.matches {
		out = append(out, m)
	}
	sortMatches(out)

	return out, nil
}

func (r *MatchStatsRepository) ListByMatch(ctx context.Context, matchID int64) ([]matchstats.SheetLine, error) {
	r.mu.RLock()
	collected := make([]matchstats.Line, 0)
	for key, line := range r.lines {
		if key.matchID == matchID {
			collected = append(collected, line)
		}
	}
	r.mu.RUnlock()

	out := make([]matchstats.SheetLine, 0, len(collected))
	for _, line := range collected {
		sheet := matchstats.SheetLine{Line: line}
		if r.players != nil {
			if p, ok, _ := r.players.GetByID(ctx, line.PlayerID); ok {
				sheet.PlayerName = p.Name
			}
		}
		if r.teams != nil {
			if t, ok, _ := r.teams.GetByID(ctx, line.TeamID); ok {
				sheet.TeamName = t.Name
			}
		}
		out = append(out, sheet)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TeamID != out[j].TeamID {
			return out[i].TeamID < out[j].TeamID
		}
		if out[i].MinutesPlayed != out[j].MinutesPlayed {
			return out[i].MinutesPlayed > out[j].MinutesPlayed
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *MatchStatsRepository) SeasonTotalsByTeam(ctx context.Context, teamID int64, season string) ([]matchstats.SeasonTotals, error) {
	r.mu.RLock()
	totalsByPlayer := make(map[int64]matchstats.SeasonTotals)
	ratingSums := make(map[int64]float64)
	for _, line := range r.lines {
		if line.TeamID != teamID {
			continue
		}
		if season != "" {
			m, ok := r.matches[line.MatchID]
			if !ok || m.Season != season {
				continue
			}
		}

		totals := totalsByPlayer[line.PlayerID]
		totals.PlayerID = line.PlayerID
		totals.TeamID = teamID
		totals.Appearances++
		totals.MinutesPlayed += line.MinutesPlayed
		totals.Goals += line.Goals
		totals.Assists += line.Assists
		totals.ShotsTotal += line.ShotsTotal
		totals.ShotsOnTarget += line.ShotsOnTarget
		totals.PassesTotal += line.PassesTotal
		totals.PassesComplete += line.PassesComplete
		totals.TacklesTotal += line.TacklesTotal
		totals.Interceptions += line.Interceptions
		totals.YellowCards += line.YellowCards
		totals.RedCards += line.RedCards
		ratingSums[line.PlayerID] += line.Rating
		totalsByPlayer[line.PlayerID] = totals
	}
	r.mu.RUnlock()

	out := make([]matchstats.SeasonTotals, 0, len(totalsByPlayer))
	for playerID, totals := range totalsByPlayer {
		if totals.Appearances > 0 {
			totals.AvgRating = ratingSums[playerID] / float64(totals.Appearances)
		}
		if r.players != nil {
			if p, ok, _ := r.players.GetByID(ctx, playerID); ok {
				totals.PlayerName = p.Name
			}
		}
		out = append(out, totals)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Goals != out[j].Goals {
			return out[i].Goals > out[j].Goals
		}
		if out[i].MinutesPlayed != out[j].MinutesPlayed {
			return out[i].MinutesPlayed > out[j].MinutesPlayed
		}
		return out[i].PlayerName < out[j].PlayerName
	})

	return out, nil
}

func (r *MatchStatsRepository) CountByMatchAndPlayer(_ context.Context, matchID, playerID int64) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.lines[lineKey{matchID: matchID, playerID: playerID}]; ok {
		return 1, nil
	}
	return 0, nil
}

// LineCount reports the total number of statistic lines; used by tests.
func (r *MatchStatsRepository) LineCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.lines)
}

// MatchCount reports the total number of match rows; used by tests.
func (r *MatchStatsRepository) MatchCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.matches)
}

func sortMatches(items []match.Match) {
	sort.Slice(items, func(i, j int) bool {
		if !items[i].MatchDate.Equal(items[j].MatchDate) {
			return items[i].MatchDate.Before(items[j].MatchDate)
		}
		return items[i].ID < items[j].ID
	})
}
