package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/matchday/internal/domain/match"
	"github.com/riskibarqy/matchday/internal/domain/matchstats"
	qb "github.com/riskibarqy/matchday/internal/platform/querybuilder"
)

const replaceLineSuffix = `ON CONFLICT (match_id, player_id)
DO UPDATE SET
    team_id = EXCLUDED.team_id,
    position = EXCLUDED.position,
    minutes_played = EXCLUDED.minutes_played,
    goals = EXCLUDED.goals,
    assists = EXCLUDED.assists,
    shots_total = EXCLUDED.shots_total,
    shots_on_target = EXCLUDED.shots_on_target,
    passes_total = EXCLUDED.passes_total,
    passes_completed = EXCLUDED.passes_completed,
    pass_accuracy = EXCLUDED.pass_accuracy,
    tackles_total = EXCLUDED.tackles_total,
    tackles_won = EXCLUDED.tackles_won,
    interceptions = EXCLUDED.interceptions,
    fouls_committed = EXCLUDED.fouls_committed,
    fouls_drawn = EXCLUDED.fouls_drawn,
    yellow_cards = EXCLUDED.yellow_cards,
    red_cards = EXCLUDED.red_cards,
    rating = EXCLUDED.rating`

type MatchStatsRepository struct {
	db *sqlx.DB
}

func NewMatchStatsRepository(db *sqlx.DB) *MatchStatsRepository {
	return &MatchStatsRepository{db: db}
}

// InsertMatchWithLines persists one loaded record atomically: the match
// row and every statistic line commit together or not at all.
func (r *MatchStatsRepository) InsertMatchWithLines(ctx context.Context, m match.Match, lines []matchstats.Line, policy matchstats.DuplicatePolicy) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx insert match: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	insertMatch := matchInsertModel{
		HomeTeamID:  m.HomeTeamID,
		AwayTeamID:  m.AwayTeamID,
		MatchDate:   m.MatchDate,
		Competition: m.Competition,
		Season:      m.Season,
	}
	query, args, err := qb.InsertModel("matches", insertMatch, "RETURNING id")
	if err != nil {
		return 0, fmt.Errorf("build insert match query: %w", err)
	}

	var matchID int64
	if err := tx.GetContext(ctx, &matchID, query, args...); err != nil {
		return 0, fmt.Errorf("insert match: %w", err)
	}

	suffix := ""
	switch policy {
	case matchstats.PolicySkip:
		suffix = "ON CONFLICT (match_id, player_id) DO NOTHING"
	case matchstats.PolicyReplace:
		suffix = replaceLineSuffix
	}

	for _, line := range lines {
		insertLine := matchStatLineInsertModel{
			MatchID:        matchID,
			PlayerID:       line.PlayerID,
			TeamID:         line.TeamID,
			Position:       line.Position,
			MinutesPlayed:  line.MinutesPlayed,
			Goals:          line.Goals,
			Assists:        line.Assists,
			ShotsTotal:     line.ShotsTotal,
			ShotsOnTarget:  line.ShotsOnTarget,
			PassesTotal:    line.PassesTotal,
			PassesComplete: line.PassesComplete,
			PassAccuracy:   line.PassAccuracy,
			TacklesTotal:   line.TacklesTotal,
			TacklesWon:     line.TacklesWon,
			Interceptions:  line.Interceptions,
			FoulsCommitted: line.FoulsCommitted,
			FoulsDrawn:     line.FoulsDrawn,
			YellowCards:    line.YellowCards,
			RedCards:       line.RedCards,
			Rating:         line.Rating,
		}

		lineQuery, lineArgs, err := qb.InsertModel("player_match_stats", insertLine, suffix)
		if err != nil {
			return 0, fmt.Errorf("build insert stat line query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, lineQuery, lineArgs...); err != nil {
			if isUniqueViolation(err) {
				return 0, fmt.Errorf("insert stat line match_id=%d player_id=%d: %w", matchID, line.PlayerID, matchstats.ErrDuplicateLine)
			}
			return 0, fmt.Errorf("insert stat line match_id=%d player_id=%d: %w", matchID, line.PlayerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit insert match tx: %w", err)
	}
	return matchID, nil
}

func (r *MatchStatsRepository) ListByMatch(ctx context.Context, matchID int64) ([]matchstats.SheetLine, error) {
	query, args, err := qb.Select(
		"pms.id",
		"pms.match_id",
		"pms.player_id",
		"pms.team_id",
		"pms.position",
		"pms.minutes_played",
		"pms.goals",
		"pms.assists",
		"pms.shots_total",
		"pms.shots_on_target",
		"pms.passes_total",
		"pms.passes_completed",
		"pms.pass_accuracy",
		"pms.tackles_total",
		"pms.tackles_won",
		"pms.interceptions",
		"pms.fouls_committed",
		"pms.fouls_drawn",
		"pms.yellow_cards",
		"pms.red_cards",
		"pms.rating",
		"p.name AS player_name",
		"t.name AS team_name",
	).From("player_match_stats pms JOIN players p ON p.id = pms.player_id JOIN teams t ON t.id = pms.team_id").
		Where(qb.Eq("pms.match_id", matchID)).
		OrderBy("pms.team_id", "pms.minutes_played DESC", "pms.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list stat lines by match query: %w", err)
	}

	var rows []sheetLineRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list stat lines by match: %w", err)
	}

	out := make([]matchstats.SheetLine, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchstats.SheetLine{
			Line: matchstats.Line{
				ID:             row.ID,
				MatchID:        row.MatchID,
				PlayerID:       row.PlayerID,
				TeamID:         row.TeamID,
				Position:       row.Position,
				MinutesPlayed:  row.MinutesPlayed,
				Goals:          row.Goals,
				Assists:        row.Assists,
				ShotsTotal:     row.ShotsTotal,
				ShotsOnTarget:  row.ShotsOnTarget,
				PassesTotal:    row.PassesTotal,
				PassesComplete: row.PassesComplete,
				PassAccuracy:   row.PassAccuracy,
				TacklesTotal:   row.TacklesTotal,
				TacklesWon:     row.TacklesWon,
				Interceptions:  row.Interceptions,
				FoulsCommitted: row.FoulsCommitted,
				FoulsDrawn:     row.FoulsDrawn,
				YellowCards:    row.YellowCards,
				RedCards:       row.RedCards,
				Rating:         row.Rating,
			},
			PlayerName: row.PlayerName,
			TeamName:   row.TeamName,
		})
	}

	return out, nil
}

func (r *MatchStatsRepository) SeasonTotalsByTeam(ctx context.Context, teamID int64, season string) ([]matchstats.SeasonTotals, error) {
	builder := qb.Select(
		"pms.player_id",
		"p.name AS player_name",
		"pms.team_id",
		"COUNT(1) AS appearances",
		"COALESCE(SUM(pms.minutes_played), 0) AS minutes_played",
		"COALESCE(SUM(pms.goals), 0) AS goals",
		"COALESCE(SUM(pms.assists), 0) AS assists",
		"COALESCE(SUM(pms.shots_total), 0) AS shots_total",
		"COALESCE(SUM(pms.shots_on_target), 0) AS shots_on_target",
		"COALESCE(SUM(pms.passes_total), 0) AS passes_total",
		"COALESCE(SUM(pms.passes_completed), 0) AS passes_completed",
		"COALESCE(SUM(pms.tackles_total), 0) AS tackles_total",
		"COALESCE(SUM(pms.interceptions), 0) AS interceptions",
		"COALESCE(SUM(pms.yellow_cards), 0) AS yellow_cards",
		"COALESCE(SUM(pms.red_cards), 0) AS red_cards",
		"COALESCE(AVG(pms.rating), 0) AS avg_rating",
	).From("player_match_stats pms JOIN players p ON p.id = pms.player_id JOIN matches m ON m.id = pms.match_id").
		Where(qb.Eq("pms.team_id", teamID))
	if season != "" {
		builder = builder.Where(qb.Eq("m.season", season))
	}

	query, args, err := builder.
		GroupBy("pms.player_id", "p.name", "pms.team_id").
		OrderBy("goals DESC", "minutes_played DESC", "player_name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build season totals query: %w", err)
	}

	var rows []seasonTotalsRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select season totals: %w", err)
	}

	out := make([]matchstats.SeasonTotals, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchstats.SeasonTotals{
			PlayerID:       row.PlayerID,
			PlayerName:     row.PlayerName,
			TeamID:         row.TeamID,
			Appearances:    row.Appearances,
			MinutesPlayed:  row.MinutesPlayed,
			Goals:          row.Goals,
			Assists:        row.Assists,
			ShotsTotal:     row.ShotsTotal,
			ShotsOnTarget:  row.ShotsOnTarget,
			PassesTotal:    row.PassesTotal,
			PassesComplete: row.PassesComplete,
			TacklesTotal:   row.TacklesTotal,
			Interceptions:  row.Interceptions,
			YellowCards:    row.YellowCards,
			RedCards:       row.RedCards,
			AvgRating:      row.AvgRating,
		})
	}

	return out, nil
}

func (r *MatchStatsRepository) CountByMatchAndPlayer(ctx context.Context, matchID, playerID int64) (int, error) {
	query, args, err := qb.Select("COUNT(1)").
		From("player_match_stats").
		Where(
			qb.Eq("match_id", matchID),
			qb.Eq("player_id", playerID),
		).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count stat lines query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count stat lines: %w", err)
	}

	return count, nil
}
