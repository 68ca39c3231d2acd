package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/matchday/internal/domain/match"
	qb "github.com/riskibarqy/matchday/internal/platform/querybuilder"
)

// MatchRepository reads match rows. Inserts happen inside
// MatchStatsRepository so a record's match and statistic rows share one
// transaction.
type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID int64) (match.Match, bool, error) {
	query, args, err := qb.Select("id", "home_team_id", "away_team_id", "match_date", "competition", "season").
		From("matches").
		Where(qb.Eq("id", matchID)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build select match by id query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("select match by id: %w", err)
	}

	return mapMatchRow(row), true, nil
}

func (r *MatchRepository) ListByTeam(ctx context.Context, teamID int64) ([]match.Match, error) {
	query, args, err := qb.Select("id", "home_team_id", "away_team_id", "match_date", "competition", "season").
		From("matches").
		Where(qb.Expr("(home_team_id = ? OR away_team_id = ?)", teamID, teamID)).
		OrderBy("match_date", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matches by team query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list matches by team: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapMatchRow(row))
	}

	return out, nil
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	query, args, err := qb.Select("id", "home_team_id", "away_team_id", "match_date", "competition", "season").
		From("matches").
		OrderBy("match_date", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapMatchRow(row))
	}

	return out, nil
}

func mapMatchRow(row matchTableModel) match.Match {
	return match.Match{
		ID:          row.ID,
		HomeTeamID:  row.HomeTeamID,
		AwayTeamID:  row.AwayTeamID,
		MatchDate:   row.MatchDate,
		Competition: row.Competition,
		Season:      row.Season,
	}
}
