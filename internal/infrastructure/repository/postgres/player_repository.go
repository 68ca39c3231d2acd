package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/matchday/internal/domain/player"
	qb "github.com/riskibarqy/matchday/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// Upsert resolves (name, team_id) to an id in one statement; the same name
// under another team produces a separate row.
func (r *PlayerRepository) Upsert(ctx context.Context, name string, teamID int64) (player.Player, error) {
	query, args, err := qb.InsertInto("players").
		Columns("name", "team_id").
		Values(name, teamID).
		Suffix("ON CONFLICT (name, team_id) DO UPDATE SET name = EXCLUDED.name RETURNING id").
		ToSQL()
	if err != nil {
		return player.Player{}, fmt.Errorf("build upsert player query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return player.Player{}, fmt.Errorf("upsert player name=%q team_id=%d: %w", name, teamID, err)
	}

	return player.Player{ID: id, Name: name, TeamID: teamID}, nil
}

func (r *PlayerRepository) GetByNameAndTeam(ctx context.Context, name string, teamID int64) (player.Player, bool, error) {
	query, args, err := qb.Select("id", "name", "team_id").
		From("players").
		Where(
			qb.Eq("name", name),
			qb.Eq("team_id", teamID),
		).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build select player by name query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("select player by name: %w", err)
	}

	return player.Player{ID: row.ID, Name: row.Name, TeamID: row.TeamID}, true, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID int64) (player.Player, bool, error) {
	query, args, err := qb.Select("id", "name", "team_id").
		From("players").
		Where(qb.Eq("id", playerID)).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build select player by id query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("select player by id: %w", err)
	}

	return player.Player{ID: row.ID, Name: row.Name, TeamID: row.TeamID}, true, nil
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID int64) ([]player.Player, error) {
	query, args, err := qb.Select("id", "name", "team_id").
		From("players").
		Where(qb.Eq("team_id", teamID)).
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players by team query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list players by team: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, player.Player{ID: row.ID, Name: row.Name, TeamID: row.TeamID})
	}

	return out, nil
}
