package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/matchday/internal/domain/team"
	qb "github.com/riskibarqy/matchday/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Upsert is one atomic lookup-or-create. The no-op DO UPDATE makes
// RETURNING id yield the existing row on conflict, so two loaders racing
// on the same name both get the same id.
func (r *TeamRepository) Upsert(ctx context.Context, name string) (team.Team, error) {
	query, args, err := qb.InsertInto("teams").
		Columns("name").
		Values(name).
		Suffix("ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name RETURNING id").
		ToSQL()
	if err != nil {
		return team.Team{}, fmt.Errorf("build upsert team query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return team.Team{}, fmt.Errorf("upsert team name=%q: %w", name, err)
	}

	return team.Team{ID: id, Name: name}, nil
}

func (r *TeamRepository) GetByName(ctx context.Context, name string) (team.Team, bool, error) {
	query, args, err := qb.Select("id", "name").
		From("teams").
		Where(qb.Eq("name", name)).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build select team by name query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("select team by name: %w", err)
	}

	return team.Team{ID: row.ID, Name: row.Name}, true, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	query, args, err := qb.Select("id", "name").
		From("teams").
		Where(qb.Eq("id", teamID)).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build select team by id query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("select team by id: %w", err)
	}

	return team.Team{ID: row.ID, Name: row.Name}, true, nil
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select("id", "name").
		From("teams").
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, team.Team{ID: row.ID, Name: row.Name})
	}

	return out, nil
}
