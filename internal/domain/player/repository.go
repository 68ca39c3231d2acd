package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	Upsert(ctx context.Context, name string, teamID int64) (Player, error)
	GetByNameAndTeam(ctx context.Context, name string, teamID int64) (Player, bool, error)
	GetByID(ctx context.Context, playerID int64) (Player, bool, error)
	ListByTeam(ctx context.Context, teamID int64) ([]Player, error)
}
