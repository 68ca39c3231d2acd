package match

import "context"

type Repository interface {
	GetByID(ctx context.Context, matchID int64) (Match, bool, error)
	ListByTeam(ctx context.Context, teamID int64) ([]Match, error)
	List(ctx context.Context) ([]Match, error)
}
