package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	// Upsert inserts the name on first sight and returns the existing row
	// otherwise; one atomic statement, safe against concurrent loaders.
	Upsert(ctx context.Context, name string) (Team, error)
	GetByName(ctx context.Context, name string) (Team, bool, error)
	GetByID(ctx context.Context, teamID int64) (Team, bool, error)
	List(ctx context.Context) ([]Team, error)
}
