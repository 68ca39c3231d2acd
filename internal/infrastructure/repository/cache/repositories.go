package cache

import (
	"context"
	"strconv"

	"github.com/riskibarqy/matchday/internal/domain/team"
	basecache "github.com/riskibarqy/matchday/internal/platform/cache"
)

// TeamRepository fronts the read side of a team repository with the TTL
// store. Upserts pass through and drop the list entry so fresh teams show
// up on the next read.
type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) Upsert(ctx context.Context, name string) (team.Team, error) {
	item, err := r.next.Upsert(ctx, name)
	if err != nil {
		return team.Team{}, err
	}

	r.cache.Delete(ctx, "team:list")
	r.cache.Set(ctx, "team:id:"+strconv.FormatInt(item.ID, 10), cachedTeam{value: item, exists: true})

	return item, nil
}

func (r *TeamRepository) GetByName(ctx context.Context, name string) (team.Team, bool, error) {
	return r.next.GetByName(ctx, name)
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	key := "team:id:" + strconv.FormatInt(teamID, 10)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, teamID)
		if err != nil {
			return nil, err
		}
		return cachedTeam{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedTeam)
	return cached.value, cached.exists, nil
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	v, err := r.cache.GetOrLoad(ctx, "team:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

type cachedTeam struct {
	value  team.Team
	exists bool
}
