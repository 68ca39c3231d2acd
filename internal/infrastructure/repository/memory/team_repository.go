package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/matchday/internal/domain/team"
)

type TeamRepository struct {
	mu     sync.RWMutex
	nextID int64
	byName map[string]team.Team
}

func NewTeamRepository() *TeamRepository {
	return &TeamRepository{
		nextID: 1,
		byName: make(map[string]team.Team),
	}
}

func (r *TeamRepository) Upsert(_ context.Context, name string) (team.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byName[name]; ok {
		return existing, nil
	}

	created := team.Team{ID: r.nextID, Name: name}
	r.nextID++
	r.byName[name] = created

	return created, nil
}

func (r *TeamRepository) GetByName(_ context.Context, name string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	existing, ok := r.byName[name]
	return existing, ok, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID int64) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.byName {
		if item.ID == teamID {
			return item, true, nil
		}
	}

	return team.Team{}, false, nil
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.byName))
	for _, item := range r.byName {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}
