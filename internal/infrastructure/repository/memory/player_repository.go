package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/matchday/internal/domain/player"
)

type playerKey struct {
	name   string
	teamID int64
}

type PlayerRepository struct {
	mu     sync.RWMutex
	nextID int64
	byKey  map[playerKey]player.Player
}

func NewPlayerRepository() *PlayerRepository {
	return &PlayerRepository{
		nextID: 1,
		byKey:  make(map[playerKey]player.Player),
	}
}

func (r *PlayerRepository) Upsert(_ context.Context, name string, teamID int64) (player.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := playerKey{name: name, teamID: teamID}
	if existing, ok := r.byKey[key]; ok {
		return existing, nil
	}

	created := player.Player{ID: r.nextID, Name: name, TeamID: teamID}
	r.nextID++
	r.byKey[key] = created

	return created, nil
}

func (r *PlayerRepository) GetByNameAndTeam(_ context.Context, name string, teamID int64) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	existing, ok := r.byKey[playerKey{name: name, teamID: teamID}]
	return existing, ok, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID int64) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.byKey {
		if item.ID == playerID {
			return item, true, nil
		}
	}

	return player.Player{}, false, nil
}

func (r *PlayerRepository) ListByTeam(_ context.Context, teamID int64) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0)
	for _, item := range r.byKey {
		if item.TeamID == teamID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}
