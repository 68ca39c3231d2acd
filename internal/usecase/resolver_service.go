package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/riskibarqy/matchday/internal/domain/player"
	"github.com/riskibarqy/matchday/internal/domain/team"
	"github.com/riskibarqy/matchday/internal/platform/logging"
)

type playerCacheKey struct {
	name   string
	teamID int64
}

// ResolverService maps free-text team and player names to surrogate ids.
// The cache lives for one service instance (one run) and is never evicted;
// cross-run stability comes from the database unique constraints behind
// the repository upserts.
type ResolverService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
	logger     *logging.Logger

	mu        sync.Mutex
	teamIDs   map[string]int64
	playerIDs map[playerCacheKey]int64
}

func NewResolverService(teamRepo team.Repository, playerRepo player.Repository, logger *logging.Logger) *ResolverService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ResolverService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		logger:     logger,
		teamIDs:    make(map[string]int64),
		playerIDs:  make(map[playerCacheKey]int64),
	}
}

// ResolveTeam returns the id for name, creating the row on first sight.
// The cache key is the exact string; no normalization beyond trimming.
func (s *ResolverService) ResolveTeam(ctx context.Context, name string) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResolverService.ResolveTeam")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}

	s.mu.Lock()
	id, ok := s.teamIDs[name]
	s.mu.Unlock()
	if ok {
		return id, nil
	}

	resolved, err := s.teamRepo.Upsert(ctx, name)
	if err != nil {
		s.logger.ErrorContext(ctx, "team resolution failed", "name", name, "error", err)
		return 0, fmt.Errorf("%w: team %q: %v", ErrResolutionFailed, name, err)
	}

	s.mu.Lock()
	s.teamIDs[name] = resolved.ID
	s.mu.Unlock()

	return resolved.ID, nil
}

// ResolvePlayer returns the id for (name, teamID). Identical names under
// different teams resolve to different ids.
func (s *ResolverService) ResolvePlayer(ctx context.Context, name string, teamID int64) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResolverService.ResolvePlayer")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}
	if teamID <= 0 {
		return 0, fmt.Errorf("%w: player team id is required", ErrInvalidInput)
	}

	key := playerCacheKey{name: name, teamID: teamID}
	s.mu.Lock()
	id, ok := s.playerIDs[key]
	s.mu.Unlock()
	if ok {
		return id, nil
	}

	resolved, err := s.playerRepo.Upsert(ctx, name, teamID)
	if err != nil {
		s.logger.ErrorContext(ctx, "player resolution failed", "name", name, "team_id", teamID, "error", err)
		return 0, fmt.Errorf("%w: player %q team_id=%d: %v", ErrResolutionFailed, name, teamID, err)
	}

	s.mu.Lock()
	s.playerIDs[key] = resolved.ID
	s.mu.Unlock()

	return resolved.ID, nil
}
