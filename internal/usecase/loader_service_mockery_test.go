package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/matchday/internal/domain/match"
	"github.com/riskibarqy/matchday/internal/domain/matchstats"
	"github.com/riskibarqy/matchday/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/matchday/internal/matchfile"
	matchstatsmock "github.com/riskibarqy/matchday/internal/mocks/domain/matchstats"
	"github.com/riskibarqy/matchday/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

func mockeryLoaderRecord() matchfile.Record {
	return matchfile.Record{
		HomeTeam:    "Arsenal",
		AwayTeam:    "Chelsea",
		MatchDate:   "2024-03-01",
		Competition: "Premier League",
		Season:      "2023/24",
		HomePlayers: []matchfile.PlayerStat{
			{Name: "John Smith", Goals: matchfile.FlexInt{Value: 2}},
		},
		AwayPlayers: []matchfile.PlayerStat{
			{Name: "Marco Rossi", Assists: matchfile.FlexInt{Value: 1}},
		},
	}
}

func TestLoaderService_LoadRecord_PolicyPassThroughUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	statsRepo := matchstatsmock.NewRepository(t)
	resolver := NewResolverService(memory.NewTeamRepository(), memory.NewPlayerRepository(), logging.NewNop())
	loader := NewLoaderService(resolver, statsRepo, matchstats.PolicySkip, logging.NewNop())

	statsRepo.
		On("InsertMatchWithLines",
			mock.Anything,
			mock.MatchedBy(func(m match.Match) bool { return m.Season == "2023/24" && m.HomeTeamID != m.AwayTeamID }),
			mock.MatchedBy(func(lines []matchstats.Line) bool { return len(lines) == 2 }),
			matchstats.PolicyReplace,
		).
		Return(int64(42), nil).
		Once()

	matchID, err := loader.WithPolicy(matchstats.PolicyReplace).LoadRecord(ctx, mockeryLoaderRecord())
	if err != nil {
		t.Fatalf("load record: %v", err)
	}
	if matchID != 42 {
		t.Fatalf("unexpected match id: got=%d want=42", matchID)
	}
}

func TestLoaderService_LoadRecord_PersistErrorUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	statsRepo := matchstatsmock.NewRepository(t)
	resolver := NewResolverService(memory.NewTeamRepository(), memory.NewPlayerRepository(), logging.NewNop())
	loader := NewLoaderService(resolver, statsRepo, matchstats.PolicySkip, logging.NewNop())

	dbErr := errors.New("connection reset")
	statsRepo.
		On("InsertMatchWithLines", mock.Anything, mock.Anything, mock.Anything, matchstats.PolicySkip).
		Return(int64(0), dbErr).
		Once()

	_, err := loader.LoadRecord(ctx, mockeryLoaderRecord())
	if !errors.Is(err, dbErr) {
		t.Fatalf("expected persist error, got %v", err)
	}
}
