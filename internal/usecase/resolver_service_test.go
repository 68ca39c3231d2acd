package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/matchday/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/matchday/internal/platform/logging"
)

func newTestResolver() (*ResolverService, *memory.TeamRepository, *memory.PlayerRepository) {
	teams := memory.NewTeamRepository()
	players := memory.NewPlayerRepository()
	return NewResolverService(teams, players, logging.NewNop()), teams, players
}

func TestResolveTeamDistinctNames(t *testing.T) {
	ctx := context.Background()
	resolver, _, _ := newTestResolver()

	arsenalID, err := resolver.ResolveTeam(ctx, "Arsenal")
	if err != nil {
		t.Fatalf("resolve Arsenal: %v", err)
	}
	chelseaID, err := resolver.ResolveTeam(ctx, "Chelsea")
	if err != nil {
		t.Fatalf("resolve Chelsea: %v", err)
	}

	if arsenalID == chelseaID {
		t.Fatalf("distinct team names resolved to the same id %d", arsenalID)
	}
}

func TestResolveTeamIdempotentWithinRun(t *testing.T) {
	ctx := context.Background()
	resolver, _, _ := newTestResolver()

	first, err := resolver.ResolveTeam(ctx, "Arsenal")
	if err != nil {
		t.Fatalf("first resolve: %v", err)
	}
	for i := 0; i < 5; i++ {
		got, err := resolver.ResolveTeam(ctx, "Arsenal")
		if err != nil {
			t.Fatalf("repeat resolve %d: %v", i, err)
		}
		if got != first {
			t.Fatalf("repeat resolve %d returned %d, want %d", i, got, first)
		}
	}
}

func TestResolveTeamStableAcrossServiceInstances(t *testing.T) {
	ctx := context.Background()
	teams := memory.NewTeamRepository()
	players := memory.NewPlayerRepository()

	first := NewResolverService(teams, players, logging.NewNop())
	id, err := first.ResolveTeam(ctx, "Arsenal")
	if err != nil {
		t.Fatalf("first run resolve: %v", err)
	}

	// A fresh service has an empty cache but hits the same backing store,
	// so the id must survive the "restart".
	second := NewResolverService(teams, players, logging.NewNop())
	got, err := second.ResolveTeam(ctx, "Arsenal")
	if err != nil {
		t.Fatalf("second run resolve: %v", err)
	}
	if got != id {
		t.Fatalf("second run resolved Arsenal to %d, want %d", got, id)
	}
}

func TestResolvePlayerScopedToTeam(t *testing.T) {
	ctx := context.Background()
	resolver, _, _ := newTestResolver()

	arsenalID, err := resolver.ResolveTeam(ctx, "Arsenal")
	if err != nil {
		t.Fatalf("resolve Arsenal: %v", err)
	}
	chelseaID, err := resolver.ResolveTeam(ctx, "Chelsea")
	if err != nil {
		t.Fatalf("resolve Chelsea: %v", err)
	}

	smithArsenal, err := resolver.ResolvePlayer(ctx, "John Smith", arsenalID)
	if err != nil {
		t.Fatalf("resolve Smith at Arsenal: %v", err)
	}
	smithChelsea, err := resolver.ResolvePlayer(ctx, "John Smith", chelseaID)
	if err != nil {
		t.Fatalf("resolve Smith at Chelsea: %v", err)
	}

	if smithArsenal == smithChelsea {
		t.Fatalf("same name under different teams resolved to the same id %d", smithArsenal)
	}

	again, err := resolver.ResolvePlayer(ctx, "John Smith", arsenalID)
	if err != nil {
		t.Fatalf("repeat resolve: %v", err)
	}
	if again != smithArsenal {
		t.Fatalf("repeat resolve returned %d, want %d", again, smithArsenal)
	}
}

func TestResolveRejectsEmptyNames(t *testing.T) {
	ctx := context.Background()
	resolver, _, _ := newTestResolver()

	if _, err := resolver.ResolveTeam(ctx, "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank team name: got %v, want ErrInvalidInput", err)
	}
	if _, err := resolver.ResolvePlayer(ctx, "", 1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank player name: got %v, want ErrInvalidInput", err)
	}
}
