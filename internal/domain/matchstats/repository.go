package matchstats

import (
	"context"

	"github.com/riskibarqy/matchday/internal/domain/match"
)

// Repository owns the statistic fact rows plus the match row they hang off,
// so one loaded record commits or rolls back as a unit.
type Repository interface {
	// InsertMatchWithLines writes the match row and all of its statistic
	// lines in one transaction and returns the generated match id. Line
	// MatchID fields are filled from the new row. Duplicate (match, player)
	// pairs are handled per policy; under PolicyError the transaction is
	// rolled back and ErrDuplicateLine returned.
	InsertMatchWithLines(ctx context.Context, m match.Match, lines []Line, policy DuplicatePolicy) (int64, error)

	ListByMatch(ctx context.Context, matchID int64) ([]SheetLine, error)
	SeasonTotalsByTeam(ctx context.Context, teamID int64, season string) ([]SeasonTotals, error)
	CountByMatchAndPlayer(ctx context.Context, matchID, playerID int64) (int, error)
}
