package match

import (
	"fmt"
	"time"
)

// Match is one played fixture. There is no natural-key dedup on
// (date, home, away): one source file produces one row.
type Match struct {
	ID          int64
	HomeTeamID  int64
	AwayTeamID  int64
	MatchDate   time.Time
	Competition string
	Season      string
}

func (m Match) Validate() error {
	if m.HomeTeamID <= 0 {
		return fmt.Errorf("match home team id is required")
	}
	if m.AwayTeamID <= 0 {
		return fmt.Errorf("match away team id is required")
	}
	if m.MatchDate.IsZero() {
		return fmt.Errorf("match date is required")
	}

	return nil
}
