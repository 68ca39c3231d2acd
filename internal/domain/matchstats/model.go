package matchstats

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDuplicateLine is returned under PolicyError when a (match, player)
// statistic line already exists.
var ErrDuplicateLine = errors.New("duplicate player match statistic")

// DuplicatePolicy controls what an insert does when a (match, player) line
// already exists. The legacy loaders disagreed on this; it is now explicit.
type DuplicatePolicy string

const (
	PolicySkip    DuplicatePolicy = "skip"
	PolicyError   DuplicatePolicy = "error"
	PolicyReplace DuplicatePolicy = "replace"
)

func ParseDuplicatePolicy(raw string) (DuplicatePolicy, error) {
	switch DuplicatePolicy(strings.ToLower(strings.TrimSpace(raw))) {
	case PolicySkip, "":
		return PolicySkip, nil
	case PolicyError:
		return PolicyError, nil
	case PolicyReplace:
		return PolicyReplace, nil
	default:
		return "", fmt.Errorf("invalid duplicate policy %q: valid values are %s, %s, %s", raw, PolicySkip, PolicyError, PolicyReplace)
	}
}

// Line is one player's statistic row for one match.
type Line struct {
	ID             int64
	MatchID        int64
	PlayerID       int64
	TeamID         int64
	Position       string
	MinutesPlayed  int
	Goals          int
	Assists        int
	ShotsTotal     int
	ShotsOnTarget  int
	PassesTotal    int
	PassesComplete int
	PassAccuracy   float64
	TacklesTotal   int
	TacklesWon     int
	Interceptions  int
	FoulsCommitted int
	FoulsDrawn     int
	YellowCards    int
	RedCards       int
	Rating         float64
}

// SeasonTotals aggregates one player's lines across matches.
type SeasonTotals struct {
	PlayerID       int64
	PlayerName     string
	TeamID         int64
	Appearances    int
	MinutesPlayed  int
	Goals          int
	Assists        int
	ShotsTotal     int
	ShotsOnTarget  int
	PassesTotal    int
	PassesComplete int
	TacklesTotal   int
	Interceptions  int
	YellowCards    int
	RedCards       int
	AvgRating      float64
}

// SheetLine is a match-sheet row joined with the player's display name.
type SheetLine struct {
	Line
	PlayerName string
	TeamName   string
}

// PassAccuracy is completed/attempted as a percentage, 0 for an empty
// attempt count. Malformed source data where completed > attempted is not
// clamped; values over 100 surface as-is.
func PassAccuracy(completed, attempted int) float64 {
	if attempted <= 0 {
		return 0
	}
	return float64(completed) / float64(attempted) * 100
}
