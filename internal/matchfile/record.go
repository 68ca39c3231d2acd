package matchfile

import (
	"bytes"
	"strconv"
	"strings"
)

// Record is one source file: match metadata plus both rosters.
type Record struct {
	HomeTeam    string       `json:"home_team"`
	AwayTeam    string       `json:"away_team"`
	MatchDate   string       `json:"date"`
	Competition string       `json:"competition"`
	Season      string       `json:"season"`
	HomePlayers []PlayerStat `json:"home_players"`
	AwayPlayers []PlayerStat `json:"away_players"`
}

// PlayerStat carries one roster entry. Numeric fields arrive as numbers,
// numeric strings, junk strings or not at all, so they decode through the
// flexible types below and never fail the record.
type PlayerStat struct {
	Name           string    `json:"name"`
	Position       string    `json:"position"`
	Minutes        FlexInt   `json:"minutes"`
	Goals          FlexInt   `json:"goals"`
	Assists        FlexInt   `json:"assists"`
	Shots          FlexInt   `json:"shots"`
	ShotsOnTarget  FlexInt   `json:"shots_on_target"`
	Passes         FlexInt   `json:"passes"`
	PassesComplete FlexInt   `json:"passes_completed"`
	Tackles        FlexInt   `json:"tackles"`
	TacklesWon     FlexInt   `json:"tackles_won"`
	Interceptions  FlexInt   `json:"interceptions"`
	FoulsCommitted FlexInt   `json:"fouls_committed"`
	FoulsDrawn     FlexInt   `json:"fouls_drawn"`
	YellowCards    FlexInt   `json:"yellow_cards"`
	RedCards       FlexInt   `json:"red_cards"`
	Rating         FlexFloat `json:"rating"`
}

// FlexInt decodes a JSON number or numeric string into an int. Anything
// else coerces to zero with Invalid set, so the caller can surface the bad
// value in the run summary instead of aborting the record.
type FlexInt struct {
	Value   int
	Invalid bool
	Raw     string
}

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(bytes.Trim(data, " \t\n")))
	if raw == "" || raw == "null" {
		*f = FlexInt{}
		return nil
	}

	if strings.HasPrefix(raw, `"`) && strings.HasSuffix(raw, `"`) && len(raw) >= 2 {
		raw = strings.TrimSpace(raw[1 : len(raw)-1])
		if raw == "" {
			*f = FlexInt{}
			return nil
		}
	}

	if v, err := strconv.Atoi(raw); err == nil {
		*f = FlexInt{Value: v}
		return nil
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		*f = FlexInt{Value: int(v)}
		return nil
	}

	*f = FlexInt{Invalid: true, Raw: raw}
	return nil
}

func (f FlexInt) MarshalJSON() ([]byte, error) {
	if f.Invalid {
		return []byte(strconv.Quote(f.Raw)), nil
	}
	return []byte(strconv.Itoa(f.Value)), nil
}

// FlexFloat is FlexInt's float counterpart, used for ratings.
type FlexFloat struct {
	Value   float64
	Invalid bool
	Raw     string
}

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(bytes.Trim(data, " \t\n")))
	if raw == "" || raw == "null" {
		*f = FlexFloat{}
		return nil
	}

	if strings.HasPrefix(raw, `"`) && strings.HasSuffix(raw, `"`) && len(raw) >= 2 {
		raw = strings.TrimSpace(raw[1 : len(raw)-1])
		if raw == "" {
			*f = FlexFloat{}
			return nil
		}
	}

	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		*f = FlexFloat{Value: v}
		return nil
	}

	*f = FlexFloat{Invalid: true, Raw: raw}
	return nil
}

func (f FlexFloat) MarshalJSON() ([]byte, error) {
	if f.Invalid {
		return []byte(strconv.Quote(f.Raw)), nil
	}
	return []byte(strconv.FormatFloat(f.Value, 'f', -1, 64)), nil
}
