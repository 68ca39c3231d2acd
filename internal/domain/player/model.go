package player

import "fmt"

// Player identity is the (name, team id) pair: the same name under two
// different clubs is two distinct players. That keeps common names from
// false-merging across rosters, at the cost of not tracking transfers.
type Player struct {
	ID     int64
	Name   string
	TeamID int64
}

func (p Player) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if p.TeamID <= 0 {
		return fmt.Errorf("player team id is required")
	}

	return nil
}
