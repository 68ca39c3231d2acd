package postgres

import "time"

type matchTableModel struct {
	ID          int64     `db:"id"`
	HomeTeamID  int64     `db:"home_team_id"`
	AwayTeamID  int64     `db:"away_team_id"`
	MatchDate   time.Time `db:"match_date"`
	Competition string    `db:"competition"`
	Season      string    `db:"season"`
}

type matchInsertModel struct {
	HomeTeamID  int64     `db:"home_team_id"`
	AwayTeamID  int64     `db:"away_team_id"`
	MatchDate   time.Time `db:"match_date"`
	Competition string    `db:"competition"`
	Season      string    `db:"season"`
}
