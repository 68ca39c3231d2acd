package postgres

type matchStatLineInsertModel struct {
	MatchID        int64   `db:"match_id"`
	PlayerID       int64   `db:"player_id"`
	TeamID         int64   `db:"team_id"`
	Position       string  `db:"position"`
	MinutesPlayed  int     `db:"minutes_played"`
	Goals          int     `db:"goals"`
	Assists        int     `db:"assists"`
	ShotsTotal     int     `db:"shots_total"`
	ShotsOnTarget  int     `db:"shots_on_target"`
	PassesTotal    int     `db:"passes_total"`
	PassesComplete int     `db:"passes_completed"`
	PassAccuracy   float64 `db:"pass_accuracy"`
	TacklesTotal   int     `db:"tackles_total"`
	TacklesWon     int     `db:"tackles_won"`
	Interceptions  int     `db:"interceptions"`
	FoulsCommitted int     `db:"fouls_committed"`
	FoulsDrawn     int     `db:"fouls_drawn"`
	YellowCards    int     `db:"yellow_cards"`
	RedCards       int     `db:"red_cards"`
	Rating         float64 `db:"rating"`
}

type sheetLineRow struct {
	ID             int64   `db:"id"`
	MatchID        int64   `db:"match_id"`
	PlayerID       int64   `db:"player_id"`
	TeamID         int64   `db:"team_id"`
	Position       string  `db:"position"`
	MinutesPlayed  int     `db:"minutes_played"`
	Goals          int     `db:"goals"`
	Assists        int     `db:"assists"`
	ShotsTotal     int     `db:"shots_total"`
	ShotsOnTarget  int     `db:"shots_on_target"`
	PassesTotal    int     `db:"passes_total"`
	PassesComplete int     `db:"passes_completed"`
	PassAccuracy   float64 `db:"pass_accuracy"`
	TacklesTotal   int     `db:"tackles_total"`
	TacklesWon     int     `db:"tackles_won"`
	Interceptions  int     `db:"interceptions"`
	FoulsCommitted int     `db:"fouls_committed"`
	FoulsDrawn     int     `db:"fouls_drawn"`
	YellowCards    int     `db:"yellow_cards"`
	RedCards       int     `db:"red_cards"`
	Rating         float64 `db:"rating"`
	PlayerName     string  `db:"player_name"`
	TeamName       string  `db:"team_name"`
}

type seasonTotalsRow struct {
	PlayerID       int64   `db:"player_id"`
	PlayerName     string  `db:"player_name"`
	TeamID         int64   `db:"team_id"`
	Appearances    int     `db:"appearances"`
	MinutesPlayed  int     `db:"minutes_played"`
	Goals          int     `db:"goals"`
	Assists        int     `db:"assists"`
	ShotsTotal     int     `db:"shots_total"`
	ShotsOnTarget  int     `db:"shots_on_target"`
	PassesTotal    int     `db:"passes_total"`
	PassesComplete int     `db:"passes_completed"`
	TacklesTotal   int     `db:"tackles_total"`
	Interceptions  int     `db:"interceptions"`
	YellowCards    int     `db:"yellow_cards"`
	RedCards       int     `db:"red_cards"`
	AvgRating      float64 `db:"avg_rating"`
}
