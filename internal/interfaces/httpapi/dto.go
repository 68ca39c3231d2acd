package httpapi

import (
	"github.com/riskibarqy/matchday/internal/domain/match"
	"github.com/riskibarqy/matchday/internal/domain/matchstats"
	"github.com/riskibarqy/matchday/internal/usecase"
)

type teamDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type matchDTO struct {
	ID          int64  `json:"id"`
	HomeTeamID  int64  `json:"home_team_id"`
	AwayTeamID  int64  `json:"away_team_id"`
	MatchDate   string `json:"match_date"`
	Competition string `json:"competition"`
	Season      string `json:"season"`
}

type sheetLineDTO struct {
	PlayerID       int64   `json:"player_id"`
	PlayerName     string  `json:"player_name"`
	TeamID         int64   `json:"team_id"`
	TeamName       string  `json:"team_name"`
	Position       string  `json:"position"`
	MinutesPlayed  int     `json:"minutes_played"`
	Goals          int     `json:"goals"`
	Assists        int     `json:"assists"`
	ShotsTotal     int     `json:"shots_total"`
	ShotsOnTarget  int     `json:"shots_on_target"`
	PassesTotal    int     `json:"passes_total"`
	PassesComplete int     `json:"passes_completed"`
	PassAccuracy   float64 `json:"pass_accuracy"`
	TacklesTotal   int     `json:"tackles_total"`
	TacklesWon     int     `json:"tackles_won"`
	Interceptions  int     `json:"interceptions"`
	FoulsCommitted int     `json:"fouls_committed"`
	FoulsDrawn     int     `json:"fouls_drawn"`
	YellowCards    int     `json:"yellow_cards"`
	RedCards       int     `json:"red_cards"`
	Rating         float64 `json:"rating"`
}

type matchSheetDTO struct {
	Match matchDTO       `json:"match"`
	Lines []sheetLineDTO `json:"lines"`
}

type seasonTotalsDTO struct {
	PlayerID       int64   `json:"player_id"`
	PlayerName     string  `json:"player_name"`
	TeamID         int64   `json:"team_id"`
	Appearances    int     `json:"appearances"`
	MinutesPlayed  int     `json:"minutes_played"`
	Goals          int     `json:"goals"`
	Assists        int     `json:"assists"`
	ShotsTotal     int     `json:"shots_total"`
	ShotsOnTarget  int     `json:"shots_on_target"`
	PassesTotal    int     `json:"passes_total"`
	PassesComplete int     `json:"passes_completed"`
	TacklesTotal   int     `json:"tackles_total"`
	Interceptions  int     `json:"interceptions"`
	YellowCards    int     `json:"yellow_cards"`
	RedCards       int     `json:"red_cards"`
	AvgRating      float64 `json:"avg_rating"`
}

func matchToDTO(m match.Match) matchDTO {
	return matchDTO{
		ID:          m.ID,
		HomeTeamID:  m.HomeTeamID,
		AwayTeamID:  m.AwayTeamID,
		MatchDate:   m.MatchDate.Format("2006-01-02"),
		Competition: m.Competition,
		Season:      m.Season,
	}
}

func sheetLineToDTO(line matchstats.SheetLine) sheetLineDTO {
	return sheetLineDTO{
		PlayerID:       line.PlayerID,
		PlayerName:     line.PlayerName,
		TeamID:         line.TeamID,
		TeamName:       line.TeamName,
		Position:       line.Position,
		MinutesPlayed:  line.MinutesPlayed,
		Goals:          line.Goals,
		Assists:        line.Assists,
		ShotsTotal:     line.ShotsTotal,
		ShotsOnTarget:  line.ShotsOnTarget,
		PassesTotal:    line.PassesTotal,
		PassesComplete: line.PassesComplete,
		PassAccuracy:   line.PassAccuracy,
		TacklesTotal:   line.TacklesTotal,
		TacklesWon:     line.TacklesWon,
		Interceptions:  line.Interceptions,
		FoulsCommitted: line.FoulsCommitted,
		FoulsDrawn:     line.FoulsDrawn,
		YellowCards:    line.YellowCards,
		RedCards:       line.RedCards,
		Rating:         line.Rating,
	}
}

func matchSheetToDTO(sheet usecase.MatchSheet) matchSheetDTO {
	lines := make([]sheetLineDTO, 0, len(sheet.Lines))
	for _, line := range sheet.Lines {
		lines = append(lines, sheetLineToDTO(line))
	}
	return matchSheetDTO{
		Match: matchToDTO(sheet.Match),
		Lines: lines,
	}
}

func seasonTotalsToDTO(row matchstats.SeasonTotals) seasonTotalsDTO {
	return seasonTotalsDTO{
		PlayerID:       row.PlayerID,
		PlayerName:     row.PlayerName,
		TeamID:         row.TeamID,
		Appearances:    row.Appearances,
		MinutesPlayed:  row.MinutesPlayed,
		Goals:          row.Goals,
		Assists:        row.Assists,
		ShotsTotal:     row.ShotsTotal,
		ShotsOnTarget:  row.ShotsOnTarget,
		PassesTotal:    row.PassesTotal,
		PassesComplete: row.PassesComplete,
		TacklesTotal:   row.TacklesTotal,
		Interceptions:  row.Interceptions,
		YellowCards:    row.YellowCards,
		RedCards:       row.RedCards,
		AvgRating:      row.AvgRating,
	}
}
