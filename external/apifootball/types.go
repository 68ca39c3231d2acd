package apifootball

// Wire shapes for the provider's /fixtures and /fixtures/players endpoints,
// trimmed to the fields the fetcher maps into match records.

type fixturesEnvelope struct {
	Response []fixtureItem `json:"response"`
	Errors   any           `json:"errors,omitempty"`
}

type fixtureItem struct {
	Fixture fixtureInfo  `json:"fixture"`
	League  leagueInfo   `json:"league"`
	Teams   fixtureSides `json:"teams"`
}

type fixtureInfo struct {
	ID   int64  `json:"id"`
	Date string `json:"date"`
}

type leagueInfo struct {
	Name   string `json:"name"`
	Season int    `json:"season"`
	Round  string `json:"round"`
}

type fixtureSides struct {
	Home sideInfo `json:"home"`
	Away sideInfo `json:"away"`
}

type sideInfo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type playersEnvelope struct {
	Response []teamPlayers `json:"response"`
	Errors   any           `json:"errors,omitempty"`
}

type teamPlayers struct {
	Team    sideInfo      `json:"team"`
	Players []playerEntry `json:"players"`
}

type playerEntry struct {
	Player     playerInfo        `json:"player"`
	Statistics []playerStatBlock `json:"statistics"`
}

type playerInfo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type playerStatBlock struct {
	Games struct {
		Minutes  int    `json:"minutes"`
		Position string `json:"position"`
		Rating   string `json:"rating"`
	} `json:"games"`
	Goals struct {
		Total   int `json:"total"`
		Assists int `json:"assists"`
	} `json:"goals"`
	Shots struct {
		Total int `json:"total"`
		On    int `json:"on"`
	} `json:"shots"`
	Passes struct {
		Total    int `json:"total"`
		Accuracy int `json:"accuracy"`
	} `json:"passes"`
	Tackles struct {
		Total         int `json:"total"`
		Interceptions int `json:"interceptions"`
	} `json:"tackles"`
	Duels struct {
		Won int `json:"won"`
	} `json:"duels"`
	Fouls struct {
		Drawn     int `json:"drawn"`
		Committed int `json:"committed"`
	} `json:"fouls"`
	Cards struct {
		Yellow int `json:"yellow"`
		Red    int `json:"red"`
	} `json:"cards"`
}
