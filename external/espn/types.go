package espn

// Scoreboard payload shapes for the public ESPN site API. Only the fields the
// sync pipeline consumes are declared; the feed carries far more.

type scoreboardEnvelope struct {
	Events []scoreboardEvent `json:"events"`
}

type scoreboardEvent struct {
	ID           string                 `json:"id"`
	Date         string                 `json:"date"`
	Name         string                 `json:"name"`
	Status       scoreboardStatus       `json:"status"`
	Competitions []scoreboardCompetition `json:"competitions"`
}

type scoreboardStatus struct {
	Type scoreboardStatusType `json:"type"`
}

type scoreboardStatusType struct {
	Name      string `json:"name"`
	State     string `json:"state"`
	Completed bool   `json:"completed"`
}

type scoreboardCompetition struct {
	Notes       []scoreboardNote       `json:"notes"`
	Competitors []scoreboardCompetitor `json:"competitors"`
}

type scoreboardNote struct {
	Type     string `json:"type"`
	Headline string `json:"headline"`
}

type scoreboardCompetitor struct {
	ID          string              `json:"id"`
	HomeAway    string              `json:"homeAway"`
	Score       string              `json:"score"`
	CuratedRank scoreboardRank      `json:"curatedRank"`
	Team        scoreboardTeamBrief `json:"team"`
}

type scoreboardRank struct {
	Current int `json:"current"`
}

type scoreboardTeamBrief struct {
	ID       string `json:"id"`
	Location string `json:"location"`
}
