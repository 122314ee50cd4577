package fantasyteam

import "time"

// FantasyTeam caches two derived aggregates for read performance:
// TotalPoints and HighPointsWinnings must always equal the live sums over the
// team's weekly rows. The reconciler enforces that invariant.
type FantasyTeam struct {
	ID       string
	LeagueID string
	Name     string
	OwnerID  string

	TotalPoints        float64
	HighPointsWinnings float64

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// FantasyTeamWeeklyPoints is one team's scored total for one week.
type FantasyTeamWeeklyPoints struct {
	ID            string
	FantasyTeamID string
	LeagueID      string
	Week          int

	Points float64
	// IsHighPointsWinner and HighPointsAmount are set in a second pass over
	// the whole league, never during per-team summation.
	IsHighPointsWinner bool
	HighPointsAmount   float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RosterPeriod is the week window during which a school counted toward a
// team's score. EndWeek is exclusive; nil means the school is still rostered.
type RosterPeriod struct {
	ID            string
	FantasyTeamID string
	SchoolID      string
	StartWeek     int
	EndWeek       *int
}

// ActiveForWeek reports whether the school was on the roster for week w.
func (p RosterPeriod) ActiveForWeek(w int) bool {
	if w < p.StartWeek {
		return false
	}
	return p.EndWeek == nil || *p.EndWeek > w
}
