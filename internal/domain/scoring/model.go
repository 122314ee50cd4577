package scoring

import "time"

// SchoolWeeklyPoints is one school's scored result for one game in a week.
// A school playing twice in a week (championship weekend, bowl overlap) gets
// one row per game; weekly totals sum across the rows.
type SchoolWeeklyPoints struct {
	ID       string
	SeasonID string
	SchoolID string
	Week     int
	GameID   string

	BasePoints       int
	ConferencePoints int
	FiftyPlusPoints  int
	ShutoutPoints    int
	Ranked10Points   int
	Ranked25Points   int
	TotalPoints      int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FromBreakdown builds a row from an engine result.
func FromBreakdown(seasonID, schoolID, gameID string, week int, b PointsBreakdown) SchoolWeeklyPoints {
	return SchoolWeeklyPoints{
		SeasonID:         seasonID,
		SchoolID:         schoolID,
		Week:             week,
		GameID:           gameID,
		BasePoints:       b.Base,
		ConferencePoints: b.Conference,
		FiftyPlusPoints:  b.FiftyPlus,
		ShutoutPoints:    b.Shutout,
		Ranked10Points:   b.Ranked10,
		Ranked25Points:   b.Ranked25,
		TotalPoints:      b.Total(),
	}
}
