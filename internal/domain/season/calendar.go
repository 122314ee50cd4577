package season

import (
	"fmt"
	"time"
)

const (
	// WeekZero hosts the handful of "week zero" games played before the
	// regular schedule starts.
	WeekZero = 0

	WeekConferenceChampionship = 15
	WeekRivalry                = 16
	WeekBowls                  = 17
	WeekPlayoffFirstRound      = 18
	WeekPlayoffQuarterfinal    = 19
	WeekPlayoffSemifinal       = 20
	WeekPlayoffChampionship    = 21

	// WeekHeisman is a pseudo-week with no scheduled games. It exists only
	// to attribute the Heisman bonus to a fixed slot in the weekly tables.
	WeekHeisman = 22

	MinWeek = WeekZero
	MaxWeek = WeekHeisman
)

// seasonStartMonth/Day anchor the calendar: week 1 begins August 24 UTC.
const (
	seasonStartMonth = time.August
	seasonStartDay   = 24
)

// SeasonStart returns the UTC midnight anchor date for a season year.
func SeasonStart(year int) time.Time {
	return time.Date(year, seasonStartMonth, seasonStartDay, 0, 0, 0, 0, time.UTC)
}

// WeekFor maps a date to its season week number, clamped to [0, 22].
// Dates before the season anchor land in week 0.
func WeekFor(date time.Time, seasonYear int) int {
	start := SeasonStart(seasonYear)
	delta := date.UTC().Sub(start)
	week := int(delta/(7*24*time.Hour)) + 1
	if delta < 0 {
		week = 0
	}
	if week < MinWeek {
		return MinWeek
	}
	if week > MaxWeek {
		return MaxWeek
	}
	return week
}

// SeasonYearFor maps a calendar date to the season it belongs to. Playoff
// rounds spill into January, so dates before August count toward the prior
// year's season.
func SeasonYearFor(date time.Time) int {
	utc := date.UTC()
	if utc.Month() < seasonStartMonth {
		return utc.Year() - 1
	}
	return utc.Year()
}

// IsPostseason reports whether a week falls in the postseason segment.
func IsPostseason(week int) bool {
	return week >= WeekConferenceChampionship
}

// LabelContext selects the presentation style for WeekLabel.
type LabelContext int

const (
	// LabelCompact is the short form used in leaderboard column headers.
	LabelCompact LabelContext = iota
	// LabelSchedule is the longer form used on schedule listings.
	LabelSchedule
)

// WeekLabel renders a week number for display. The mapping is presentation
// only and never feeds back into scoring.
func WeekLabel(week int, ctx LabelContext) string {
	switch week {
	case WeekConferenceChampionship:
		if ctx == LabelCompact {
			return "Champ"
		}
		return "Conference Championship"
	case WeekRivalry:
		if ctx == LabelCompact {
			return "Rivalry"
		}
		return "Rivalry Week"
	case WeekBowls:
		if ctx == LabelCompact {
			return "Bowls"
		}
		return "Bowl"
	case WeekPlayoffFirstRound:
		if ctx == LabelCompact {
			return "CFP"
		}
		return fmt.Sprintf("Week %d", week)
	case WeekPlayoffQuarterfinal:
		if ctx == LabelCompact {
			return "CFP QF"
		}
		return "CFP Quarterfinal"
	case WeekPlayoffSemifinal:
		if ctx == LabelCompact {
			return "CFP SF"
		}
		return "CFP Semifinal"
	case WeekPlayoffChampionship:
		if ctx == LabelCompact {
			return "Natty"
		}
		return "CFP Championship"
	case WeekHeisman:
		return "Heisman"
	default:
		if ctx == LabelCompact {
			return fmt.Sprintf("Wk %d", week)
		}
		return fmt.Sprintf("Week %d", week)
	}
}
