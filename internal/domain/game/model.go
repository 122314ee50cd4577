package game

import (
	"strings"
	"time"
)

const (
	StatusScheduled = "SCHEDULED"
	StatusLive      = "LIVE"
	StatusCompleted = "COMPLETED"
)

const (
	SideHome = "home"
	SideAway = "away"
)

const (
	PlayoffRoundFirstRound   = "first_round"
	PlayoffRoundQuarterfinal = "quarterfinal"
	PlayoffRoundSemifinal    = "semifinal"
	PlayoffRoundChampionship = "championship"
)

// UnrankedSentinel marks a rank value that means "not ranked". Provider feeds
// use 99 (and sometimes larger) for teams outside the Top 25.
const UnrankedSentinel = 99

// Game is one college football game. School ids are nullable because non-FBS
// opponents carry no school record.
type Game struct {
	ID           string
	SeasonID     string
	Season       int
	Week         int
	HomeSchoolID *string
	AwaySchoolID *string
	HomeScore    *int
	AwayScore    *int
	// HomeRank/AwayRank are the AP/CFP-seed ranks snapshotted on the game at
	// kickoff. They take precedence over the weekly poll table.
	HomeRank *int
	AwayRank *int
	Status   string
	Headline string
	// Classification flags, derived at sync time.
	IsConferenceGame bool
	IsBowlGame       bool
	IsPlayoffGame    bool
	PlayoffRound     string
	KickoffAt        time.Time
	// GameRefID is the scoreboard provider's event id.
	GameRefID int64
}

func NormalizeStatus(value string) string {
	status := strings.ToUpper(strings.TrimSpace(value))
	if status == "" {
		return StatusScheduled
	}
	switch status {
	case "FINAL", "FINISHED", "POST", "STATUS_FINAL":
		return StatusCompleted
	case "IN", "IN_PROGRESS", "STATUS_IN_PROGRESS":
		return StatusLive
	case "PRE", "STATUS_SCHEDULED":
		return StatusScheduled
	}
	return status
}

func IsCompletedStatus(status string) bool {
	return NormalizeStatus(status) == StatusCompleted
}

// Completed reports whether the game is final with both scores recorded.
func (g Game) Completed() bool {
	return IsCompletedStatus(g.Status) && g.HomeScore != nil && g.AwayScore != nil
}

// SideOf reports which side the school played: "home", "away", or "" when the
// school did not participate.
func (g Game) SideOf(schoolID string) string {
	if g.HomeSchoolID != nil && *g.HomeSchoolID == schoolID {
		return SideHome
	}
	if g.AwaySchoolID != nil && *g.AwaySchoolID == schoolID {
		return SideAway
	}
	return ""
}

// WinnerID returns the winning school id under strict score comparison. Ties
// and incomplete games have no winner.
func (g Game) WinnerID() *string {
	if !g.Completed() {
		return nil
	}
	if *g.HomeScore > *g.AwayScore {
		return g.HomeSchoolID
	}
	if *g.AwayScore > *g.HomeScore {
		return g.AwaySchoolID
	}
	return nil
}

// LoserID mirrors WinnerID for the losing side.
func (g Game) LoserID() *string {
	if !g.Completed() {
		return nil
	}
	if *g.HomeScore > *g.AwayScore {
		return g.AwaySchoolID
	}
	if *g.AwayScore > *g.HomeScore {
		return g.HomeSchoolID
	}
	return nil
}

// RankOfOpponent returns the game-level rank snapshot for the opponent of
// schoolID, or nil when absent. Rank sourcing precedence is game snapshot
// first, weekly poll second; the poll fallback lives with the caller.
func (g Game) RankOfOpponent(schoolID string) *int {
	switch g.SideOf(schoolID) {
	case SideHome:
		return g.AwayRank
	case SideAway:
		return g.HomeRank
	}
	return nil
}

// RankedForBonus reports whether a rank value is eligible for ranked-win
// bonuses. Nil, zero, and the unranked sentinel never qualify.
func RankedForBonus(rank *int) bool {
	if rank == nil {
		return false
	}
	return *rank > 0 && *rank < UnrankedSentinel
}
