package league

import (
	"errors"
	"time"
)

type League struct {
	ID        string
	Name      string
	SeasonID  string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

func (l League) Validate() error {
	if l.Name == "" {
		return errors.New("league: name is required")
	}
	if l.SeasonID == "" {
		return errors.New("league: season id is required")
	}
	return nil
}

// Settings carries the per-league payout configuration. Base school scoring
// uses one global rule set per season; leagues only customize event bonus
// amounts and the high-points pot.
type Settings struct {
	LeagueID string

	ConfChampionshipWinBonus  float64
	ConfChampionshipLossBonus float64
	BowlAppearanceBonus       float64
	PlayoffFirstRoundBonus    float64
	PlayoffQuarterfinalBonus  float64
	PlayoffSemifinalBonus     float64
	ChampionshipWinBonus      float64
	ChampionshipLossBonus     float64
	HeismanBonus              float64

	HighPointsEnabled bool
	HighPointsAmount  float64
	// HighPointsAllowTies controls the weekly winner policy: when false, a
	// tie at the top pays nobody; when true, every max scorer is paid the
	// full amount.
	HighPointsAllowTies bool

	UpdatedAt time.Time
}

// DefaultSettings is applied to leagues that never customized their payouts.
func DefaultSettings(leagueID string) Settings {
	return Settings{
		LeagueID:                  leagueID,
		ConfChampionshipWinBonus:  2,
		ConfChampionshipLossBonus: 1,
		BowlAppearanceBonus:       1,
		PlayoffFirstRoundBonus:    2,
		PlayoffQuarterfinalBonus:  2,
		PlayoffSemifinalBonus:     2,
		ChampionshipWinBonus:      4,
		ChampionshipLossBonus:     2,
		HeismanBonus:              3,
		HighPointsEnabled:         true,
		HighPointsAmount:          5,
		HighPointsAllowTies:       false,
	}
}
