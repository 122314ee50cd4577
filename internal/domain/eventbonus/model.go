package eventbonus

import "time"

// BonusType enumerates the postseason events a league pays out for.
type BonusType string

const (
	BonusConfChampionshipWin  BonusType = "conf_championship_win"
	BonusConfChampionshipLoss BonusType = "conf_championship_loss"
	BonusBowlAppearance       BonusType = "bowl_appearance"
	BonusPlayoffFirstRound    BonusType = "cfp_first_round"
	BonusPlayoffQuarterfinal  BonusType = "cfp_quarterfinal"
	BonusPlayoffSemifinal     BonusType = "cfp_semifinal"
	BonusChampionshipWin      BonusType = "championship_win"
	BonusChampionshipLoss     BonusType = "championship_loss"
	BonusHeisman              BonusType = "heisman"
)

func (t BonusType) Valid() bool {
	switch t {
	case BonusConfChampionshipWin, BonusConfChampionshipLoss, BonusBowlAppearance,
		BonusPlayoffFirstRound, BonusPlayoffQuarterfinal, BonusPlayoffSemifinal,
		BonusChampionshipWin, BonusChampionshipLoss, BonusHeisman:
		return true
	}
	return false
}

// LeagueSchoolEventBonus is one league-specific payout for a school's
// postseason event. GameID is nil for byes and the Heisman award, which have
// no originating game.
type LeagueSchoolEventBonus struct {
	ID        string
	LeagueID  string
	SeasonID  string
	SchoolID  string
	Week      int
	BonusType BonusType
	Points    float64
	GameID    *string
	CreatedAt time.Time
}
