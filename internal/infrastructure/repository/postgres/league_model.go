package postgres

import (
	"time"

	"github.com/gridironclub/cfb-fantasy/internal/domain/league"
)

type leagueTableModel struct {
	ID        string     `db:"id"`
	Name      string     `db:"name"`
	SeasonID  string     `db:"season_id"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type leagueSettingsTableModel struct {
	LeagueID string `db:"league_id"`

	ConfChampionshipWinBonus  float64 `db:"conf_championship_win_bonus"`
	ConfChampionshipLossBonus float64 `db:"conf_championship_loss_bonus"`
	BowlAppearanceBonus       float64 `db:"bowl_appearance_bonus"`
	PlayoffFirstRoundBonus    float64 `db:"playoff_first_round_bonus"`
	PlayoffQuarterfinalBonus  float64 `db:"playoff_quarterfinal_bonus"`
	PlayoffSemifinalBonus     float64 `db:"playoff_semifinal_bonus"`
	ChampionshipWinBonus      float64 `db:"championship_win_bonus"`
	ChampionshipLossBonus     float64 `db:"championship_loss_bonus"`
	HeismanBonus              float64 `db:"heisman_bonus"`

	HighPointsEnabled   bool    `db:"high_points_enabled"`
	HighPointsAmount    float64 `db:"high_points_amount"`
	HighPointsAllowTies bool    `db:"high_points_allow_ties"`

	UpdatedAt time.Time `db:"updated_at"`
}

func (m leagueTableModel) toDomain() league.League {
	return league.League{
		ID:        m.ID,
		Name:      m.Name,
		SeasonID:  m.SeasonID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: m.DeletedAt,
	}
}

func (m leagueSettingsTableModel) toDomain() league.Settings {
	return league.Settings{
		LeagueID:                  m.LeagueID,
		ConfChampionshipWinBonus:  m.ConfChampionshipWinBonus,
		ConfChampionshipLossBonus: m.ConfChampionshipLossBonus,
		BowlAppearanceBonus:       m.BowlAppearanceBonus,
		PlayoffFirstRoundBonus:    m.PlayoffFirstRoundBonus,
		PlayoffQuarterfinalBonus:  m.PlayoffQuarterfinalBonus,
		PlayoffSemifinalBonus:     m.PlayoffSemifinalBonus,
		ChampionshipWinBonus:      m.ChampionshipWinBonus,
		ChampionshipLossBonus:     m.ChampionshipLossBonus,
		HeismanBonus:              m.HeismanBonus,
		HighPointsEnabled:         m.HighPointsEnabled,
		HighPointsAmount:          m.HighPointsAmount,
		HighPointsAllowTies:       m.HighPointsAllowTies,
		UpdatedAt:                 m.UpdatedAt,
	}
}

type leagueSettingsInsertModel struct {
	LeagueID string `db:"league_id"`

	ConfChampionshipWinBonus  float64 `db:"conf_championship_win_bonus"`
	ConfChampionshipLossBonus float64 `db:"conf_championship_loss_bonus"`
	BowlAppearanceBonus       float64 `db:"bowl_appearance_bonus"`
	PlayoffFirstRoundBonus    float64 `db:"playoff_first_round_bonus"`
	PlayoffQuarterfinalBonus  float64 `db:"playoff_quarterfinal_bonus"`
	PlayoffSemifinalBonus     float64 `db:"playoff_semifinal_bonus"`
	ChampionshipWinBonus      float64 `db:"championship_win_bonus"`
	ChampionshipLossBonus     float64 `db:"championship_loss_bonus"`
	HeismanBonus              float64 `db:"heisman_bonus"`

	HighPointsEnabled   bool    `db:"high_points_enabled"`
	HighPointsAmount    float64 `db:"high_points_amount"`
	HighPointsAllowTies bool    `db:"high_points_allow_ties"`
}

func settingsToInsertModel(s league.Settings) leagueSettingsInsertModel {
	return leagueSettingsInsertModel{
		LeagueID:                  s.LeagueID,
		ConfChampionshipWinBonus:  s.ConfChampionshipWinBonus,
		ConfChampionshipLossBonus: s.ConfChampionshipLossBonus,
		BowlAppearanceBonus:       s.BowlAppearanceBonus,
		PlayoffFirstRoundBonus:    s.PlayoffFirstRoundBonus,
		PlayoffQuarterfinalBonus:  s.PlayoffQuarterfinalBonus,
		PlayoffSemifinalBonus:     s.PlayoffSemifinalBonus,
		ChampionshipWinBonus:      s.ChampionshipWinBonus,
		ChampionshipLossBonus:     s.ChampionshipLossBonus,
		HeismanBonus:              s.HeismanBonus,
		HighPointsEnabled:         s.HighPointsEnabled,
		HighPointsAmount:          s.HighPointsAmount,
		HighPointsAllowTies:       s.HighPointsAllowTies,
	}
}
