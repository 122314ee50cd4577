package postgres

import (
	"time"

	"github.com/gridironclub/cfb-fantasy/internal/domain/scoring"
)

type schoolWeeklyPointsTableModel struct {
	ID               string    `db:"id"`
	SeasonID         string    `db:"season_id"`
	SchoolID         string    `db:"school_id"`
	Week             int       `db:"week"`
	GameID           string    `db:"game_id"`
	BasePoints       int       `db:"base_points"`
	ConferencePoints int       `db:"conference_points"`
	FiftyPlusPoints  int       `db:"fifty_plus_points"`
	ShutoutPoints    int       `db:"shutout_points"`
	Ranked10Points   int       `db:"ranked10_points"`
	Ranked25Points   int       `db:"ranked25_points"`
	TotalPoints      int       `db:"total_points"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

type schoolWeeklyPointsInsertModel struct {
	ID               string `db:"id"`
	SeasonID         string `db:"season_id"`
	SchoolID         string `db:"school_id"`
	Week             int    `db:"week"`
	GameID           string `db:"game_id"`
	BasePoints       int    `db:"base_points"`
	ConferencePoints int    `db:"conference_points"`
	FiftyPlusPoints  int    `db:"fifty_plus_points"`
	ShutoutPoints    int    `db:"shutout_points"`
	Ranked10Points   int    `db:"ranked10_points"`
	Ranked25Points   int    `db:"ranked25_points"`
	TotalPoints      int    `db:"total_points"`
}

func (m schoolWeeklyPointsTableModel) toDomain() scoring.SchoolWeeklyPoints {
	return scoring.SchoolWeeklyPoints{
		ID:               m.ID,
		SeasonID:         m.SeasonID,
		SchoolID:         m.SchoolID,
		Week:             m.Week,
		GameID:           m.GameID,
		BasePoints:       m.BasePoints,
		ConferencePoints: m.ConferencePoints,
		FiftyPlusPoints:  m.FiftyPlusPoints,
		ShutoutPoints:    m.ShutoutPoints,
		Ranked10Points:   m.Ranked10Points,
		Ranked25Points:   m.Ranked25Points,
		TotalPoints:      m.TotalPoints,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func weeklyPointsToInsertModel(row scoring.SchoolWeeklyPoints) schoolWeeklyPointsInsertModel {
	return schoolWeeklyPointsInsertModel{
		ID:               row.ID,
		SeasonID:         row.SeasonID,
		SchoolID:         row.SchoolID,
		Week:             row.Week,
		GameID:           row.GameID,
		BasePoints:       row.BasePoints,
		ConferencePoints: row.ConferencePoints,
		FiftyPlusPoints:  row.FiftyPlusPoints,
		ShutoutPoints:    row.ShutoutPoints,
		Ranked10Points:   row.Ranked10Points,
		Ranked25Points:   row.Ranked25Points,
		TotalPoints:      row.TotalPoints,
	}
}
