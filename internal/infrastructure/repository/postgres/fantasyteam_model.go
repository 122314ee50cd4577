package postgres

import (
	"time"

	"github.com/gridironclub/cfb-fantasy/internal/domain/fantasyteam"
)

type fantasyTeamTableModel struct {
	ID                 string     `db:"id"`
	LeagueID           string     `db:"league_id"`
	Name               string     `db:"name"`
	OwnerID            string     `db:"owner_id"`
	TotalPoints        float64    `db:"total_points"`
	HighPointsWinnings float64    `db:"high_points_winnings"`
	CreatedAt          time.Time  `db:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at"`
	DeletedAt          *time.Time `db:"deleted_at"`
}

type teamWeeklyPointsTableModel struct {
	ID                 string    `db:"id"`
	FantasyTeamID      string    `db:"fantasy_team_id"`
	LeagueID           string    `db:"league_id"`
	Week               int       `db:"week"`
	Points             float64   `db:"points"`
	IsHighPointsWinner bool      `db:"is_high_points_winner"`
	HighPointsAmount   float64   `db:"high_points_amount"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}

type teamWeeklyPointsInsertModel struct {
	ID            string  `db:"id"`
	FantasyTeamID string  `db:"fantasy_team_id"`
	LeagueID      string  `db:"league_id"`
	Week          int     `db:"week"`
	Points        float64 `db:"points"`
}

type rosterPeriodTableModel struct {
	ID            string `db:"id"`
	FantasyTeamID string `db:"fantasy_team_id"`
	SchoolID      string `db:"school_id"`
	StartWeek     int    `db:"start_week"`
	EndWeek       *int   `db:"end_week"`
}

func (m fantasyTeamTableModel) toDomain() fantasyteam.FantasyTeam {
	return fantasyteam.FantasyTeam{
		ID:                 m.ID,
		LeagueID:           m.LeagueID,
		Name:               m.Name,
		OwnerID:            m.OwnerID,
		TotalPoints:        m.TotalPoints,
		HighPointsWinnings: m.HighPointsWinnings,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
		DeletedAt:          m.DeletedAt,
	}
}

func (m teamWeeklyPointsTableModel) toDomain() fantasyteam.FantasyTeamWeeklyPoints {
	return fantasyteam.FantasyTeamWeeklyPoints{
		ID:                 m.ID,
		FantasyTeamID:      m.FantasyTeamID,
		LeagueID:           m.LeagueID,
		Week:               m.Week,
		Points:             m.Points,
		IsHighPointsWinner: m.IsHighPointsWinner,
		HighPointsAmount:   m.HighPointsAmount,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func (m rosterPeriodTableModel) toDomain() fantasyteam.RosterPeriod {
	return fantasyteam.RosterPeriod{
		ID:            m.ID,
		FantasyTeamID: m.FantasyTeamID,
		SchoolID:      m.SchoolID,
		StartWeek:     m.StartWeek,
		EndWeek:       m.EndWeek,
	}
}
