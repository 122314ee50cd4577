package postgres

import (
	"time"

	"github.com/gridironclub/cfb-fantasy/internal/domain/game"
)

type gameTableModel struct {
	ID               string     `db:"id"`
	SeasonID         string     `db:"season_id"`
	Season           int        `db:"season"`
	Week             int        `db:"week"`
	HomeSchoolID     *string    `db:"home_school_id"`
	AwaySchoolID     *string    `db:"away_school_id"`
	HomeScore        *int       `db:"home_score"`
	AwayScore        *int       `db:"away_score"`
	HomeRank         *int       `db:"home_rank"`
	AwayRank         *int       `db:"away_rank"`
	Status           string     `db:"status"`
	Headline         string     `db:"headline"`
	IsConferenceGame bool       `db:"is_conference_game"`
	IsBowlGame       bool       `db:"is_bowl_game"`
	IsPlayoffGame    bool       `db:"is_playoff_game"`
	PlayoffRound     *string    `db:"playoff_round"`
	KickoffAt        time.Time  `db:"kickoff_at"`
	GameRefID        int64      `db:"game_ref_id"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
	DeletedAt        *time.Time `db:"deleted_at"`
}

type gameInsertModel struct {
	ID               string    `db:"id"`
	SeasonID         string    `db:"season_id"`
	Season           int       `db:"season"`
	Week             int       `db:"week"`
	HomeSchoolID     *string   `db:"home_school_id"`
	AwaySchoolID     *string   `db:"away_school_id"`
	HomeScore        *int      `db:"home_score"`
	AwayScore        *int      `db:"away_score"`
	HomeRank         *int      `db:"home_rank"`
	AwayRank         *int      `db:"away_rank"`
	Status           string    `db:"status"`
	Headline         string    `db:"headline"`
	IsConferenceGame bool      `db:"is_conference_game"`
	IsBowlGame       bool      `db:"is_bowl_game"`
	IsPlayoffGame    bool      `db:"is_playoff_game"`
	PlayoffRound     *string   `db:"playoff_round"`
	KickoffAt        time.Time `db:"kickoff_at"`
	GameRefID        int64     `db:"game_ref_id"`
}

func (m gameTableModel) toDomain() game.Game {
	g := game.Game{
		ID:               m.ID,
		SeasonID:         m.SeasonID,
		Season:           m.Season,
		Week:             m.Week,
		HomeSchoolID:     m.HomeSchoolID,
		AwaySchoolID:     m.AwaySchoolID,
		HomeScore:        m.HomeScore,
		AwayScore:        m.AwayScore,
		HomeRank:         m.HomeRank,
		AwayRank:         m.AwayRank,
		Status:           m.Status,
		Headline:         m.Headline,
		IsConferenceGame: m.IsConferenceGame,
		IsBowlGame:       m.IsBowlGame,
		IsPlayoffGame:    m.IsPlayoffGame,
		KickoffAt:        m.KickoffAt,
		GameRefID:        m.GameRefID,
	}
	if m.PlayoffRound != nil {
		g.PlayoffRound = *m.PlayoffRound
	}
	return g
}

func gameToInsertModel(g game.Game) gameInsertModel {
	m := gameInsertModel{
		ID:               g.ID,
		SeasonID:         g.SeasonID,
		Season:           g.Season,
		Week:             g.Week,
		HomeSchoolID:     g.HomeSchoolID,
		AwaySchoolID:     g.AwaySchoolID,
		HomeScore:        g.HomeScore,
		AwayScore:        g.AwayScore,
		HomeRank:         g.HomeRank,
		AwayRank:         g.AwayRank,
		Status:           g.Status,
		Headline:         g.Headline,
		IsConferenceGame: g.IsConferenceGame,
		IsBowlGame:       g.IsBowlGame,
		IsPlayoffGame:    g.IsPlayoffGame,
		KickoffAt:        g.KickoffAt,
		GameRefID:        g.GameRefID,
	}
	if g.PlayoffRound != "" {
		round := g.PlayoffRound
		m.PlayoffRound = &round
	}
	return m
}
