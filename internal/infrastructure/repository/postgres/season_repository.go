package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/gridironclub/cfb-fantasy/internal/domain/season"
	qb "github.com/gridironclub/cfb-fantasy/internal/platform/querybuilder"
)

type seasonTableModel struct {
	ID        string    `db:"id"`
	Year      int       `db:"year"`
	StartDate time.Time `db:"start_date"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type heismanTableModel struct {
	ID         string    `db:"id"`
	SeasonID   string    `db:"season_id"`
	SchoolID   string    `db:"school_id"`
	PlayerName string    `db:"player_name"`
	AwardedAt  time.Time `db:"awarded_at"`
}

func (m seasonTableModel) toDomain() season.Season {
	return season.Season{
		ID:        m.ID,
		Year:      m.Year,
		StartDate: m.StartDate,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

var _ season.Repository = (*SeasonRepository)(nil)

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func (r *SeasonRepository) GetByID(ctx context.Context, id string) (*season.Season, error) {
	query, args, err := qb.Select("*").From("seasons").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build get season query: %w", err)
	}

	var row seasonTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get season: %w", err)
	}

	s := row.toDomain()
	return &s, nil
}

func (r *SeasonRepository) GetByYear(ctx context.Context, year int) (*season.Season, error) {
	query, args, err := qb.Select("*").From("seasons").
		Where(qb.Eq("year", year)).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build get season by year query: %w", err)
	}

	var row seasonTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get season by year: %w", err)
	}

	s := row.toDomain()
	return &s, nil
}

func (r *SeasonRepository) Upsert(ctx context.Context, s season.Season) error {
	insertModel := struct {
		ID        string    `db:"id"`
		Year      int       `db:"year"`
		StartDate time.Time `db:"start_date"`
	}{ID: s.ID, Year: s.Year, StartDate: s.StartDate}

	query, args, err := qb.InsertModel("seasons", insertModel, `ON CONFLICT (year)
DO UPDATE SET
    start_date = EXCLUDED.start_date,
    updated_at = NOW()`)
	if err != nil {
		return fmt.Errorf("build upsert season query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert season: %w", err)
	}
	return nil
}

func (r *SeasonRepository) GetHeismanWinner(ctx context.Context, seasonID string) (*season.HeismanWinner, error) {
	query, args, err := qb.Select("*").From("heisman_winners").
		Where(qb.Eq("season_id", seasonID)).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build get heisman winner query: %w", err)
	}

	var row heismanTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get heisman winner: %w", err)
	}

	return &season.HeismanWinner{
		ID:         row.ID,
		SeasonID:   row.SeasonID,
		SchoolID:   row.SchoolID,
		PlayerName: row.PlayerName,
		AwardedAt:  row.AwardedAt,
	}, nil
}

func (r *SeasonRepository) UpsertHeismanWinner(ctx context.Context, w season.HeismanWinner) error {
	insertModel := struct {
		ID         string    `db:"id"`
		SeasonID   string    `db:"season_id"`
		SchoolID   string    `db:"school_id"`
		PlayerName string    `db:"player_name"`
		AwardedAt  time.Time `db:"awarded_at"`
	}{ID: w.ID, SeasonID: w.SeasonID, SchoolID: w.SchoolID, PlayerName: w.PlayerName, AwardedAt: w.AwardedAt}

	query, args, err := qb.InsertModel("heisman_winners", insertModel, `ON CONFLICT (season_id)
DO UPDATE SET
    school_id = EXCLUDED.school_id,
    player_name = EXCLUDED.player_name,
    awarded_at = EXCLUDED.awarded_at`)
	if err != nil {
		return fmt.Errorf("build upsert heisman winner query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert heisman winner: %w", err)
	}
	return nil
}
