package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridironclub/cfb-fantasy/internal/domain/scoring"
	qb "github.com/gridironclub/cfb-fantasy/internal/platform/querybuilder"
)

var _ scoring.Repository = (*ScoringRepository)(nil)

type ScoringRepository struct {
	db *sqlx.DB
}

func NewScoringRepository(db *sqlx.DB) *ScoringRepository {
	return &ScoringRepository{db: db}
}

func (r *ScoringRepository) ListBySeasonWeek(ctx context.Context, seasonID string, week int) ([]scoring.SchoolWeeklyPoints, error) {
	query, args, err := qb.Select("*").From("school_weekly_points").
		Where(
			qb.Eq("season_id", seasonID),
			qb.Eq("week", week),
		).
		OrderBy("school_id", "game_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list school weekly points query: %w", err)
	}
	return r.selectRows(ctx, query, args)
}

func (r *ScoringRepository) ListBySchoolSeason(ctx context.Context, seasonID, schoolID string) ([]scoring.SchoolWeeklyPoints, error) {
	query, args, err := qb.Select("*").From("school_weekly_points").
		Where(
			qb.Eq("season_id", seasonID),
			qb.Eq("school_id", schoolID),
		).
		OrderBy("week", "game_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list school season points query: %w", err)
	}
	return r.selectRows(ctx, query, args)
}

// SumBySchoolWeek sums across game rows because a school can play more than
// one game in a nominal week.
func (r *ScoringRepository) SumBySchoolWeek(ctx context.Context, seasonID string, week int) (map[string]int, error) {
	query, args, err := qb.Select("school_id", "COALESCE(SUM(total_points), 0) AS total_points").
		From("school_weekly_points").
		Where(
			qb.Eq("season_id", seasonID),
			qb.Eq("week", week),
		).
		GroupBy("school_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build sum school week points query: %w", err)
	}

	var rows []struct {
		SchoolID    string `db:"school_id"`
		TotalPoints int    `db:"total_points"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("sum school week points: %w", err)
	}

	out := make(map[string]int, len(rows))
	for _, row := range rows {
		out[row.SchoolID] = row.TotalPoints
	}
	return out, nil
}

// ReplaceWeek deletes the week's rows and batch-inserts the recomputed set in
// one transaction. Derived rows skip the soft-delete convention.
func (r *ScoringRepository) ReplaceWeek(ctx context.Context, seasonID string, week int, rows []scoring.SchoolWeeklyPoints) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace week points: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := qb.DeleteFrom("school_weekly_points").
		Where(
			qb.Eq("season_id", seasonID),
			qb.Eq("week", week),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear week points query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return fmt.Errorf("clear week points: %w", err)
	}

	if len(rows) > 0 {
		models := make([]schoolWeeklyPointsInsertModel, 0, len(rows))
		for _, row := range rows {
			models = append(models, weeklyPointsToInsertModel(row))
		}
		query, args, err := qb.InsertModels("school_weekly_points", models, "")
		if err != nil {
			return fmt.Errorf("build insert week points query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert week points: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace week points: %w", err)
	}
	return nil
}

func (r *ScoringRepository) selectRows(ctx context.Context, query string, args []any) ([]scoring.SchoolWeeklyPoints, error) {
	var rows []schoolWeeklyPointsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select school weekly points: %w", err)
	}
	out := make([]scoring.SchoolWeeklyPoints, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
