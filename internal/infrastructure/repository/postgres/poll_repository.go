package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/gridironclub/cfb-fantasy/internal/domain/poll"
	qb "github.com/gridironclub/cfb-fantasy/internal/platform/querybuilder"
)

type rankingTableModel struct {
	ID        string    `db:"id"`
	SeasonID  string    `db:"season_id"`
	Week      int       `db:"week"`
	SchoolID  string    `db:"school_id"`
	Rank      int       `db:"rank"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type rankingInsertModel struct {
	ID       string `db:"id"`
	SeasonID string `db:"season_id"`
	Week     int    `db:"week"`
	SchoolID string `db:"school_id"`
	Rank     int    `db:"rank"`
}

var _ poll.Repository = (*PollRepository)(nil)

type PollRepository struct {
	db *sqlx.DB
}

func NewPollRepository(db *sqlx.DB) *PollRepository {
	return &PollRepository{db: db}
}

func (r *PollRepository) ListBySeasonWeek(ctx context.Context, seasonID string, week int) ([]poll.Ranking, error) {
	query, args, err := qb.Select("*").From("ap_rankings").
		Where(
			qb.Eq("season_id", seasonID),
			qb.Eq("week", week),
		).
		OrderBy("rank").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list rankings query: %w", err)
	}

	var rows []rankingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select rankings: %w", err)
	}

	out := make([]poll.Ranking, 0, len(rows))
	for _, row := range rows {
		out = append(out, poll.Ranking{
			ID:       row.ID,
			SeasonID: row.SeasonID,
			Week:     row.Week,
			SchoolID: row.SchoolID,
			Rank:     row.Rank,
		})
	}
	return out, nil
}

// ReplaceWeek rewrites one week's poll in a single transaction. Ranking rows
// are derived data, so they are hard-deleted rather than soft-deleted.
func (r *PollRepository) ReplaceWeek(ctx context.Context, seasonID string, week int, rankings []poll.Ranking) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace rankings: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := qb.DeleteFrom("ap_rankings").
		Where(
			qb.Eq("season_id", seasonID),
			qb.Eq("week", week),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear rankings query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return fmt.Errorf("clear rankings: %w", err)
	}

	if len(rankings) > 0 {
		models := make([]rankingInsertModel, 0, len(rankings))
		for _, rk := range rankings {
			models = append(models, rankingInsertModel{
				ID:       rk.ID,
				SeasonID: rk.SeasonID,
				Week:     rk.Week,
				SchoolID: rk.SchoolID,
				Rank:     rk.Rank,
			})
		}
		query, args, err := qb.InsertModels("ap_rankings", models, "")
		if err != nil {
			return fmt.Errorf("build insert rankings query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert rankings: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace rankings: %w", err)
	}
	return nil
}
