package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridironclub/cfb-fantasy/internal/domain/game"
	qb "github.com/gridironclub/cfb-fantasy/internal/platform/querybuilder"
)

var _ game.Repository = (*GameRepository)(nil)

type GameRepository struct {
	db *sqlx.DB
}

func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) GetByID(ctx context.Context, id string) (*game.Game, error) {
	query, args, err := qb.Select("*").From("games").
		Where(
			qb.Eq("id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build get game query: %w", err)
	}

	var row gameTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get game: %w", err)
	}

	g := row.toDomain()
	return &g, nil
}

func (r *GameRepository) ListBySeasonWeek(ctx context.Context, seasonID string, week int) ([]game.Game, error) {
	query, args, err := qb.Select("*").From("games").
		Where(
			qb.Eq("season_id", seasonID),
			qb.Eq("week", week),
			qb.IsNull("deleted_at"),
		).
		OrderBy("kickoff_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list games query: %w", err)
	}
	return r.selectGames(ctx, query, args)
}

func (r *GameRepository) ListCompletedBySeasonWeek(ctx context.Context, seasonID string, week int) ([]game.Game, error) {
	query, args, err := qb.Select("*").From("games").
		Where(
			qb.Eq("season_id", seasonID),
			qb.Eq("week", week),
			qb.Eq("status", game.StatusCompleted),
			qb.Expr("home_score IS NOT NULL"),
			qb.Expr("away_score IS NOT NULL"),
			qb.IsNull("deleted_at"),
		).
		OrderBy("kickoff_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list completed games query: %w", err)
	}
	return r.selectGames(ctx, query, args)
}

func (r *GameRepository) ListPlayoffBySeason(ctx context.Context, seasonID string) ([]game.Game, error) {
	query, args, err := qb.Select("*").From("games").
		Where(
			qb.Eq("season_id", seasonID),
			qb.Eq("is_playoff_game", true),
			qb.IsNull("deleted_at"),
		).
		OrderBy("week", "kickoff_at").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list playoff games query: %w", err)
	}
	return r.selectGames(ctx, query, args)
}

// UpsertGames keys on the provider's event id so repeated scoreboard syncs
// update scores and status in place.
func (r *GameRepository) UpsertGames(ctx context.Context, games []game.Game) error {
	if len(games) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx upsert games: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, g := range games {
		insertModel := gameToInsertModel(g)
		query, args, err := qb.InsertModel("games", insertModel, `ON CONFLICT (game_ref_id) WHERE deleted_at IS NULL
DO UPDATE SET
    week = EXCLUDED.week,
    home_school_id = EXCLUDED.home_school_id,
    away_school_id = EXCLUDED.away_school_id,
    home_score = EXCLUDED.home_score,
    away_score = EXCLUDED.away_score,
    home_rank = EXCLUDED.home_rank,
    away_rank = EXCLUDED.away_rank,
    status = EXCLUDED.status,
    headline = EXCLUDED.headline,
    is_conference_game = EXCLUDED.is_conference_game,
    is_bowl_game = EXCLUDED.is_bowl_game,
    is_playoff_game = EXCLUDED.is_playoff_game,
    playoff_round = EXCLUDED.playoff_round,
    kickoff_at = EXCLUDED.kickoff_at,
    updated_at = NOW()`)
		if err != nil {
			return fmt.Errorf("build upsert game query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert game ref=%d: %w", g.GameRefID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert games: %w", err)
	}
	return nil
}

func (r *GameRepository) selectGames(ctx context.Context, query string, args []any) ([]game.Game, error) {
	var rows []gameTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select games: %w", err)
	}
	out := make([]game.Game, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
