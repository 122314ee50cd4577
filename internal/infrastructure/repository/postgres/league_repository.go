package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridironclub/cfb-fantasy/internal/domain/league"
	qb "github.com/gridironclub/cfb-fantasy/internal/platform/querybuilder"
)

var _ league.Repository = (*LeagueRepository)(nil)

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) GetByID(ctx context.Context, id string) (*league.League, error) {
	query, args, err := qb.Select("*").From("leagues").
		Where(
			qb.Eq("id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build get league query: %w", err)
	}

	var row leagueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get league: %w", err)
	}

	l := row.toDomain()
	return &l, nil
}

func (r *LeagueRepository) ListBySeason(ctx context.Context, seasonID string) ([]league.League, error) {
	query, args, err := qb.Select("*").From("leagues").
		Where(
			qb.Eq("season_id", seasonID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list leagues query: %w", err)
	}

	var rows []leagueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select leagues: %w", err)
	}

	out := make([]league.League, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *LeagueRepository) GetSettings(ctx context.Context, leagueID string) (*league.Settings, error) {
	query, args, err := qb.Select("*").From("league_settings").
		Where(qb.Eq("league_id", leagueID)).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build get league settings query: %w", err)
	}

	var row leagueSettingsTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get league settings: %w", err)
	}

	s := row.toDomain()
	return &s, nil
}

func (r *LeagueRepository) UpsertSettings(ctx context.Context, s league.Settings) error {
	insertModel := settingsToInsertModel(s)
	query, args, err := qb.InsertModel("league_settings", insertModel, `ON CONFLICT (league_id)
DO UPDATE SET
    conf_championship_win_bonus = EXCLUDED.conf_championship_win_bonus,
    conf_championship_loss_bonus = EXCLUDED.conf_championship_loss_bonus,
    bowl_appearance_bonus = EXCLUDED.bowl_appearance_bonus,
    playoff_first_round_bonus = EXCLUDED.playoff_first_round_bonus,
    playoff_quarterfinal_bonus = EXCLUDED.playoff_quarterfinal_bonus,
    playoff_semifinal_bonus = EXCLUDED.playoff_semifinal_bonus,
    championship_win_bonus = EXCLUDED.championship_win_bonus,
    championship_loss_bonus = EXCLUDED.championship_loss_bonus,
    heisman_bonus = EXCLUDED.heisman_bonus,
    high_points_enabled = EXCLUDED.high_points_enabled,
    high_points_amount = EXCLUDED.high_points_amount,
    high_points_allow_ties = EXCLUDED.high_points_allow_ties,
    updated_at = NOW()`)
	if err != nil {
		return fmt.Errorf("build upsert league settings query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert league settings: %w", err)
	}
	return nil
}
