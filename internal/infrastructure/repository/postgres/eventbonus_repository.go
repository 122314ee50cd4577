package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/gridironclub/cfb-fantasy/internal/domain/eventbonus"
	qb "github.com/gridironclub/cfb-fantasy/internal/platform/querybuilder"
)

type eventBonusTableModel struct {
	ID        string    `db:"id"`
	LeagueID  string    `db:"league_id"`
	SeasonID  string    `db:"season_id"`
	SchoolID  string    `db:"school_id"`
	Week      int       `db:"week"`
	BonusType string    `db:"bonus_type"`
	Points    float64   `db:"points"`
	GameID    *string   `db:"game_id"`
	CreatedAt time.Time `db:"created_at"`
}

type eventBonusInsertModel struct {
	ID        string  `db:"id"`
	LeagueID  string  `db:"league_id"`
	SeasonID  string  `db:"season_id"`
	SchoolID  string  `db:"school_id"`
	Week      int     `db:"week"`
	BonusType string  `db:"bonus_type"`
	Points    float64 `db:"points"`
	GameID    *string `db:"game_id"`
}

func (m eventBonusTableModel) toDomain() eventbonus.LeagueSchoolEventBonus {
	return eventbonus.LeagueSchoolEventBonus{
		ID:        m.ID,
		LeagueID:  m.LeagueID,
		SeasonID:  m.SeasonID,
		SchoolID:  m.SchoolID,
		Week:      m.Week,
		BonusType: eventbonus.BonusType(m.BonusType),
		Points:    m.Points,
		GameID:    m.GameID,
		CreatedAt: m.CreatedAt,
	}
}

var _ eventbonus.Repository = (*EventBonusRepository)(nil)

type EventBonusRepository struct {
	db *sqlx.DB
}

func NewEventBonusRepository(db *sqlx.DB) *EventBonusRepository {
	return &EventBonusRepository{db: db}
}

func (r *EventBonusRepository) ListByLeagueSeason(ctx context.Context, leagueID, seasonID string) ([]eventbonus.LeagueSchoolEventBonus, error) {
	query, args, err := qb.Select("*").From("league_school_event_bonuses").
		Where(
			qb.Eq("league_id", leagueID),
			qb.Eq("season_id", seasonID),
		).
		OrderBy("week", "school_id", "bonus_type").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list event bonuses query: %w", err)
	}
	return r.selectRows(ctx, query, args)
}

func (r *EventBonusRepository) ListByLeagueWeek(ctx context.Context, leagueID, seasonID string, week int) ([]eventbonus.LeagueSchoolEventBonus, error) {
	query, args, err := qb.Select("*").From("league_school_event_bonuses").
		Where(
			qb.Eq("league_id", leagueID),
			qb.Eq("season_id", seasonID),
			qb.Eq("week", week),
		).
		OrderBy("school_id", "bonus_type").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list week event bonuses query: %w", err)
	}
	return r.selectRows(ctx, query, args)
}

// ReplaceLeagueSeason rewrites all of a league's bonus rows for the season so
// recalculation never double-pays.
func (r *EventBonusRepository) ReplaceLeagueSeason(ctx context.Context, leagueID, seasonID string, rows []eventbonus.LeagueSchoolEventBonus) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace event bonuses: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := qb.DeleteFrom("league_school_event_bonuses").
		Where(
			qb.Eq("league_id", leagueID),
			qb.Eq("season_id", seasonID),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear event bonuses query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return fmt.Errorf("clear event bonuses: %w", err)
	}

	if len(rows) > 0 {
		models := make([]eventBonusInsertModel, 0, len(rows))
		for _, row := range rows {
			models = append(models, eventBonusInsertModel{
				ID:        row.ID,
				LeagueID:  row.LeagueID,
				SeasonID:  row.SeasonID,
				SchoolID:  row.SchoolID,
				Week:      row.Week,
				BonusType: string(row.BonusType),
				Points:    row.Points,
				GameID:    row.GameID,
			})
		}
		query, args, err := qb.InsertModels("league_school_event_bonuses", models, "")
		if err != nil {
			return fmt.Errorf("build insert event bonuses query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert event bonuses: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace event bonuses: %w", err)
	}
	return nil
}

func (r *EventBonusRepository) selectRows(ctx context.Context, query string, args []any) ([]eventbonus.LeagueSchoolEventBonus, error) {
	var rows []eventBonusTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select event bonuses: %w", err)
	}
	out := make([]eventbonus.LeagueSchoolEventBonus, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
