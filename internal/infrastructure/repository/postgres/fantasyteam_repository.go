package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/gridironclub/cfb-fantasy/internal/domain/fantasyteam"
	qb "github.com/gridironclub/cfb-fantasy/internal/platform/querybuilder"
)

var _ fantasyteam.Repository = (*FantasyTeamRepository)(nil)

type FantasyTeamRepository struct {
	db *sqlx.DB
}

func NewFantasyTeamRepository(db *sqlx.DB) *FantasyTeamRepository {
	return &FantasyTeamRepository{db: db}
}

func (r *FantasyTeamRepository) GetByID(ctx context.Context, id string) (*fantasyteam.FantasyTeam, error) {
	query, args, err := qb.Select("*").From("fantasy_teams").
		Where(
			qb.Eq("id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build get fantasy team query: %w", err)
	}

	var row fantasyTeamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fantasy team: %w", err)
	}

	t := row.toDomain()
	return &t, nil
}

func (r *FantasyTeamRepository) ListByLeague(ctx context.Context, leagueID string) ([]fantasyteam.FantasyTeam, error) {
	query, args, err := qb.Select("*").From("fantasy_teams").
		Where(
			qb.Eq("league_id", leagueID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list fantasy teams query: %w", err)
	}
	return r.selectTeams(ctx, query, args)
}

func (r *FantasyTeamRepository) ListAll(ctx context.Context) ([]fantasyteam.FantasyTeam, error) {
	query, args, err := qb.Select("*").From("fantasy_teams").
		Where(qb.IsNull("deleted_at")).
		OrderBy("league_id", "name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list all fantasy teams query: %w", err)
	}
	return r.selectTeams(ctx, query, args)
}

func (r *FantasyTeamRepository) UpdateAggregates(ctx context.Context, teamID string, totalPoints, highPointsWinnings float64) error {
	query, args, err := qb.Update("fantasy_teams").
		Set("total_points", totalPoints).
		Set("high_points_winnings", highPointsWinnings).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("id", teamID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update team aggregates query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update team aggregates: %w", err)
	}
	return nil
}

func (r *FantasyTeamRepository) ListRosterPeriods(ctx context.Context, teamID string) ([]fantasyteam.RosterPeriod, error) {
	query, args, err := qb.Select("*").From("roster_periods").
		Where(qb.Eq("fantasy_team_id", teamID)).
		OrderBy("start_week", "school_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list roster periods query: %w", err)
	}

	var rows []rosterPeriodTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select roster periods: %w", err)
	}

	out := make([]fantasyteam.RosterPeriod, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *FantasyTeamRepository) ListWeeklyPointsByTeam(ctx context.Context, teamID string) ([]fantasyteam.FantasyTeamWeeklyPoints, error) {
	query, args, err := qb.Select("*").From("fantasy_team_weekly_points").
		Where(qb.Eq("fantasy_team_id", teamID)).
		OrderBy("week").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list team weekly points query: %w", err)
	}
	return r.selectWeeklyPoints(ctx, query, args)
}

func (r *FantasyTeamRepository) ListWeeklyPointsByLeagueWeek(ctx context.Context, leagueID string, week int) ([]fantasyteam.FantasyTeamWeeklyPoints, error) {
	query, args, err := qb.Select("*").From("fantasy_team_weekly_points").
		Where(
			qb.Eq("league_id", leagueID),
			qb.Eq("week", week),
		).
		OrderBy("fantasy_team_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list league week points query: %w", err)
	}
	return r.selectWeeklyPoints(ctx, query, args)
}

func (r *FantasyTeamRepository) ListWeeksWithPoints(ctx context.Context, leagueID string) ([]int, error) {
	query, args, err := qb.Select("DISTINCT week").From("fantasy_team_weekly_points").
		Where(qb.Eq("league_id", leagueID)).
		OrderBy("week").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list weeks query: %w", err)
	}

	var weeks []int
	if err := r.db.SelectContext(ctx, &weeks, query, args...); err != nil {
		return nil, fmt.Errorf("select weeks with points: %w", err)
	}
	return weeks, nil
}

// UpsertWeeklyPoints writes team week totals without touching the winner
// columns, which are settled separately by SetHighPoints.
func (r *FantasyTeamRepository) UpsertWeeklyPoints(ctx context.Context, rows []fantasyteam.FantasyTeamWeeklyPoints) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx upsert team weekly points: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, row := range rows {
		insertModel := teamWeeklyPointsInsertModel{
			ID:            row.ID,
			FantasyTeamID: row.FantasyTeamID,
			LeagueID:      row.LeagueID,
			Week:          row.Week,
			Points:        row.Points,
		}
		query, args, err := qb.InsertModel("fantasy_team_weekly_points", insertModel, `ON CONFLICT (fantasy_team_id, week)
DO UPDATE SET
    points = EXCLUDED.points,
    updated_at = NOW()`)
		if err != nil {
			return fmt.Errorf("build upsert team weekly points query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert team weekly points team=%s week=%d: %w", row.FantasyTeamID, row.Week, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert team weekly points: %w", err)
	}
	return nil
}

// SetHighPoints marks the winner set for a league week and clears the flags
// on every other row in one transaction.
func (r *FantasyTeamRepository) SetHighPoints(ctx context.Context, leagueID string, week int, winnerTeamIDs []string, amount float64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx set high points: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := qb.Update("fantasy_team_weekly_points").
		Set("is_high_points_winner", false).
		Set("high_points_amount", 0).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("league_id", leagueID),
			qb.Eq("week", week),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear high points query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return fmt.Errorf("clear high points flags: %w", err)
	}

	if len(winnerTeamIDs) > 0 {
		markQuery, markArgs, err := qb.Update("fantasy_team_weekly_points").
			Set("is_high_points_winner", true).
			Set("high_points_amount", amount).
			SetExpr("updated_at", "NOW()").
			Where(
				qb.Eq("league_id", leagueID),
				qb.Eq("week", week),
				qb.Expr("fantasy_team_id = ANY(?)", pq.Array(winnerTeamIDs)),
			).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build mark high points query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, markQuery, markArgs...); err != nil {
			return fmt.Errorf("mark high points winners: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit set high points: %w", err)
	}
	return nil
}

func (r *FantasyTeamRepository) selectTeams(ctx context.Context, query string, args []any) ([]fantasyteam.FantasyTeam, error) {
	var rows []fantasyTeamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select fantasy teams: %w", err)
	}
	out := make([]fantasyteam.FantasyTeam, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *FantasyTeamRepository) selectWeeklyPoints(ctx context.Context, query string, args []any) ([]fantasyteam.FantasyTeamWeeklyPoints, error) {
	var rows []teamWeeklyPointsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select team weekly points: %w", err)
	}
	out := make([]fantasyteam.FantasyTeamWeeklyPoints, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
