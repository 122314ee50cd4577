package app

import (
	"context"
	"time"

	"github.com/gridironclub/cfb-fantasy/internal/domain/season"
)

// StartBackgroundJobs launches the periodic sync and reconcile loops. They
// stop when ctx is cancelled.
func (a *App) StartBackgroundJobs(ctx context.Context) {
	go a.runGamedaySyncLoop(ctx)
	go a.runReconcileLoop(ctx)
}

func (a *App) runGamedaySyncLoop(ctx context.Context) {
	if a.syncService == nil {
		a.logger.Info("gameday sync loop disabled", "reason", "ESPN_ENABLED=false")
		return
	}

	a.logger.Info("gameday sync loop starting", "interval", a.cfg.GamedaySyncInterval)
	ticker := time.NewTicker(a.cfg.GamedaySyncInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.syncGameday(ctx)
		}
	}
}

func (a *App) syncGameday(ctx context.Context) {
	now := time.Now().UTC()
	seasonYear := season.SeasonYearFor(now)
	inWindow, err := a.syncService.ShouldSyncNow(ctx, seasonYear, now)
	if err != nil {
		a.logger.WarnContext(ctx, "gameday window check failed", "season_year", seasonYear, "error", err)
		return
	}
	if !inWindow {
		return
	}
	result, err := a.syncService.SyncDate(ctx, seasonYear, now)
	if err != nil {
		a.logger.WarnContext(ctx, "gameday sync failed", "season_year", seasonYear, "error", err)
		return
	}
	a.logger.InfoContext(ctx, "gameday sync complete",
		"season_year", seasonYear,
		"week", result.Week,
		"games_upserted", result.GamesUpserted,
	)
	if result.GamesUpserted == 0 {
		return
	}
	a.recalcAfterSync(ctx, seasonYear, result.Week)
}

func (a *App) recalcAfterSync(ctx context.Context, seasonYear, week int) {
	seasonRow, err := a.seasonRepo.GetByYear(ctx, seasonYear)
	if err != nil {
		a.logger.WarnContext(ctx, "season lookup after sync failed", "season_year", seasonYear, "error", err)
		return
	}
	if seasonRow == nil {
		a.logger.WarnContext(ctx, "season lookup after sync returned nothing", "season_year", seasonYear)
		return
	}
	runResult, err := a.seasonRunner.RunWeek(ctx, seasonRow.ID, week)
	if err != nil {
		a.logger.WarnContext(ctx, "post-sync recalculation failed", "season_id", seasonRow.ID, "week", week, "error", err)
		return
	}
	a.logger.InfoContext(ctx, "post-sync recalculation complete",
		"season_id", seasonRow.ID,
		"week", week,
		"rows_calculated", runResult.RowsCalculated,
		"leagues_updated", runResult.LeaguesUpdated,
	)
}

func (a *App) runReconcileLoop(ctx context.Context) {
	a.logger.Info("reconcile loop starting", "interval", a.cfg.ReconcileInterval)
	ticker := time.NewTicker(a.cfg.ReconcileInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			result, err := a.reconcileService.Reconcile(ctx)
			if err != nil {
				a.logger.WarnContext(ctx, "scheduled reconcile failed", "error", err)
				continue
			}
			a.logger.InfoContext(ctx, "scheduled reconcile complete",
				"teams_checked", result.TeamsChecked,
				"team_points_fixed", result.TeamPointsFixed,
				"high_points_fixed", result.HighPointsFixed,
			)
		}
	}
}
