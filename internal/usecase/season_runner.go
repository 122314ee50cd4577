package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/sourcegraph/conc/pool"

	"github.com/gridironclub/cfb-fantasy/internal/domain/league"
	"github.com/gridironclub/cfb-fantasy/internal/domain/season"
	"github.com/gridironclub/cfb-fantasy/internal/platform/logging"
)

const defaultLeagueWorkers = 4

// RunWeekResult reports one full pipeline run for a week.
type RunWeekResult struct {
	Week           int      `json:"week"`
	RowsCalculated int      `json:"rows_calculated"`
	LeaguesUpdated int      `json:"leagues_updated"`
	Errors         []string `json:"errors,omitempty"`
}

// RunSeasonResult reports a whole-season backfill.
type RunSeasonResult struct {
	Weeks  []RunWeekResult `json:"weeks"`
	Errors []string        `json:"errors,omitempty"`
}

// SeasonRunner sequences the scoring pipeline. School scoring must land
// before event bonuses and team aggregation read it, so the runner executes
// strictly in that order per week and only fans out across leagues.
type SeasonRunner struct {
	weeklyPoints *WeeklyPointsService
	eventBonus   *EventBonusService
	teamPoints   *TeamPointsService
	leagueRepo   league.Repository
	logger       *logging.Logger
	maxWorkers   int
}

func NewSeasonRunner(
	weeklyPoints *WeeklyPointsService,
	eventBonus *EventBonusService,
	teamPoints *TeamPointsService,
	leagueRepo league.Repository,
	logger *logging.Logger,
	maxWorkers int,
) *SeasonRunner {
	if logger == nil {
		logger = logging.Default()
	}
	if maxWorkers <= 0 {
		maxWorkers = defaultLeagueWorkers
	}
	return &SeasonRunner{
		weeklyPoints: weeklyPoints,
		eventBonus:   eventBonus,
		teamPoints:   teamPoints,
		leagueRepo:   leagueRepo,
		logger:       logger,
		maxWorkers:   maxWorkers,
	}
}

// RunWeek executes aggregation, event bonuses, and team aggregation for one
// week across every league in the season.
func (s *SeasonRunner) RunWeek(ctx context.Context, seasonID string, week int) (RunWeekResult, error) {
	ctx, span := startUsecaseSpan(ctx, "SeasonRunner.RunWeek")
	defer span.End()

	result := RunWeekResult{Week: week}

	weekResult, err := s.weeklyPoints.RecalculateWeek(ctx, seasonID, week)
	if err != nil {
		return result, fmt.Errorf("recalculate week %d: %w", week, err)
	}
	result.RowsCalculated = weekResult.Calculated
	result.Errors = append(result.Errors, weekResult.Errors...)

	leagues, err := s.leagueRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return result, fmt.Errorf("list leagues: %w", err)
	}

	var mu sync.Mutex
	updated := 0
	p := pool.New().WithMaxGoroutines(s.maxWorkers)
	for _, lg := range leagues {
		lg := lg
		p.Go(func() {
			errs := s.runLeagueWeek(ctx, seasonID, lg.ID, week)
			mu.Lock()
			defer mu.Unlock()
			if len(errs) == 0 {
				updated++
			}
			result.Errors = append(result.Errors, errs...)
		})
	}
	p.Wait()

	result.LeaguesUpdated = updated
	return result, nil
}

// RunLeagueWeek reruns the league-scoped half of the pipeline for a single
// league, assuming school weekly points for the week already exist.
func (s *SeasonRunner) RunLeagueWeek(ctx context.Context, seasonID, leagueID string, week int) (RunWeekResult, error) {
	ctx, span := startUsecaseSpan(ctx, "SeasonRunner.RunLeagueWeek")
	defer span.End()

	result := RunWeekResult{Week: week}
	errs := s.runLeagueWeek(ctx, seasonID, leagueID, week)
	result.Errors = errs
	if len(errs) == 0 {
		result.LeaguesUpdated = 1
	}
	return result, nil
}

func (s *SeasonRunner) runLeagueWeek(ctx context.Context, seasonID, leagueID string, week int) []string {
	var errs []string

	if _, err := s.eventBonus.ApplyEventBonuses(ctx, seasonID, leagueID); err != nil {
		errs = append(errs, fmt.Sprintf("league %s: apply event bonuses: %v", leagueID, err))
		s.logger.WarnContext(ctx, "event bonus recalculation failed", "league_id", leagueID, "error", err)
	}

	teamResult, err := s.teamPoints.RecalculateTeamWeek(ctx, leagueID, week)
	if err != nil {
		errs = append(errs, fmt.Sprintf("league %s: team aggregation: %v", leagueID, err))
		s.logger.WarnContext(ctx, "team aggregation failed", "league_id", leagueID, "error", err)
		return errs
	}
	errs = append(errs, teamResult.Errors...)
	return errs
}

// RunSeason backfills every week from week zero through the Heisman slot, in
// order. A week's failure is recorded and the run continues.
func (s *SeasonRunner) RunSeason(ctx context.Context, seasonID string) (RunSeasonResult, error) {
	ctx, span := startUsecaseSpan(ctx, "SeasonRunner.RunSeason")
	defer span.End()

	var result RunSeasonResult
	for week := season.MinWeek; week <= season.MaxWeek; week++ {
		weekResult, err := s.RunWeek(ctx, seasonID, week)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("week %d: %v", week, err))
			continue
		}
		result.Weeks = append(result.Weeks, weekResult)
	}
	return result, nil
}
