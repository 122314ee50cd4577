package usecase

import (
	"context"
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"

	"github.com/gridironclub/cfb-fantasy/internal/domain/fantasyteam"
	"github.com/gridironclub/cfb-fantasy/internal/domain/league"
	"github.com/gridironclub/cfb-fantasy/internal/platform/logging"
)

// driftEpsilon is the tolerance before a cached aggregate counts as drifted.
const driftEpsilon = 0.01

const defaultReconcileWorkers = 8

// ReconcileResult reports one reconciliation run.
type ReconcileResult struct {
	TeamPointsFixed int      `json:"team_points_fixed"`
	HighPointsFixed int      `json:"high_points_fixed"`
	TeamsChecked    int      `json:"teams_checked"`
	Errors          []string `json:"errors,omitempty"`
}

// ReconcileService recomputes every team's cached aggregates from the
// authoritative weekly rows and corrects whatever has drifted. Multiple write
// paths touch the cached fields; the reconciler is the one that always wins.
type ReconcileService struct {
	teamRepo   fantasyteam.Repository
	leagueRepo league.Repository
	logger     *logging.Logger
	maxWorkers int
}

func NewReconcileService(
	teamRepo fantasyteam.Repository,
	leagueRepo league.Repository,
	logger *logging.Logger,
	maxWorkers int,
) *ReconcileService {
	if logger == nil {
		logger = logging.Default()
	}
	if maxWorkers <= 0 {
		maxWorkers = defaultReconcileWorkers
	}
	return &ReconcileService{
		teamRepo:   teamRepo,
		leagueRepo: leagueRepo,
		logger:     logger,
		maxWorkers: maxWorkers,
	}
}

// Reconcile repairs cached team aggregates and high-points-winner flags for
// every team and league. Per-unit failures are collected, not fatal.
func (s *ReconcileService) Reconcile(ctx context.Context) (ReconcileResult, error) {
	ctx, span := startUsecaseSpan(ctx, "ReconcileService.Reconcile")
	defer span.End()

	var result ReconcileResult

	teams, err := s.teamRepo.ListAll(ctx)
	if err != nil {
		return result, fmt.Errorf("list fantasy teams: %w", err)
	}
	result.TeamsChecked = len(teams)

	pool, err := ants.NewPool(s.maxWorkers)
	if err != nil {
		return result, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		fixed   atomic.Int64
		errMu   sync.Mutex
		errs    []string
		workers sync.WaitGroup
	)
	addErr := func(msg string) {
		errMu.Lock()
		errs = append(errs, msg)
		errMu.Unlock()
	}

	for _, team := range teams {
		team := team
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			didFix, err := s.reconcileTeam(ctx, team)
			if err != nil {
				addErr(fmt.Sprintf("team %s: %v", team.ID, err))
				return
			}
			if didFix {
				fixed.Add(1)
			}
		}); err != nil {
			workers.Done()
			return result, fmt.Errorf("submit reconcile task: %w", err)
		}
	}
	workers.Wait()

	result.TeamPointsFixed = int(fixed.Load())
	result.Errors = errs

	highFixed, hpErrs, err := s.reconcileHighPoints(ctx, teams)
	if err != nil {
		return result, err
	}
	result.HighPointsFixed = highFixed
	result.Errors = append(result.Errors, hpErrs...)

	return result, nil
}

// reconcileTeam recomputes one team's cached totals from its weekly rows and
// overwrites them when the drift exceeds the epsilon.
func (s *ReconcileService) reconcileTeam(ctx context.Context, team fantasyteam.FantasyTeam) (bool, error) {
	rows, err := s.teamRepo.ListWeeklyPointsByTeam(ctx, team.ID)
	if err != nil {
		return false, fmt.Errorf("list weekly points: %w", err)
	}

	var totalPoints, winnings float64
	for _, r := range rows {
		totalPoints += r.Points
		if r.IsHighPointsWinner {
			winnings += r.HighPointsAmount
		}
	}

	if math.Abs(team.TotalPoints-totalPoints) <= driftEpsilon &&
		math.Abs(team.HighPointsWinnings-winnings) <= driftEpsilon {
		return false, nil
	}

	s.logger.InfoContext(ctx, "correct drifted team aggregates",
		"team_id", team.ID,
		"stored_total", team.TotalPoints,
		"computed_total", totalPoints,
		"stored_winnings", team.HighPointsWinnings,
		"computed_winnings", winnings,
	)

	if err := s.teamRepo.UpdateAggregates(ctx, team.ID, totalPoints, winnings); err != nil {
		return false, fmt.Errorf("update aggregates: %w", err)
	}
	return true, nil
}

// reconcileHighPoints re-verifies winner flags for every league week that has
// rows, applying the same tie policy the weekly aggregator uses.
func (s *ReconcileService) reconcileHighPoints(ctx context.Context, teams []fantasyteam.FantasyTeam) (int, []string, error) {
	leagueIDs := make(map[string]struct{})
	for _, t := range teams {
		leagueIDs[t.LeagueID] = struct{}{}
	}

	var fixed int
	var errs []string
	for leagueID := range leagueIDs {
		n, err := s.reconcileLeagueHighPoints(ctx, leagueID)
		if err != nil {
			errs = append(errs, fmt.Sprintf("league %s: %v", leagueID, err))
			continue
		}
		fixed += n
	}
	return fixed, errs, nil
}

func (s *ReconcileService) reconcileLeagueHighPoints(ctx context.Context, leagueID string) (int, error) {
	settings, err := s.leagueRepo.GetSettings(ctx, leagueID)
	if err != nil {
		return 0, fmt.Errorf("get settings: %w", err)
	}
	if settings == nil {
		defaults := league.DefaultSettings(leagueID)
		settings = &defaults
	}
	if !settings.HighPointsEnabled {
		return 0, nil
	}

	weeks, err := s.teamRepo.ListWeeksWithPoints(ctx, leagueID)
	if err != nil {
		return 0, fmt.Errorf("list weeks: %w", err)
	}

	var fixed int
	for _, week := range weeks {
		rows, err := s.teamRepo.ListWeeklyPointsByLeagueWeek(ctx, leagueID, week)
		if err != nil {
			return fixed, fmt.Errorf("list week %d rows: %w", week, err)
		}

		winners := HighPointsWinners(rows, *settings)
		winnerSet := make(map[string]struct{}, len(winners))
		for _, id := range winners {
			winnerSet[id] = struct{}{}
		}

		dirty := false
		for _, r := range rows {
			_, shouldWin := winnerSet[r.FantasyTeamID]
			if r.IsHighPointsWinner != shouldWin {
				dirty = true
				break
			}
			if shouldWin && math.Abs(r.HighPointsAmount-settings.HighPointsAmount) > driftEpsilon {
				dirty = true
				break
			}
		}
		if !dirty {
			continue
		}

		if err := s.teamRepo.SetHighPoints(ctx, leagueID, week, winners, settings.HighPointsAmount); err != nil {
			return fixed, fmt.Errorf("set week %d winners: %w", week, err)
		}
		fixed++
	}
	return fixed, nil
}
