package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/gridironclub/cfb-fantasy/internal/domain/eventbonus"
	"github.com/gridironclub/cfb-fantasy/internal/domain/fantasyteam"
	"github.com/gridironclub/cfb-fantasy/internal/domain/league"
	"github.com/gridironclub/cfb-fantasy/internal/domain/scoring"
	"github.com/gridironclub/cfb-fantasy/internal/domain/season"
	"github.com/gridironclub/cfb-fantasy/internal/platform/id"
	"github.com/gridironclub/cfb-fantasy/internal/platform/logging"
)

// TeamWeekResult reports one team aggregation run for a league week.
type TeamWeekResult struct {
	TeamsUpdated int
	// HighPointsWinners is empty when high points is disabled, when no rows
	// exist, or when a tie occurs in a ties-disallowed league.
	HighPointsWinners []string
	Errors            []string
}

// TeamPointsService rolls school weekly points plus event bonuses up into
// fantasy team week totals, then settles the league's weekly high-points
// winner in a second pass.
type TeamPointsService struct {
	leagueRepo  league.Repository
	teamRepo    fantasyteam.Repository
	scoringRepo scoring.Repository
	bonusRepo   eventbonus.Repository
	idGen       id.Generator
	logger      *logging.Logger
	now         func() time.Time
}

func NewTeamPointsService(
	leagueRepo league.Repository,
	teamRepo fantasyteam.Repository,
	scoringRepo scoring.Repository,
	bonusRepo eventbonus.Repository,
	idGen id.Generator,
	logger *logging.Logger,
) *TeamPointsService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TeamPointsService{
		leagueRepo:  leagueRepo,
		teamRepo:    teamRepo,
		scoringRepo: scoringRepo,
		bonusRepo:   bonusRepo,
		idGen:       idGen,
		logger:      logger,
		now:         time.Now,
	}
}

// RecalculateTeamWeek recomputes every team's points for (league, week) and
// re-settles the high-points winner. Per-team failures are collected; one
// team's failure never blocks the rest.
func (s *TeamPointsService) RecalculateTeamWeek(ctx context.Context, leagueID string, week int) (TeamWeekResult, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamPointsService.RecalculateTeamWeek")
	defer span.End()

	var result TeamWeekResult

	if leagueID == "" {
		return result, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	if week < season.MinWeek || week > season.MaxWeek {
		return result, fmt.Errorf("%w: week %d out of range", ErrInvalidInput, week)
	}

	lg, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return result, fmt.Errorf("get league: %w", err)
	}
	if lg == nil {
		return result, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	settings, err := s.leagueRepo.GetSettings(ctx, leagueID)
	if err != nil {
		return result, fmt.Errorf("get league settings: %w", err)
	}
	if settings == nil {
		defaults := league.DefaultSettings(leagueID)
		settings = &defaults
	}

	teams, err := s.teamRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return result, fmt.Errorf("list fantasy teams: %w", err)
	}
	if len(teams) == 0 {
		return result, nil
	}

	schoolTotals, err := s.scoringRepo.SumBySchoolWeek(ctx, lg.SeasonID, week)
	if err != nil {
		return result, fmt.Errorf("sum school week points: %w", err)
	}

	bonuses, err := s.bonusRepo.ListByLeagueWeek(ctx, leagueID, lg.SeasonID, week)
	if err != nil {
		return result, fmt.Errorf("list event bonuses: %w", err)
	}
	bonusBySchool := make(map[string]float64)
	for _, b := range bonuses {
		bonusBySchool[b.SchoolID] += b.Points
	}

	rows := make([]fantasyteam.FantasyTeamWeeklyPoints, 0, len(teams))
	for _, team := range teams {
		row, err := s.teamWeekRow(ctx, team, week, schoolTotals, bonusBySchool)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("team %s: %v", team.ID, err))
			s.logger.WarnContext(ctx, "skip team aggregation", "team_id", team.ID, "error", err)
			continue
		}
		rows = append(rows, row)
	}

	if len(rows) > 0 {
		if err := s.teamRepo.UpsertWeeklyPoints(ctx, rows); err != nil {
			return result, fmt.Errorf("upsert team weekly points: %w", err)
		}
	}
	result.TeamsUpdated = len(rows)

	winners := HighPointsWinners(rows, *settings)
	if settings.HighPointsEnabled {
		if err := s.teamRepo.SetHighPoints(ctx, leagueID, week, winners, settings.HighPointsAmount); err != nil {
			return result, fmt.Errorf("set high points winners: %w", err)
		}
	}
	result.HighPointsWinners = winners
	return result, nil
}

func (s *TeamPointsService) teamWeekRow(
	ctx context.Context,
	team fantasyteam.FantasyTeam,
	week int,
	schoolTotals map[string]int,
	bonusBySchool map[string]float64,
) (fantasyteam.FantasyTeamWeeklyPoints, error) {
	periods, err := s.teamRepo.ListRosterPeriods(ctx, team.ID)
	if err != nil {
		return fantasyteam.FantasyTeamWeeklyPoints{}, fmt.Errorf("list roster periods: %w", err)
	}

	var points float64
	for _, p := range periods {
		if !p.ActiveForWeek(week) {
			continue
		}
		points += float64(schoolTotals[p.SchoolID])
		points += bonusBySchool[p.SchoolID]
	}

	rowID, err := s.idGen.NewID()
	if err != nil {
		return fantasyteam.FantasyTeamWeeklyPoints{}, fmt.Errorf("generate row id: %w", err)
	}
	now := s.now().UTC()
	return fantasyteam.FantasyTeamWeeklyPoints{
		ID:            rowID,
		FantasyTeamID: team.ID,
		LeagueID:      team.LeagueID,
		Week:          week,
		Points:        points,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// HighPointsWinners resolves the weekly winner set under the league's tie
// policy. Ties-disallowed leagues pay nobody on a tie; ties-allowed leagues
// pay every max scorer the full amount.
func HighPointsWinners(rows []fantasyteam.FantasyTeamWeeklyPoints, settings league.Settings) []string {
	if !settings.HighPointsEnabled || len(rows) == 0 {
		return nil
	}

	max := rows[0].Points
	for _, r := range rows[1:] {
		if r.Points > max {
			max = r.Points
		}
	}

	var winners []string
	for _, r := range rows {
		if r.Points == max {
			winners = append(winners, r.FantasyTeamID)
		}
	}

	if !settings.HighPointsAllowTies && len(winners) > 1 {
		return nil
	}
	return winners
}
