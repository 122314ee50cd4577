package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/gridironclub/cfb-fantasy/internal/domain/game"
	"github.com/gridironclub/cfb-fantasy/internal/domain/poll"
	"github.com/gridironclub/cfb-fantasy/internal/domain/school"
	"github.com/gridironclub/cfb-fantasy/internal/domain/scoring"
	"github.com/gridironclub/cfb-fantasy/internal/domain/season"
	"github.com/gridironclub/cfb-fantasy/internal/platform/id"
	"github.com/gridironclub/cfb-fantasy/internal/platform/logging"
)

// WeekRecalcResult reports one weekly aggregation run. Errors holds per-game
// failures; the run keeps going past them.
type WeekRecalcResult struct {
	Calculated int
	Errors     []string
}

// WeeklyPointsService recomputes per-school-per-game point rows for a week.
// Rows for the target week are deleted and reinserted wholesale, so reruns
// with unchanged games produce identical state.
type WeeklyPointsService struct {
	gameRepo    game.Repository
	schoolRepo  school.Repository
	pollRepo    poll.Repository
	scoringRepo scoring.Repository
	idGen       id.Generator
	rules       scoring.ScoringRuleSet
	logger      *logging.Logger
	now         func() time.Time
}

func NewWeeklyPointsService(
	gameRepo game.Repository,
	schoolRepo school.Repository,
	pollRepo poll.Repository,
	scoringRepo scoring.Repository,
	idGen id.Generator,
	rules scoring.ScoringRuleSet,
	logger *logging.Logger,
) *WeeklyPointsService {
	if logger == nil {
		logger = logging.Default()
	}
	return &WeeklyPointsService{
		gameRepo:    gameRepo,
		schoolRepo:  schoolRepo,
		pollRepo:    pollRepo,
		scoringRepo: scoringRepo,
		idGen:       idGen,
		rules:       rules,
		logger:      logger,
		now:         time.Now,
	}
}

// RecalculateWeek scores every completed game for (season, week) and replaces
// the week's school point rows.
func (s *WeeklyPointsService) RecalculateWeek(ctx context.Context, seasonID string, week int) (WeekRecalcResult, error) {
	ctx, span := startUsecaseSpan(ctx, "WeeklyPointsService.RecalculateWeek")
	defer span.End()

	var result WeekRecalcResult

	if seasonID == "" {
		return result, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}
	if week < season.MinWeek || week > season.MaxWeek {
		return result, fmt.Errorf("%w: week %d out of range", ErrInvalidInput, week)
	}

	games, err := s.gameRepo.ListCompletedBySeasonWeek(ctx, seasonID, week)
	if err != nil {
		return result, fmt.Errorf("list completed games: %w", err)
	}
	if len(games) == 0 {
		return result, nil
	}

	rankings, err := s.pollRepo.ListBySeasonWeek(ctx, seasonID, week)
	if err != nil {
		return result, fmt.Errorf("list rankings: %w", err)
	}
	rankMap := poll.BuildRankMap(rankings)

	conferences, err := s.conferencesFor(ctx, games)
	if err != nil {
		return result, err
	}

	rows := make([]scoring.SchoolWeeklyPoints, 0, len(games)*2)
	for _, g := range games {
		gameRows, err := s.scoreGame(g, week, conferences, rankMap)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("game %s: %v", g.ID, err))
			s.logger.WarnContext(ctx, "skip unscorable game", "game_id", g.ID, "error", err)
			continue
		}
		rows = append(rows, gameRows...)
	}

	if err := s.scoringRepo.ReplaceWeek(ctx, seasonID, week, rows); err != nil {
		return result, fmt.Errorf("replace week points: %w", err)
	}

	result.Calculated = len(rows)
	return result, nil
}

func (s *WeeklyPointsService) scoreGame(g game.Game, week int, conferences map[string]string, rankMap poll.RankMap) ([]scoring.SchoolWeeklyPoints, error) {
	if !g.Completed() {
		return nil, fmt.Errorf("game is not completed")
	}

	g.IsConferenceGame = game.IsConferenceMatchup(g, conferences)

	var rows []scoring.SchoolWeeklyPoints
	for _, schoolID := range []*string{g.HomeSchoolID, g.AwaySchoolID} {
		if schoolID == nil {
			continue
		}
		opponentRank := s.resolveOpponentRank(g, *schoolID, rankMap)
		breakdown := scoring.ScoreGame(g, *schoolID, opponentRank, g.IsBowlGame, s.rules)

		rowID, err := s.idGen.NewID()
		if err != nil {
			return nil, fmt.Errorf("generate row id: %w", err)
		}
		row := scoring.FromBreakdown(g.SeasonID, *schoolID, g.ID, week, breakdown)
		row.ID = rowID
		now := s.now().UTC()
		row.CreatedAt = now
		row.UpdatedAt = now
		rows = append(rows, row)
	}
	return rows, nil
}

// resolveOpponentRank prefers the rank snapshotted on the game row, which
// carries CFP seeding the weekly poll never captures, and falls back to the
// poll table only when the snapshot is absent.
func (s *WeeklyPointsService) resolveOpponentRank(g game.Game, schoolID string, rankMap poll.RankMap) *int {
	if snapshot := g.RankOfOpponent(schoolID); snapshot != nil {
		return snapshot
	}

	var opponentID *string
	switch g.SideOf(schoolID) {
	case game.SideHome:
		opponentID = g.AwaySchoolID
	case game.SideAway:
		opponentID = g.HomeSchoolID
	}
	if opponentID == nil {
		return nil
	}
	if rank, ok := rankMap.RankOf(*opponentID); ok {
		return &rank
	}
	return nil
}

func (s *WeeklyPointsService) conferencesFor(ctx context.Context, games []game.Game) (map[string]string, error) {
	seen := make(map[string]struct{})
	ids := make([]string, 0, len(games)*2)
	for _, g := range games {
		for _, schoolID := range []*string{g.HomeSchoolID, g.AwaySchoolID} {
			if schoolID == nil {
				continue
			}
			if _, ok := seen[*schoolID]; ok {
				continue
			}
			seen[*schoolID] = struct{}{}
			ids = append(ids, *schoolID)
		}
	}
	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	schools, err := s.schoolRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list schools: %w", err)
	}

	conferences := make(map[string]string, len(schools))
	for _, sc := range schools {
		conferences[sc.ID] = sc.Conference
	}
	return conferences, nil
}
