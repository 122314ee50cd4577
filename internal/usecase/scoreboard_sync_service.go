package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/gridironclub/cfb-fantasy/internal/domain/game"
	"github.com/gridironclub/cfb-fantasy/internal/domain/school"
	"github.com/gridironclub/cfb-fantasy/internal/domain/season"
	"github.com/gridironclub/cfb-fantasy/internal/platform/id"
	"github.com/gridironclub/cfb-fantasy/internal/platform/logging"
)

// ScoreboardProvider fetches the external scoreboard feed.
type ScoreboardProvider interface {
	FetchScoreboard(ctx context.Context, date time.Time) ([]ExternalGame, error)
}

// ExternalGame is one scoreboard event as the provider reports it.
type ExternalGame struct {
	EventID       int64
	HomeSchoolRef int64
	AwaySchoolRef int64
	HomeScore     *int
	AwayScore     *int
	HomeRank      *int
	AwayRank      *int
	Status        string
	Headline      string
	KickoffAt     time.Time
}

// SyncResult reports one scoreboard sync run.
type SyncResult struct {
	GamesUpserted int      `json:"games_upserted"`
	Week          int      `json:"week"`
	Errors        []string `json:"errors,omitempty"`
}

// ScoreboardSyncService pulls the day's scoreboard and upserts game rows with
// classification flags derived from the headline text.
type ScoreboardSyncService struct {
	provider   ScoreboardProvider
	gameRepo   game.Repository
	schoolRepo school.Repository
	seasonRepo season.Repository
	idGen      id.Generator
	logger     *logging.Logger
	now        func() time.Time
}

func NewScoreboardSyncService(
	provider ScoreboardProvider,
	gameRepo game.Repository,
	schoolRepo school.Repository,
	seasonRepo season.Repository,
	idGen id.Generator,
	logger *logging.Logger,
) *ScoreboardSyncService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ScoreboardSyncService{
		provider:   provider,
		gameRepo:   gameRepo,
		schoolRepo: schoolRepo,
		seasonRepo: seasonRepo,
		idGen:      idGen,
		logger:     logger,
		now:        time.Now,
	}
}

// SyncDate fetches the scoreboard for one calendar date and upserts the games
// into the matching season week. Per-event failures are collected; a feed
// fetch failure aborts the whole unit with no partial write.
func (s *ScoreboardSyncService) SyncDate(ctx context.Context, seasonYear int, date time.Time) (SyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "ScoreboardSyncService.SyncDate")
	defer span.End()

	var result SyncResult

	sn, err := s.seasonRepo.GetByYear(ctx, seasonYear)
	if err != nil {
		return result, fmt.Errorf("get season: %w", err)
	}
	if sn == nil {
		return result, fmt.Errorf("%w: season year=%d", ErrNotFound, seasonYear)
	}

	events, err := s.provider.FetchScoreboard(ctx, date)
	if err != nil {
		return result, fmt.Errorf("%w: fetch scoreboard: %v", ErrDependencyUnavailable, err)
	}
	if len(events) == 0 {
		return result, nil
	}

	week := season.WeekFor(date, seasonYear)
	result.Week = week

	games := make([]game.Game, 0, len(events))
	for _, ev := range events {
		g, err := s.toGame(ctx, sn.ID, seasonYear, week, ev)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("event %d: %v", ev.EventID, err))
			s.logger.WarnContext(ctx, "skip scoreboard event", "event_id", ev.EventID, "error", err)
			continue
		}
		games = append(games, g)
	}

	if len(games) > 0 {
		if err := s.gameRepo.UpsertGames(ctx, games); err != nil {
			return result, fmt.Errorf("upsert games: %w", err)
		}
	}
	result.GamesUpserted = len(games)
	return result, nil
}

func (s *ScoreboardSyncService) toGame(ctx context.Context, seasonID string, seasonYear, week int, ev ExternalGame) (game.Game, error) {
	gameID, err := s.idGen.NewID()
	if err != nil {
		return game.Game{}, fmt.Errorf("generate game id: %w", err)
	}

	postseason := game.ClassifyPostseason(ev.Headline)

	g := game.Game{
		ID:            gameID,
		SeasonID:      seasonID,
		Season:        seasonYear,
		Week:          week,
		HomeScore:     ev.HomeScore,
		AwayScore:     ev.AwayScore,
		HomeRank:      ev.HomeRank,
		AwayRank:      ev.AwayRank,
		Status:        game.NormalizeStatus(ev.Status),
		Headline:      ev.Headline,
		IsBowlGame:    postseason.IsBowl,
		IsPlayoffGame: postseason.IsPlayoff,
		PlayoffRound:  postseason.PlayoffRound,
		KickoffAt:     ev.KickoffAt,
		GameRefID:     ev.EventID,
	}

	// Non-FBS opponents have no school record; their side stays null.
	home, err := s.schoolRepo.GetByExternalRef(ctx, ev.HomeSchoolRef)
	if err != nil {
		return game.Game{}, fmt.Errorf("resolve home school: %w", err)
	}
	away, err := s.schoolRepo.GetByExternalRef(ctx, ev.AwaySchoolRef)
	if err != nil {
		return game.Game{}, fmt.Errorf("resolve away school: %w", err)
	}

	conferences := make(map[string]string, 2)
	if home != nil {
		g.HomeSchoolID = &home.ID
		conferences[home.ID] = home.Conference
	}
	if away != nil {
		g.AwaySchoolID = &away.ID
		conferences[away.ID] = away.Conference
	}
	g.IsConferenceGame = game.IsConferenceMatchup(g, conferences)

	return g, nil
}

// Polling window margins around a day's kickoffs.
const (
	gamedayLeadTime     = time.Hour
	gamedayGameDuration = 4 * time.Hour
)

// InGamedayWindow reports whether now falls inside the polling window the
// day's kickoffs imply: one hour before the first kickoff through four hours
// after the last. A day with no kickoffs has no window.
func InGamedayWindow(now time.Time, kickoffs []time.Time) bool {
	if len(kickoffs) == 0 {
		return false
	}
	first, last := kickoffs[0], kickoffs[0]
	for _, k := range kickoffs[1:] {
		if k.Before(first) {
			first = k
		}
		if k.After(last) {
			last = k
		}
	}
	return !now.Before(first.Add(-gamedayLeadTime)) && !now.After(last.Add(gamedayGameDuration))
}

// ShouldSyncNow reports whether the scoreboard is worth polling at now, based
// on the kickoff times already stored for now's calendar date. A missing
// season row means no schedule to poll against, not an error.
func (s *ScoreboardSyncService) ShouldSyncNow(ctx context.Context, seasonYear int, now time.Time) (bool, error) {
	sn, err := s.seasonRepo.GetByYear(ctx, seasonYear)
	if err != nil {
		return false, fmt.Errorf("get season: %w", err)
	}
	if sn == nil {
		return false, nil
	}

	now = now.UTC()
	games, err := s.gameRepo.ListBySeasonWeek(ctx, sn.ID, season.WeekFor(now, seasonYear))
	if err != nil {
		return false, fmt.Errorf("list week games: %w", err)
	}

	year, month, day := now.Date()
	var kickoffs []time.Time
	for _, g := range games {
		kickoff := g.KickoffAt.UTC()
		ky, km, kd := kickoff.Date()
		if ky == year && km == month && kd == day {
			kickoffs = append(kickoffs, kickoff)
		}
	}
	return InGamedayWindow(now, kickoffs), nil
}
