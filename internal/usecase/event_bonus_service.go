package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/gridironclub/cfb-fantasy/internal/domain/eventbonus"
	"github.com/gridironclub/cfb-fantasy/internal/domain/game"
	"github.com/gridironclub/cfb-fantasy/internal/domain/league"
	"github.com/gridironclub/cfb-fantasy/internal/domain/season"
	"github.com/gridironclub/cfb-fantasy/internal/platform/id"
	"github.com/gridironclub/cfb-fantasy/internal/platform/logging"
)

// EventBonusService computes league-specific postseason bonuses. Recalculation
// is destructive: all bonus rows for the (league, season) pair are replaced,
// never appended to.
type EventBonusService struct {
	gameRepo   game.Repository
	leagueRepo league.Repository
	seasonRepo season.Repository
	bonusRepo  eventbonus.Repository
	idGen      id.Generator
	logger     *logging.Logger
	now        func() time.Time
}

func NewEventBonusService(
	gameRepo game.Repository,
	leagueRepo league.Repository,
	seasonRepo season.Repository,
	bonusRepo eventbonus.Repository,
	idGen id.Generator,
	logger *logging.Logger,
) *EventBonusService {
	if logger == nil {
		logger = logging.Default()
	}
	return &EventBonusService{
		gameRepo:   gameRepo,
		leagueRepo: leagueRepo,
		seasonRepo: seasonRepo,
		bonusRepo:  bonusRepo,
		idGen:      idGen,
		logger:     logger,
		now:        time.Now,
	}
}

// ApplyEventBonuses recomputes and persists every event bonus for a league's
// season. Returns the inserted rows.
func (s *EventBonusService) ApplyEventBonuses(ctx context.Context, seasonID, leagueID string) ([]eventbonus.LeagueSchoolEventBonus, error) {
	ctx, span := startUsecaseSpan(ctx, "EventBonusService.ApplyEventBonuses")
	defer span.End()

	if seasonID == "" {
		return nil, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	lg, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("get league: %w", err)
	}
	if lg == nil {
		return nil, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	settings, err := s.leagueRepo.GetSettings(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("get league settings: %w", err)
	}
	if settings == nil {
		defaults := league.DefaultSettings(leagueID)
		settings = &defaults
	}

	builder := &bonusBuilder{
		service:  s,
		seasonID: seasonID,
		leagueID: leagueID,
		settings: *settings,
	}

	if err := builder.addConferenceChampionships(ctx); err != nil {
		return nil, err
	}
	if err := builder.addBowlAppearances(ctx); err != nil {
		return nil, err
	}
	if err := builder.addPlayoffRounds(ctx); err != nil {
		return nil, err
	}
	if err := builder.addHeisman(ctx); err != nil {
		return nil, err
	}

	if err := s.bonusRepo.ReplaceLeagueSeason(ctx, leagueID, seasonID, builder.rows); err != nil {
		return nil, fmt.Errorf("replace event bonuses: %w", err)
	}
	return builder.rows, nil
}

type bonusBuilder struct {
	service  *EventBonusService
	seasonID string
	leagueID string
	settings league.Settings
	rows     []eventbonus.LeagueSchoolEventBonus
}

func (b *bonusBuilder) add(schoolID string, week int, bonusType eventbonus.BonusType, points float64, gameID *string) error {
	rowID, err := b.service.idGen.NewID()
	if err != nil {
		return fmt.Errorf("generate bonus id: %w", err)
	}
	b.rows = append(b.rows, eventbonus.LeagueSchoolEventBonus{
		ID:        rowID,
		LeagueID:  b.leagueID,
		SeasonID:  b.seasonID,
		SchoolID:  schoolID,
		Week:      week,
		BonusType: bonusType,
		Points:    points,
		GameID:    gameID,
		CreatedAt: b.service.now().UTC(),
	})
	return nil
}

func (b *bonusBuilder) addConferenceChampionships(ctx context.Context) error {
	games, err := b.service.gameRepo.ListCompletedBySeasonWeek(ctx, b.seasonID, season.WeekConferenceChampionship)
	if err != nil {
		return fmt.Errorf("list conference championship games: %w", err)
	}
	for _, g := range games {
		if !g.IsConferenceGame {
			continue
		}
		winner, loser := g.WinnerID(), g.LoserID()
		if winner == nil || loser == nil {
			continue
		}
		gameID := g.ID
		if err := b.add(*winner, g.Week, eventbonus.BonusConfChampionshipWin, b.settings.ConfChampionshipWinBonus, &gameID); err != nil {
			return err
		}
		if err := b.add(*loser, g.Week, eventbonus.BonusConfChampionshipLoss, b.settings.ConfChampionshipLossBonus, &gameID); err != nil {
			return err
		}
	}
	return nil
}

// addBowlAppearances pays both participants of each completed week-17 bowl.
// Playoff games hosted at bowl sites are excluded: CFP teams earn playoff
// round bonuses instead of the bowl-appearance bonus.
func (b *bonusBuilder) addBowlAppearances(ctx context.Context) error {
	games, err := b.service.gameRepo.ListCompletedBySeasonWeek(ctx, b.seasonID, season.WeekBowls)
	if err != nil {
		return fmt.Errorf("list bowl games: %w", err)
	}
	for _, g := range games {
		if !g.IsBowlGame || g.IsPlayoffGame {
			continue
		}
		gameID := g.ID
		for _, schoolID := range []*string{g.HomeSchoolID, g.AwaySchoolID} {
			if schoolID == nil {
				continue
			}
			if err := b.add(*schoolID, g.Week, eventbonus.BonusBowlAppearance, b.settings.BowlAppearanceBonus, &gameID); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *bonusBuilder) addPlayoffRounds(ctx context.Context) error {
	games, err := b.service.gameRepo.ListPlayoffBySeason(ctx, b.seasonID)
	if err != nil {
		return fmt.Errorf("list playoff games: %w", err)
	}

	firstRound := make(map[string]struct{})
	quarterfinal := make(map[string]struct{})

	for _, g := range games {
		if !g.Completed() {
			continue
		}
		participants := playoffParticipants(g)
		gameID := g.ID

		switch g.PlayoffRound {
		case game.PlayoffRoundFirstRound:
			for _, schoolID := range participants {
				firstRound[schoolID] = struct{}{}
				if err := b.add(schoolID, g.Week, eventbonus.BonusPlayoffFirstRound, b.settings.PlayoffFirstRoundBonus, &gameID); err != nil {
					return err
				}
			}
		case game.PlayoffRoundQuarterfinal:
			for _, schoolID := range participants {
				quarterfinal[schoolID] = struct{}{}
				if err := b.add(schoolID, g.Week, eventbonus.BonusPlayoffQuarterfinal, b.settings.PlayoffQuarterfinalBonus, &gameID); err != nil {
					return err
				}
			}
		case game.PlayoffRoundSemifinal:
			for _, schoolID := range participants {
				if err := b.add(schoolID, g.Week, eventbonus.BonusPlayoffSemifinal, b.settings.PlayoffSemifinalBonus, &gameID); err != nil {
					return err
				}
			}
		case game.PlayoffRoundChampionship:
			winner, loser := g.WinnerID(), g.LoserID()
			if winner == nil || loser == nil {
				continue
			}
			if err := b.add(*winner, g.Week, eventbonus.BonusChampionshipWin, b.settings.ChampionshipWinBonus, &gameID); err != nil {
				return err
			}
			if err := b.add(*loser, g.Week, eventbonus.BonusChampionshipLoss, b.settings.ChampionshipLossBonus, &gameID); err != nil {
				return err
			}
		}
	}

	// Top-4 seeds skip the first round. A school that appears in a
	// quarterfinal without a first-round game earned its spot by seed and is
	// paid the first-round bonus as if it had won one.
	for schoolID := range quarterfinal {
		if _, played := firstRound[schoolID]; played {
			continue
		}
		if err := b.add(schoolID, season.WeekPlayoffFirstRound, eventbonus.BonusPlayoffFirstRound, b.settings.PlayoffFirstRoundBonus, nil); err != nil {
			return err
		}
	}
	return nil
}

func (b *bonusBuilder) addHeisman(ctx context.Context) error {
	winner, err := b.service.seasonRepo.GetHeismanWinner(ctx, b.seasonID)
	if err != nil {
		return fmt.Errorf("get heisman winner: %w", err)
	}
	if winner == nil {
		return nil
	}
	return b.add(winner.SchoolID, season.WeekHeisman, eventbonus.BonusHeisman, b.settings.HeismanBonus, nil)
}

func playoffParticipants(g game.Game) []string {
	var out []string
	for _, schoolID := range []*string{g.HomeSchoolID, g.AwaySchoolID} {
		if schoolID != nil {
			out = append(out, *schoolID)
		}
	}
	return out
}
