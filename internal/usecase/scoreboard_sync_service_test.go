package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gridironclub/cfb-fantasy/internal/domain/eventbonus"
	"github.com/gridironclub/cfb-fantasy/internal/domain/game"
	"github.com/gridironclub/cfb-fantasy/internal/domain/school"
	"github.com/gridironclub/cfb-fantasy/internal/domain/season"
)

type stubScoreboardProvider struct {
	events []ExternalGame
	err    error
}

func (p *stubScoreboardProvider) FetchScoreboard(_ context.Context, _ time.Time) ([]ExternalGame, error) {
	return p.events, p.err
}

func newSyncFixture(provider *stubScoreboardProvider) (*ScoreboardSyncService, *stubGameRepository) {
	gameRepo := &stubGameRepository{}
	svc := NewScoreboardSyncService(
		provider,
		gameRepo,
		&stubSchoolRepository{byRef: map[int64]school.School{
			333: {ID: "bama", Name: "Alabama", Conference: "SEC", ExternalRef: 333},
			61:  {ID: "uga", Name: "Georgia", Conference: "SEC", ExternalRef: 61},
		}},
		&stubSeasonRepository{seasons: map[string]season.Season{
			testSeasonID: {ID: testSeasonID, Year: 2025},
		}},
		&seqIDGenerator{},
		nil,
	)
	return svc, gameRepo
}

func TestScoreboardSyncService_SyncDate(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2025, time.October, 25, 19, 30, 0, 0, time.UTC)
	provider := &stubScoreboardProvider{events: []ExternalGame{
		{
			EventID:       401520281,
			HomeSchoolRef: 333,
			AwaySchoolRef: 61,
			HomeScore:     intPtr(27),
			AwayScore:     intPtr(24),
			HomeRank:      intPtr(8),
			AwayRank:      intPtr(1),
			Status:        "STATUS_FINAL",
			Headline:      "Alabama vs Georgia",
			KickoffAt:     kickoff,
		},
		{
			// FCS visitor with no school record.
			EventID:       401520282,
			HomeSchoolRef: 333,
			AwaySchoolRef: 999999,
			HomeScore:     intPtr(52),
			AwayScore:     intPtr(0),
			Status:        "STATUS_FINAL",
			KickoffAt:     kickoff,
		},
	}}

	svc, gameRepo := newSyncFixture(provider)
	result, err := svc.SyncDate(context.Background(), 2025, kickoff)
	if err != nil {
		t.Fatalf("SyncDate error: %v", err)
	}
	if result.GamesUpserted != 2 {
		t.Fatalf("expected 2 games, got %d", result.GamesUpserted)
	}
	if result.Week != season.WeekFor(kickoff, 2025) {
		t.Fatalf("unexpected week %d", result.Week)
	}

	first := gameRepo.games[0]
	if first.Status != game.StatusCompleted {
		t.Fatalf("status not normalized: %q", first.Status)
	}
	if first.HomeSchoolID == nil || *first.HomeSchoolID != "bama" {
		t.Fatalf("home school not resolved: %+v", first)
	}
	if first.HomeRank == nil || *first.HomeRank != 8 {
		t.Fatalf("rank snapshot lost: %+v", first)
	}

	second := gameRepo.games[1]
	if second.AwaySchoolID != nil {
		t.Fatalf("unknown ref must stay null: %+v", second)
	}
}

func TestScoreboardSyncService_ClassifiesHeadline(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2026, time.January, 1, 20, 0, 0, 0, time.UTC)
	provider := &stubScoreboardProvider{events: []ExternalGame{
		{
			EventID:       1,
			HomeSchoolRef: 333,
			AwaySchoolRef: 61,
			HomeScore:     intPtr(35),
			AwayScore:     intPtr(17),
			Status:        "STATUS_FINAL",
			Headline:      "CFP Quarterfinal at the Allstate Sugar Bowl",
			KickoffAt:     kickoff,
		},
	}}

	svc, gameRepo := newSyncFixture(provider)
	if _, err := svc.SyncDate(context.Background(), 2025, kickoff); err != nil {
		t.Fatalf("SyncDate error: %v", err)
	}

	g := gameRepo.games[0]
	if !g.IsPlayoffGame || g.PlayoffRound != game.PlayoffRoundQuarterfinal {
		t.Fatalf("headline not classified as playoff: %+v", g)
	}
	if g.IsBowlGame {
		t.Fatalf("CFP round must not double as a bowl: %+v", g)
	}
}

func TestScoreboardSyncService_ConferenceChampionshipFlow(t *testing.T) {
	t.Parallel()

	// First Saturday of December lands in the conference championship week.
	kickoff := time.Date(2025, time.December, 6, 20, 0, 0, 0, time.UTC)
	provider := &stubScoreboardProvider{events: []ExternalGame{
		{
			EventID:       401528044,
			HomeSchoolRef: 61,
			AwaySchoolRef: 333,
			HomeScore:     intPtr(24),
			AwayScore:     intPtr(27),
			Status:        "STATUS_FINAL",
			Headline:      "SEC Championship",
			KickoffAt:     kickoff,
		},
	}}

	svc, gameRepo := newSyncFixture(provider)
	result, err := svc.SyncDate(context.Background(), 2025, kickoff)
	if err != nil {
		t.Fatalf("SyncDate error: %v", err)
	}
	if result.Week != season.WeekConferenceChampionship {
		t.Fatalf("expected week %d, got %d", season.WeekConferenceChampionship, result.Week)
	}

	g := gameRepo.games[0]
	if !g.IsConferenceGame {
		t.Fatalf("same-conference matchup not flagged: %+v", g)
	}

	bonusSvc, _ := newEventBonusFixture(gameRepo.games, "")
	rows, err := bonusSvc.ApplyEventBonuses(context.Background(), testSeasonID, testLeagueID)
	if err != nil {
		t.Fatalf("ApplyEventBonuses error: %v", err)
	}

	wins := bonusesOfType(rows, eventbonus.BonusConfChampionshipWin)
	if len(wins) != 1 || wins[0].SchoolID != "bama" {
		t.Fatalf("expected championship win for bama, got %+v", wins)
	}
	losses := bonusesOfType(rows, eventbonus.BonusConfChampionshipLoss)
	if len(losses) != 1 || losses[0].SchoolID != "uga" {
		t.Fatalf("expected championship loss for uga, got %+v", losses)
	}
}

func TestScoreboardSyncService_FeedFailureAborts(t *testing.T) {
	t.Parallel()

	provider := &stubScoreboardProvider{err: errors.New("upstream 503")}
	svc, gameRepo := newSyncFixture(provider)

	_, err := svc.SyncDate(context.Background(), 2025, time.Now())
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
	if len(gameRepo.games) != 0 {
		t.Fatal("failed fetch must leave no partial writes")
	}
}

func TestInGamedayWindow(t *testing.T) {
	t.Parallel()

	noon := time.Date(2025, time.October, 25, 16, 0, 0, 0, time.UTC)
	prime := time.Date(2025, time.October, 25, 23, 30, 0, 0, time.UTC)
	kickoffs := []time.Time{prime, noon}

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"hour before first kickoff", noon.Add(-time.Hour), true},
		{"too early", noon.Add(-61 * time.Minute), false},
		{"between kickoffs", time.Date(2025, time.October, 25, 20, 0, 0, 0, time.UTC), true},
		{"late game still running", prime.Add(3 * time.Hour), true},
		{"window closed", prime.Add(4*time.Hour + time.Minute), false},
	}
	for _, tc := range tests {
		if got := InGamedayWindow(tc.at, kickoffs); got != tc.want {
			t.Fatalf("%s: InGamedayWindow = %v, want %v", tc.name, got, tc.want)
		}
	}

	if InGamedayWindow(noon, nil) {
		t.Fatal("a day with no kickoffs must have no window")
	}
}

func TestScoreboardSyncService_ShouldSyncNow(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2025, time.October, 25, 19, 30, 0, 0, time.UTC)
	scheduled := game.Game{
		ID:        "g1",
		SeasonID:  testSeasonID,
		Season:    2025,
		Week:      season.WeekFor(kickoff, 2025),
		Status:    game.StatusScheduled,
		KickoffAt: kickoff,
	}

	svc, gameRepo := newSyncFixture(&stubScoreboardProvider{})
	gameRepo.games = []game.Game{scheduled}

	ok, err := svc.ShouldSyncNow(context.Background(), 2025, kickoff.Add(30*time.Minute))
	if err != nil {
		t.Fatalf("ShouldSyncNow error: %v", err)
	}
	if !ok {
		t.Fatal("expected window open during the day's games")
	}

	ok, err = svc.ShouldSyncNow(context.Background(), 2025, kickoff.Add(-26*time.Hour))
	if err != nil {
		t.Fatalf("ShouldSyncNow error: %v", err)
	}
	if ok {
		t.Fatal("expected no window on a day without kickoffs")
	}

	ok, err = svc.ShouldSyncNow(context.Background(), 1999, kickoff)
	if err != nil {
		t.Fatalf("ShouldSyncNow error: %v", err)
	}
	if ok {
		t.Fatal("expected no window for an unknown season")
	}
}
