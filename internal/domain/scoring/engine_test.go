package scoring

import (
	"testing"

	"github.com/gridironclub/cfb-fantasy/internal/domain/game"
)

func completedGame(homeID, awayID string, homeScore, awayScore int) game.Game {
	return game.Game{
		ID:           "g1",
		HomeSchoolID: &homeID,
		AwaySchoolID: &awayID,
		HomeScore:    &homeScore,
		AwayScore:    &awayScore,
		Status:       game.StatusCompleted,
	}
}

func intPtr(v int) *int { return &v }

func TestScoreGame_LossScoresZero(t *testing.T) {
	t.Parallel()

	g := completedGame("bama", "uga", 17, 24)
	b := ScoreGame(g, "bama", intPtr(3), false, DefaultRuleSet())
	if b.Total() != 0 {
		t.Fatalf("losing side must score zero, got %+v", b)
	}
}

func TestScoreGame_TieScoresZero(t *testing.T) {
	t.Parallel()

	g := completedGame("bama", "uga", 21, 21)
	for _, id := range []string{"bama", "uga"} {
		if b := ScoreGame(g, id, nil, false, DefaultRuleSet()); b.Total() != 0 {
			t.Fatalf("tie must score zero for %s, got %+v", id, b)
		}
	}
}

func TestScoreGame_BaseWin(t *testing.T) {
	t.Parallel()

	g := completedGame("bama", "uga", 24, 17)
	b := ScoreGame(g, "bama", nil, false, DefaultRuleSet())
	if b.Base != 1 || b.Total() != 1 {
		t.Fatalf("plain win should be base only, got %+v", b)
	}
}

func TestScoreGame_ConferenceBonusRegularSeasonOnly(t *testing.T) {
	t.Parallel()

	g := completedGame("bama", "uga", 24, 17)
	g.IsConferenceGame = true

	b := ScoreGame(g, "bama", nil, false, DefaultRuleSet())
	if b.Conference != 1 {
		t.Fatalf("regular-season conference win should add bonus, got %+v", b)
	}

	asBowl := ScoreGame(g, "bama", nil, true, DefaultRuleSet())
	if asBowl.Conference != 0 {
		t.Fatalf("bowl must suppress conference bonus, got %+v", asBowl)
	}

	g.IsPlayoffGame = true
	asPlayoff := ScoreGame(g, "bama", nil, false, DefaultRuleSet())
	if asPlayoff.Conference != 0 {
		t.Fatalf("playoff must suppress conference bonus, got %+v", asPlayoff)
	}
}

func TestScoreGame_FiftyPlusIsOwnScore(t *testing.T) {
	t.Parallel()

	g := completedGame("bama", "uga", 50, 49)
	b := ScoreGame(g, "bama", nil, false, DefaultRuleSet())
	if b.FiftyPlus != 1 {
		t.Fatalf("own score 50 should earn the bonus regardless of margin, got %+v", b)
	}

	g2 := completedGame("bama", "uga", 49, 0)
	b2 := ScoreGame(g2, "bama", nil, false, DefaultRuleSet())
	if b2.FiftyPlus != 0 {
		t.Fatalf("49 points must not earn the 50+ bonus, got %+v", b2)
	}
}

func TestScoreGame_RankedTiersRegularSeason(t *testing.T) {
	t.Parallel()

	g := completedGame("bama", "uga", 24, 17)
	rules := DefaultRuleSet()

	tests := []struct {
		rank   *int
		want10 int
		want25 int
	}{
		{intPtr(1), 2, 0},
		{intPtr(10), 2, 0},
		{intPtr(11), 0, 1},
		{intPtr(25), 0, 1},
		{intPtr(26), 0, 0},
		{intPtr(game.UnrankedSentinel), 0, 0},
		{intPtr(0), 0, 0},
		{nil, 0, 0},
	}
	for _, tc := range tests {
		b := ScoreGame(g, "bama", tc.rank, false, rules)
		if b.Ranked10 != tc.want10 || b.Ranked25 != tc.want25 {
			t.Fatalf("rank %v: ranked points = %d/%d, want %d/%d", tc.rank, b.Ranked10, b.Ranked25, tc.want10, tc.want25)
		}
	}
}

func TestScoreGame_RankedTierPostseason(t *testing.T) {
	t.Parallel()

	g := completedGame("bama", "uga", 24, 17)
	g.IsPlayoffGame = true
	rules := DefaultRuleSet()

	tests := []struct {
		rank *int
		want int
	}{
		{intPtr(12), 2},
		{intPtr(13), 0}, // no second tier in postseason
		{intPtr(25), 0},
	}
	for _, tc := range tests {
		b := ScoreGame(g, "bama", tc.rank, false, rules)
		if b.Ranked10 != tc.want {
			t.Fatalf("postseason rank %v: ranked points = %d, want %d", tc.rank, b.Ranked10, tc.want)
		}
		if b.Ranked25 != 0 {
			t.Fatalf("postseason rank %v: second tier must stay empty, got %+v", tc.rank, b)
		}
	}
}

func TestScoreGame_StackedBonuses(t *testing.T) {
	t.Parallel()

	// 55-0 conference shutout of a top-10 opponent:
	// base 1 + conference 1 + 50-plus 1 + shutout 1 + ranked 2 = 6.
	g := completedGame("bama", "uga", 55, 0)
	g.IsConferenceGame = true
	b := ScoreGame(g, "bama", intPtr(8), false, DefaultRuleSet())
	if b.Total() != 6 {
		t.Fatalf("expected 6 points, got %+v (total %d)", b, b.Total())
	}

	// Same result against an unranked opponent totals 4, and 5 when the
	// opponent sits at rank 20.
	b2 := ScoreGame(g, "bama", nil, false, DefaultRuleSet())
	if b2.Total() != 4 {
		t.Fatalf("expected 4 points, got %+v", b2)
	}
	b3 := ScoreGame(g, "bama", intPtr(20), false, DefaultRuleSet())
	if b3.Total() != 5 {
		t.Fatalf("expected 5 points, got %+v", b3)
	}
}

func TestScoreGame_NonConferenceBlowout(t *testing.T) {
	t.Parallel()

	// 55-0 home win over the #8 team in a non-conference regular-season
	// game: base 1 + 50-plus 1 + shutout 1 + ranked 2 = 5.
	g := completedGame("bama", "uga", 55, 0)
	b := ScoreGame(g, "bama", intPtr(8), false, DefaultRuleSet())
	if b.Base != 1 || b.Conference != 0 || b.FiftyPlus != 1 || b.Shutout != 1 || b.Ranked10 != 2 || b.Ranked25 != 0 {
		t.Fatalf("unexpected breakdown: %+v", b)
	}
	if b.Total() != 5 {
		t.Fatalf("expected 5 points, got %d", b.Total())
	}
}

func TestScoreGame_NonParticipant(t *testing.T) {
	t.Parallel()

	g := completedGame("bama", "uga", 55, 0)
	if b := ScoreGame(g, "osu", nil, false, DefaultRuleSet()); !b.IsZero() {
		t.Fatalf("non-participant must score nothing, got %+v", b)
	}
}

func TestScoreGame_IncompleteGame(t *testing.T) {
	t.Parallel()

	g := completedGame("bama", "uga", 55, 0)
	g.Status = game.StatusLive
	if b := ScoreGame(g, "bama", nil, false, DefaultRuleSet()); !b.IsZero() {
		t.Fatalf("live game must score nothing, got %+v", b)
	}
}

func TestFromBreakdown(t *testing.T) {
	t.Parallel()

	b := PointsBreakdown{Base: 1, Conference: 1, Ranked10: 2}
	row := FromBreakdown("s1", "bama", "g1", 9, b)
	if row.TotalPoints != 4 || row.Week != 9 || row.SchoolID != "bama" {
		t.Fatalf("unexpected row: %+v", row)
	}
}
