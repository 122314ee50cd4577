package game

import "testing"

func strPtr(v string) *string { return &v }

func TestIsConferenceMatchup(t *testing.T) {
	t.Parallel()

	conferences := map[string]string{
		"bama":     "SEC",
		"uga":      "SEC",
		"osu":      "Big Ten",
		"notredame": "Independent",
	}

	tests := []struct {
		name string
		g    Game
		want bool
	}{
		{
			name: "same conference",
			g:    Game{HomeSchoolID: strPtr("bama"), AwaySchoolID: strPtr("uga")},
			want: true,
		},
		{
			name: "cross conference",
			g:    Game{HomeSchoolID: strPtr("bama"), AwaySchoolID: strPtr("osu")},
			want: false,
		},
		{
			name: "independent never counts",
			g:    Game{HomeSchoolID: strPtr("notredame"), AwaySchoolID: strPtr("notredame")},
			want: false,
		},
		{
			name: "missing school id",
			g:    Game{HomeSchoolID: strPtr("bama"), AwaySchoolID: nil},
			want: false,
		},
		{
			name: "bowl flag suppresses conference matchup",
			g:    Game{HomeSchoolID: strPtr("bama"), AwaySchoolID: strPtr("uga"), IsBowlGame: true},
			want: false,
		},
		{
			name: "playoff flag suppresses conference matchup",
			g:    Game{HomeSchoolID: strPtr("bama"), AwaySchoolID: strPtr("uga"), IsPlayoffGame: true},
			want: false,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := IsConferenceMatchup(tc.g, conferences); got != tc.want {
				t.Fatalf("IsConferenceMatchup() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestClassifyPostseason(t *testing.T) {
	t.Parallel()

	tests := []struct {
		headline  string
		wantBowl  bool
		wantCFP   bool
		wantRound string
	}{
		{"College Football Playoff National Championship", false, true, PlayoffRoundChampionship},
		{"CFP Semifinal at the Rose Bowl Game", false, true, PlayoffRoundSemifinal},
		{"CFP Quarterfinal at the Vrbo Fiesta Bowl", false, true, PlayoffRoundQuarterfinal},
		{"CFP First Round", false, true, PlayoffRoundFirstRound},
		{"Rose Bowl Game presented by Prudential", true, false, ""},
		{"TaxSlayer Gator Bowl", true, false, ""},
		{"Iron Bowl rivalry matchup", true, false, ""},
		{"Week 9 regular season matchup", false, false, ""},
		{"", false, false, ""},
	}

	for _, tc := range tests {
		got := ClassifyPostseason(tc.headline)
		if got.IsBowl != tc.wantBowl || got.IsPlayoff != tc.wantCFP || got.PlayoffRound != tc.wantRound {
			t.Fatalf("ClassifyPostseason(%q) = %+v", tc.headline, got)
		}
	}
}

func TestGameWinnerLoser(t *testing.T) {
	t.Parallel()

	home, away := 31, 24
	g := Game{
		HomeSchoolID: strPtr("bama"),
		AwaySchoolID: strPtr("uga"),
		HomeScore:    &home,
		AwayScore:    &away,
		Status:       StatusCompleted,
	}

	if winner := g.WinnerID(); winner == nil || *winner != "bama" {
		t.Fatalf("unexpected winner: %v", winner)
	}
	if loser := g.LoserID(); loser == nil || *loser != "uga" {
		t.Fatalf("unexpected loser: %v", loser)
	}

	tie := g
	tieScore := 24
	tie.HomeScore = &tieScore
	if tie.WinnerID() != nil {
		t.Fatal("tie must have no winner")
	}

	live := g
	live.Status = StatusLive
	if live.WinnerID() != nil {
		t.Fatal("live game must have no winner")
	}
}

func TestRankedForBonus(t *testing.T) {
	t.Parallel()

	ranked := 12
	unranked := 99
	zero := 0
	if !RankedForBonus(&ranked) {
		t.Fatal("rank 12 should qualify")
	}
	if RankedForBonus(&unranked) {
		t.Fatal("sentinel 99 must not qualify")
	}
	if RankedForBonus(&zero) {
		t.Fatal("rank 0 must not qualify")
	}
	if RankedForBonus(nil) {
		t.Fatal("nil rank must not qualify")
	}
}
