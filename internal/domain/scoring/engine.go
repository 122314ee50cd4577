package scoring

import (
	"github.com/gridironclub/cfb-fantasy/internal/domain/game"
)

// PointsBreakdown is the per-category result of scoring one school in one
// game. Total is always the sum of the category fields.
type PointsBreakdown struct {
	Base       int
	Conference int
	FiftyPlus  int
	Shutout    int
	Ranked10   int
	Ranked25   int
}

func (b PointsBreakdown) Total() int {
	return b.Base + b.Conference + b.FiftyPlus + b.Shutout + b.Ranked10 + b.Ranked25
}

func (b PointsBreakdown) IsZero() bool {
	return b == PointsBreakdown{}
}

// ScoreGame computes the breakdown for schoolID's side of a completed game.
// Losses and ties score the loss value with no bonuses. opponentRank is the
// resolved rank after the dual-source lookup; nil, 0 and the 99 sentinel all
// mean unranked. isBowl is passed separately because the bowl flag influences
// the ranked tier even when the game row itself was not re-classified.
func ScoreGame(g game.Game, schoolID string, opponentRank *int, isBowl bool, rules ScoringRuleSet) PointsBreakdown {
	side := g.SideOf(schoolID)
	if side == "" || !g.Completed() {
		return PointsBreakdown{}
	}

	winner := g.WinnerID()
	if winner == nil || *winner != schoolID {
		return PointsBreakdown{Base: rules.Loss}
	}

	b := PointsBreakdown{Base: rules.Win}

	postseason := isBowl || g.IsBowlGame || g.IsPlayoffGame
	if g.IsConferenceGame && !postseason {
		b.Conference = rules.ConferenceWin
	}

	var own, opp int
	if side == game.SideHome {
		own, opp = *g.HomeScore, *g.AwayScore
	} else {
		own, opp = *g.AwayScore, *g.HomeScore
	}

	if own >= fiftyPlusThreshold {
		b.FiftyPlus = rules.FiftyPlus
	}
	if opp == 0 {
		b.Shutout = rules.Shutout
	}

	if game.RankedForBonus(opponentRank) {
		rank := *opponentRank
		if postseason {
			// Postseason pays the top-tier rate with no second tier.
			if rank <= postseasonRankedCutoff {
				b.Ranked10 = rules.PostseasonRanked
			}
		} else {
			switch {
			case rank <= rankedTopTierCutoff:
				b.Ranked10 = rules.RankedTopTier
			case rank <= rankedSecondTierCutoff:
				b.Ranked25 = rules.RankedSecondTier
			}
		}
	}

	return b
}
