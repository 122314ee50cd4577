package scoring

// ScoringRuleSet holds the per-category point values applied by the engine.
// One global rule set governs base school scoring for a season; leagues only
// customize event bonus amounts, never these values.
type ScoringRuleSet struct {
	Win int
	// Loss is the (usually zero) value for a defeat. Negative values are
	// supported but the default rule set never awards them.
	Loss int

	ConferenceWin int
	FiftyPlus     int
	Shutout       int

	// Regular-season ranked-opponent tiers.
	RankedTopTier    int // opponent rank 1-10
	RankedSecondTier int // opponent rank 11-25

	// Postseason uses a single tier keyed to the 12-team playoff field.
	PostseasonRanked int // opponent rank 1-12
}

// DefaultRuleSet is the standard scoring configuration.
func DefaultRuleSet() ScoringRuleSet {
	return ScoringRuleSet{
		Win:              1,
		Loss:             0,
		ConferenceWin:    1,
		FiftyPlus:        1,
		Shutout:          1,
		RankedTopTier:    2,
		RankedSecondTier: 1,
		PostseasonRanked: 2,
	}
}

const (
	rankedTopTierCutoff    = 10
	rankedSecondTierCutoff = 25
	postseasonRankedCutoff = 12
	fiftyPlusThreshold     = 50
)
