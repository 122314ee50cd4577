package game

import "strings"

// IsConferenceMatchup reports whether a game pairs two schools from the same
// real conference. Games involving a missing school id or the Independent
// pseudo-conference never qualify, and neither do bowls or playoff games
// regardless of membership.
func IsConferenceMatchup(g Game, conferenceBySchool map[string]string) bool {
	if g.IsBowlGame || g.IsPlayoffGame {
		return false
	}
	if g.HomeSchoolID == nil || g.AwaySchoolID == nil {
		return false
	}

	home := strings.TrimSpace(conferenceBySchool[*g.HomeSchoolID])
	away := strings.TrimSpace(conferenceBySchool[*g.AwaySchoolID])
	if home == "" || away == "" {
		return false
	}
	if home == "Independent" || away == "Independent" {
		return false
	}
	return home == away
}

// PostseasonKind classifies an externally-synced game from its headline text.
// This is best effort: ambiguous names fall through to a plain game.
type PostseasonKind struct {
	IsBowl       bool
	IsPlayoff    bool
	PlayoffRound string
}

var bowlNameHints = []string{
	"rose bowl",
	"sugar bowl",
	"orange bowl",
	"cotton bowl",
	"fiesta bowl",
	"peach bowl",
	"citrus bowl",
	"gator bowl",
	"alamo bowl",
	"liberty bowl",
	"sun bowl",
	"music city bowl",
	"holiday bowl",
	"pinstripe bowl",
	"bowl",
}

// ClassifyPostseason matches known championship/round substrings before bowl
// names, because CFP rounds are hosted at bowl sites ("CFP Semifinal at the
// Rose Bowl") and must classify as playoff games.
func ClassifyPostseason(headline string) PostseasonKind {
	candidate := strings.ToLower(strings.TrimSpace(headline))
	if candidate == "" {
		return PostseasonKind{}
	}

	switch {
	case strings.Contains(candidate, "national championship"):
		return PostseasonKind{IsPlayoff: true, PlayoffRound: PlayoffRoundChampionship}
	case strings.Contains(candidate, "semifinal"):
		return PostseasonKind{IsPlayoff: true, PlayoffRound: PlayoffRoundSemifinal}
	case strings.Contains(candidate, "quarterfinal"):
		return PostseasonKind{IsPlayoff: true, PlayoffRound: PlayoffRoundQuarterfinal}
	case strings.Contains(candidate, "first round"):
		return PostseasonKind{IsPlayoff: true, PlayoffRound: PlayoffRoundFirstRound}
	}

	for _, hint := range bowlNameHints {
		if strings.Contains(candidate, hint) {
			return PostseasonKind{IsBowl: true}
		}
	}
	return PostseasonKind{}
}
