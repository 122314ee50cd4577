package eventbonus

import "context"

// Repository persists league event bonuses. ReplaceLeagueSeason deletes every
// existing row for the (league, season) pair and inserts the recomputed set,
// so reruns never double-pay.
type Repository interface {
	ListByLeagueSeason(ctx context.Context, leagueID, seasonID string) ([]LeagueSchoolEventBonus, error)
	ListByLeagueWeek(ctx context.Context, leagueID, seasonID string, week int) ([]LeagueSchoolEventBonus, error)
	ReplaceLeagueSeason(ctx context.Context, leagueID, seasonID string, rows []LeagueSchoolEventBonus) error
}
