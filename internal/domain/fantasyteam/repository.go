package fantasyteam

import "context"

type Repository interface {
	GetByID(ctx context.Context, id string) (*FantasyTeam, error)
	ListByLeague(ctx context.Context, leagueID string) ([]FantasyTeam, error)
	ListAll(ctx context.Context) ([]FantasyTeam, error)
	UpdateAggregates(ctx context.Context, teamID string, totalPoints, highPointsWinnings float64) error

	ListRosterPeriods(ctx context.Context, teamID string) ([]RosterPeriod, error)

	ListWeeklyPointsByTeam(ctx context.Context, teamID string) ([]FantasyTeamWeeklyPoints, error)
	ListWeeklyPointsByLeagueWeek(ctx context.Context, leagueID string, week int) ([]FantasyTeamWeeklyPoints, error)
	ListWeeksWithPoints(ctx context.Context, leagueID string) ([]int, error)
	UpsertWeeklyPoints(ctx context.Context, rows []FantasyTeamWeeklyPoints) error
	SetHighPoints(ctx context.Context, leagueID string, week int, winnerTeamIDs []string, amount float64) error
}
