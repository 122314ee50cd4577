package poll

import "context"

type Repository interface {
	ListBySeasonWeek(ctx context.Context, seasonID string, week int) ([]Ranking, error)
	ReplaceWeek(ctx context.Context, seasonID string, week int, rankings []Ranking) error
}
