package game

import "context"

type Repository interface {
	GetByID(ctx context.Context, id string) (*Game, error)
	ListBySeasonWeek(ctx context.Context, seasonID string, week int) ([]Game, error)
	ListCompletedBySeasonWeek(ctx context.Context, seasonID string, week int) ([]Game, error)
	ListPlayoffBySeason(ctx context.Context, seasonID string) ([]Game, error)
	UpsertGames(ctx context.Context, items []Game) error
}
