package league

import "context"

type Repository interface {
	GetByID(ctx context.Context, id string) (*League, error)
	ListBySeason(ctx context.Context, seasonID string) ([]League, error)
	GetSettings(ctx context.Context, leagueID string) (*Settings, error)
	UpsertSettings(ctx context.Context, s Settings) error
}
