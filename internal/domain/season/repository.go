package season

import "context"

type Repository interface {
	GetByID(ctx context.Context, id string) (*Season, error)
	GetByYear(ctx context.Context, year int) (*Season, error)
	Upsert(ctx context.Context, s Season) error
	GetHeismanWinner(ctx context.Context, seasonID string) (*HeismanWinner, error)
	UpsertHeismanWinner(ctx context.Context, w HeismanWinner) error
}
