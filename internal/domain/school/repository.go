package school

import "context"

type Repository interface {
	GetByID(ctx context.Context, id string) (*School, error)
	ListByIDs(ctx context.Context, ids []string) ([]School, error)
	ListAll(ctx context.Context) ([]School, error)
	GetByExternalRef(ctx context.Context, ref int64) (*School, error)
	UpsertSchools(ctx context.Context, items []School) error
}
