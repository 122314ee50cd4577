package scoring

import "context"

// Repository persists school weekly point rows. ReplaceWeek is the
// idempotency primitive: it removes every row for the (season, week) and
// inserts the recomputed set in one transaction, so reruns never accumulate.
type Repository interface {
	ListBySeasonWeek(ctx context.Context, seasonID string, week int) ([]SchoolWeeklyPoints, error)
	ListBySchoolSeason(ctx context.Context, seasonID, schoolID string) ([]SchoolWeeklyPoints, error)
	SumBySchoolWeek(ctx context.Context, seasonID string, week int) (map[string]int, error)
	ReplaceWeek(ctx context.Context, seasonID string, week int, rows []SchoolWeeklyPoints) error
}
