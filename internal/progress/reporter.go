package progress

import (
	"context"

	"review-seeder/internal/models"
)

// Summary totals one seeding pass.
type Summary struct {
	ItemsFound     int
	ItemsSeeded    int
	ItemsSkipped   int
	ReviewsCreated int
}

// Reporter receives progress from a seeding pass. Implementations must not
// fail the run, so nothing here returns an error.
type Reporter interface {
	ItemsFound(ctx context.Context, n int)
	ItemSkipped(ctx context.Context, item models.ItemSummary, existing int64)
	ItemSeeded(ctx context.Context, item models.ItemSummary, inserted int, stats models.RatingStats)
	Finished(ctx context.Context, summary Summary)
}

// Nop discards everything.
type Nop struct{}

func (Nop) ItemsFound(context.Context, int)                                         {}
func (Nop) ItemSkipped(context.Context, models.ItemSummary, int64)                  {}
func (Nop) ItemSeeded(context.Context, models.ItemSummary, int, models.RatingStats) {}
func (Nop) Finished(context.Context, Summary)                                       {}
