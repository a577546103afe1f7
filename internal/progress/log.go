package progress

import (
	"context"
	"math"
	"strconv"

	"review-seeder/internal/models"

	"github.com/rs/zerolog"
)

// LogReporter writes progress lines for an operator.
type LogReporter struct {
	log zerolog.Logger
}

func NewLogReporter(log zerolog.Logger) *LogReporter {
	return &LogReporter{log: log}
}

func (r *LogReporter) ItemsFound(_ context.Context, n int) {
	r.log.Info().Int("items", n).Msgf("Found %d items", n)
	if n == 0 {
		r.log.Info().Msg("No items in the database. Nothing to seed.")
	}
}

func (r *LogReporter) ItemSkipped(_ context.Context, item models.ItemSummary, existing int64) {
	r.log.Info().
		Str("item_id", item.ID.Hex()).
		Int64("existing", existing).
		Msgf("Skipping %q (already has %d reviews)", item.Label(), existing)
}

func (r *LogReporter) ItemSeeded(_ context.Context, item models.ItemSummary, inserted int, stats models.RatingStats) {
	r.log.Info().
		Str("item_id", item.ID.Hex()).
		Int("inserted", inserted).
		Float64("average", stats.AverageRating).
		Msgf("Seeded %d reviews for %q (avg %s)", inserted, item.Label(), FormatAverage(stats.AverageRating))
}

func (r *LogReporter) Finished(_ context.Context, s Summary) {
	r.log.Info().
		Int("reviews_created", s.ReviewsCreated).
		Int("items_seeded", s.ItemsSeeded).
		Int("items_skipped", s.ItemsSkipped).
		Msgf("Done. Created %d reviews across %d items.", s.ReviewsCreated, s.ItemsFound)
}

// FormatAverage rounds to one decimal for display, halves away from zero
// (4.25 prints as 4.3).
func FormatAverage(avg float64) string {
	return strconv.FormatFloat(math.Floor(avg*10+0.5)/10, 'f', 1, 64)
}
