package seed

import (
	"context"
	"fmt"

	"review-seeder/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type RatingsReader interface {
	RatingsByItem(ctx context.Context, itemID bson.ObjectID) ([]int, error)
}

type StatsWriter interface {
	UpdateRatingStats(ctx context.Context, id bson.ObjectID, stats models.RatingStats) error
}

// Summarize computes count and unrounded mean; an empty set averages to 0.
func Summarize(ratings []int) models.RatingStats {
	if len(ratings) == 0 {
		return models.RatingStats{}
	}
	total := 0
	for _, r := range ratings {
		total += r
	}
	return models.RatingStats{
		ReviewCount:   len(ratings),
		AverageRating: float64(total) / float64(len(ratings)),
	}
}

// Aggregator recomputes an item's stats from its persisted reviews.
type Aggregator struct {
	reviews RatingsReader
	items   StatsWriter
}

func NewAggregator(reviews RatingsReader, items StatsWriter) *Aggregator {
	return &Aggregator{
		reviews: reviews,
		items:   items,
	}
}

func (a *Aggregator) Recompute(ctx context.Context, itemID bson.ObjectID) (models.RatingStats, error) {
	ratings, err := a.reviews.RatingsByItem(ctx, itemID)
	if err != nil {
		return models.RatingStats{}, fmt.Errorf("load ratings: %w", err)
	}

	stats := Summarize(ratings)
	if err := a.items.UpdateRatingStats(ctx, itemID, stats); err != nil {
		return models.RatingStats{}, fmt.Errorf("store rating stats: %w", err)
	}
	return stats, nil
}
