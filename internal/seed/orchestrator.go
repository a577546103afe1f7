package seed

import (
	"context"
	"fmt"
	"math/rand/v2"

	"review-seeder/internal/models"
	"review-seeder/internal/progress"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Reviews seeded per item, inclusive.
const (
	MinReviewsPerItem = 8
	MaxReviewsPerItem = 18
)

type ItemStore interface {
	ListSummaries(ctx context.Context) ([]models.ItemSummary, error)
	StatsWriter
}

type ReviewStore interface {
	CountByItem(ctx context.Context, itemID bson.ObjectID) (int64, error)
	InsertMany(ctx context.Context, reviews []models.Review) error
	RatingsReader
}

// Orchestrator runs one seeding pass over the catalog. Items that already
// have reviews are left untouched.
type Orchestrator struct {
	items    ItemStore
	reviews  ReviewStore
	synth    *Synthesizer
	agg      *Aggregator
	reporter progress.Reporter
	rng      *rand.Rand
}

func NewOrchestrator(items ItemStore, reviews ReviewStore, synth *Synthesizer, rng *rand.Rand, reporter progress.Reporter) *Orchestrator {
	if reporter == nil {
		reporter = progress.Nop{}
	}
	return &Orchestrator{
		items:    items,
		reviews:  reviews,
		synth:    synth,
		agg:      NewAggregator(reviews, items),
		reporter: reporter,
		rng:      rng,
	}
}

// Run processes items sequentially and stops at the first error. Items
// finished before the error stay written.
func (o *Orchestrator) Run(ctx context.Context) (progress.Summary, error) {
	var summary progress.Summary

	items, err := o.items.ListSummaries(ctx)
	if err != nil {
		return summary, fmt.Errorf("list items: %w", err)
	}
	summary.ItemsFound = len(items)
	o.reporter.ItemsFound(ctx, len(items))
	if len(items) == 0 {
		return summary, nil
	}

	for _, item := range items {
		inserted, err := o.seedItem(ctx, item)
		if err != nil {
			return summary, fmt.Errorf("seed item %s: %w", item.ID.Hex(), err)
		}
		if inserted == 0 {
			summary.ItemsSkipped++
			continue
		}
		summary.ItemsSeeded++
		summary.ReviewsCreated += inserted
	}

	o.reporter.Finished(ctx, summary)
	return summary, nil
}

// seedItem returns the number of reviews inserted, 0 when the item was skipped.
func (o *Orchestrator) seedItem(ctx context.Context, item models.ItemSummary) (int, error) {
	existing, err := o.reviews.CountByItem(ctx, item.ID)
	if err != nil {
		return 0, err
	}
	if existing > 0 {
		o.reporter.ItemSkipped(ctx, item, existing)
		return 0, nil
	}

	count := intBetween(o.rng, MinReviewsPerItem, MaxReviewsPerItem)
	reviews := o.synth.Synthesize(item.ID, count)
	if err := o.reviews.InsertMany(ctx, reviews); err != nil {
		return 0, err
	}

	stats, err := o.agg.Recompute(ctx, item.ID)
	if err != nil {
		return 0, err
	}

	o.reporter.ItemSeeded(ctx, item, len(reviews), stats)
	return len(reviews), nil
}
