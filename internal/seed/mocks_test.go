package seed

import (
	"context"

	"review-seeder/internal/models"
	"review-seeder/internal/progress"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// --- Mock Item Store ---

type mockItemStore struct {
	mock.Mock
}

func (m *mockItemStore) ListSummaries(ctx context.Context) ([]models.ItemSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ItemSummary), args.Error(1)
}

func (m *mockItemStore) UpdateRatingStats(ctx context.Context, id bson.ObjectID, stats models.RatingStats) error {
	args := m.Called(ctx, id, stats)
	return args.Error(0)
}

// --- Mock Review Store ---

type mockReviewStore struct {
	mock.Mock
}

func (m *mockReviewStore) CountByItem(ctx context.Context, itemID bson.ObjectID) (int64, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockReviewStore) InsertMany(ctx context.Context, reviews []models.Review) error {
	args := m.Called(ctx, reviews)
	return args.Error(0)
}

func (m *mockReviewStore) RatingsByItem(ctx context.Context, itemID bson.ObjectID) ([]int, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

// --- In-memory store ---

// memStore keeps items and reviews in maps so a whole pass can be checked.
type memStore struct {
	items   []models.ItemSummary
	reviews map[bson.ObjectID][]models.Review
	stats   map[bson.ObjectID]models.RatingStats
}

func newMemStore(items ...models.ItemSummary) *memStore {
	return &memStore{
		items:   items,
		reviews: map[bson.ObjectID][]models.Review{},
		stats:   map[bson.ObjectID]models.RatingStats{},
	}
}

func (s *memStore) ListSummaries(context.Context) ([]models.ItemSummary, error) {
	return s.items, nil
}

func (s *memStore) UpdateRatingStats(_ context.Context, id bson.ObjectID, stats models.RatingStats) error {
	s.stats[id] = stats
	return nil
}

func (s *memStore) CountByItem(_ context.Context, itemID bson.ObjectID) (int64, error) {
	return int64(len(s.reviews[itemID])), nil
}

func (s *memStore) InsertMany(_ context.Context, reviews []models.Review) error {
	for _, r := range reviews {
		r.ID = bson.NewObjectID()
		s.reviews[r.ItemID] = append(s.reviews[r.ItemID], r)
	}
	return nil
}

func (s *memStore) RatingsByItem(_ context.Context, itemID bson.ObjectID) ([]int, error) {
	var out []int
	for _, r := range s.reviews[itemID] {
		out = append(out, r.Rating)
	}
	return out, nil
}

// --- Recording reporter ---

type recordingReporter struct {
	found    []int
	skipped  []bson.ObjectID
	seeded   map[bson.ObjectID]int
	finished []progress.Summary
}

func newRecordingReporter() *recordingReporter {
	return &recordingReporter{seeded: map[bson.ObjectID]int{}}
}

func (r *recordingReporter) ItemsFound(_ context.Context, n int) {
	r.found = append(r.found, n)
}

func (r *recordingReporter) ItemSkipped(_ context.Context, item models.ItemSummary, _ int64) {
	r.skipped = append(r.skipped, item.ID)
}

func (r *recordingReporter) ItemSeeded(_ context.Context, item models.ItemSummary, inserted int, _ models.RatingStats) {
	r.seeded[item.ID] = inserted
}

func (r *recordingReporter) Finished(_ context.Context, s progress.Summary) {
	r.finished = append(r.finished, s)
}
