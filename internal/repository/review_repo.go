package repository

import (
	"context"
	"fmt"

	"review-seeder/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type ReviewRepo struct {
	collection *mongo.Collection
}

func NewReviewRepo(collection *mongo.Collection) *ReviewRepo {
	return &ReviewRepo{
		collection: collection,
	}
}

func (r *ReviewRepo) CountByItem(ctx context.Context, itemID bson.ObjectID) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"itemId": itemID})
	if err != nil {
		return 0, fmt.Errorf("count reviews for %s: %w", itemID.Hex(), err)
	}
	return count, nil
}

func (r *ReviewRepo) InsertMany(ctx context.Context, reviews []models.Review) error {
	if len(reviews) == 0 {
		return nil
	}
	result, err := r.collection.InsertMany(ctx, reviews)
	if err != nil {
		return fmt.Errorf("insert %d reviews: %w", len(reviews), err)
	}
	for i, id := range result.InsertedIDs {
		if oid, ok := id.(bson.ObjectID); ok && i < len(reviews) {
			reviews[i].ID = oid
		}
	}
	return nil
}

// RatingsByItem returns the rating of every review stored for itemID.
func (r *ReviewRepo) RatingsByItem(ctx context.Context, itemID bson.ObjectID) ([]int, error) {
	opts := options.Find().SetProjection(bson.M{"rating": 1})
	cursor, err := r.collection.Find(ctx, bson.M{"itemId": itemID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find reviews for %s: %w", itemID.Hex(), err)
	}

	var docs []struct {
		Rating int `bson:"rating"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode reviews for %s: %w", itemID.Hex(), err)
	}

	ratings := make([]int, len(docs))
	for i, d := range docs {
		ratings[i] = d.Rating
	}
	return ratings, nil
}

// EnsureIndexes creates the itemId lookup index on the reviews collection
func (r *ReviewRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "itemId", Value: 1}},
	})
	return err
}
