package repository

import (
	"context"
	"fmt"

	"review-seeder/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type ItemRepo struct {
	collection *mongo.Collection
}

func NewItemRepo(collection *mongo.Collection) *ItemRepo {
	return &ItemRepo{
		collection: collection,
	}
}

// ListSummaries returns every item projected to _id and name, in natural order.
func (r *ItemRepo) ListSummaries(ctx context.Context) ([]models.ItemSummary, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1, "name": 1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find items: %w", err)
	}

	var docs []itemDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}

	items := make([]models.ItemSummary, len(docs))
	for i, d := range docs {
		items[i] = d.summary()
	}
	return items, nil
}

// itemDocument reads name as a raw value since items are schemaless and
// name is not guaranteed to be a string.
type itemDocument struct {
	ID   bson.ObjectID `bson:"_id"`
	Name bson.RawValue `bson:"name"`
}

// summary keeps string names only; anything else leaves Name empty so the
// item is labelled by its id.
func (d itemDocument) summary() models.ItemSummary {
	name, _ := d.Name.StringValueOK()
	return models.ItemSummary{ID: d.ID, Name: name}
}

func (r *ItemRepo) UpdateRatingStats(ctx context.Context, id bson.ObjectID, stats models.RatingStats) error {
	_, err := r.collection.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{
			"reviewCount": stats.ReviewCount,
			"ratings":     stats.AverageRating,
		},
	})
	if err != nil {
		return fmt.Errorf("update rating stats for %s: %w", id.Hex(), err)
	}
	return nil
}
