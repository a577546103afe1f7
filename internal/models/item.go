package models

import "go.mongodb.org/mongo-driver/v2/bson"

// ItemSummary is the id+name projection of a catalog item.
type ItemSummary struct {
	ID   bson.ObjectID `bson:"_id" json:"id"`
	Name string        `bson:"name,omitempty" json:"name"`
}

// Label is the name used in progress output, or the hex id when unnamed.
func (i ItemSummary) Label() string {
	if i.Name != "" {
		return i.Name
	}
	return i.ID.Hex()
}

// RatingStats are the aggregate fields stored on an item.
type RatingStats struct {
	ReviewCount   int     `bson:"reviewCount" json:"reviewCount"`
	AverageRating float64 `bson:"ratings" json:"ratings"`
}
