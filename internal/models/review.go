package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Helpful struct {
	ThumbsUp   int `bson:"thumbsUp" json:"thumbsUp"`
	ThumbsDown int `bson:"thumbsDown" json:"thumbsDown"`
}

type Review struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	ItemID       bson.ObjectID `bson:"itemId" json:"itemId"`
	ReviewerName string        `bson:"reviewerName" json:"reviewerName"`
	Email        string        `bson:"email" json:"email"`
	Title        string        `bson:"title" json:"title"`
	Comment      string        `bson:"comment" json:"comment"`
	Rating       int           `bson:"rating" json:"rating"`
	Helpful      Helpful       `bson:"helpful" json:"helpful"`
	Photos       []string      `bson:"photos" json:"photos"`
	Date         time.Time     `bson:"date" json:"date"`
}
