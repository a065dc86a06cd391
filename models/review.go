package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProductID    primitive.ObjectID `bson:"product" json:"product"`
	UserID       primitive.ObjectID `bson:"user,omitempty" json:"user,omitempty"`
	ReviewText   string             `bson:"reviewText" json:"reviewText"`
	ReviewRating float64            `bson:"reviewRating" json:"reviewRating"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
