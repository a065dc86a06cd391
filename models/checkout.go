package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CheckoutItem struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}

// Checkout is a completed order. CreatedAt drives the admin sales report.
type Checkout struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user" json:"user"`
	Items     []CheckoutItem     `bson:"items" json:"items"`
	TotalCost float64            `bson:"totalCost" json:"totalCost"`
	Address   string             `bson:"address" json:"address"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// SalesBucket is one day of the sales aggregation: the _id produced by the
// $dateToString grouping and the summed totalCost for that day.
type SalesBucket struct {
	Date       string  `bson:"_id" json:"date"`
	TotalSales float64 `bson:"totalSales" json:"totalSales"`
}
