package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/HemanthA0921/Ecommerce-React/models"
)

type CheckoutRepository interface {
	FindAll(ctx context.Context) ([]models.Checkout, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Checkout, error)
	FindByProductIDs(ctx context.Context, productIDs []primitive.ObjectID) ([]models.Checkout, error)
	Insert(ctx context.Context, checkout *models.Checkout) (primitive.ObjectID, error)
	SalesTotals(ctx context.Context, start, end time.Time) ([]models.SalesBucket, error)
}

type checkoutRepo struct {
	col *mongo.Collection
}

func NewCheckoutRepository(db *mongo.Database) CheckoutRepository {
	return &checkoutRepo{col: db.Collection("checkouts")}
}

func (r *checkoutRepo) FindAll(ctx context.Context) ([]models.Checkout, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var checkouts []models.Checkout
	if err := cur.All(ctx, &checkouts); err != nil {
		return nil, err
	}
	return checkouts, nil
}

func (r *checkoutRepo) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Checkout, error) {
	cur, err := r.col.Find(ctx, bson.M{"user": userID})
	if err != nil {
		return nil, err
	}
	var checkouts []models.Checkout
	if err := cur.All(ctx, &checkouts); err != nil {
		return nil, err
	}
	return checkouts, nil
}

func (r *checkoutRepo) FindByProductIDs(ctx context.Context, productIDs []primitive.ObjectID) ([]models.Checkout, error) {
	if len(productIDs) == 0 {
		return []models.Checkout{}, nil
	}
	cur, err := r.col.Find(ctx, bson.M{"items.productId": bson.M{"$in": productIDs}})
	if err != nil {
		return nil, err
	}
	var checkouts []models.Checkout
	if err := cur.All(ctx, &checkouts); err != nil {
		return nil, err
	}
	return checkouts, nil
}

func (r *checkoutRepo) Insert(ctx context.Context, checkout *models.Checkout) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, checkout)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// SalesTotals groups checkouts created in [start, end) by calendar day and
// sums totalCost per day, ordered by date ascending.
func (r *checkoutRepo) SalesTotals(ctx context.Context, start, end time.Time) ([]models.SalesBucket, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"createdAt": bson.M{"$gte": start, "$lt": end},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":        bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$createdAt"}},
			"totalSales": bson.M{"$sum": "$totalCost"},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	var buckets []models.SalesBucket
	if err := cur.All(ctx, &buckets); err != nil {
		return nil, err
	}
	return buckets, nil
}
