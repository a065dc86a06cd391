package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/HemanthA0921/Ecommerce-React/models"
)

type ReviewRepository interface {
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Review, error)
	Insert(ctx context.Context, review *models.Review) (primitive.ObjectID, error)
}

type reviewRepo struct {
	col *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) ReviewRepository {
	return &reviewRepo{col: db.Collection("reviews")}
}

// FindByIDs resolves review ids to documents, projecting only the fields the
// seller dashboard renders.
func (r *reviewRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Review, error) {
	if len(ids) == 0 {
		return []models.Review{}, nil
	}
	projection := bson.M{"product": 1, "reviewText": 1, "reviewRating": 1, "createdAt": 1}
	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, options.Find().SetProjection(projection))
	if err != nil {
		return nil, err
	}
	var reviews []models.Review
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepo) Insert(ctx context.Context, review *models.Review) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, review)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}
