package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/HemanthA0921/Ecommerce-React/models"
)

type ContactRepository interface {
	FindAll(ctx context.Context) ([]models.ContactMessage, error)
	Insert(ctx context.Context, msg *models.ContactMessage) (primitive.ObjectID, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type contactRepo struct {
	col *mongo.Collection
}

func NewContactRepository(db *mongo.Database) ContactRepository {
	return &contactRepo{col: db.Collection("contactus")}
}

func (r *contactRepo) FindAll(ctx context.Context) ([]models.ContactMessage, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var messages []models.ContactMessage
	if err := cur.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *contactRepo) Insert(ctx context.Context, msg *models.ContactMessage) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, msg)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *contactRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
