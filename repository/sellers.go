package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/HemanthA0921/Ecommerce-React/models"
)

type SellerRepository interface {
	FindAll(ctx context.Context) ([]models.Seller, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Seller, error)
	FindByEmail(ctx context.Context, email string) (*models.Seller, error)
	Insert(ctx context.Context, seller *models.Seller) (primitive.ObjectID, error)
	SetApproved(ctx context.Context, id primitive.ObjectID, approved bool) error
	PushProduct(ctx context.Context, sellerID, productID primitive.ObjectID) error
	PullProduct(ctx context.Context, sellerID, productID primitive.ObjectID) error
}

type sellerRepo struct {
	col *mongo.Collection
}

func NewSellerRepository(db *mongo.Database) SellerRepository {
	return &sellerRepo{col: db.Collection("sellers")}
}

func (r *sellerRepo) FindAll(ctx context.Context) ([]models.Seller, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var sellers []models.Seller
	if err := cur.All(ctx, &sellers); err != nil {
		return nil, err
	}
	return sellers, nil
}

func (r *sellerRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Seller, error) {
	var seller models.Seller
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&seller)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &seller, nil
}

func (r *sellerRepo) FindByEmail(ctx context.Context, email string) (*models.Seller, error) {
	var seller models.Seller
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&seller)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &seller, nil
}

func (r *sellerRepo) Insert(ctx context.Context, seller *models.Seller) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, seller)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *sellerRepo) SetApproved(ctx context.Context, id primitive.ObjectID, approved bool) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"approved": approved}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *sellerRepo) PushProduct(ctx context.Context, sellerID, productID primitive.ObjectID) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": sellerID}, bson.M{"$push": bson.M{"products": productID}})
	return err
}

func (r *sellerRepo) PullProduct(ctx context.Context, sellerID, productID primitive.ObjectID) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": sellerID}, bson.M{"$pull": bson.M{"products": productID}})
	return err
}
