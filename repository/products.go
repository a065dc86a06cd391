package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/HemanthA0921/Ecommerce-React/models"
)

type ProductRepository interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error)
	FindByManufacturer(ctx context.Context, sellerID primitive.ObjectID) ([]models.Product, error)
	Insert(ctx context.Context, product *models.Product) (primitive.ObjectID, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	PushReview(ctx context.Context, productID, reviewID primitive.ObjectID) error
	SetRating(ctx context.Context, productID primitive.ObjectID, rating float64) error
	DecrementStock(ctx context.Context, productID primitive.ObjectID, qty int) error
}

type productRepo struct {
	col *mongo.Collection
}

func NewProductRepository(db *mongo.Database) ProductRepository {
	return &productRepo{col: db.Collection("products")}
}

func (r *productRepo) FindAll(ctx context.Context) ([]models.Product, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var products []models.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	if len(ids) == 0 {
		return []models.Product{}, nil
	}
	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var products []models.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepo) FindByManufacturer(ctx context.Context, sellerID primitive.ObjectID) ([]models.Product, error) {
	cur, err := r.col.Find(ctx, bson.M{"manufacturer": sellerID})
	if err != nil {
		return nil, err
	}
	var products []models.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepo) Insert(ctx context.Context, product *models.Product) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, product)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *productRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *productRepo) PushReview(ctx context.Context, productID, reviewID primitive.ObjectID) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": productID}, bson.M{"$push": bson.M{"reviews": reviewID}})
	return err
}

func (r *productRepo) SetRating(ctx context.Context, productID primitive.ObjectID, rating float64) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": productID}, bson.M{"$set": bson.M{"rating": rating}})
	return err
}

func (r *productRepo) DecrementStock(ctx context.Context, productID primitive.ObjectID, qty int) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": productID}, bson.M{"$inc": bson.M{"stock": -qty}})
	return err
}
