package services_test

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/HemanthA0921/Ecommerce-React/models"
)

// Testify mocks for the repository interfaces used by the service tests.

type mockSellerRepo struct{ mock.Mock }

func (m *mockSellerRepo) FindAll(ctx context.Context) ([]models.Seller, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Seller), args.Error(1)
}

func (m *mockSellerRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Seller, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Seller), args.Error(1)
}

func (m *mockSellerRepo) FindByEmail(ctx context.Context, email string) (*models.Seller, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Seller), args.Error(1)
}

func (m *mockSellerRepo) Insert(ctx context.Context, seller *models.Seller) (primitive.ObjectID, error) {
	args := m.Called(ctx, seller)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *mockSellerRepo) SetApproved(ctx context.Context, id primitive.ObjectID, approved bool) error {
	args := m.Called(ctx, id, approved)
	return args.Error(0)
}

func (m *mockSellerRepo) PushProduct(ctx context.Context, sellerID, productID primitive.ObjectID) error {
	args := m.Called(ctx, sellerID, productID)
	return args.Error(0)
}

func (m *mockSellerRepo) PullProduct(ctx context.Context, sellerID, productID primitive.ObjectID) error {
	args := m.Called(ctx, sellerID, productID)
	return args.Error(0)
}

type mockProductRepo struct{ mock.Mock }

func (m *mockProductRepo) FindAll(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *mockProductRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *mockProductRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *mockProductRepo) FindByManufacturer(ctx context.Context, sellerID primitive.ObjectID) ([]models.Product, error) {
	args := m.Called(ctx, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *mockProductRepo) Insert(ctx context.Context, product *models.Product) (primitive.ObjectID, error) {
	args := m.Called(ctx, product)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *mockProductRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockProductRepo) PushReview(ctx context.Context, productID, reviewID primitive.ObjectID) error {
	args := m.Called(ctx, productID, reviewID)
	return args.Error(0)
}

func (m *mockProductRepo) SetRating(ctx context.Context, productID primitive.ObjectID, rating float64) error {
	args := m.Called(ctx, productID, rating)
	return args.Error(0)
}

func (m *mockProductRepo) DecrementStock(ctx context.Context, productID primitive.ObjectID, qty int) error {
	args := m.Called(ctx, productID, qty)
	return args.Error(0)
}

type mockCheckoutRepo struct{ mock.Mock }

func (m *mockCheckoutRepo) FindAll(ctx context.Context) ([]models.Checkout, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Checkout), args.Error(1)
}

func (m *mockCheckoutRepo) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Checkout, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Checkout), args.Error(1)
}

func (m *mockCheckoutRepo) FindByProductIDs(ctx context.Context, productIDs []primitive.ObjectID) ([]models.Checkout, error) {
	args := m.Called(ctx, productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Checkout), args.Error(1)
}

func (m *mockCheckoutRepo) Insert(ctx context.Context, checkout *models.Checkout) (primitive.ObjectID, error) {
	args := m.Called(ctx, checkout)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *mockCheckoutRepo) SalesTotals(ctx context.Context, start, end time.Time) ([]models.SalesBucket, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SalesBucket), args.Error(1)
}

type mockReviewRepo struct{ mock.Mock }

func (m *mockReviewRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Review, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *mockReviewRepo) Insert(ctx context.Context, review *models.Review) (primitive.ObjectID, error) {
	args := m.Called(ctx, review)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) Insert(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *mockUserRepo) UpdateProfile(ctx context.Context, id primitive.ObjectID, name, email, phone string) error {
	args := m.Called(ctx, id, name, email, phone)
	return args.Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockContactRepo struct{ mock.Mock }

func (m *mockContactRepo) FindAll(ctx context.Context) ([]models.ContactMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ContactMessage), args.Error(1)
}

func (m *mockContactRepo) Insert(ctx context.Context, msg *models.ContactMessage) (primitive.ObjectID, error) {
	args := m.Called(ctx, msg)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *mockContactRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockCartRepo struct{ mock.Mock }

func (m *mockCartRepo) FindByUser(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *mockCartRepo) SetItems(ctx context.Context, userID primitive.ObjectID, items []models.CartItem) error {
	args := m.Called(ctx, userID, items)
	return args.Error(0)
}

type mockWishlistRepo struct{ mock.Mock }

func (m *mockWishlistRepo) FindByUser(ctx context.Context, userID primitive.ObjectID) (*models.Wishlist, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Wishlist), args.Error(1)
}

func (m *mockWishlistRepo) SetProducts(ctx context.Context, userID primitive.ObjectID, productIDs []primitive.ObjectID) error {
	args := m.Called(ctx, userID, productIDs)
	return args.Error(0)
}

type mockUploader struct{ mock.Mock }

func (m *mockUploader) Upload(ctx context.Context, path, folder string) (string, error) {
	args := m.Called(ctx, path, folder)
	return args.String(0), args.Error(1)
}

func (m *mockUploader) Remove(ctx context.Context, publicID string) error {
	args := m.Called(ctx, publicID)
	return args.Error(0)
}

// memoryCache is an in-memory stand-in for the redis report cache.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	hits    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (c *memoryCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	c.hits++
	return true, json.Unmarshal(b, dest)
}

func (c *memoryCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = b
	return nil
}
