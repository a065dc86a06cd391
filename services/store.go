package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/HemanthA0921/Ecommerce-React/models"
	"github.com/HemanthA0921/Ecommerce-React/repository"
)

// StoreService backs the customer-facing storefront: catalog browsing, carts,
// wishlists, checkout placement, reviews and contact messages. The admin
// dashboard reuses its listing and delete operations.
type StoreService struct {
	users     repository.UserRepository
	products  repository.ProductRepository
	carts     repository.CartRepository
	wishlists repository.WishlistRepository
	checkouts repository.CheckoutRepository
	reviews   repository.ReviewRepository
	contacts  repository.ContactRepository
}

func NewStoreService(
	users repository.UserRepository,
	products repository.ProductRepository,
	carts repository.CartRepository,
	wishlists repository.WishlistRepository,
	checkouts repository.CheckoutRepository,
	reviews repository.ReviewRepository,
	contacts repository.ContactRepository,
) *StoreService {
	return &StoreService{
		users:     users,
		products:  products,
		carts:     carts,
		wishlists: wishlists,
		checkouts: checkouts,
		reviews:   reviews,
		contacts:  contacts,
	}
}

// ----- Catalog -----

func (s *StoreService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.products.FindAll(ctx)
}

func (s *StoreService) GetProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	return s.products.FindByID(ctx, id)
}

// ----- Profile -----

func (s *StoreService) GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}

func (s *StoreService) UpdateProfile(ctx context.Context, id primitive.ObjectID, name, email, phone string) (*models.User, error) {
	if err := s.users.UpdateProfile(ctx, id, name, email, phone); err != nil {
		return nil, err
	}
	return s.GetUser(ctx, id)
}

func (s *StoreService) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	return s.users.Delete(ctx, id)
}

// ----- Cart -----

// GetCart returns the user's cart, or an empty cart when none exists yet.
func (s *StoreService) GetCart(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	cart, err := s.carts.FindByUser(ctx, userID)
	if err == repository.ErrNotFound {
		return &models.Cart{UserID: userID, Items: []models.CartItem{}}, nil
	}
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// AddToCart merges the item into the cart, summing quantities for a product
// already present.
func (s *StoreService) AddToCart(ctx context.Context, userID primitive.ObjectID, item models.CartItem) (*models.Cart, error) {
	cart, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	found := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == item.ProductID {
			cart.Items[i].Quantity += item.Quantity
			found = true
			break
		}
	}
	if !found {
		cart.Items = append(cart.Items, item)
	}
	if err := s.carts.SetItems(ctx, userID, cart.Items); err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateCartItem sets the quantity of a cart line; zero or negative removes it.
func (s *StoreService) UpdateCartItem(ctx context.Context, userID, productID primitive.ObjectID, quantity int) (*models.Cart, error) {
	cart, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			if quantity > 0 {
				cart.Items[i].Quantity = quantity
			} else {
				cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			}
			break
		}
	}
	if err := s.carts.SetItems(ctx, userID, cart.Items); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *StoreService) RemoveCartItem(ctx context.Context, userID, productID primitive.ObjectID) (*models.Cart, error) {
	cart, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			break
		}
	}
	if err := s.carts.SetItems(ctx, userID, cart.Items); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *StoreService) ClearCart(ctx context.Context, userID primitive.ObjectID) error {
	return s.carts.SetItems(ctx, userID, []models.CartItem{})
}

// ----- Wishlist -----

func (s *StoreService) GetWishlist(ctx context.Context, userID primitive.ObjectID) (*models.Wishlist, error) {
	w, err := s.wishlists.FindByUser(ctx, userID)
	if err == repository.ErrNotFound {
		return &models.Wishlist{UserID: userID, ProductIDs: []primitive.ObjectID{}}, nil
	}
	if err != nil {
		return nil, err
	}
	return w, nil
}

// AddToWishlist is idempotent: adding a product already present is a no-op.
func (s *StoreService) AddToWishlist(ctx context.Context, userID, productID primitive.ObjectID) (*models.Wishlist, error) {
	w, err := s.GetWishlist(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, pid := range w.ProductIDs {
		if pid == productID {
			return w, nil
		}
	}
	w.ProductIDs = append(w.ProductIDs, productID)
	if err := s.wishlists.SetProducts(ctx, userID, w.ProductIDs); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *StoreService) RemoveFromWishlist(ctx context.Context, userID, productID primitive.ObjectID) (*models.Wishlist, error) {
	w, err := s.GetWishlist(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i, pid := range w.ProductIDs {
		if pid == productID {
			w.ProductIDs = append(w.ProductIDs[:i], w.ProductIDs[i+1:]...)
			break
		}
	}
	if err := s.wishlists.SetProducts(ctx, userID, w.ProductIDs); err != nil {
		return nil, err
	}
	return w, nil
}

// ----- Checkouts -----

// PlaceCheckout validates stock, prices the order from current product
// prices, persists the checkout stamped with the current time, decrements
// stock and clears the cart.
func (s *StoreService) PlaceCheckout(ctx context.Context, userID primitive.ObjectID, items []models.CheckoutItem, address string) (*models.Checkout, error) {
	total := 0.0
	for _, item := range items {
		product, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if product.Stock < item.Quantity {
			return nil, fmt.Errorf("%w: %s", ErrInsufficientStock, product.Title)
		}
		total += product.Price * float64(item.Quantity)
	}

	checkout := &models.Checkout{
		UserID:    userID,
		Items:     items,
		TotalCost: total,
		Address:   address,
		Status:    "Processing",
		CreatedAt: time.Now(),
	}
	id, err := s.checkouts.Insert(ctx, checkout)
	if err != nil {
		return nil, fmt.Errorf("save checkout: %w", err)
	}
	checkout.ID = id

	for _, item := range items {
		if err := s.products.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			return nil, fmt.Errorf("decrement stock: %w", err)
		}
	}
	if err := s.carts.SetItems(ctx, userID, []models.CartItem{}); err != nil {
		return nil, fmt.Errorf("clear cart: %w", err)
	}
	return checkout, nil
}

func (s *StoreService) UserCheckouts(ctx context.Context, userID primitive.ObjectID) ([]models.Checkout, error) {
	return s.checkouts.FindByUser(ctx, userID)
}

func (s *StoreService) AllCheckouts(ctx context.Context) ([]models.Checkout, error) {
	return s.checkouts.FindAll(ctx)
}

// ----- Reviews -----

// AddReview stores the review, links it to the product and recomputes the
// product's rating as the mean of all its reviews, rounded to one decimal.
func (s *StoreService) AddReview(ctx context.Context, userID, productID primitive.ObjectID, text string, rating float64) (*models.Review, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	review := &models.Review{
		ProductID:    productID,
		UserID:       userID,
		ReviewText:   text,
		ReviewRating: rating,
		CreatedAt:    time.Now(),
	}
	id, err := s.reviews.Insert(ctx, review)
	if err != nil {
		return nil, fmt.Errorf("save review: %w", err)
	}
	review.ID = id

	if err := s.products.PushReview(ctx, productID, id); err != nil {
		return nil, fmt.Errorf("link review to product: %w", err)
	}

	reviews, err := s.reviews.FindByIDs(ctx, append(product.Reviews, id))
	if err != nil {
		return nil, fmt.Errorf("load product reviews: %w", err)
	}
	if len(reviews) > 0 {
		total := 0.0
		for _, r := range reviews {
			total += r.ReviewRating
		}
		mean := math.Round(total/float64(len(reviews))*10) / 10
		if err := s.products.SetRating(ctx, productID, mean); err != nil {
			return nil, fmt.Errorf("update product rating: %w", err)
		}
	}
	return review, nil
}

// ----- Contact messages -----

func (s *StoreService) CreateContactMessage(ctx context.Context, msg *models.ContactMessage) (*models.ContactMessage, error) {
	msg.CreatedAt = time.Now()
	id, err := s.contacts.Insert(ctx, msg)
	if err != nil {
		return nil, err
	}
	msg.ID = id
	return msg, nil
}

func (s *StoreService) ContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	return s.contacts.FindAll(ctx)
}

func (s *StoreService) DeleteContactMessage(ctx context.Context, id primitive.ObjectID) error {
	return s.contacts.Delete(ctx, id)
}
