package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"

	"github.com/HemanthA0921/Ecommerce-React/models"
	"github.com/HemanthA0921/Ecommerce-React/repository"
	"github.com/HemanthA0921/Ecommerce-React/upload"
)

// AddProductInput carries the product fields plus the local paths of the four
// image assets, in the order primary, thumbnail1, thumbnail2, thumbnail3.
type AddProductInput struct {
	ProductCode  string
	Title        string
	Description  string
	Features1    string
	Features2    string
	Features3    string
	Features4    string
	MRP          float64
	Price        float64
	Reviewed     int
	Sold         int
	Stock        int
	Brand        string
	Manufacturer primitive.ObjectID
	Available    bool
	Category     string
	Rating       float64
	ImagePaths   [4]string
}

// ResolvedCheckoutItem is a checkout line item with its product reference
// resolved. Product is nil when the referenced document no longer exists.
type ResolvedCheckoutItem struct {
	Product  *models.Product `json:"productId"`
	Quantity int             `json:"quantity"`
}

// ResolvedCheckout is a checkout with its user and product references
// resolved for the seller dashboard.
type ResolvedCheckout struct {
	ID        primitive.ObjectID     `json:"id"`
	User      *models.User           `json:"user"`
	Items     []ResolvedCheckoutItem `json:"items"`
	TotalCost float64                `json:"totalCost"`
	Address   string                 `json:"address"`
	Status    string                 `json:"status"`
	CreatedAt time.Time              `json:"createdAt"`
}

// CatalogService owns product lifecycle and the seller-side order views.
type CatalogService struct {
	products  repository.ProductRepository
	sellers   repository.SellerRepository
	checkouts repository.CheckoutRepository
	users     repository.UserRepository
	uploader  upload.Uploader
}

func NewCatalogService(
	products repository.ProductRepository,
	sellers repository.SellerRepository,
	checkouts repository.CheckoutRepository,
	users repository.UserRepository,
	uploader upload.Uploader,
) *CatalogService {
	return &CatalogService{
		products:  products,
		sellers:   sellers,
		checkouts: checkouts,
		users:     users,
		uploader:  uploader,
	}
}

// AddProduct uploads the four image assets concurrently, then persists the
// product and appends its id to the owning seller's product list. If any
// upload fails, nothing is written to the store. The two writes are not
// transactional: a failed seller update leaves an orphaned product.
func (s *CatalogService) AddProduct(ctx context.Context, in AddProductInput) (*models.Product, error) {
	var urls [4]string
	g, gctx := errgroup.WithContext(ctx)
	for i, path := range in.ImagePaths {
		i, path := i, path
		g.Go(func() error {
			url, err := s.uploader.Upload(gctx, path, in.ProductCode)
			if err != nil {
				return fmt.Errorf("upload image %d: %w", i, err)
			}
			urls[i] = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	product := &models.Product{
		ProductCode:     in.ProductCode,
		Title:           in.Title,
		ImagePath:       urls[0],
		ImageThumbnail1: urls[1],
		ImageThumbnail2: urls[2],
		ImageThumbnail3: urls[3],
		Description:     in.Description,
		Features1:       in.Features1,
		Features2:       in.Features2,
		Features3:       in.Features3,
		Features4:       in.Features4,
		MRP:             in.MRP,
		Price:           in.Price,
		Reviewed:        in.Reviewed,
		Sold:            in.Sold,
		Stock:           in.Stock,
		Brand:           in.Brand,
		Manufacturer:    in.Manufacturer,
		Available:       in.Available,
		Category:        in.Category,
		Rating:          in.Rating,
		Reviews:         []primitive.ObjectID{},
	}

	id, err := s.products.Insert(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("save product: %w", err)
	}
	product.ID = id

	if err := s.sellers.PushProduct(ctx, in.Manufacturer, id); err != nil {
		return nil, fmt.Errorf("link product to seller: %w", err)
	}
	return product, nil
}

// DeleteProduct removes the product document and pulls its id from the owning
// seller's product list. A missing product fails before any seller mutation.
// Image-host cleanup is best effort and never fails the delete.
func (s *CatalogService) DeleteProduct(ctx context.Context, id primitive.ObjectID) error {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.sellers.PullProduct(ctx, product.Manufacturer, id); err != nil {
		return fmt.Errorf("unlink product from seller: %w", err)
	}

	for _, u := range []string{product.ImagePath, product.ImageThumbnail1, product.ImageThumbnail2, product.ImageThumbnail3} {
		publicID := upload.PublicIDFromURL(u)
		if publicID == "" {
			continue
		}
		if err := s.uploader.Remove(ctx, publicID); err != nil {
			logrus.WithError(err).WithField("publicId", publicID).Warn("image host cleanup failed")
		}
	}
	return nil
}

// SellerProducts lists every product manufactured by the seller.
func (s *CatalogService) SellerProducts(ctx context.Context, sellerID primitive.ObjectID) ([]models.Product, error) {
	return s.products.FindByManufacturer(ctx, sellerID)
}

// SellerCheckouts finds every checkout containing at least one of the
// seller's products and resolves each checkout's user and product references.
// No matching checkouts is an empty list, not an error.
func (s *CatalogService) SellerCheckouts(ctx context.Context, sellerID primitive.ObjectID) ([]ResolvedCheckout, error) {
	sellerProducts, err := s.products.FindByManufacturer(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("fetch seller products: %w", err)
	}
	productIDs := make([]primitive.ObjectID, 0, len(sellerProducts))
	for _, p := range sellerProducts {
		productIDs = append(productIDs, p.ID)
	}

	checkouts, err := s.checkouts.FindByProductIDs(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("fetch checkouts: %w", err)
	}

	// Collect every referenced id once, then resolve in two batched reads.
	itemIDSet := make(map[primitive.ObjectID]struct{})
	userIDSet := make(map[primitive.ObjectID]struct{})
	for _, co := range checkouts {
		userIDSet[co.UserID] = struct{}{}
		for _, item := range co.Items {
			itemIDSet[item.ProductID] = struct{}{}
		}
	}
	itemIDs := make([]primitive.ObjectID, 0, len(itemIDSet))
	for id := range itemIDSet {
		itemIDs = append(itemIDs, id)
	}
	userIDs := make([]primitive.ObjectID, 0, len(userIDSet))
	for id := range userIDSet {
		userIDs = append(userIDs, id)
	}

	itemProducts, err := s.products.FindByIDs(ctx, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("resolve checkout products: %w", err)
	}
	users, err := s.users.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("resolve checkout users: %w", err)
	}

	productByID := make(map[primitive.ObjectID]*models.Product, len(itemProducts))
	for i := range itemProducts {
		productByID[itemProducts[i].ID] = &itemProducts[i]
	}
	userByID := make(map[primitive.ObjectID]*models.User, len(users))
	for i := range users {
		users[i].Password = ""
		userByID[users[i].ID] = &users[i]
	}

	resolved := make([]ResolvedCheckout, 0, len(checkouts))
	for _, co := range checkouts {
		items := make([]ResolvedCheckoutItem, 0, len(co.Items))
		for _, item := range co.Items {
			items = append(items, ResolvedCheckoutItem{
				Product:  productByID[item.ProductID],
				Quantity: item.Quantity,
			})
		}
		resolved = append(resolved, ResolvedCheckout{
			ID:        co.ID,
			User:      userByID[co.UserID],
			Items:     items,
			TotalCost: co.TotalCost,
			Address:   co.Address,
			Status:    co.Status,
			CreatedAt: co.CreatedAt,
		})
	}
	return resolved, nil
}
