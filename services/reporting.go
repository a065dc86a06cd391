package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/HemanthA0921/Ecommerce-React/models"
	"github.com/HemanthA0921/Ecommerce-React/repository"
)

const salesCacheTTL = 5 * time.Minute

// SalesReport is the payload of the admin sales chart: labels and data are
// index-aligned, ordered by date ascending.
type SalesReport struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

// ReportingService computes the admin sales report and the per-seller
// rating/review rollups.
type ReportingService struct {
	checkouts repository.CheckoutRepository
	sellers   repository.SellerRepository
	products  repository.ProductRepository
	reviews   repository.ReviewRepository
	cache     repository.ReportCache
}

// NewReportingService builds a ReportingService. cache may be nil, in which
// case reports are always computed from the store.
func NewReportingService(
	checkouts repository.CheckoutRepository,
	sellers repository.SellerRepository,
	products repository.ProductRepository,
	reviews repository.ReviewRepository,
	cache repository.ReportCache,
) *ReportingService {
	return &ReportingService{
		checkouts: checkouts,
		sellers:   sellers,
		products:  products,
		reviews:   reviews,
		cache:     cache,
	}
}

// SalesByPeriod sums checkout totals per calendar day over the trailing
// period ("day", "week", "month" or "year"). An empty window yields a report
// with two empty slices.
func (s *ReportingService) SalesByPeriod(ctx context.Context, period string) (*SalesReport, error) {
	now := time.Now()
	var start time.Time
	switch period {
	case "day":
		start = now.AddDate(0, 0, -1)
	case "week":
		start = now.AddDate(0, 0, -7)
	case "month":
		start = now.AddDate(0, -1, 0)
	case "year":
		start = now.AddDate(-1, 0, 0)
	default:
		return nil, ErrInvalidPeriod
	}

	cacheKey := "sales:" + period
	if s.cache != nil {
		var cached SalesReport
		if hit, err := s.cache.Get(ctx, cacheKey, &cached); err != nil {
			logrus.WithError(err).Warn("sales report cache read failed")
		} else if hit {
			return &cached, nil
		}
	}

	buckets, err := s.checkouts.SalesTotals(ctx, start, now)
	if err != nil {
		return nil, fmt.Errorf("aggregate sales: %w", err)
	}

	report := &SalesReport{
		Labels: make([]string, 0, len(buckets)),
		Data:   make([]float64, 0, len(buckets)),
	}
	for _, b := range buckets {
		report.Labels = append(report.Labels, b.Date)
		report.Data = append(report.Data, b.TotalSales)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, report, salesCacheTTL); err != nil {
			logrus.WithError(err).Warn("sales report cache write failed")
		}
	}
	return report, nil
}

// SellerRating averages the ratings of the seller's products, rounded to one
// decimal place. A seller with no products is reported as not found.
func (s *ReportingService) SellerRating(ctx context.Context, sellerID primitive.ObjectID) (float64, error) {
	seller, err := s.sellers.FindByID(ctx, sellerID)
	if err != nil {
		return 0, err
	}
	products, err := s.products.FindByIDs(ctx, seller.Products)
	if err != nil {
		return 0, fmt.Errorf("fetch seller products: %w", err)
	}
	if len(products) == 0 {
		return 0, ErrNotFound
	}
	total := 0.0
	for _, p := range products {
		total += p.Rating
	}
	avg := total / float64(len(products))
	return math.Round(avg*10) / 10, nil
}

// SellerReviews returns the seller's products that have at least one review,
// together with all of those reviews. Review ids are concatenated in product
// order and not deduplicated before resolution.
func (s *ReportingService) SellerReviews(ctx context.Context, sellerID primitive.ObjectID) ([]models.Product, []models.Review, error) {
	products, err := s.products.FindByManufacturer(ctx, sellerID)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch seller products: %w", err)
	}

	reviewed := make([]models.Product, 0, len(products))
	var reviewIDs []primitive.ObjectID
	for _, p := range products {
		if len(p.Reviews) > 0 {
			reviewed = append(reviewed, p)
			reviewIDs = append(reviewIDs, p.Reviews...)
		}
	}

	reviews, err := s.reviews.FindByIDs(ctx, reviewIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve reviews: %w", err)
	}
	return reviewed, reviews, nil
}
