package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/HemanthA0921/Ecommerce-React/models"
	"github.com/HemanthA0921/Ecommerce-React/services"
)

func TestSalesByPeriod_LabelsAndDataAligned(t *testing.T) {
	buckets := []models.SalesBucket{
		{Date: "2024-03-01", TotalSales: 120},
		{Date: "2024-03-02", TotalSales: 85.5},
		{Date: "2024-03-04", TotalSales: 310},
	}

	for _, period := range []string{"day", "week", "month", "year"} {
		checkouts := new(mockCheckoutRepo)
		checkouts.On("SalesTotals", mock.Anything, mock.Anything, mock.Anything).Return(buckets, nil).Once()
		svc := services.NewReportingService(checkouts, nil, nil, nil, nil)

		report, err := svc.SalesByPeriod(context.Background(), period)
		assert.NoError(t, err, period)
		assert.Len(t, report.Labels, len(report.Data))
		for i := 1; i < len(report.Labels); i++ {
			assert.LessOrEqual(t, report.Labels[i-1], report.Labels[i])
		}
		assert.Equal(t, []string{"2024-03-01", "2024-03-02", "2024-03-04"}, report.Labels)
		assert.Equal(t, []float64{120, 85.5, 310}, report.Data)
		checkouts.AssertExpectations(t)
	}
}

func TestSalesByPeriod_EmptyWindow(t *testing.T) {
	checkouts := new(mockCheckoutRepo)
	checkouts.On("SalesTotals", mock.Anything, mock.Anything, mock.Anything).Return([]models.SalesBucket{}, nil).Once()
	svc := services.NewReportingService(checkouts, nil, nil, nil, nil)

	report, err := svc.SalesByPeriod(context.Background(), "week")
	assert.NoError(t, err)
	assert.NotNil(t, report.Labels)
	assert.NotNil(t, report.Data)
	assert.Empty(t, report.Labels)
	assert.Empty(t, report.Data)
}

func TestSalesByPeriod_InvalidPeriod(t *testing.T) {
	svc := services.NewReportingService(new(mockCheckoutRepo), nil, nil, nil, nil)

	_, err := svc.SalesByPeriod(context.Background(), "fortnight")
	assert.ErrorIs(t, err, services.ErrInvalidPeriod)
}

func TestSalesByPeriod_CacheHitSkipsStore(t *testing.T) {
	checkouts := new(mockCheckoutRepo)
	checkouts.On("SalesTotals", mock.Anything, mock.Anything, mock.Anything).
		Return([]models.SalesBucket{{Date: "2024-03-01", TotalSales: 42}}, nil).Once()
	cache := newMemoryCache()
	svc := services.NewReportingService(checkouts, nil, nil, nil, cache)

	first, err := svc.SalesByPeriod(context.Background(), "month")
	assert.NoError(t, err)
	second, err := svc.SalesByPeriod(context.Background(), "month")
	assert.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.hits)
	// Only one aggregation reached the store.
	checkouts.AssertNumberOfCalls(t, "SalesTotals", 1)
}

func TestSellerRating_RoundsToOneDecimal(t *testing.T) {
	sellerID := primitive.NewObjectID()
	productIDs := []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID()}

	sellers := new(mockSellerRepo)
	sellers.On("FindByID", mock.Anything, sellerID).
		Return(&models.Seller{ID: sellerID, Products: productIDs}, nil).Once()
	products := new(mockProductRepo)
	products.On("FindByIDs", mock.Anything, productIDs).Return([]models.Product{
		{Rating: 4.2}, {Rating: 4.6}, {Rating: 5.0},
	}, nil).Once()
	svc := services.NewReportingService(nil, sellers, products, nil, nil)

	rating, err := svc.SellerRating(context.Background(), sellerID)
	assert.NoError(t, err)
	assert.Equal(t, 4.6, rating)
	sellers.AssertExpectations(t)
	products.AssertExpectations(t)
}

func TestSellerRating_NoProducts(t *testing.T) {
	sellerID := primitive.NewObjectID()
	sellers := new(mockSellerRepo)
	sellers.On("FindByID", mock.Anything, sellerID).
		Return(&models.Seller{ID: sellerID, Products: []primitive.ObjectID{}}, nil).Once()
	products := new(mockProductRepo)
	products.On("FindByIDs", mock.Anything, mock.Anything).Return([]models.Product{}, nil).Once()
	svc := services.NewReportingService(nil, sellers, products, nil, nil)

	_, err := svc.SellerRating(context.Background(), sellerID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestSellerRating_UnknownSeller(t *testing.T) {
	sellerID := primitive.NewObjectID()
	sellers := new(mockSellerRepo)
	sellers.On("FindByID", mock.Anything, sellerID).Return(nil, services.ErrNotFound).Once()
	svc := services.NewReportingService(nil, sellers, new(mockProductRepo), nil, nil)

	_, err := svc.SellerRating(context.Background(), sellerID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestSellerReviews_PartitionsAndConcatenates(t *testing.T) {
	sellerID := primitive.NewObjectID()
	r1, r2, r3 := primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID()
	reviewed1 := models.Product{ID: primitive.NewObjectID(), Reviews: []primitive.ObjectID{r1, r2}}
	bare := models.Product{ID: primitive.NewObjectID(), Reviews: nil}
	reviewed2 := models.Product{ID: primitive.NewObjectID(), Reviews: []primitive.ObjectID{r3}}

	products := new(mockProductRepo)
	products.On("FindByManufacturer", mock.Anything, sellerID).
		Return([]models.Product{reviewed1, bare, reviewed2}, nil).Once()
	reviews := new(mockReviewRepo)
	// Ids must arrive concatenated in product order, untouched.
	reviews.On("FindByIDs", mock.Anything, []primitive.ObjectID{r1, r2, r3}).Return([]models.Review{
		{ID: r1}, {ID: r2}, {ID: r3},
	}, nil).Once()
	svc := services.NewReportingService(nil, nil, products, reviews, nil)

	withReviews, resolved, err := svc.SellerReviews(context.Background(), sellerID)
	assert.NoError(t, err)
	assert.Equal(t, []models.Product{reviewed1, reviewed2}, withReviews)
	assert.Len(t, resolved, 3)
	reviews.AssertExpectations(t)
}

func TestSellerReviews_NoReviewedProducts(t *testing.T) {
	sellerID := primitive.NewObjectID()
	products := new(mockProductRepo)
	products.On("FindByManufacturer", mock.Anything, sellerID).
		Return([]models.Product{{ID: primitive.NewObjectID()}}, nil).Once()
	reviews := new(mockReviewRepo)
	reviews.On("FindByIDs", mock.Anything, mock.Anything).Return([]models.Review{}, nil).Once()
	svc := services.NewReportingService(nil, nil, products, reviews, nil)

	withReviews, resolved, err := svc.SellerReviews(context.Background(), sellerID)
	assert.NoError(t, err)
	assert.Empty(t, withReviews)
	assert.Empty(t, resolved)
}
