package userController

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/HemanthA0921/Ecommerce-React/models"
	"github.com/HemanthA0921/Ecommerce-React/services"
)

func ListProducts(store *services.StoreService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := store.ListProducts(c.Request.Context())
		if err != nil {
			logrus.WithError(err).Error("Error fetching products")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

func GetProduct(store *services.StoreService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := primitive.ObjectIDFromHex(c.Param("id"))
		product, err := store.GetProduct(c.Request.Context(), id)
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if err != nil {
			logrus.WithError(err).Error("Error fetching product")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// PlaceCheckout turns the submitted items into an order priced from current
// product prices.
func PlaceCheckout(store *services.StoreService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Address string                `json:"address"`
			Items   []models.CheckoutItem `json:"items" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
			return
		}
		checkout, err := store.PlaceCheckout(c.Request.Context(), userID(c), req.Items, req.Address)
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product not found"})
			return
		}
		if errors.Is(err, services.ErrInsufficientStock) {
			c.JSON(http.StatusConflict, gin.H{"error": "Insufficient stock"})
			return
		}
		if err != nil {
			logrus.WithError(err).Error("Error placing checkout")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "checkout": checkout})
	}
}

func Checkouts(store *services.StoreService) gin.HandlerFunc {
	return func(c *gin.Context) {
		checkouts, err := store.UserCheckouts(c.Request.Context(), userID(c))
		if err != nil {
			logrus.WithError(err).Error("Error fetching checkouts")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, checkouts)
	}
}

// AddReview attaches a review to a product and refreshes the product rating.
func AddReview(store *services.StoreService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			ProductID    primitive.ObjectID `json:"product" binding:"required"`
			ReviewText   string             `json:"reviewText"`
			ReviewRating float64            `json:"reviewRating" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
			return
		}
		review, err := store.AddReview(c.Request.Context(), userID(c), req.ProductID, req.ReviewText, req.ReviewRating)
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if err != nil {
			logrus.WithError(err).Error("Error adding review")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusCreated, review)
	}
}

// Contact records a contact-form message for the admin dashboard.
func Contact(store *services.StoreService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ContactMessage
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
			return
		}
		msg, err := store.CreateContactMessage(c.Request.Context(), &req)
		if err != nil {
			logrus.WithError(err).Error("Error saving contact message")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusCreated, msg)
	}
}
