package userController

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/HemanthA0921/Ecommerce-React/models"
	"github.com/HemanthA0921/Ecommerce-React/services"
)

func GetCart(store *services.StoreService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := store.GetCart(c.Request.Context(), userID(c))
		if err != nil {
			logrus.WithError(err).Error("Error fetching cart")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

func AddToCart(store *services.StoreService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CartItem
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
			return
		}
		cart, err := store.AddToCart(c.Request.Context(), userID(c), req)
		if err != nil {
			logrus.WithError(err).Error("Error adding to cart")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

func UpdateCart(store *services.StoreService) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, _ := primitive.ObjectIDFromHex(c.Param("productId"))
		var req struct {
			Quantity int `json:"quantity"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			// Tolerate form posts from the older storefront pages.
			req.Quantity, _ = strconv.Atoi(c.PostForm("quantity"))
		}
		cart, err := store.UpdateCartItem(c.Request.Context(), userID(c), productID, req.Quantity)
		if err != nil {
			logrus.WithError(err).Error("Error updating cart")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

func RemoveCartItem(store *services.StoreService) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, _ := primitive.ObjectIDFromHex(c.Param("productId"))
		cart, err := store.RemoveCartItem(c.Request.Context(), userID(c), productID)
		if err != nil {
			logrus.WithError(err).Error("Error removing cart item")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

func ClearCart(store *services.StoreService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.ClearCart(c.Request.Context(), userID(c)); err != nil {
			logrus.WithError(err).Error("Error clearing cart")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "cleared"})
	}
}

func GetWishlist(store *services.StoreService) gin.HandlerFunc {
	return func(c *gin.Context) {
		w, err := store.GetWishlist(c.Request.Context(), userID(c))
		if err != nil {
			logrus.WithError(err).Error("Error fetching wishlist")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, w)
	}
}

func AddToWishlist(store *services.StoreService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			ProductID primitive.ObjectID `json:"productId" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
			return
		}
		w, err := store.AddToWishlist(c.Request.Context(), userID(c), req.ProductID)
		if err != nil {
			logrus.WithError(err).Error("Error adding to wishlist")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, w)
	}
}

func RemoveFromWishlist(store *services.StoreService) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, _ := primitive.ObjectIDFromHex(c.Param("productId"))
		w, err := store.RemoveFromWishlist(c.Request.Context(), userID(c), productID)
		if err != nil {
			logrus.WithError(err).Error("Error removing from wishlist")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, w)
	}
}
