package sellerController

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/HemanthA0921/Ecommerce-React/repository"
	"github.com/HemanthA0921/Ecommerce-React/services"
)

// List returns every seller account for the admin dashboard.
func List(sellers repository.SellerRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := sellers.FindAll(c.Request.Context())
		if err != nil {
			logrus.WithError(err).Error("Error fetching sellers")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sellers"})
			return
		}
		for i := range all {
			all[i].Password = ""
		}
		c.JSON(http.StatusOK, gin.H{"sellers": all})
	}
}

func Get(sellers repository.SellerRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := primitive.ObjectIDFromHex(c.Param("id"))
		seller, err := sellers.FindByID(c.Request.Context(), id)
		if err != nil {
			logrus.WithError(err).Error("Error fetching seller")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		seller.Password = ""
		c.JSON(http.StatusOK, seller)
	}
}

func Register(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Username    string `json:"username"`
			Email       string `json:"email" binding:"required,email"`
			Password    string `json:"password" binding:"required"`
			CompanyName string `json:"companyName"`
			Address     string `json:"address"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input"})
			return
		}
		_, err := auth.RegisterSeller(c.Request.Context(), services.RegisterSellerInput{
			Username:    req.Username,
			Email:       req.Email,
			Password:    req.Password,
			CompanyName: req.CompanyName,
			Address:     req.Address,
		})
		if errors.Is(err, services.ErrDuplicateEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Seller already exists"})
			return
		}
		if err != nil {
			logrus.WithError(err).Error("Registration error")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Seller registered successfully"})
	}
}

func Login(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email" binding:"required"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input"})
			return
		}
		seller, token, err := auth.LoginSeller(c.Request.Context(), req.Email, req.Password)
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Seller not found"})
			return
		}
		if errors.Is(err, services.ErrBadCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		if err != nil {
			logrus.WithError(err).Error("Login error")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Login successful", "seller": seller, "token": token})
	}
}

func Approve(auth *services.AuthService) gin.HandlerFunc {
	return setApproval(auth, true, "Seller approved successfully")
}

func Revoke(auth *services.AuthService) gin.HandlerFunc {
	return setApproval(auth, false, "Seller approval revoked successfully")
}

func setApproval(auth *services.AuthService, approved bool, okMessage string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := primitive.ObjectIDFromHex(c.Param("id"))
		seller, err := auth.SetSellerApproval(c.Request.Context(), id, approved)
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Seller not found"})
			return
		}
		if err != nil {
			logrus.WithError(err).Error("Error updating seller approval")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": okMessage, "seller": seller})
	}
}
