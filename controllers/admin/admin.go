package adminController

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/HemanthA0921/Ecommerce-React/mailer"
	"github.com/HemanthA0921/Ecommerce-React/services"
)

// SalesByPeriod serves the dashboard sales chart for the trailing day, week,
// month or year.
func SalesByPeriod(reports *services.ReportingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		report, err := reports.SalesByPeriod(c.Request.Context(), c.Param("period"))
		if errors.Is(err, services.ErrInvalidPeriod) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid time period"})
			return
		}
		if err != nil {
			logrus.WithError(err).Error("Error fetching sales data")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, report)
	}
}

// Orders lists every checkout in the store.
func Orders(store *services.StoreService) gin.HandlerFunc {
	return func(c *gin.Context) {
		checkouts, err := store.AllCheckouts(c.Request.Context())
		if err != nil {
			logrus.WithError(err).Error("Error fetching orders")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, checkouts)
	}
}

// Messages lists every contact-form message.
func Messages(store *services.StoreService) gin.HandlerFunc {
	return func(c *gin.Context) {
		messages, err := store.ContactMessages(c.Request.Context())
		if err != nil {
			logrus.WithError(err).Error("Error fetching messages")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, messages)
	}
}

func DeleteMessage(store *services.StoreService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := primitive.ObjectIDFromHex(c.Param("id"))
		err := store.DeleteContactMessage(c.Request.Context(), id)
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Message not found"})
			return
		}
		if err != nil {
			logrus.WithError(err).Error("Error deleting message")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Message deleted successfully"})
	}
}

func DeleteUser(store *services.StoreService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := primitive.ObjectIDFromHex(c.Param("id"))
		err := store.DeleteUser(c.Request.Context(), id)
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"user": "User not found"})
			return
		}
		if err != nil {
			logrus.WithError(err).Error("Error deleting user")
			c.JSON(http.StatusInternalServerError, gin.H{"user": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": "User deleted successfully"})
	}
}

// SendEmail replies to a customer query.
func SendEmail(m mailer.Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			To   string `json:"to" binding:"required,email"`
			Text string `json:"text" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
			return
		}
		if err := m.Send(req.To, "Reply to your query", req.Text); err != nil {
			logrus.WithError(err).Error("Error sending email")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error sending email"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Email sent successfully"})
	}
}
