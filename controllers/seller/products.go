package sellerController

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/HemanthA0921/Ecommerce-React/services"
)

var imageFields = [4]string{"imagePath", "imagethumbnail1", "imagethumbnail2", "imagethumbnail3"}

// AddProduct creates a product from a multipart form carrying the primary
// image and three thumbnails. All four assets must upload before anything is
// persisted.
func AddProduct(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		manufacturer, err := primitive.ObjectIDFromHex(c.PostForm("manufacturer"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid manufacturer id"})
			return
		}

		in := services.AddProductInput{
			ProductCode:  c.PostForm("productCode"),
			Title:        c.PostForm("title"),
			Description:  c.PostForm("description"),
			Features1:    c.PostForm("features1"),
			Features2:    c.PostForm("features2"),
			Features3:    c.PostForm("features3"),
			Features4:    c.PostForm("features4"),
			Brand:        c.PostForm("brand"),
			Category:     c.PostForm("category"),
			Manufacturer: manufacturer,
		}
		in.MRP, _ = strconv.ParseFloat(c.PostForm("mrp"), 64)
		in.Price, _ = strconv.ParseFloat(c.PostForm("price"), 64)
		in.Rating, _ = strconv.ParseFloat(c.PostForm("rating"), 64)
		in.Reviewed, _ = strconv.Atoi(c.PostForm("reviewed"))
		in.Sold, _ = strconv.Atoi(c.PostForm("sold"))
		in.Stock, _ = strconv.Atoi(c.PostForm("stock"))
		in.Available, _ = strconv.ParseBool(c.PostForm("available"))

		// Spool the four uploads to disk; the image host client reads paths.
		for i, field := range imageFields {
			file, err := c.FormFile(field)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": field + " is required"})
				return
			}
			dst := filepath.Join(os.TempDir(), uuid.NewString()+filepath.Ext(file.Filename))
			if err := c.SaveUploadedFile(file, dst); err != nil {
				logrus.WithError(err).Error("Error spooling upload")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
				return
			}
			defer os.Remove(dst)
			in.ImagePaths[i] = dst
		}

		if _, err := catalog.AddProduct(c.Request.Context(), in); err != nil {
			logrus.WithError(err).Error("Error adding product")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
			return
		}
		c.String(http.StatusCreated, "Image uploaded successfully!")
	}
}

// Checkouts lists the orders containing any of the seller's products, with
// user and product references resolved.
func Checkouts(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sellerID, _ := primitive.ObjectIDFromHex(c.Param("id"))
		checkouts, err := catalog.SellerCheckouts(c.Request.Context(), sellerID)
		if err != nil {
			logrus.WithError(err).Error("Error fetching seller orders")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal Server Error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "checkouts": checkouts})
	}
}

func Products(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sellerID, _ := primitive.ObjectIDFromHex(c.Param("id"))
		products, err := catalog.SellerProducts(c.Request.Context(), sellerID)
		if err != nil {
			logrus.WithError(err).Error("Error fetching seller products")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal Server Error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

// Reviews returns the seller's reviewed products together with the resolved
// review documents.
func Reviews(reports *services.ReportingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sellerID, _ := primitive.ObjectIDFromHex(c.Param("id"))
		products, reviews, err := reports.SellerReviews(c.Request.Context(), sellerID)
		if err != nil {
			logrus.WithError(err).Error("Error fetching seller reviews")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal Server Error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"productsData": products, "reviewsData": reviews})
	}
}

// Rating returns the seller's average product rating.
func Rating(reports *services.ReportingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sellerID, _ := primitive.ObjectIDFromHex(c.Param("sellerId"))
		rating, err := reports.SellerRating(c.Request.Context(), sellerID)
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "No products found for this seller"})
			return
		}
		if err != nil {
			logrus.WithError(err).Error("Error fetching seller rating")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"sellerRating": rating})
	}
}

// DeleteProduct removes a product and unlinks it from its seller.
func DeleteProduct(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := primitive.ObjectIDFromHex(c.Param("id"))
		err := catalog.DeleteProduct(c.Request.Context(), id)
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"product": "Product not found"})
			return
		}
		if err != nil {
			logrus.WithError(err).Error("Error deleting product")
			c.JSON(http.StatusInternalServerError, gin.H{"product": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"product": "Product deleted successfully"})
	}
}
