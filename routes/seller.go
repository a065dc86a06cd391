package routes

import (
	"github.com/gin-gonic/gin"

	sellerController "github.com/HemanthA0921/Ecommerce-React/controllers/seller"
)

// SetupSellerRoutes registers the seller portal endpoints under /api/seller.
func SetupSellerRoutes(r *gin.Engine, d Deps) {
	seller := r.Group("/api/seller")
	{
		seller.GET("/", sellerController.List(d.Sellers))
		seller.GET("/sellers/:id", sellerController.Get(d.Sellers))
		seller.GET("/sellerRating/:sellerId", sellerController.Rating(d.Reports))

		seller.POST("/register", sellerController.Register(d.Auth))
		seller.POST("/login", sellerController.Login(d.Auth))
		seller.PUT("/:id/approve", sellerController.Approve(d.Auth))
		seller.PUT("/:id/revoke", sellerController.Revoke(d.Auth))

		seller.POST("/addproduct", sellerController.AddProduct(d.Catalog))
		seller.GET("/checkouts/:id", sellerController.Checkouts(d.Catalog))
		seller.GET("/products/:id", sellerController.Products(d.Catalog))
		seller.GET("/reviews/:id", sellerController.Reviews(d.Reports))
		seller.DELETE("/deleteProduct/:id", sellerController.DeleteProduct(d.Catalog))
	}
}
