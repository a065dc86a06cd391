package routes

import (
	"github.com/gin-gonic/gin"

	userController "github.com/HemanthA0921/Ecommerce-React/controllers/user"
	"github.com/HemanthA0921/Ecommerce-React/middleware"
)

// SetupUserRoutes registers the storefront endpoints under /api/user. Account
// routes require a bearer token; browsing and the contact form do not.
func SetupUserRoutes(r *gin.Engine, d Deps) {
	user := r.Group("/api/user")
	{
		user.POST("/register", userController.Register(d.Auth))
		user.POST("/login", userController.Login(d.Auth))
		user.GET("/products", userController.ListProducts(d.Store))
		user.GET("/products/:id", userController.GetProduct(d.Store))
		user.POST("/contactUs", userController.Contact(d.Store))
	}

	auth := user.Group("", middleware.RequireAuth(d.Cfg.JWTSecret))
	{
		auth.GET("/profile", userController.GetProfile(d.Store))
		auth.PUT("/profile", userController.UpdateProfile(d.Store))

		auth.GET("/cart", userController.GetCart(d.Store))
		auth.POST("/cart", userController.AddToCart(d.Store))
		auth.PUT("/cart/:productId", userController.UpdateCart(d.Store))
		auth.DELETE("/cart/:productId", userController.RemoveCartItem(d.Store))
		auth.POST("/cart/clear", userController.ClearCart(d.Store))

		auth.GET("/wishlist", userController.GetWishlist(d.Store))
		auth.POST("/wishlist", userController.AddToWishlist(d.Store))
		auth.DELETE("/wishlist/:productId", userController.RemoveFromWishlist(d.Store))

		auth.GET("/checkouts", userController.Checkouts(d.Store))
		auth.POST("/checkouts", userController.PlaceCheckout(d.Store))
		auth.POST("/reviews", userController.AddReview(d.Store))
	}
}
