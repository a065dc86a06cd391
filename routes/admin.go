package routes

import (
	"github.com/gin-gonic/gin"

	adminController "github.com/HemanthA0921/Ecommerce-React/controllers/admin"
	"github.com/HemanthA0921/Ecommerce-React/middleware"
)

// SetupAdminRoutes registers the dashboard endpoints under /api/admin,
// guarded by the admin API key.
func SetupAdminRoutes(r *gin.Engine, d Deps) {
	admin := r.Group("/api/admin")
	admin.Use(middleware.RequireAPIKey(d.Cfg.AdminAPIKey))
	{
		admin.GET("/sales/:period", adminController.SalesByPeriod(d.Reports))
		admin.GET("/orders", adminController.Orders(d.Store))
		admin.GET("/messages", adminController.Messages(d.Store))
		admin.DELETE("/contactUs/:id", adminController.DeleteMessage(d.Store))
		admin.DELETE("/deleUser/:id", adminController.DeleteUser(d.Store))
	}

	// Query replies from the messages screen.
	r.POST("/sendemail", middleware.RequireAPIKey(d.Cfg.AdminAPIKey), adminController.SendEmail(d.Mailer))
}
