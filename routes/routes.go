package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/HemanthA0921/Ecommerce-React/config"
	"github.com/HemanthA0921/Ecommerce-React/mailer"
	"github.com/HemanthA0921/Ecommerce-React/repository"
	"github.com/HemanthA0921/Ecommerce-React/services"
)

// Deps is the application context built at startup and handed to every route
// group. Handlers receive their collaborators from here instead of package
// globals.
type Deps struct {
	Cfg     *config.Config
	Reports *services.ReportingService
	Catalog *services.CatalogService
	Auth    *services.AuthService
	Store   *services.StoreService
	Sellers repository.SellerRepository
	Mailer  mailer.Mailer
}

// SetupRoutes wires up the admin, seller and user route groups.
func SetupRoutes(r *gin.Engine, d Deps) {
	SetupAdminRoutes(r, d)
	SetupSellerRoutes(r, d)
	SetupUserRoutes(r, d)
}
