package main

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/HemanthA0921/Ecommerce-React/config"
	"github.com/HemanthA0921/Ecommerce-React/mailer"
	"github.com/HemanthA0921/Ecommerce-React/middleware"
	"github.com/HemanthA0921/Ecommerce-React/repository"
	"github.com/HemanthA0921/Ecommerce-React/routes"
	"github.com/HemanthA0921/Ecommerce-React/services"
	"github.com/HemanthA0921/Ecommerce-React/upload"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	cfg := config.Load()

	// Connect to MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logrus.Fatalf("failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		logrus.Fatalf("failed to ping MongoDB: %v", err)
	}
	logrus.Info("Connected to MongoDB")
	db := client.Database(cfg.MongoDB)

	// Redis backs the reporting cache; the app runs without it.
	var cache repository.ReportCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logrus.WithError(err).Warn("Redis unavailable, reporting cache disabled")
		} else {
			logrus.Info("Redis client connected")
			cache = repository.NewRedisCache(rdb)
		}
	}

	uploader, err := upload.NewCloudinary(cfg.CloudinaryURL)
	if err != nil {
		logrus.Fatalf("failed to init image host client: %v", err)
	}
	mail := mailer.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)

	users := repository.NewUserRepository(db)
	sellers := repository.NewSellerRepository(db)
	products := repository.NewProductRepository(db)
	checkouts := repository.NewCheckoutRepository(db)
	reviews := repository.NewReviewRepository(db)
	contacts := repository.NewContactRepository(db)
	carts := repository.NewCartRepository(db)
	wishlists := repository.NewWishlistRepository(db)

	deps := routes.Deps{
		Cfg:     cfg,
		Reports: services.NewReportingService(checkouts, sellers, products, reviews, cache),
		Catalog: services.NewCatalogService(products, sellers, checkouts, users, uploader),
		Auth:    services.NewAuthService(sellers, users, cfg.JWTSecret),
		Store:   services.NewStoreService(users, products, carts, wishlists, checkouts, reviews, contacts),
		Sellers: sellers,
		Mailer:  mail,
	}

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.Recovery(cfg.Debug))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.AllowOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-API-KEY"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "GOG Backend is Running...")
	})

	routes.SetupRoutes(r, deps)

	logrus.Infof("Server is running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.Fatalf("failed to start server: %v", err)
	}
}
