// @title Sonaa Moda Storefront API
// @version 1.0
// @description Sonaa Moda Style storefront backend API documentation
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Sonaa-Moda/sonaa-storefront-backend/config"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/controllers/account/address_controller"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/controllers/account/order_controller"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/controllers/account/profile_controller"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/controllers/storefront/cart_controller"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/controllers/storefront/contact_controller"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/controllers/storefront/filter_controller"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/controllers/storefront/product_controller"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/controllers/storefront/wishlist_controller"
	_ "github.com/Sonaa-Moda/sonaa-storefront-backend/docs"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/models"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/routes"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/services"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/store"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	_ = godotenv.Load()
}

// newStore picks the backend. Memory is the default: the catalog comes
// from fixtures and shopper state resets on restart. Set
// STORE_BACKEND=postgres for a durable deployment.
func newStore() store.Store {
	switch os.Getenv("STORE_BACKEND") {
	case "postgres":
		config.InitDB()
		if err := store.Migrate(); err != nil {
			log.Fatalf("❌ Failed to run migrations: %v", err)
		}
		log.Println("✅ Using Postgres store backend")
		return store.NewPostgres()
	default:
		log.Println("✅ Using in-memory store backend (state resets on restart)")
		return store.NewMemory()
	}
}

func main() {
	db := newStore()
	defer db.Close()

	// Redis connection (rate limiting + filter metadata cache)
	config.ConnectRedis()

	// Custom validators for request binding
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("phone", models.ValidPhone); err != nil {
			log.Fatalf("❌ Failed to register phone validator: %v", err)
		}
	}

	// Email is optional: without RESEND_API_KEY the shop runs silently
	resendClient, err := services.NewResendClient()
	if err != nil {
		log.Printf("⚠️ Email disabled: %v", err)
	}

	// Cloudinary is optional too: without credentials avatar uploads 503
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	if cloudName != "" {
		if err := profile_controller.InitCloudinary(cloudName, apiKey, apiSecret); err != nil {
			log.Fatalf("❌ Failed to initialize Cloudinary: %v", err)
		}
		log.Println("✅ Cloudinary initialized")
	} else {
		log.Println("⚠️ CLOUDINARY_CLOUD_NAME not set, avatar uploads disabled")
	}

	// Wire controllers to the backend
	product_controller.Init(db)
	filter_controller.Init(db)
	cart_controller.Init(db)
	wishlist_controller.Init(db)
	contact_controller.Init(db, resendClient)
	profile_controller.Init(db)
	address_controller.Init(db)
	order_controller.Init(db, resendClient)

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Session-ID", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"}, // Expose these headers for downloads
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")
	routes.SetupStorefrontRoutes(api)
	routes.SetupAccountRoutes(api)

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Println("🚀 Server is running on http://localhost:" + port)
	router.Run(":" + port)
}
