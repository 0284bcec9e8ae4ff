package routes

import (
	"time"

	"github.com/Sonaa-Moda/sonaa-storefront-backend/controllers/account/address_controller"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/controllers/account/order_controller"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/controllers/account/profile_controller"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAccountRoutes wires the per-shopper account surface. Everything
// here requires the session header and is rate limited.
func SetupAccountRoutes(router *gin.RouterGroup) {
	user := router.Group("/user")
	user.Use(middleware.Session())
	user.Use(middleware.RateLimiter(60, time.Minute))
	{
		user.GET("/profile", profile_controller.GetProfile)
		user.PATCH("/profile", profile_controller.UpdateProfile)
		user.POST("/profile/avatar", profile_controller.UploadAvatar)

		// Addresses
		user.GET("/addresses", address_controller.GetAddresses)
		user.POST("/addresses", address_controller.AddAddress)
		user.PUT("/addresses/:id", address_controller.UpdateAddress)
		user.DELETE("/addresses/:id", address_controller.DeleteAddress)
		user.PATCH("/addresses/:id/default", address_controller.SetDefaultAddress)

		// Orders
		user.GET("/orders", order_controller.GetOrders)
		user.POST("/orders", order_controller.CreateOrder)
		user.GET("/orders/:id", order_controller.GetOrderDetails)
		user.GET("/orders/:id/invoice", order_controller.DownloadOrderInvoice)
	}
}
