package routes

import (
	"github.com/Sonaa-Moda/sonaa-storefront-backend/controllers/storefront/cart_controller"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/controllers/storefront/contact_controller"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/controllers/storefront/filter_controller"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/controllers/storefront/product_controller"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/controllers/storefront/wishlist_controller"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupStorefrontRoutes wires the public shopping surface. Catalog
// reads need no session; cart and wishlist do.
func SetupStorefrontRoutes(router *gin.RouterGroup) {
	products := router.Group("/products")
	{
		products.GET("", product_controller.GetProducts)
		products.GET("/:id", product_controller.GetProductByID)
	}

	router.GET("/filters/metadata", filter_controller.GetFilterMetadata)

	cart := router.Group("/cart")
	cart.Use(middleware.Session())
	{
		cart.GET("", cart_controller.GetCart)
		cart.DELETE("", cart_controller.ClearCart)
		cart.POST("/items", cart_controller.AddCartItem)
		cart.PATCH("/items/:itemId", cart_controller.UpdateCartItem)
		cart.DELETE("/items/:itemId", cart_controller.RemoveCartItem)
		cart.POST("/promo", cart_controller.ApplyPromo)
		cart.DELETE("/promo", cart_controller.RemovePromo)
	}

	wishlist := router.Group("/wishlist")
	wishlist.Use(middleware.Session())
	{
		wishlist.GET("", wishlist_controller.GetWishlist)
		wishlist.POST("/:id", wishlist_controller.ToggleWishlist)
	}

	router.POST("/contact", contact_controller.SubmitContact)
}
