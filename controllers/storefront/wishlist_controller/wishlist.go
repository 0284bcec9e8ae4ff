package wishlist_controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Sonaa-Moda/sonaa-storefront-backend/config"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/middleware"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/models"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/store"
	"github.com/gin-gonic/gin"
)

var db store.WishlistStore

func Init(s store.WishlistStore) {
	db = s
}

// GetWishlist godoc
// @Summary List wishlist products
// @Description Returns the session's saved products in the order they were added.
// @Tags Storefront - Wishlist
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} models.ApiResponse{data=[]models.ProductCardResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /wishlist [get]
func GetWishlist(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	sessionID := middleware.SessionID(c)
	items, err := db.ListWishlist(ctx, sessionID)
	if err != nil {
		log.Printf("❌ Failed to list wishlist for session %s: %v", sessionID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch wishlist"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Wishlist fetched successfully", models.ToCards(items)))
}

// ToggleWishlist godoc
// @Summary Toggle a product on the wishlist
// @Description Adds the product when absent, removes it when present.
// @Tags Storefront - Wishlist
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param id path int true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid product ID"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 500 {object} models.ApiResponse
// @Router /wishlist/{id} [post]
func ToggleWishlist(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	sessionID := middleware.SessionID(c)
	added, err := db.ToggleWishlist(ctx, sessionID, id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}
	if err != nil {
		log.Printf("❌ Failed to toggle wishlist for session %s: %v", sessionID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update wishlist"))
		return
	}

	message := "Product removed from wishlist"
	if added {
		message = "Product added to wishlist"
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, gin.H{
		"product_id":  id,
		"in_wishlist": added,
	}))
}
