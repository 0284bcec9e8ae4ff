package cart_controller

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

// RemoveCartItem godoc
// @Summary Remove a cart line
// @Tags Storefront - Cart
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param itemId path int true "Cart item ID"
// @Success 200 {object} models.ApiResponse{data=models.Cart}
// @Failure 400 {object} models.ApiResponse "Invalid cart item ID"
// @Failure 404 {object} models.ApiResponse "Cart item not found"
// @Failure 500 {object} models.ApiResponse
// @Router /cart/items/{itemId} [delete]
func RemoveCartItem(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil || itemID < 1 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid cart item ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	sessionID := middleware.SessionID(c)
	err = db.RemoveCartItem(ctx, sessionID, itemID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Cart item not found"))
		return
	}
	if err != nil {
		log.Printf("❌ Failed to remove cart item %d: %v", itemID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart"))
		return
	}

	cart, err := loadCart(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch cart"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item removed from cart", cart))
}
