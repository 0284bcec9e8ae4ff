package cart_controller

import (
	"log"
	"net/http"

	"github.com/Sonaa-Moda/sonaa-storefront-backend/config"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/middleware"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// ClearCart godoc
// @Summary Empty the cart
// @Description Removes every line and any applied promo code.
// @Tags Storefront - Cart
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} models.ApiResponse{data=models.Cart}
// @Failure 500 {object} models.ApiResponse
// @Router /cart [delete]
func ClearCart(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	sessionID := middleware.SessionID(c)
	if err := db.ClearCart(ctx, sessionID); err != nil {
		log.Printf("❌ Failed to clear cart for session %s: %v", sessionID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to clear cart"))
		return
	}

	cart := &models.Cart{Items: []models.CartItem{}, Totals: models.ComputeCartTotals(nil, nil)}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart cleared", cart))
}
