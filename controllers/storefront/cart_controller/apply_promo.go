package cart_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Sonaa-Moda/sonaa-storefront-backend/config"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/middleware"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/models"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/store"
	"github.com/gin-gonic/gin"
)

// ApplyPromo godoc
// @Summary Apply a promo code
// @Description Applies a discount code to the cart. Codes below their minimum subtotal are rejected rather than partially applied.
// @Tags Storefront - Cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param request body models.ApplyPromoRequest true "Promo code"
// @Success 200 {object} models.ApiResponse{data=models.Cart}
// @Failure 400 {object} models.ApiResponse "Invalid payload"
// @Failure 422 {object} models.ApiResponse "Invalid or ineligible promo code"
// @Failure 500 {object} models.ApiResponse
// @Router /cart/promo [post]
func ApplyPromo(c *gin.Context) {
	var req models.ApplyPromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	sessionID := middleware.SessionID(c)
	_, err := db.ApplyPromo(ctx, sessionID, req.Code)
	if errors.Is(err, store.ErrPromoInvalid) {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse(c, "Promo code is not valid"))
		return
	}
	if errors.Is(err, store.ErrPromoMinimum) {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse(c, "Cart subtotal is below the promo minimum"))
		return
	}
	if err != nil {
		log.Printf("❌ Failed to apply promo for session %s: %v", sessionID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to apply promo code"))
		return
	}

	cart, err := loadCart(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch cart"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Promo code applied", cart))
}

// RemovePromo godoc
// @Summary Remove the applied promo code
// @Tags Storefront - Cart
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} models.ApiResponse{data=models.Cart}
// @Failure 500 {object} models.ApiResponse
// @Router /cart/promo [delete]
func RemovePromo(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	sessionID := middleware.SessionID(c)
	if err := db.RemovePromo(ctx, sessionID); err != nil {
		log.Printf("❌ Failed to remove promo for session %s: %v", sessionID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to remove promo code"))
		return
	}

	cart, err := loadCart(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch cart"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Promo code removed", cart))
}
