package cart_controller

import (
	"net/http"

	"github.com/Sonaa-Moda/sonaa-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// GetCart godoc
// @Summary Get the cart
// @Description Returns the session's cart lines, applied promo and computed totals.
// @Tags Storefront - Cart
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} models.ApiResponse{data=models.Cart}
// @Failure 500 {object} models.ApiResponse
// @Router /cart [get]
func GetCart(c *gin.Context) {
	cart, err := loadCart(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch cart"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart fetched successfully", cart))
}
