package order_controller

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

// GetOrderDetails godoc
// @Summary Get one order
// @Description Returns the order with its line items and address snapshot. Orders are scoped to the session that placed them.
// @Tags Account - Orders
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param id path int true "Order ID"
// @Success 200 {object} models.ApiResponse{data=models.OrderWithItems}
// @Failure 400 {object} models.ApiResponse "Invalid order ID"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 500 {object} models.ApiResponse
// @Router /user/orders/{id} [get]
func GetOrderDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	sessionID := middleware.SessionID(c)
	order, err := db.GetOrder(ctx, sessionID, id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		return
	}
	if err != nil {
		log.Printf("❌ Failed to fetch order %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch order"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order fetched successfully", order))
}
