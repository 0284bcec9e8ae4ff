package order_controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/Sonaa-Moda/sonaa-storefront-backend/config"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/middleware"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/models"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/services"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/store"
	"github.com/gin-gonic/gin"
)

// DownloadOrderInvoice godoc
// @Summary Download an order invoice PDF
// @Description Generates the invoice for one of the session's orders and streams it as a PDF attachment.
// @Tags Account - Orders
// @Produce application/pdf
// @Param X-Session-ID header string true "Session ID"
// @Param id path int true "Order ID"
// @Success 200 {file} binary "Invoice PDF"
// @Failure 400 {object} models.ApiResponse "Invalid order ID"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 500 {object} models.ApiResponse
// @Router /user/orders/{id}/invoice [get]
func DownloadOrderInvoice(c *gin.Context) {
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
		log.Printf("❌ Failed to fetch order %d for invoice: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate invoice"))
		return
	}

	var customerName, customerEmail string
	if profile, err := db.GetProfile(ctx, sessionID); err == nil {
		customerName = profile.FirstName
		if profile.LastName != "" {
			customerName += " " + profile.LastName
		}
		customerEmail = profile.Email
	}

	buf, err := services.GenerateOrderInvoicePDF(order, customerName, customerEmail)
	if err != nil {
		log.Printf("❌ Failed to render invoice for order %s: %v", order.OrderNumber, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate invoice"))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="invoice-%s.pdf"`, order.OrderNumber))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
