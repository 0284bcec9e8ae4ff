package order_controller

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Sonaa-Moda/sonaa-storefront-backend/config"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/middleware"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/models"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/services"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/utils"
	"github.com/gin-gonic/gin"
)

// CreateOrder godoc
// @Summary Place an order
// @Description Turns the session's cart into an order: snapshots the shipping address and prices, assigns an order number, empties the cart and sends a confirmation email.
// @Tags Account - Orders
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param request body models.CreateOrderRequest true "Checkout payload"
// @Success 201 {object} models.ApiResponse{data=models.OrderWithItems}
// @Failure 400 {object} models.ApiResponse "Invalid payload or unknown address"
// @Failure 422 {object} models.ApiResponse "Cart is empty"
// @Failure 500 {object} models.ApiResponse
// @Router /user/orders [post]
func CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	sessionID := middleware.SessionID(c)

	items, promo, err := db.GetCart(ctx, sessionID)
	if err != nil {
		log.Printf("❌ Failed to load cart for checkout: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to place order"))
		return
	}
	if len(items) == 0 {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse(c, "Cart is empty"))
		return
	}

	// Resolve and snapshot the shipping address
	addresses, err := db.ListAddresses(ctx, sessionID)
	if err != nil {
		log.Printf("❌ Failed to load addresses for checkout: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to place order"))
		return
	}
	var shipTo *models.Address
	for i := range addresses {
		if addresses[i].ID == req.AddressID {
			shipTo = &addresses[i]
			break
		}
	}
	if shipTo == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Address not found"))
		return
	}
	snapshotBytes, err := json.Marshal(shipTo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to place order"))
		return
	}
	snapshot := string(snapshotBytes)

	totals := models.ComputeCartTotals(items, promo)

	orderNumber, err := db.NextOrderNumber(ctx)
	if err != nil {
		log.Printf("❌ Failed to allocate order number: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to place order"))
		return
	}

	var promoCode *string
	if promo != nil && (totals.Discount > 0 || promo.Kind == models.PromoFreeShipping) {
		promoCode = &promo.Code
	}

	client := utils.ParseClientInfo(c)

	order := models.Order{
		SessionID:       sessionID,
		OrderNumber:     orderNumber,
		Subtotal:        totals.Subtotal,
		Discount:        totals.Discount,
		ShippingCost:    totals.Shipping,
		Tax:             totals.Tax,
		TotalAmount:     totals.Total,
		Status:          models.OrderStatusPending,
		PromoCode:       promoCode,
		DeviceType:      client.DeviceType,
		Browser:         client.Browser,
		OS:              client.OS,
		IPAddress:       client.IPAddress,
		AddressSnapshot: &snapshot,
		CustomerNotes:   req.CustomerNotes,
	}

	orderItems := make([]models.OrderItem, len(items))
	for i, it := range items {
		orderItems[i] = models.OrderItem{
			ProductID:   it.ProductID,
			ProductName: it.Name,
			Image:       it.Image,
			Size:        it.Size,
			Color:       it.Color,
			Price:       it.Price,
			Quantity:    it.Quantity,
			Subtotal:    models.RoundCents(it.Price * float64(it.Quantity)),
		}
	}

	if err := db.CreateOrder(ctx, &order, orderItems); err != nil {
		log.Printf("❌ Failed to create order: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to place order"))
		return
	}

	if err := db.ClearCart(ctx, sessionID); err != nil {
		log.Printf("⚠️ Order %s created but cart not cleared: %v", orderNumber, err)
	}

	sendConfirmation(sessionID, &order, orderItems)

	log.Printf("✅ Order %s placed for session %s (%.2f)", orderNumber, sessionID, order.TotalAmount)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Order placed successfully", models.OrderWithItems{
		Order: order,
		Items: orderItems,
	}))
}

// sendConfirmation emails the shopper off the request path when email
// is configured and the profile has an address to send to.
func sendConfirmation(sessionID string, order *models.Order, items []models.OrderItem) {
	if resend == nil {
		return
	}

	go func() {
		ctx, cancel := config.WithTimeout()
		defer cancel()

		profile, err := db.GetProfile(ctx, sessionID)
		if err != nil || profile.Email == "" {
			return
		}

		emailItems := make([]services.OrderEmailItem, len(items))
		for i, it := range items {
			emailItems[i] = services.OrderEmailItem{
				ProductName: it.ProductName,
				Quantity:    it.Quantity,
				Price:       it.Price,
				Subtotal:    it.Subtotal,
			}
		}

		data := services.OrderConfirmationEmailData{
			CustomerName:  profile.FirstName,
			CustomerEmail: profile.Email,
			OrderNumber:   order.OrderNumber,
			OrderDate:     order.CreatedAt.Format("Jan 02, 2006"),
			Items:         emailItems,
			Subtotal:      order.Subtotal,
			Discount:      order.Discount,
			ShippingCost:  order.ShippingCost,
			Tax:           order.Tax,
			TotalAmount:   order.TotalAmount,
		}
		if err := resend.SendOrderConfirmationEmail(data); err != nil {
			log.Printf("⚠️ Failed to send confirmation for order %s: %v", order.OrderNumber, err)
		}
	}()
}
