package cart_controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/Sonaa-Moda/sonaa-storefront-backend/config"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/middleware"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/models"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/store"
	"github.com/gin-gonic/gin"
)

// AddCartItem godoc
// @Summary Add a product to the cart
// @Description Adds a product variant to the cart. Adding the same variant again merges quantities. Name, image and price come from the catalog, never from the client.
// @Tags Storefront - Cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param request body models.AddCartItemRequest true "Item to add"
// @Success 201 {object} models.ApiResponse{data=models.Cart}
// @Failure 400 {object} models.ApiResponse "Invalid payload or variant"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 409 {object} models.ApiResponse "Product out of stock"
// @Failure 500 {object} models.ApiResponse
// @Router /cart/items [post]
func AddCartItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	product, err := db.GetProduct(ctx, req.ProductID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}
	if err != nil {
		log.Printf("❌ Failed to fetch product %d: %v", req.ProductID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to add to cart"))
		return
	}

	if !product.InStock {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Product is out of stock"))
		return
	}
	if req.Size != nil && !containsFold(product.Sizes, *req.Size) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Size not available for this product"))
		return
	}
	if req.Color != nil && !containsFold(product.Colors, *req.Color) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Color not available for this product"))
		return
	}

	sessionID := middleware.SessionID(c)
	_, err = db.AddCartItem(ctx, sessionID, models.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Image:     product.Image,
		Size:      req.Size,
		Color:     req.Color,
		Price:     product.Price,
		Quantity:  req.Quantity,
	})
	if err != nil {
		log.Printf("❌ Failed to add cart item for session %s: %v", sessionID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to add to cart"))
		return
	}

	cart, err := loadCart(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch cart"))
		return
	}
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Item added to cart", cart))
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}
