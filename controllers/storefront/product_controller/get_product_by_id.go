package product_controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Sonaa-Moda/sonaa-storefront-backend/config"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/models"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/store"
	"github.com/gin-gonic/gin"
)

// GetProductByID godoc
// @Summary Get a product by ID
// @Description Retrieve a single active product. Each fetch counts a view.
// @Tags Storefront - Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.ApiResponse{data=models.Product}
// @Failure 400 {object} models.ApiResponse "Invalid product ID"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 500 {object} models.ApiResponse
// @Router /products/{id} [get]
func GetProductByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	product, err := products.GetProduct(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}
	if err != nil {
		log.Printf("❌ Failed to fetch product %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}

	// View counting is best effort, off the request path
	go func(productID int64) {
		ctx, cancel := config.WithTimeout()
		defer cancel()
		if err := products.IncrementViews(ctx, productID); err != nil {
			log.Printf("⚠️ Failed to count view for product %d: %v", productID, err)
		}
	}(id)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", product))
}
