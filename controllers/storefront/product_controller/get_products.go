package product_controller

import (
	"log"
	"net/http"

	"github.com/Sonaa-Moda/sonaa-storefront-backend/config"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// GetProducts godoc
// @Summary List storefront products
// @Description Retrieve active products with optional search, category, size, color, availability, price range, sorting and paging.
// @Tags Storefront - Products
// @Produce json
// @Param q query string false "Search query (name or description)"
// @Param category query string false "Category name (or 'all')"
// @Param size query string false "Size (or 'all')"
// @Param color query string false "Color (or 'all')"
// @Param availability query string false "Availability filter" Enums(in_stock, out_of_stock, all)
// @Param minPrice query number false "Minimum price (inclusive)"
// @Param maxPrice query number false "Maximum price (inclusive)"
// @Param sortBy query string false "Sort key" Enums(featured, newest, price-low, price-high, rating, bestseller, name) default(featured)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse{data=[]models.ProductCardResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /products [get]
func GetProducts(c *gin.Context) {
	page, limit := parsePagination(c)
	state := catalogState(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	items, total, err := products.ListProducts(ctx, state, page, limit)
	if err != nil {
		log.Printf("❌ Failed to list products: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	totalPages := (total + limit - 1) / limit

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Products fetched successfully",
		models.ToCards(items),
		&models.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
			HasMore:    page < totalPages,
		},
	))
}
