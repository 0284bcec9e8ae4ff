package order_controller

import (
	"log"
	"net/http"

	"github.com/Sonaa-Moda/sonaa-storefront-backend/config"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/middleware"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/models"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/query"
	"github.com/gin-gonic/gin"
)

// GetOrders godoc
// @Summary List order history
// @Description Returns the session's orders, newest first, with optional order-number search and status filter.
// @Tags Account - Orders
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param q query string false "Search by order number"
// @Param status query string false "Status filter (or 'all')" Enums(pending, processing, shipped, completed, cancelled, all)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.ApiResponse{data=[]models.OrderHistoryRow}
// @Failure 500 {object} models.ApiResponse
// @Router /user/orders [get]
func GetOrders(c *gin.Context) {
	page, limit := parsePagination(c)

	state := query.FromRequest(c, models.FacetStatus)
	if c.Query("sortBy") == "" {
		state.Sort = query.SortNewest
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	sessionID := middleware.SessionID(c)
	rows, total, err := db.ListOrders(ctx, sessionID, state, page, limit)
	if err != nil {
		log.Printf("❌ Failed to list orders for session %s: %v", sessionID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	totalPages := (total + limit - 1) / limit

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Orders fetched successfully",
		rows,
		&models.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
			HasMore:    page < totalPages,
		},
	))
}
