package product_controller

import (
	"strconv"

	"github.com/Sonaa-Moda/sonaa-storefront-backend/models"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/query"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/store"
	"github.com/gin-gonic/gin"
)

var products store.ProductStore

// Init wires the handlers to the configured backend.
func Init(s store.ProductStore) {
	products = s
}

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "12"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}

	return page, limit
}

// catalogState parses the list-view query state with the product
// facets enabled.
func catalogState(c *gin.Context) query.State {
	return query.FromRequest(c,
		models.FacetCategory,
		models.FacetSize,
		models.FacetColor,
		models.FacetAvailability,
	)
}
