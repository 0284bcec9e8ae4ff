package order_controller

import (
	"strconv"

	"github.com/Sonaa-Moda/sonaa-storefront-backend/services"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/store"
	"github.com/gin-gonic/gin"
)

var (
	db     store.Store
	resend *services.ResendClient
)

// Init wires the handlers. The Resend client may be nil; checkout
// still works, just without confirmation emails.
func Init(s store.Store, r *services.ResendClient) {
	db = s
	resend = r
}

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	return page, limit
}
