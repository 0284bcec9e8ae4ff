package cart_controller

import (
	"log"

	"github.com/Sonaa-Moda/sonaa-storefront-backend/config"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/middleware"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/models"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/store"
	"github.com/gin-gonic/gin"
)

var db store.Store

func Init(s store.Store) {
	db = s
}

// loadCart assembles the full cart view (items, applied promo, money
// totals) for the current session.
func loadCart(c *gin.Context) (*models.Cart, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	sessionID := middleware.SessionID(c)
	items, promo, err := db.GetCart(ctx, sessionID)
	if err != nil {
		log.Printf("❌ Failed to load cart for session %s: %v", sessionID, err)
		return nil, err
	}

	return &models.Cart{
		Items:  items,
		Promo:  promo,
		Totals: models.ComputeCartTotals(items, promo),
	}, nil
}
