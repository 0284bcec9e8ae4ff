package middleware

import (
	"net/http"

	"github.com/Sonaa-Moda/sonaa-storefront-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionHeader carries the shopper's identity. There are no real
	// accounts; the client mints a UUID once and sends it on every call.
	SessionHeader = "X-Session-ID"

	// SessionKey is the gin context key handlers read the session from.
	SessionKey = "sessionID"
)

// Session validates the session header and stashes it in the context.
// Endpoints that only browse the catalog skip this; everything keyed
// per shopper (cart, wishlist, orders, profile) requires it.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(SessionHeader)
		if id == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Missing "+SessionHeader+" header"))
			c.Abort()
			return
		}
		if _, err := uuid.Parse(id); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid "+SessionHeader+" header"))
			c.Abort()
			return
		}
		c.Set(SessionKey, id)
		c.Next()
	}
}

// SessionID reads the validated session from the context.
func SessionID(c *gin.Context) string {
	return c.GetString(SessionKey)
}
