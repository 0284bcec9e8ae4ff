package contact_controller

import (
	"log"
	"net/http"

	"github.com/Sonaa-Moda/sonaa-storefront-backend/config"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/models"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/services"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/store"
	"github.com/gin-gonic/gin"
)

var (
	db     store.ProfileStore
	resend *services.ResendClient
)

// Init wires the handler. The Resend client may be nil when email is
// not configured; submissions are still stored.
func Init(s store.ProfileStore, r *services.ResendClient) {
	db = s
	resend = r
}

// SubmitContact godoc
// @Summary Submit the contact form
// @Description Stores the message and forwards it to the shop inbox.
// @Tags Storefront - Contact
// @Accept json
// @Produce json
// @Param request body models.ContactRequest true "Contact message"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid payload"
// @Failure 500 {object} models.ApiResponse
// @Router /contact [post]
func SubmitContact(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	msg := models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := db.SaveContactMessage(ctx, &msg); err != nil {
		log.Printf("❌ Failed to store contact message: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to submit message"))
		return
	}

	if resend != nil {
		go func(data services.ContactEmailData) {
			if err := resend.SendContactEmail(data); err != nil {
				log.Printf("⚠️ Failed to forward contact message %d: %v", msg.ID, err)
			}
		}(services.ContactEmailData{
			Name:    req.Name,
			Email:   req.Email,
			Subject: req.Subject,
			Message: req.Message,
		})
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Message received, we'll get back to you soon", gin.H{
		"id": msg.ID,
	}))
}
