package profile_controller

import (
	"log"
	"net/http"

	"github.com/Sonaa-Moda/sonaa-storefront-backend/config"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/middleware"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/models"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/services"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/store"
	"github.com/gin-gonic/gin"
)

var (
	db                store.ProfileStore
	cloudinaryService *services.CloudinaryService
)

func Init(s store.ProfileStore) {
	db = s
}

// InitCloudinary enables avatar uploads. Without it the upload
// endpoint answers 503.
func InitCloudinary(cloudName, apiKey, apiSecret string) error {
	var err error
	cloudinaryService, err = services.NewCloudinaryService(cloudName, apiKey, apiSecret)
	return err
}

// GetProfile godoc
// @Summary Get the profile
// @Description Returns the session's profile. A fresh session gets an empty profile.
// @Tags Account - Profile
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} models.ApiResponse{data=models.Profile}
// @Failure 500 {object} models.ApiResponse
// @Router /user/profile [get]
func GetProfile(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	sessionID := middleware.SessionID(c)
	profile, err := db.GetProfile(ctx, sessionID)
	if err != nil {
		log.Printf("❌ Failed to fetch profile for session %s: %v", sessionID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch profile"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Profile fetched successfully", profile))
}
