package profile_controller

import (
	"log"
	"net/http"

	"github.com/Sonaa-Moda/sonaa-storefront-backend/config"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/middleware"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// UpdateProfile godoc
// @Summary Update the profile
// @Description Partial update: only the fields present in the payload change.
// @Tags Account - Profile
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param request body models.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse{data=models.Profile}
// @Failure 400 {object} models.ApiResponse "Invalid payload"
// @Failure 500 {object} models.ApiResponse
// @Router /user/profile [patch]
func UpdateProfile(c *gin.Context) {
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	sessionID := middleware.SessionID(c)
	profile, err := db.GetProfile(ctx, sessionID)
	if err != nil {
		log.Printf("❌ Failed to fetch profile for session %s: %v", sessionID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update profile"))
		return
	}

	if req.FirstName != nil {
		profile.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		profile.LastName = *req.LastName
	}
	if req.Email != nil {
		profile.Email = *req.Email
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.Newsletter != nil {
		profile.Newsletter = *req.Newsletter
	}

	if err := db.SaveProfile(ctx, profile); err != nil {
		log.Printf("❌ Failed to save profile for session %s: %v", sessionID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update profile"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Profile updated successfully", profile))
}
