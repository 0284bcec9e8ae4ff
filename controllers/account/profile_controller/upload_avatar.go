package profile_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/Sonaa-Moda/sonaa-storefront-backend/config"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/middleware"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

const maxAvatarSize = 5 << 20 // 5 MB

// UploadAvatar godoc
// @Summary Upload a profile picture
// @Description Uploads an avatar image to Cloudinary and stores the URL on the profile. Re-uploading replaces the previous image.
// @Tags Account - Profile
// @Accept multipart/form-data
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param avatar formData file true "Image file (max 5 MB)"
// @Success 200 {object} models.ApiResponse{data=models.Profile}
// @Failure 400 {object} models.ApiResponse "Missing or oversized file"
// @Failure 500 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse "Uploads not configured"
// @Router /user/profile/avatar [post]
func UploadAvatar(c *gin.Context) {
	if cloudinaryService == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Avatar uploads are not configured"))
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Missing avatar file"))
		return
	}
	if fileHeader.Size > maxAvatarSize {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Avatar file too large (max 5 MB)"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Could not read avatar file"))
		return
	}
	defer file.Close()

	ctx, cancel := config.WithCustomTimeout(30 * time.Second)
	defer cancel()

	sessionID := middleware.SessionID(c)
	url, err := cloudinaryService.UploadAvatar(ctx, file, sessionID)
	if err != nil {
		log.Printf("❌ Avatar upload failed for session %s: %v", sessionID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload avatar"))
		return
	}

	profile, err := db.GetProfile(ctx, sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update profile"))
		return
	}
	profile.AvatarURL = url
	if err := db.SaveProfile(ctx, profile); err != nil {
		log.Printf("❌ Failed to save avatar URL for session %s: %v", sessionID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update profile"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Avatar uploaded successfully", profile))
}
