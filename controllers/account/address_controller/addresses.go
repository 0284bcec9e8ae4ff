package address_controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Sonaa-Moda/sonaa-storefront-backend/config"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/middleware"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/models"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/store"
	"github.com/gin-gonic/gin"
)

var db store.ProfileStore

func Init(s store.ProfileStore) {
	db = s
}

func parseAddressID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid address ID"))
		return 0, false
	}
	return id, true
}

// GetAddresses godoc
// @Summary List addresses
// @Description Returns the session's shipping addresses, default first.
// @Tags Account - Addresses
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} models.ApiResponse{data=[]models.Address}
// @Failure 500 {object} models.ApiResponse
// @Router /user/addresses [get]
func GetAddresses(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	sessionID := middleware.SessionID(c)
	addresses, err := db.ListAddresses(ctx, sessionID)
	if err != nil {
		log.Printf("❌ Failed to list addresses for session %s: %v", sessionID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch addresses"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Addresses fetched successfully", addresses))
}

// AddAddress godoc
// @Summary Add an address
// @Description Saves a new shipping address. The first address becomes the default automatically.
// @Tags Account - Addresses
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param request body models.AddressRequest true "Address"
// @Success 201 {object} models.ApiResponse{data=models.Address}
// @Failure 400 {object} models.ApiResponse "Invalid payload"
// @Failure 500 {object} models.ApiResponse
// @Router /user/addresses [post]
func AddAddress(c *gin.Context) {
	var req models.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	address := models.Address{
		SessionID: middleware.SessionID(c),
		Label:     req.Label,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		Zip:       req.Zip,
		Country:   req.Country,
		Phone:     req.Phone,
	}
	if err := db.AddAddress(ctx, &address); err != nil {
		log.Printf("❌ Failed to add address: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save address"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Address saved successfully", address))
}

// UpdateAddress godoc
// @Summary Update an address
// @Tags Account - Addresses
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param id path int true "Address ID"
// @Param request body models.AddressRequest true "Address"
// @Success 200 {object} models.ApiResponse{data=models.Address}
// @Failure 400 {object} models.ApiResponse "Invalid payload"
// @Failure 404 {object} models.ApiResponse "Address not found"
// @Failure 500 {object} models.ApiResponse
// @Router /user/addresses/{id} [put]
func UpdateAddress(c *gin.Context) {
	id, ok := parseAddressID(c)
	if !ok {
		return
	}

	var req models.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	sessionID := middleware.SessionID(c)
	address := models.Address{
		ID:        id,
		Label:     req.Label,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		Zip:       req.Zip,
		Country:   req.Country,
		Phone:     req.Phone,
	}
	err := db.UpdateAddress(ctx, sessionID, &address)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Address not found"))
		return
	}
	if err != nil {
		log.Printf("❌ Failed to update address %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update address"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Address updated successfully", address))
}

// DeleteAddress godoc
// @Summary Delete an address
// @Description Removes an address. Deleting the default promotes the oldest remaining address.
// @Tags Account - Addresses
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param id path int true "Address ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid address ID"
// @Failure 404 {object} models.ApiResponse "Address not found"
// @Failure 500 {object} models.ApiResponse
// @Router /user/addresses/{id} [delete]
func DeleteAddress(c *gin.Context) {
	id, ok := parseAddressID(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	sessionID := middleware.SessionID(c)
	err := db.DeleteAddress(ctx, sessionID, id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Address not found"))
		return
	}
	if err != nil {
		log.Printf("❌ Failed to delete address %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete address"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Address deleted successfully", gin.H{"id": id}))
}

// SetDefaultAddress godoc
// @Summary Mark an address as default
// @Tags Account - Addresses
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param id path int true "Address ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid address ID"
// @Failure 404 {object} models.ApiResponse "Address not found"
// @Failure 500 {object} models.ApiResponse
// @Router /user/addresses/{id}/default [patch]
func SetDefaultAddress(c *gin.Context) {
	id, ok := parseAddressID(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	sessionID := middleware.SessionID(c)
	err := db.SetDefaultAddress(ctx, sessionID, id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Address not found"))
		return
	}
	if err != nil {
		log.Printf("❌ Failed to set default address %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update address"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Default address updated", gin.H{"id": id}))
}
