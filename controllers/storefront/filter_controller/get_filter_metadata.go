package filter_controller

import (
	"encoding/json"
	"log"
	"net/http"

	filter_cache "github.com/Sonaa-Moda/sonaa-storefront-backend/cache"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/config"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/models"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/store"
	"github.com/gin-gonic/gin"
)

const redisKey = "filters:metadata"

var filters store.ProductStore

func Init(s store.ProductStore) {
	filters = s
}

// GetFilterMetadata godoc
// @Summary Get filter metadata
// @Description Returns availability counts, categories, sizes, colors and price range for the storefront sidebar. Served from cache when fresh.
// @Tags Storefront - Filters
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata}
// @Failure 500 {object} models.ApiResponse
// @Router /filters/metadata [get]
func GetFilterMetadata(c *gin.Context) {
	// 1. In-process cache
	if meta, ok := filter_cache.GetMetadata(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", meta))
		return
	}

	// 2. Redis
	if raw, err := config.RedisClient.Get(config.Ctx, redisKey).Result(); err == nil {
		var meta models.FilterMetadata
		if err := json.Unmarshal([]byte(raw), &meta); err == nil {
			filter_cache.SetMetadata(&meta)
			c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", &meta))
			return
		}
	}

	// 3. Store
	ctx, cancel := config.WithTimeout()
	defer cancel()

	meta, err := filters.FilterMetadata(ctx)
	if err != nil {
		log.Printf("❌ Failed to aggregate filter metadata: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch filter metadata"))
		return
	}

	filter_cache.SetMetadata(meta)
	if raw, err := json.Marshal(meta); err == nil {
		if err := config.RedisClient.Set(config.Ctx, redisKey, raw, filter_cache.TTL).Err(); err != nil {
			log.Printf("⚠️ Failed to cache filter metadata in Redis: %v", err)
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", meta))
}
