package filter_cache

import (
	"sync"
	"time"

	"github.com/Sonaa-Moda/sonaa-storefront-backend/models"
)

const TTL = 5 * time.Minute

// ── Filter metadata cache ────────────────────────────────────────────────────
// Stores the aggregated sidebar data (categories, sizes, colors,
// availability counts, price range). The filter endpoint reads here
// before touching Redis or the store.

type metaEntry struct {
	data      *models.FilterMetadata
	fetchedAt time.Time
}

var (
	metaMu    sync.RWMutex
	metaCache *metaEntry
)

func GetMetadata() (*models.FilterMetadata, bool) {
	metaMu.RLock()
	defer metaMu.RUnlock()
	if metaCache != nil && time.Since(metaCache.fetchedAt) < TTL {
		return metaCache.data, true
	}
	return nil, false
}

func SetMetadata(data *models.FilterMetadata) {
	metaMu.Lock()
	defer metaMu.Unlock()
	metaCache = &metaEntry{data: data, fetchedAt: time.Now()}
}

// ── Invalidate (call whenever the catalog changes) ───────────────────────────

func Invalidate() {
	metaMu.Lock()
	metaCache = nil
	metaMu.Unlock()
}
