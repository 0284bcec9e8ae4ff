package filter_cache

import (
	"testing"

	"github.com/Sonaa-Moda/sonaa-storefront-backend/models"
)

func TestMetadataCacheRoundTrip(t *testing.T) {
	Invalidate()

	if _, ok := GetMetadata(); ok {
		t.Fatal("empty cache reported a hit")
	}

	meta := &models.FilterMetadata{
		Availability: &models.AvailabilityData{InStock: 17, OutOfStock: 3},
		PriceRange:   &models.PriceRangeData{Min: 24.50, Max: 189.00},
	}
	SetMetadata(meta)

	got, ok := GetMetadata()
	if !ok {
		t.Fatal("cache miss after set")
	}
	if got.Availability.InStock != 17 || got.PriceRange.Max != 189.00 {
		t.Fatalf("cached metadata = %+v", got)
	}

	Invalidate()
	if _, ok := GetMetadata(); ok {
		t.Fatal("cache hit after invalidate")
	}
}
