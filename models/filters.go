package models

// FilterMetadata represents all filter data for the storefront
type FilterMetadata struct {
	Availability *AvailabilityData `json:"availability"`
	Categories   []FilterOption    `json:"categories"`
	Sizes        []FilterOption    `json:"sizes"`
	Colors       []FilterOption    `json:"colors"`
	PriceRange   *PriceRangeData   `json:"priceRange"`
}

// AvailabilityData represents product availability counts
type AvailabilityData struct {
	InStock    int `json:"inStock"`
	OutOfStock int `json:"outOfStock"`
}

// FilterOption represents a single filter option
type FilterOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Count int    `json:"count"`
}

// PriceRangeData represents the minimum and maximum price in the store
type PriceRangeData struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
