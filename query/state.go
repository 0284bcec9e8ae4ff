package query

import (
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// FacetAll is the sentinel facet value meaning "no filter".
const FacetAll = "all"

// SortKey selects the comparator applied after filtering.
type SortKey string

const (
	SortFeatured   SortKey = "featured"
	SortNewest     SortKey = "newest"
	SortPriceLow   SortKey = "price-low"
	SortPriceHigh  SortKey = "price-high"
	SortRating     SortKey = "rating"
	SortBestseller SortKey = "bestseller"
	SortName       SortKey = "name"
)

// State bundles the knobs driving one list view: free-text search,
// facet selections, an inclusive price range, sort key and page.
// The zero value is not usable; start from DefaultState.
type State struct {
	Search   string
	Facets   map[string]string
	PriceMin float64
	PriceMax float64
	Sort     SortKey
	Page     int
}

// DefaultState returns the documented defaults: empty search, every
// facet at "all", the full price range, featured sort, page 1.
func DefaultState() State {
	return State{
		Facets:   make(map[string]string),
		PriceMin: 0,
		PriceMax: math.MaxFloat64,
		Sort:     SortFeatured,
		Page:     1,
	}
}

// Reset restores every field to its default, backing "Clear Filters".
func (s *State) Reset() {
	*s = DefaultState()
}

func (s *State) SetSearch(term string) {
	s.Search = strings.TrimSpace(term)
}

// SetFacet selects a value for one facet. FacetAll or the empty string
// clears the selection.
func (s *State) SetFacet(name, value string) {
	if s.Facets == nil {
		s.Facets = make(map[string]string)
	}
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, FacetAll) {
		delete(s.Facets, name)
		return
	}
	s.Facets[name] = value
}

// Facet returns the selected value for a facet, or FacetAll when none
// is selected.
func (s State) Facet(name string) string {
	if v, ok := s.Facets[name]; ok && v != "" {
		return v
	}
	return FacetAll
}

func (s *State) SetPriceRange(min, max float64) {
	s.PriceMin = min
	s.PriceMax = max
}

func (s *State) SetSort(key SortKey) {
	s.Sort = key
}

// Normalized returns a copy safe to filter with. An inverted price
// range is swapped rather than trusted, so neither the in-memory
// pipeline nor a SQL backend depends on the range widget's own
// clamping.
func (s State) Normalized() State {
	if s.PriceMin > s.PriceMax {
		s.PriceMin, s.PriceMax = s.PriceMax, s.PriceMin
	}
	if s.Page < 1 {
		s.Page = 1
	}
	return s
}

// FromRequest parses a State from the request query string. Only the
// named facets are read; unknown or malformed parameters fall back to
// the defaults instead of erroring.
//
// Recognised parameters: q, minPrice, maxPrice, sortBy, page, plus one
// query parameter per facet name.
func FromRequest(c *gin.Context, facets ...string) State {
	st := DefaultState()

	st.SetSearch(c.Query("q"))

	for _, name := range facets {
		st.SetFacet(name, c.Query(name))
	}

	if v := c.Query("minPrice"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			st.PriceMin = f
		}
	}
	if v := c.Query("maxPrice"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			st.PriceMax = f
		}
	}

	if v := c.Query("sortBy"); v != "" {
		st.Sort = SortKey(v)
	}

	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil && page >= 1 {
		st.Page = page
	}

	return st
}
