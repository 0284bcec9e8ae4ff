package query

import (
	"sort"
	"strings"
	"time"
)

// Accessor tells the pipeline how to read the fields it filters and
// sorts on. Any extractor may be nil; the field then behaves as its
// zero value, so records missing optional fields degrade instead of
// erroring.
type Accessor[T any] struct {
	Title       func(T) string
	Description func(T) string
	Price       func(T) float64
	Facet       func(T, string) []string
	Date        func(T) time.Time
	Rating      func(T) float64
	Featured    func(T) bool
	Bestseller  func(T) bool
}

func (a Accessor[T]) title(r T) string {
	if a.Title == nil {
		return ""
	}
	return a.Title(r)
}

func (a Accessor[T]) description(r T) string {
	if a.Description == nil {
		return ""
	}
	return a.Description(r)
}

func (a Accessor[T]) price(r T) float64 {
	if a.Price == nil {
		return 0
	}
	return a.Price(r)
}

func (a Accessor[T]) facet(r T, name string) []string {
	if a.Facet == nil {
		return nil
	}
	return a.Facet(r, name)
}

func (a Accessor[T]) date(r T) time.Time {
	if a.Date == nil {
		return time.Time{}
	}
	return a.Date(r)
}

func (a Accessor[T]) rating(r T) float64 {
	if a.Rating == nil {
		return 0
	}
	return a.Rating(r)
}

// Apply runs the full pipeline over records: text filter, facet
// filters, price filter, then a stable sort for the state's sort key.
// The input slice is never mutated; the result is a fresh slice that
// preserves relative input order wherever the comparator ties. The
// filters are independent predicates on disjoint fields, so their
// order is an implementation detail, not a semantic one.
func Apply[T any](records []T, acc Accessor[T], state State) []T {
	st := state.Normalized()

	out := make([]T, 0, len(records))
	for _, r := range records {
		if !matchesSearch(r, acc, st.Search) {
			continue
		}
		if !matchesFacets(r, acc, st.Facets) {
			continue
		}
		if p := acc.price(r); p < st.PriceMin || p > st.PriceMax {
			continue
		}
		out = append(out, r)
	}

	sortRecords(out, acc, st.Sort)
	return out
}

// matchesSearch reports whether the record survives the free-text
// filter: an empty term keeps everything, otherwise a case-insensitive
// substring match against title or description.
func matchesSearch[T any](r T, acc Accessor[T], term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	if strings.Contains(strings.ToLower(acc.title(r)), needle) {
		return true
	}
	return strings.Contains(strings.ToLower(acc.description(r)), needle)
}

// matchesFacets applies every selected facet. A record passes a facet
// when any of its values for that dimension equals the selection
// (case-insensitive); scalar facets simply expose a one-element slice.
func matchesFacets[T any](r T, acc Accessor[T], facets map[string]string) bool {
	for name, want := range facets {
		if want == "" || strings.EqualFold(want, FacetAll) {
			continue
		}
		matched := false
		for _, have := range acc.facet(r, name) {
			if strings.EqualFold(have, want) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

func sortRecords[T any](records []T, acc Accessor[T], key SortKey) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(records, func(i, j int) bool {
			return acc.price(records[i]) < acc.price(records[j])
		})
	case SortPriceHigh:
		sort.SliceStable(records, func(i, j int) bool {
			return acc.price(records[i]) > acc.price(records[j])
		})
	case SortNewest:
		// Descending by date; records without a parseable date sort last.
		sort.SliceStable(records, func(i, j int) bool {
			di, dj := acc.date(records[i]), acc.date(records[j])
			if di.IsZero() {
				return false
			}
			if dj.IsZero() {
				return true
			}
			return di.After(dj)
		})
	case SortRating:
		sort.SliceStable(records, func(i, j int) bool {
			return acc.rating(records[i]) > acc.rating(records[j])
		})
	case SortBestseller:
		if acc.Bestseller == nil {
			return
		}
		sort.SliceStable(records, func(i, j int) bool {
			return acc.Bestseller(records[i]) && !acc.Bestseller(records[j])
		})
	case SortName:
		sort.SliceStable(records, func(i, j int) bool {
			return strings.ToLower(acc.title(records[i])) < strings.ToLower(acc.title(records[j]))
		})
	case SortFeatured:
		// Without an explicit flag, featured means "as fetched".
		if acc.Featured == nil {
			return
		}
		sort.SliceStable(records, func(i, j int) bool {
			return acc.Featured(records[i]) && !acc.Featured(records[j])
		})
	default:
		// Unknown sort keys preserve fetch order.
	}
}
