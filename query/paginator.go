package query

import (
	"context"
	"sync"
)

// FetchPage loads one page of records from a source. It returns the
// records for that page; a short or empty page signals exhaustion.
type FetchPage[T any] func(ctx context.Context, page, limit int) ([]T, error)

// Paginator accumulates pages of records for "load more" flows. Pages
// already loaded are never re-fetched, records already seen are never
// appended twice, and a failed fetch leaves the accumulated state
// untouched so the caller can simply retry. Safe for concurrent use, so
// a double-clicked "Load More" cannot append the same page twice.
type Paginator[T any] struct {
	mu      sync.Mutex
	fetch   FetchPage[T]
	id      func(T) int64
	limit   int
	page    int
	items   []T
	seen    map[int64]struct{}
	hasMore bool
}

// NewPaginator builds a paginator over fetch. id extracts the stable
// record identifier used for de-duplication; limit is the page size
// requested from the source.
func NewPaginator[T any](fetch FetchPage[T], id func(T) int64, limit int) *Paginator[T] {
	if limit < 1 {
		limit = 12
	}
	return &Paginator[T]{
		fetch:   fetch,
		id:      id,
		limit:   limit,
		seen:    make(map[int64]struct{}),
		hasMore: true,
	}
}

// LoadNextPage fetches the next page and appends any unseen records.
// It returns the number of records appended. When the source returns
// fewer records than the page size, HasMore flips to false.
func (p *Paginator[T]) LoadNextPage(ctx context.Context) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.hasMore {
		return 0, nil
	}

	batch, err := p.fetch(ctx, p.page+1, p.limit)
	if err != nil {
		return 0, err
	}
	p.page++

	added := 0
	for _, r := range batch {
		key := p.id(r)
		if _, dup := p.seen[key]; dup {
			continue
		}
		p.seen[key] = struct{}{}
		p.items = append(p.items, r)
		added++
	}

	if len(batch) < p.limit {
		p.hasMore = false
	}
	return added, nil
}

// Items returns a copy of everything accumulated so far, in load order.
func (p *Paginator[T]) Items() []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]T, len(p.items))
	copy(out, p.items)
	return out
}

// HasMore reports whether the source may still have records.
func (p *Paginator[T]) HasMore() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hasMore
}

// Page returns the number of the last page loaded, zero before the
// first load.
func (p *Paginator[T]) Page() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page
}
