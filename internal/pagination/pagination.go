// Package pagination partitions an already-fetched result list into
// fixed-size pages with wraparound navigation. There is no server-side
// paging: callers fetch the full filtered set and page over it in memory.
package pagination

// Pager tracks a zero-based page index over a slice of items.
// It is not safe for concurrent use; each view owns its own Pager.
type Pager[T any] struct {
	items []T
	size  int
	page  int
}

// New creates a Pager over items. Page sizes below 1 are coerced to 1.
func New[T any](items []T, size int) *Pager[T] {
	if size < 1 {
		size = 1
	}
	return &Pager[T]{items: items, size: size}
}

// PageCount is ceil(len(items)/size), never less than 1 so that the
// modulo navigation below is always defined.
func (p *Pager[T]) PageCount() int {
	if len(p.items) == 0 {
		return 1
	}
	return (len(p.items) + p.size - 1) / p.size
}

// Page returns the items on the current page.
func (p *Pager[T]) Page() []T {
	start := p.page * p.size
	if start >= len(p.items) {
		return nil
	}
	end := start + p.size
	if end > len(p.items) {
		end = len(p.items)
	}
	return p.items[start:end]
}

// Index returns the current zero-based page index.
func (p *Pager[T]) Index() int { return p.page }

// Len returns the total number of items.
func (p *Pager[T]) Len() int { return len(p.items) }

// PageSize returns the configured page size.
func (p *Pager[T]) PageSize() int { return p.size }

// Next advances one page, wrapping past the last page back to 0.
func (p *Pager[T]) Next() {
	p.page = (p.page + 1) % p.PageCount()
}

// Prev steps back one page, wrapping from 0 to the last page.
func (p *Pager[T]) Prev() {
	count := p.PageCount()
	p.page = (p.page - 1 + count) % count
}

// JumpTo sets the page index directly. Indices outside [0, PageCount)
// are ignored; the UI only offers valid indices via its dot controls.
func (p *Pager[T]) JumpTo(i int) {
	if i < 0 || i >= p.PageCount() {
		return
	}
	p.page = i
}

// SetItems replaces the item set and resets to page 0. Any filter change
// replaces the result list wholesale, so a stale index is never kept.
func (p *Pager[T]) SetItems(items []T) {
	p.items = items
	p.page = 0
}
