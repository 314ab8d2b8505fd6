// Package browse holds the server-side browse session: the filter, page,
// and modal state that used to live in the storefront page controller.
// Each session is owned by one shopper; all mutation goes through the
// session's own methods under a single mutex.
package browse

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/kecinforstore/storefront-backend/internal/modules/catalog"
	"github.com/kecinforstore/storefront-backend/internal/pagination"
)

// Zoom bounds of the image overlay. Steps past a bound are no-ops; the UI
// disables the buttons there instead of erroring.
const (
	ZoomMin  = 1.0
	ZoomMax  = 3.0
	ZoomStep = 0.5
)

// ErrNoDetail is returned when opening the zoom overlay without an open
// product detail.
var ErrNoDetail = errors.New("no product detail open")

// Fetcher loads the product list for a filter. Satisfied by the catalog
// service.
type Fetcher interface {
	FetchProducts(ctx context.Context, f catalog.Filter) *catalog.Result
}

// Session is one shopper's browse state.
type Session struct {
	mu      sync.Mutex
	id      uuid.UUID
	fetcher Fetcher

	filter     catalog.Filter
	pager      *pagination.Pager[*catalog.Product]
	degraded   bool
	loading    bool
	generation uint64

	detail    *catalog.Product
	zoomOpen  bool
	zoomLevel float64
}

// NewSession creates an empty session. Call SetFilter to load products.
func NewSession(fetcher Fetcher, pageSize int) *Session {
	return &Session{
		id:      uuid.New(),
		fetcher: fetcher,
		filter:  catalog.Filter{CategorySlug: catalog.CategoryAll},
		pager:   pagination.New[*catalog.Product](nil, pageSize),
	}
}

func (s *Session) ID() uuid.UUID { return s.id }

// SetFilter replaces the filter and fetches the matching products. Each
// fetch is tagged with a monotonically increasing generation; if a newer
// SetFilter starts before this one's results are applied, the stale results
// are dropped so a slow early request can never overwrite a newer one.
func (s *Session) SetFilter(ctx context.Context, f catalog.Filter) {
	f = f.Normalized()

	s.mu.Lock()
	s.filter = f
	s.generation++
	gen := s.generation
	s.loading = true
	s.mu.Unlock()

	result := s.fetcher.FetchProducts(ctx, f)
	s.apply(gen, result)
}

// SetSearch changes only the search term.
func (s *Session) SetSearch(ctx context.Context, term string) {
	s.mu.Lock()
	f := s.filter
	s.mu.Unlock()
	f.Search = term
	s.SetFilter(ctx, f)
}

// SetCategory changes only the category slug.
func (s *Session) SetCategory(ctx context.Context, slug string) {
	s.mu.Lock()
	f := s.filter
	s.mu.Unlock()
	f.CategorySlug = slug
	s.SetFilter(ctx, f)
}

func (s *Session) apply(gen uint64, result *catalog.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		// A newer fetch was dispatched while this one was in flight.
		return
	}
	s.pager.SetItems(result.Products)
	s.degraded = result.Degraded
	s.loading = false
}

// Next advances one page with wraparound.
func (s *Session) Next() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pager.Next()
}

// Prev steps back one page with wraparound.
func (s *Session) Prev() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pager.Prev()
}

// JumpTo sets the page index directly; out-of-range indices are ignored.
func (s *Session) JumpTo(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pager.JumpTo(i)
}

// OpenDetail opens the detail modal on one product. Opening a new detail
// replaces the previous one and closes any zoom overlay.
func (s *Session) OpenDetail(p *catalog.Product) {
	if p == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detail = p
	s.zoomOpen = false
	s.zoomLevel = 0
}

// CloseDetail dismisses the detail modal and any nested zoom overlay.
func (s *Session) CloseDetail() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detail = nil
	s.zoomOpen = false
	s.zoomLevel = 0
}

// OpenZoom opens the image zoom overlay at level 1.0. The overlay only
// exists inside an open detail modal.
func (s *Session) OpenZoom() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.detail == nil {
		return ErrNoDetail
	}
	s.zoomOpen = true
	s.zoomLevel = ZoomMin
	return nil
}

// CloseZoom dismisses the zoom overlay.
func (s *Session) CloseZoom() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.zoomOpen = false
	s.zoomLevel = 0
}

// ZoomIn raises the zoom level one step, clamped at ZoomMax.
func (s *Session) ZoomIn() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.zoomOpen {
		return
	}
	s.zoomLevel += ZoomStep
	if s.zoomLevel > ZoomMax {
		s.zoomLevel = ZoomMax
	}
}

// ZoomOut lowers the zoom level one step, clamped at ZoomMin.
func (s *Session) ZoomOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.zoomOpen {
		return
	}
	s.zoomLevel -= ZoomStep
	if s.zoomLevel < ZoomMin {
		s.zoomLevel = ZoomMin
	}
}

// Snapshot is a consistent view of the session for rendering.
type Snapshot struct {
	ID        uuid.UUID          `json:"id"`
	Search    string             `json:"search"`
	Category  string             `json:"category"`
	Loading   bool               `json:"loading"`
	Degraded  bool               `json:"degraded,omitempty"`
	Total     int                `json:"total"`
	Page      int                `json:"page"`
	PageCount int                `json:"page_count"`
	PageSize  int                `json:"page_size"`
	Items     []*catalog.Product `json:"items"`
	Detail    *catalog.Product   `json:"detail,omitempty"`
	ZoomOpen  bool               `json:"zoom_open"`
	ZoomLevel float64            `json:"zoom_level,omitempty"`
}

// Snapshot captures the current state under the session lock.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.pager.Page()
	if items == nil {
		items = []*catalog.Product{}
	}
	return Snapshot{
		ID:        s.id,
		Search:    s.filter.Search,
		Category:  s.filter.CategorySlug,
		Loading:   s.loading,
		Degraded:  s.degraded,
		Total:     s.pager.Len(),
		Page:      s.pager.Index(),
		PageCount: s.pager.PageCount(),
		PageSize:  s.pager.PageSize(),
		Items:     items,
		Detail:    s.detail,
		ZoomOpen:  s.zoomOpen,
		ZoomLevel: s.zoomLevel,
	}
}
