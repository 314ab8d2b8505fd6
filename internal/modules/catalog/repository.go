package catalog

import "context"

// Repository defines the interface for catalog data storage.
type Repository interface {
	// ListEnriched runs the joined products+categories query with the
	// filter applied, newest first.
	ListEnriched(ctx context.Context, f Filter) ([]*Product, error)
	// ListAll is the degraded query: no join, no filters, newest first.
	ListAll(ctx context.Context) ([]*Product, error)
	// ListFeatured returns products flagged for the featured carousel.
	ListFeatured(ctx context.Context) ([]*Product, error)
	// ListAny returns up to limit products with no predicate, the
	// fallback when the featured query fails.
	ListAny(ctx context.Context, limit int) ([]*Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	ListCategories(ctx context.Context) ([]*Category, error)
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
}
