package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is an item in the storefront catalog. The storefront surface is
// read-only; writes happen through the admin endpoints only. The two price
// columns keep the names the store's database has always used.
type Product struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	PriceRetail   decimal.Decimal `json:"price_varejo"`
	PriceReseller decimal.Decimal `json:"price_revenda"`
	ImageURL      string          `json:"image_url,omitempty"`
	SKU           string          `json:"sku,omitempty"`
	IsFeatured    bool            `json:"is_featured"`
	CategoryID    uuid.NullUUID   `json:"category_id,omitempty"`
	Category      *CategoryRef    `json:"category,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// RetailPrice implements the pricing.Priced interface.
func (p *Product) RetailPrice() decimal.Decimal { return p.PriceRetail }

// ResellerPrice implements the pricing.Priced interface.
func (p *Product) ResellerPrice() decimal.Decimal { return p.PriceReseller }

// CategoryRef is the category data carried alongside a product by the
// enriched query.
type CategoryRef struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Category is a product category. Slug is the stable filter key.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CategoryAll is the sentinel slug meaning "no category restriction".
const CategoryAll = "all"

// Filter selects products by free-text name search and category slug.
type Filter struct {
	Search       string
	CategorySlug string
}

// Normalized trims the search term and maps an empty category to the
// sentinel value.
func (f Filter) Normalized() Filter {
	f.Search = strings.TrimSpace(f.Search)
	if f.CategorySlug == "" {
		f.CategorySlug = CategoryAll
	}
	return f
}

// HasSearch reports whether a search term is active.
func (f Filter) HasSearch() bool { return strings.TrimSpace(f.Search) != "" }

// HasCategory reports whether a category restriction is active.
func (f Filter) HasCategory() bool {
	return f.CategorySlug != "" && f.CategorySlug != CategoryAll
}
