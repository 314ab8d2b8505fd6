package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Result is a fetched product list. Degraded is set when the enriched query
// failed and the list came from the unjoined, unfiltered fallback: the
// caller is seeing the full catalog regardless of the filter it asked for.
type Result struct {
	Products []*Product
	Degraded bool
}

// Service defines catalog business logic.
//
// The read operations never fail: a backend error degrades to a fallback
// query or an empty list, mirroring how the storefront treats every read
// failure as "no products found" rather than an error state.
type Service interface {
	FetchProducts(ctx context.Context, f Filter) *Result
	FeaturedProducts(ctx context.Context) []*Product
	Categories(ctx context.Context) []*Category
	GetProduct(ctx context.Context, id string) (*Product, error)
	CreateProduct(ctx context.Context, req ProductRequest) (*Product, error)
	UpdateProduct(ctx context.Context, id string, req ProductRequest) (*Product, error)
}

// ProductRequest holds the data for creating or updating a product.
type ProductRequest struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	PriceRetail   decimal.Decimal `json:"price_varejo"`
	PriceReseller decimal.Decimal `json:"price_revenda"`
	ImageURL      string          `json:"image_url"`
	SKU           string          `json:"sku"`
	IsFeatured    bool            `json:"is_featured"`
	CategoryID    uuid.NullUUID   `json:"category_id"`
}

// featuredFallbackLimit caps the carousel fallback when the featured query
// fails: any 8 products rather than an empty section.
const featuredFallbackLimit = 8

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{repo: repo, logger: logger}
}

// FetchProducts tries the enriched joined query with the filter applied,
// then falls back to the simple unfiltered query. The category filter is
// only expressible via the join, so the fallback drops both filters; the
// Degraded flag tells the caller that happened.
func (s *service) FetchProducts(ctx context.Context, f Filter) *Result {
	f = f.Normalized()

	products, err := s.repo.ListEnriched(ctx, f)
	if err == nil {
		return &Result{Products: products}
	}
	s.logger.Warn("enriched product query failed, retrying without join",
		zap.String("category", f.CategorySlug),
		zap.String("search", f.Search),
		zap.Error(err))

	products, err = s.repo.ListAll(ctx)
	if err != nil {
		s.logger.Error("fallback product query failed", zap.Error(err))
		return &Result{}
	}
	return &Result{Products: products, Degraded: true}
}

// FeaturedProducts returns the featured carousel items, degrading to any
// products when the featured query fails.
func (s *service) FeaturedProducts(ctx context.Context) []*Product {
	products, err := s.repo.ListFeatured(ctx)
	if err == nil {
		return products
	}
	s.logger.Warn("featured product query failed, loading any products", zap.Error(err))

	products, err = s.repo.ListAny(ctx, featuredFallbackLimit)
	if err != nil {
		s.logger.Error("featured fallback query failed", zap.Error(err))
		return nil
	}
	return products
}

func (s *service) Categories(ctx context.Context) []*Category {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		s.logger.Warn("category query failed", zap.Error(err))
		return nil
	}
	return categories
}

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) CreateProduct(ctx context.Context, req ProductRequest) (*Product, error) {
	p := &Product{
		ID:            uuid.New(),
		Name:          req.Name,
		Description:   req.Description,
		PriceRetail:   req.PriceRetail,
		PriceReseller: req.PriceReseller,
		ImageURL:      req.ImageURL,
		SKU:           req.SKU,
		IsFeatured:    req.IsFeatured,
		CategoryID:    req.CategoryID,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) UpdateProduct(ctx context.Context, id string, req ProductRequest) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Name = req.Name
	p.Description = req.Description
	p.PriceRetail = req.PriceRetail
	p.PriceReseller = req.PriceReseller
	p.ImageURL = req.ImageURL
	p.SKU = req.SKU
	p.IsFeatured = req.IsFeatured
	p.CategoryID = req.CategoryID
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
