package catalog

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kecinforstore/storefront-backend/internal/modules/pricing"
	"github.com/kecinforstore/storefront-backend/internal/modules/profile"
	"github.com/kecinforstore/storefront-backend/internal/pagination"
)

// Page sizes of the two catalog surfaces: the dense product grid and the
// featured list view.
const (
	GridPageSize     = 8
	FeaturedPageSize = 2
)

// Handler exposes the storefront catalog endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Get("/api/v1/storefront/products", h.listProducts)
	r.Get("/api/v1/storefront/products/featured", h.listFeatured)
	r.Get("/api/v1/storefront/products/{id}", h.getProduct)
	r.Get("/api/v1/storefront/categories", h.listCategories)
	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Use(profile.RequireAdmin)
		r.Post("/products", h.createProduct)
		r.Put("/products/{id}", h.updateProduct)
	})
}

// ProductView is a product with the viewer-resolved price block.
type ProductView struct {
	*Product
	Price pricing.Quote `json:"price"`
}

type pageResponse struct {
	Items     []ProductView `json:"items"`
	Total     int           `json:"total"`
	Page      int           `json:"page"`
	PageCount int           `json:"page_count"`
	PageSize  int           `json:"page_size"`
	Degraded  bool          `json:"degraded,omitempty"`
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	filter := Filter{
		Search:       r.URL.Query().Get("search"),
		CategorySlug: r.URL.Query().Get("category"),
	}
	result := h.service.FetchProducts(r.Context(), filter)

	viewer := profile.FromContext(r.Context())
	size := intParam(r, "page_size", GridPageSize)
	pager := pagination.New(result.Products, size)
	pager.JumpTo(intParam(r, "page", 0))

	respond(w, http.StatusOK, pageResponse{
		Items:     viewItems(pager.Page(), viewer),
		Total:     pager.Len(),
		Page:      pager.Index(),
		PageCount: pager.PageCount(),
		PageSize:  pager.PageSize(),
		Degraded:  result.Degraded,
	})
}

func (h *Handler) listFeatured(w http.ResponseWriter, r *http.Request) {
	products := h.service.FeaturedProducts(r.Context())

	viewer := profile.FromContext(r.Context())
	size := intParam(r, "page_size", FeaturedPageSize)
	pager := pagination.New(products, size)
	pager.JumpTo(intParam(r, "page", 0))

	respond(w, http.StatusOK, pageResponse{
		Items:     viewItems(pager.Page(), viewer),
		Total:     pager.Len(),
		Page:      pager.Index(),
		PageCount: pager.PageCount(),
		PageSize:  pager.PageSize(),
	})
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}
	viewer := profile.FromContext(r.Context())
	respond(w, http.StatusOK, ProductView{Product: p, Price: pricing.QuoteFor(p, viewer)})
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories := h.service.Categories(r.Context())
	if categories == nil {
		categories = []*Category{}
	}
	respond(w, http.StatusOK, categories)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	p, err := h.service.CreateProduct(r.Context(), req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusCreated, p)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	p, err := h.service.UpdateProduct(r.Context(), id, req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, p)
}

func viewItems(products []*Product, viewer *profile.Profile) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, ProductView{Product: p, Price: pricing.QuoteFor(p, viewer)})
	}
	return views
}

func intParam(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
