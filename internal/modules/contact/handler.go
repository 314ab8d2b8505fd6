package contact

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kecinforstore/storefront-backend/internal/modules/catalog"
	"github.com/kecinforstore/storefront-backend/internal/modules/profile"
)

// Handler exposes the contact-link endpoint.
type Handler struct {
	dispatcher *Dispatcher
	catalog    catalog.Service
}

func NewHandler(dispatcher *Dispatcher, catalogService catalog.Service) *Handler {
	return &Handler{dispatcher: dispatcher, catalog: catalogService}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Get("/api/v1/storefront/contact-link", h.contactLink)
	r.Get("/api/v1/storefront/settings", h.settings)
}

// settings returns the store's public social links for the footer.
func (h *Handler) settings(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.dispatcher.settings.SocialLinks())
}

// contactLink returns the WhatsApp deep link for a product inquiry, or the
// generic inquiry when no product_id is given.
func (h *Handler) contactLink(w http.ResponseWriter, r *http.Request) {
	var product *catalog.Product
	if id := r.URL.Query().Get("product_id"); id != "" {
		p, err := h.catalog.GetProduct(r.Context(), id)
		if err != nil {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		product = p
	}

	viewer := profile.FromContext(r.Context())
	link, err := h.dispatcher.ProductLink(product, viewer)
	if err != nil {
		if errors.Is(err, ErrNoNumber) {
			http.Error(w, NoNumberMessage, http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"url": link})
}
