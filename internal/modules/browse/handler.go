package browse

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kecinforstore/storefront-backend/internal/modules/catalog"
)

// Handler exposes the browse-session endpoints. Every mutation responds
// with a fresh snapshot so clients render from one consistent state.
type Handler struct {
	store   *Store
	catalog catalog.Service
}

func NewHandler(store *Store, catalogService catalog.Service) *Handler {
	return &Handler{store: store, catalog: catalogService}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/browse/sessions", func(r chi.Router) {
		r.Post("/", h.createSession)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.getSession)
			r.Delete("/", h.deleteSession)
			r.Put("/filter", h.setFilter)
			r.Post("/next", h.next)
			r.Post("/previous", h.previous)
			r.Post("/page", h.jumpTo)
			r.Post("/detail", h.openDetail)
			r.Delete("/detail", h.closeDetail)
			r.Post("/zoom", h.openZoom)
			r.Delete("/zoom", h.closeZoom)
			r.Post("/zoom/in", h.zoomIn)
			r.Post("/zoom/out", h.zoomOut)
		})
	})
}

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PageSize int `json:"page_size"`
	}
	// Body is optional; an empty body gets the default grid size.
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.PageSize < 1 {
		req.PageSize = catalog.GridPageSize
	}

	s := h.store.Create(req.PageSize)
	s.SetFilter(r.Context(), catalog.Filter{})
	respond(w, http.StatusCreated, s.Snapshot())
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	respond(w, http.StatusOK, s.Snapshot())
}

func (h *Handler) deleteSession(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid session id", http.StatusBadRequest)
		return
	}
	h.store.Delete(id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setFilter(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req struct {
		Search   string `json:"search"`
		Category string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.SetFilter(r.Context(), catalog.Filter{Search: req.Search, CategorySlug: req.Category})
	respond(w, http.StatusOK, s.Snapshot())
}

func (h *Handler) next(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	s.Next()
	respond(w, http.StatusOK, s.Snapshot())
}

func (h *Handler) previous(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	s.Prev()
	respond(w, http.StatusOK, s.Snapshot())
}

func (h *Handler) jumpTo(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req struct {
		Page int `json:"page"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.JumpTo(req.Page)
	respond(w, http.StatusOK, s.Snapshot())
}

func (h *Handler) openDetail(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req struct {
		ProductID string `json:"product_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	p, err := h.catalog.GetProduct(r.Context(), req.ProductID)
	if err != nil {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}
	s.OpenDetail(p)
	respond(w, http.StatusOK, s.Snapshot())
}

func (h *Handler) closeDetail(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	s.CloseDetail()
	respond(w, http.StatusOK, s.Snapshot())
}

func (h *Handler) openZoom(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := s.OpenZoom(); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	respond(w, http.StatusOK, s.Snapshot())
}

func (h *Handler) closeZoom(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	s.CloseZoom()
	respond(w, http.StatusOK, s.Snapshot())
}

func (h *Handler) zoomIn(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	s.ZoomIn()
	respond(w, http.StatusOK, s.Snapshot())
}

func (h *Handler) zoomOut(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	s.ZoomOut()
	respond(w, http.StatusOK, s.Snapshot())
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid session id", http.StatusBadRequest)
		return nil, false
	}
	s, ok := h.store.Get(id)
	if !ok {
		http.Error(w, "session not found", http.StatusNotFound)
		return nil, false
	}
	return s, true
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
