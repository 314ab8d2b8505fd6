package browse

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/kecinforstore/storefront-backend/internal/modules/catalog"
)

// Mock catalog service
type mockCatalog struct {
	products []*catalog.Product
}

func (m *mockCatalog) FetchProducts(ctx context.Context, f catalog.Filter) *catalog.Result {
	return &catalog.Result{Products: m.products}
}

func (m *mockCatalog) FeaturedProducts(ctx context.Context) []*catalog.Product { return nil }

func (m *mockCatalog) Categories(ctx context.Context) []*catalog.Category { return nil }

func (m *mockCatalog) GetProduct(ctx context.Context, id string) (*catalog.Product, error) {
	for _, p := range m.products {
		if p.ID.String() == id {
			return p, nil
		}
	}
	return nil, errors.New("not found")
}

func (m *mockCatalog) CreateProduct(ctx context.Context, req catalog.ProductRequest) (*catalog.Product, error) {
	return nil, errors.New("not implemented")
}

func (m *mockCatalog) UpdateProduct(ctx context.Context, id string, req catalog.ProductRequest) (*catalog.Product, error) {
	return nil, errors.New("not implemented")
}

func newTestRouter(svc *mockCatalog) *chi.Mux {
	router := chi.NewRouter()
	NewHandler(NewStore(svc), svc).RegisterRoutes(router)
	return router
}

func do(t *testing.T, router *chi.Mux, method, target string, body interface{}) (*httptest.ResponseRecorder, Snapshot) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var snap Snapshot
	if rec.Code < 300 && rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	}
	return rec, snap
}

func TestSessionLifecycle(t *testing.T) {
	svc := &mockCatalog{products: products("a", "b", "c", "d", "e")}
	router := newTestRouter(svc)

	rec, snap := do(t, router, http.MethodPost, "/api/v1/browse/sessions", map[string]int{"page_size": 2})
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, 5, snap.Total)
	require.Equal(t, 3, snap.PageCount)
	require.Len(t, snap.Items, 2)

	base := "/api/v1/browse/sessions/" + snap.ID.String()

	rec, snap = do(t, router, http.MethodPost, base+"/next", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, snap.Page)

	rec, snap = do(t, router, http.MethodPost, base+"/page", map[string]int{"page": 2})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 2, snap.Page)

	// next from the last page wraps to 0
	_, snap = do(t, router, http.MethodPost, base+"/next", nil)
	require.Equal(t, 0, snap.Page)

	rec, _ = do(t, router, http.MethodDelete, base, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec, _ = do(t, router, http.MethodGet, base, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSessionFilterEndpoint(t *testing.T) {
	svc := &mockCatalog{products: products("a", "b")}
	router := newTestRouter(svc)

	_, snap := do(t, router, http.MethodPost, "/api/v1/browse/sessions", nil)
	base := "/api/v1/browse/sessions/" + snap.ID.String()

	rec, snap := do(t, router, http.MethodPut, base+"/filter",
		map[string]string{"search": " mouse ", "category": "hardware"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "mouse", snap.Search)
	require.Equal(t, "hardware", snap.Category)
	require.Equal(t, 0, snap.Page)
}

func TestSessionDetailAndZoomEndpoints(t *testing.T) {
	svc := &mockCatalog{products: products("a")}
	router := newTestRouter(svc)

	_, snap := do(t, router, http.MethodPost, "/api/v1/browse/sessions", nil)
	base := "/api/v1/browse/sessions/" + snap.ID.String()

	// Zoom before any detail is a conflict.
	rec, _ := do(t, router, http.MethodPost, base+"/zoom", nil)
	require.Equal(t, http.StatusConflict, rec.Code)

	productID := svc.products[0].ID.String()
	rec, snap = do(t, router, http.MethodPost, base+"/detail",
		map[string]string{"product_id": productID})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, snap.Detail)

	rec, snap = do(t, router, http.MethodPost, base+"/zoom", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, snap.ZoomOpen)
	require.Equal(t, ZoomMin, snap.ZoomLevel)

	_, snap = do(t, router, http.MethodPost, base+"/zoom/in", nil)
	require.Equal(t, 1.5, snap.ZoomLevel)

	_, snap = do(t, router, http.MethodDelete, base+"/detail", nil)
	require.Nil(t, snap.Detail)
	require.False(t, snap.ZoomOpen)
}

func TestSessionDetailUnknownProduct(t *testing.T) {
	svc := &mockCatalog{}
	router := newTestRouter(svc)

	_, snap := do(t, router, http.MethodPost, "/api/v1/browse/sessions", nil)
	base := "/api/v1/browse/sessions/" + snap.ID.String()

	rec, _ := do(t, router, http.MethodPost, base+"/detail",
		map[string]string{"product_id": "nope"})
	require.Equal(t, http.StatusNotFound, rec.Code)
}
