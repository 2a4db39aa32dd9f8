package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	cartapp "github.com/ozercanmutlu-ship-it/capdana/internal/application/cart"
	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/catalog"
	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/settings"
	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/shared"
	"github.com/ozercanmutlu-ship-it/capdana/internal/infrastructure/analytics"
	"github.com/ozercanmutlu-ship-it/capdana/internal/infrastructure/cache"
	"github.com/ozercanmutlu-ship-it/capdana/internal/interfaces/http/dto"
)

type fakeFrontRepo struct{ fronts map[string]*catalog.Front }

func (f *fakeFrontRepo) Save(_ context.Context, front *catalog.Front) error {
	f.fronts[front.ID] = front
	return nil
}

func (f *fakeFrontRepo) FindByID(_ context.Context, id string) (*catalog.Front, error) {
	if front, ok := f.fronts[id]; ok {
		return front, nil
	}
	return nil, shared.NewNotFoundError("front", id)
}

func (f *fakeFrontRepo) FindAll(_ context.Context) ([]catalog.Front, error) { return nil, nil }
func (f *fakeFrontRepo) Delete(_ context.Context, id string) error          { return nil }

type fakeBandanaRepo struct{ bandanas map[string]*catalog.Bandana }

func (f *fakeBandanaRepo) Save(_ context.Context, bandana *catalog.Bandana) error {
	f.bandanas[bandana.ID] = bandana
	return nil
}

func (f *fakeBandanaRepo) FindByID(_ context.Context, id string) (*catalog.Bandana, error) {
	if bandana, ok := f.bandanas[id]; ok {
		return bandana, nil
	}
	return nil, shared.NewNotFoundError("bandana", id)
}

func (f *fakeBandanaRepo) FindAll(_ context.Context) ([]catalog.Bandana, error) { return nil, nil }
func (f *fakeBandanaRepo) Delete(_ context.Context, id string) error            { return nil }

type fakeReadyRepo struct{ ready map[string]*catalog.ReadyCapdana }

func (f *fakeReadyRepo) Save(_ context.Context, rc *catalog.ReadyCapdana) error {
	f.ready[rc.ID] = rc
	return nil
}

func (f *fakeReadyRepo) FindByID(_ context.Context, id string) (*catalog.ReadyCapdana, error) {
	if rc, ok := f.ready[id]; ok {
		return rc, nil
	}
	return nil, shared.NewNotFoundError("ready capdana", id)
}

func (f *fakeReadyRepo) FindAll(_ context.Context) ([]catalog.ReadyCapdana, error) { return nil, nil }
func (f *fakeReadyRepo) Delete(_ context.Context, id string) error                 { return nil }

type fakeSettingsRepo struct{}

func (fakeSettingsRepo) Get(_ context.Context) (*settings.SiteSettings, error) { return nil, nil }
func (fakeSettingsRepo) Save(_ context.Context, _ *settings.SiteSettings) error {
	return nil
}

func setupCartRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	front, err := catalog.NewFront("kirmizi-kare", "Kırmızı Kare", "")
	require.NoError(t, err)
	bandana, err := catalog.NewBandana("mavi-puanli", "Mavi Puanlı", "", catalog.RarityCommon, "blue")
	require.NoError(t, err)
	rc, err := catalog.NewReadyCapdana("capdana-01", "Kombin 01", "", front.ID, bandana.ID, catalog.RarityRare, nil, nil)
	require.NoError(t, err)

	svc := cartapp.NewService(
		cache.NewInMemoryCartStore(),
		analytics.NopSink{},
		&fakeReadyRepo{ready: map[string]*catalog.ReadyCapdana{rc.ID: rc}},
		&fakeFrontRepo{fronts: map[string]*catalog.Front{front.ID: front}},
		&fakeBandanaRepo{bandanas: map[string]*catalog.Bandana{bandana.ID: bandana}},
		fakeSettingsRepo{},
		"cart:",
		zap.NewNop(),
	)

	r := gin.New()
	api := r.Group("/api/v1")
	NewCartHandler(svc).RegisterRoutes(api)
	return r
}

func decodeCart(t *testing.T, w *httptest.ResponseRecorder) cartapp.Response {
	t.Helper()
	var envelope struct {
		Success bool             `json:"success"`
		Data    cartapp.Response `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.True(t, envelope.Success)
	return envelope.Data
}

func TestCartHandler_Lifecycle(t *testing.T) {
	r := setupCartRouter(t)

	// First GET mints a cart id.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))
	require.Equal(t, http.StatusOK, w.Code)
	cartID := w.Header().Get(CartIDHeader)
	require.NotEmpty(t, cartID)
	assert.Empty(t, decodeCart(t, w).Items)

	// Add a curated capdana at the default site price.
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items",
		strings.NewReader(`{"ready_id":"capdana-01","quantity":2}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(CartIDHeader, cartID)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeCart(t, w)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "333", resp.Items[0].UnitPrice)
	assert.Equal(t, 2, resp.TotalQuantity)
	assert.Equal(t, "666", resp.TotalAmount)
	assert.Equal(t, "TRY", resp.Currency)

	// Add a custom configuration; its id derives from the components.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/cart/custom-items",
		strings.NewReader(`{"front_id":"kirmizi-kare","bandana_id":"mavi-puanli"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(CartIDHeader, cartID)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	resp = decodeCart(t, w)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "custom-kirmizi-kare-mavi-puanli", resp.Items[1].ID)
	assert.Equal(t, "444", resp.Items[1].UnitPrice)

	// Update a quantity.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/api/v1/cart/items/capdana-01",
		strings.NewReader(`{"quantity":5}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(CartIDHeader, cartID)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, decodeCart(t, w).Items[0].Quantity)

	// Remove the custom line.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/v1/cart/items/custom-kirmizi-kare-mavi-puanli", nil)
	req.Header.Set(CartIDHeader, cartID)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeCart(t, w).Items, 1)

	// Clear everything.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/v1/cart", nil)
	req.Header.Set(CartIDHeader, cartID)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeCart(t, w).Items)
}

func TestCartHandler_AddUnknownReadyItem(t *testing.T) {
	r := setupCartRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items",
		strings.NewReader(`{"ready_id":"ghost"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var envelope dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, shared.ErrCodeNotFound, envelope.Error.Code)
}

func TestCartHandler_CartsAreIsolated(t *testing.T) {
	r := setupCartRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items",
		strings.NewReader(`{"ready_id":"capdana-01"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(CartIDHeader, "cart-a")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set(CartIDHeader, "cart-b")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeCart(t, w).Items)
}
