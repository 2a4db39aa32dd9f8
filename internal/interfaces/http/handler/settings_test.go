package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	settingsapp "github.com/ozercanmutlu-ship-it/capdana/internal/application/settings"
	"github.com/ozercanmutlu-ship-it/capdana/internal/interfaces/http/dto"
)

func setupSettingsRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := settingsapp.NewService(fakeSettingsRepo{}, zap.NewNop())
	passthrough := func(c *gin.Context) { c.Next() }

	r := gin.New()
	api := r.Group("/api/v1")
	NewSettingsHandler(svc, passthrough, passthrough).RegisterRoutes(api)
	return r
}

func TestSettingsHandler_Get(t *testing.T) {
	r := setupSettingsRouter(t)

	// The prices are readable both on the storefront path and the
	// admin path.
	for _, path := range []string{"/api/v1/settings", "/api/v1/admin/settings"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		require.Equal(t, http.StatusOK, w.Code, path)
		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success, path)

		data, err := json.Marshal(resp.Data)
		require.NoError(t, err)
		assert.Contains(t, string(data), "333", path)
		assert.Contains(t, string(data), "444", path)
	}
}

func TestSettingsHandler_Update(t *testing.T) {
	r := setupSettingsRouter(t)

	body := `{"ready_price":"350","custom_price":"475"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/settings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}
