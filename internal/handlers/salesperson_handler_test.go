package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldforce/sales-agent-api/internal/models"
	"github.com/fieldforce/sales-agent-api/internal/services"
)

// newSalespersonTestApp runs the handler against a nil repo, the
// degraded mode the API serves when no database is reachable.
func newSalespersonTestApp() *fiber.App {
	h := NewSalespersonHandler(services.NewSalespersonService(nil))

	app := fiber.New()
	app.Get("/api/salespersons", h.List)
	app.Post("/api/salespersons", h.Create)
	app.Get("/api/salespersons/:id", h.Get)
	app.Get("/api/salespersons/:id/qr", h.ContactQR)
	return app
}

func TestSalespersonList_FallbackRoster(t *testing.T) {
	app := newSalespersonTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/salespersons", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	var roster []models.Salesperson
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &roster))

	require.Len(t, roster, 6)
	assert.Equal(t, "Alice Johnson", roster[0].Name)
	assert.Equal(t, 45000.0, roster[0].TotalRevenue)
}

func TestSalespersonWrites_Unavailable(t *testing.T) {
	app := newSalespersonTestApp()

	t.Run("create returns 503", func(t *testing.T) {
		resp := postJSON(t, app, "/api/salespersons", `{"name": "Grace Lee", "region": "South"}`)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})

	t.Run("get returns 503", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/salespersons/some-id", nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})

	t.Run("qr returns 503", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/salespersons/some-id/qr", nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})
}

func TestHealthEndpoint_Degraded(t *testing.T) {
	app := fiber.New()
	app.Get("/health", NewHealthHandler(nil).GetHealth)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	var out map[string]string
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &out))

	assert.Equal(t, "ok", out["status"])
	assert.Equal(t, "unavailable", out["database"])
}
