package inventory

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"inventory-dashboard/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T) (*fiber.App, *auth.Gate) {
	t.Helper()

	cfg := testConfig()
	app := fiber.New()
	gate := auth.New(auth.Config{Pin: "1234"})
	NewHandler(newTestService(seededStore(cfg), cfg)).RegisterRoutes(app, gate)
	return app, gate
}

func TestHandleList(t *testing.T) {
	app, _ := setupTestApp(t)

	req := httptest.NewRequest("GET", "/inventory/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var result ListResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Len(t, result.Items, 2)
	assert.Equal(t, 1, result.LowStockCount)
	assert.Equal(t, "2026-08-30 12:00:00 UTC", result.LastFetched)
}

func TestHandleListQueryParams(t *testing.T) {
	app, _ := setupTestApp(t)

	req := httptest.NewRequest("GET", "/inventory/?q=j10&low=true", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var result ListResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	require.Len(t, result.Items, 1)
	assert.Equal(t, "10-String", result.Items[0].BalanceSize)
}

func TestHandleReplaceRequiresEditor(t *testing.T) {
	app, _ := setupTestApp(t)

	payload, _ := json.Marshal(fiber.Map{"items": []Edit{{Item: "6-String", SKU: "J6", OnHand: 4}}})
	req := httptest.NewRequest("PUT", "/inventory/", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestHandleReplace(t *testing.T) {
	app, gate := setupTestApp(t)
	token, err := gate.Unlock("1234")
	require.NoError(t, err)

	payload, _ := json.Marshal(fiber.Map{"items": []Edit{{Item: "6-String", SKU: "J6", OnHand: 4, MinLevel: 5}}})
	req := httptest.NewRequest("PUT", "/inventory/", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(auth.TokenHeader, token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		Items         []map[string]any `json:"items"`
		LowStockCount int              `json:"lowStockCount"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Items, 2)
	// The edit dropped 6-String to its reorder level.
	assert.Equal(t, 2, body.LowStockCount)
}

func TestHandleReplaceBadBody(t *testing.T) {
	app, gate := setupTestApp(t)
	token, err := gate.Unlock("1234")
	require.NoError(t, err)

	req := httptest.NewRequest("PUT", "/inventory/", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(auth.TokenHeader, token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}
