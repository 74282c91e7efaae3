package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	httptransport "github.com/assetflow/maintenance-service/internal/api/http"
	"github.com/assetflow/maintenance-service/internal/api/http/handlers"
	"github.com/assetflow/maintenance-service/internal/auth"
	"github.com/assetflow/maintenance-service/internal/domain"
	"github.com/assetflow/maintenance-service/internal/events"
	"github.com/assetflow/maintenance-service/internal/observability"
	"github.com/assetflow/maintenance-service/internal/store"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	st := store.New(nil, events.NewInMemoryDispatcher())

	expiry := time.Now().Add(90 * 24 * time.Hour)
	require.NoError(t, st.RegisterAsset(domain.Asset{
		ID:             "AST-001",
		Name:           "Laptop",
		Category:       "hardware",
		Branch:         "HQ",
		WarrantyExpiry: &expiry,
	}))
	require.NoError(t, st.RegisterEmployee(domain.HelpDeskEmployee{
		ID:        "EMP-001",
		Name:      "Dana",
		Available: true,
	}))

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler("maintenance-service", "test", st),
		Requests:  handlers.NewRequestsHandler(st),
		Dashboard: handlers.NewDashboardHandler(st),
		Catalog:   handlers.NewCatalogHandler(st),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, actorID string, role domain.Role) (*http.Response, map[string]any) {
	t.Helper()
	var buf io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if actorID != "" {
		req.Header.Set(auth.HeaderActorID, actorID)
		req.Header.Set(auth.HeaderActorRole, string(role))
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	decoded := map[string]any{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func TestHealthRoutesNeedNoActor(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/health/live", nil, "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "alive", body["status"])

	resp, body = doJSON(t, app, http.MethodGet, "/health/ready", nil, "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ready", body["status"])
}

func TestMissingActorHeaderRejected(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/api/v1/requests", nil, "", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errObj, ok := body["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_FAILED", errObj["code"])
}

func TestRequestLifecycleOverHTTP(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/requests", map[string]any{
		"asset_id":    "AST-001",
		"title":       "Screen flickers",
		"description": "Display cuts out",
		"priority":    "high",
	}, "USR-001", domain.RoleUser)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := body["data"].(map[string]any)
	requestID := created["id"].(string)
	assert.Equal(t, "MR-001", requestID)
	assert.Equal(t, "pending", created["status"])
	assert.Equal(t, true, created["warranty_eligible"])

	resp, body = doJSON(t, app, http.MethodPost, "/api/v1/requests/"+requestID+"/assign", map[string]any{
		"assignee_id": "EMP-001",
		"kind":        "helpdesk",
	}, "USR-ADMIN", domain.RoleAdmin)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assigned := body["data"].(map[string]any)
	assert.Equal(t, "in-progress", assigned["status"])
	assert.Equal(t, "EMP-001", assigned["assigned_to"])

	// Status updates are admin only.
	resp, body = doJSON(t, app, http.MethodPost, "/api/v1/requests/"+requestID+"/status", map[string]any{
		"status": "completed",
	}, "USR-001", domain.RoleUser)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	errObj := body["error"].(map[string]any)
	assert.Equal(t, "FORBIDDEN", errObj["code"])

	resp, body = doJSON(t, app, http.MethodPost, "/api/v1/requests/"+requestID+"/status", map[string]any{
		"status": "completed",
	}, "USR-ADMIN", domain.RoleAdmin)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	completed := body["data"].(map[string]any)
	assert.Equal(t, "completed", completed["status"])
	assert.NotEmpty(t, completed["actual_completion"])
}

func TestInvalidTransitionEnvelope(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/requests", map[string]any{
		"asset_id":    "AST-001",
		"title":       "Broken key",
		"description": "Space bar stuck",
	}, "USR-001", domain.RoleUser)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	requestID := body["data"].(map[string]any)["id"].(string)

	resp, body = doJSON(t, app, http.MethodPost, "/api/v1/requests/"+requestID+"/status", map[string]any{
		"status": "in-progress",
	}, "USR-ADMIN", domain.RoleAdmin)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	errObj := body["error"].(map[string]any)
	assert.Equal(t, "INVALID_TRANSITION", errObj["code"])
	assert.NotEmpty(t, errObj["details"])
}

func TestDashboardMetricsEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/requests", map[string]any{
		"asset_id":    "AST-001",
		"title":       "Fan noise",
		"description": "Loud under load",
	}, "USR-001", domain.RoleUser)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodGet, "/api/v1/dashboard/metrics", nil, "USR-001", domain.RoleUser)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]any)
	statusCounts := data["status_counts"].(map[string]any)
	assert.Equal(t, float64(1), statusCounts["pending"])
	assert.Equal(t, float64(0), statusCounts["completed"])
	funnel := data["lifecycle_funnel"].(map[string]any)
	assert.Equal(t, float64(1), funnel["maintenance-pending"])
}

func TestCatalogRegistrationIsAdminOnly(t *testing.T) {
	app := newTestApp(t)

	payload := map[string]any{"id": "AST-002", "name": "Printer", "branch": "East"}

	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/assets", payload, "USR-001", domain.RoleUser)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", body["error"].(map[string]any)["code"])

	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/assets", payload, "USR-ADMIN", domain.RoleAdmin)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodGet, "/api/v1/assets", nil, "USR-001", domain.RoleUser)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["data"].([]any), 2)
}
