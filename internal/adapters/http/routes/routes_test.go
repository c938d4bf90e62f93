package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"e2d-ledger/internal/config"
	"e2d-ledger/internal/core/domain"
	"e2d-ledger/internal/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "routes-test-secret"

// newTestApp wires the full router without a database. The role checks
// under test reject requests before any repository is reached.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg := &config.Config{JWT: config.JWTConfig{Secret: testJWTSecret}}
	app := fiber.New()
	Setup(app, nil, cfg)
	return app
}

func tokenFor(t *testing.T, role domain.Role) string {
	t.Helper()
	token, err := jwt.GenerateAccessToken(1, "compte@e2d-association.org", string(role), testJWTSecret, 15)
	require.NoError(t, err)
	return token
}

func request(t *testing.T, app *fiber.App, method, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestMutatingRoutesRejectMemberRole(t *testing.T) {
	app := newTestApp(t)
	memberToken := tokenFor(t, domain.RoleMember)

	writes := []struct {
		method string
		path   string
	}{
		{fiber.MethodPost, "/api/v1/members"},
		{fiber.MethodPost, "/api/v1/cotisations"},
		{fiber.MethodPost, "/api/v1/prets"},
		{fiber.MethodPost, "/api/v1/sanctions"},
		{fiber.MethodPost, "/api/v1/aides"},
		{fiber.MethodPost, "/api/v1/epargne/deposits"},
		{fiber.MethodPost, "/api/v1/sport/participants"},
		{fiber.MethodPost, "/api/v1/sport/matches"},
		{fiber.MethodPost, "/api/v1/sport/stats"},
		{fiber.MethodPost, "/api/v1/reports"},
		{fiber.MethodPut, "/api/v1/reports/1"},
	}
	for _, w := range writes {
		resp := request(t, app, w.method, w.path, memberToken)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode, "%s %s", w.method, w.path)
	}
}

func TestMutatingRoutesAdmitTreasurerRole(t *testing.T) {
	app := newTestApp(t)
	treasurerToken := tokenFor(t, domain.RoleTreasurer)

	// Requests carry no body, so an admitted request fails input
	// parsing. The role check must not be what stops it.
	writes := []struct {
		method string
		path   string
	}{
		{fiber.MethodPost, "/api/v1/sport/participants"},
		{fiber.MethodPost, "/api/v1/sport/matches"},
		{fiber.MethodPost, "/api/v1/sport/stats"},
		{fiber.MethodPost, "/api/v1/reports"},
	}
	for _, w := range writes {
		resp := request(t, app, w.method, w.path, treasurerToken)
		assert.NotEqual(t, fiber.StatusForbidden, resp.StatusCode, "%s %s", w.method, w.path)
		assert.NotEqual(t, fiber.StatusUnauthorized, resp.StatusCode, "%s %s", w.method, w.path)
	}
}

func TestMutatingRoutesRequireToken(t *testing.T) {
	app := newTestApp(t)

	resp := request(t, app, fiber.MethodPost, "/api/v1/sport/stats", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = request(t, app, fiber.MethodPost, "/api/v1/reports", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
