package invites

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventlink-backend/internal/domain"
	"eventlink-backend/internal/templates"

	"github.com/gofiber/fiber/v2"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupHandlersTest(t *testing.T) (*fiber.App, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Invite{}, &domain.RsvpResponse{}))

	h := &Handlers{Service: &Service{DB: db}, InviteBaseURL: "https://eventlink.app"}
	app := fiber.New(fiber.Config{Views: templates.Engine()})
	app.Post("/api/v1/invites/create-invite", h.CreateInvite)
	app.Post("/api/v1/invites/public/view/:inviteID", h.ViewInvite)
	app.Get("/invite/:inviteID", h.InvitePage)
	return app, db
}

func decodeJSONBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, out))
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestCreateInviteHandler(t *testing.T) {
	app, _ := setupHandlersTest(t)

	resp := postJSON(t, app, "/api/v1/invites/create-invite", fiber.Map{
		"templateId": "party",
		"planId":     "free",
		"eventDetails": fiber.Map{
			"eventName":     "Launch Party",
			"eventDate":     "2026-10-01",
			"eventTime":     "19:00",
			"eventLocation": "Rooftop Bar",
			"enableRsvp":    true,
		},
	})
	assert.Equal(t, 201, resp.StatusCode)

	var body struct {
		Status   string        `json:"status"`
		Data     domain.Invite `json:"data"`
		Metadata struct {
			Link string `json:"link"`
		} `json:"metadata"`
	}
	decodeJSONBody(t, resp, &body)
	assert.Equal(t, "success", body.Status)
	assert.Len(t, body.Data.InviteID, 8)
	assert.Equal(t, "https://eventlink.app/invite/"+body.Data.InviteID, body.Metadata.Link)
}

func TestCreateInviteHandler_MissingFields(t *testing.T) {
	app, _ := setupHandlersTest(t)

	resp := postJSON(t, app, "/api/v1/invites/create-invite", fiber.Map{"templateId": "party"})
	assert.Equal(t, 400, resp.StatusCode)
}

func TestCreateInviteHandler_InvalidPlan(t *testing.T) {
	app, _ := setupHandlersTest(t)

	resp := postJSON(t, app, "/api/v1/invites/create-invite", fiber.Map{
		"templateId": "party",
		"planId":     "platinum",
		"eventDetails": fiber.Map{
			"eventName": "X", "eventDate": "2026-01-01", "eventTime": "10:00", "eventLocation": "Y",
		},
	})
	assert.Equal(t, 400, resp.StatusCode)
}

func TestViewInviteHandler_NotFound(t *testing.T) {
	app, _ := setupHandlersTest(t)

	resp := postJSON(t, app, "/api/v1/invites/public/view/missing1", nil)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestViewInviteHandler_CountsAndSetsCookie(t *testing.T) {
	app, db := setupHandlersTest(t)
	inv := seedInvite(t, db, limit(1))

	resp := postJSON(t, app, "/api/v1/invites/public/view/"+inv.InviteID, nil)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Set-Cookie"), "visited_"+inv.InviteID+"=1")

	var body struct {
		Metadata struct {
			VisitCount int64 `json:"visit_count"`
			Counted    bool  `json:"counted"`
		} `json:"metadata"`
	}
	decodeJSONBody(t, resp, &body)
	assert.True(t, body.Metadata.Counted)
	assert.Equal(t, int64(1), body.Metadata.VisitCount)
}

func TestViewInviteHandler_QuotaExhaustedWithoutCookie(t *testing.T) {
	app, db := setupHandlersTest(t)
	inv := seedInvite(t, db, limit(1))

	resp := postJSON(t, app, "/api/v1/invites/public/view/"+inv.InviteID, nil)
	require.Equal(t, 200, resp.StatusCode)

	// A second browser with no visited cookie is denied.
	resp = postJSON(t, app, "/api/v1/invites/public/view/"+inv.InviteID, nil)
	assert.Equal(t, 403, resp.StatusCode)
}

func TestViewInviteHandler_CookieHolderAllowedAtCap(t *testing.T) {
	app, db := setupHandlersTest(t)
	inv := seedInvite(t, db, limit(1))

	resp := postJSON(t, app, "/api/v1/invites/public/view/"+inv.InviteID, nil)
	require.Equal(t, 200, resp.StatusCode)

	req := httptest.NewRequest("POST", "/api/v1/invites/public/view/"+inv.InviteID, nil)
	req.Header.Set("Cookie", "visited_"+inv.InviteID+"=1")
	resp2, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp2.StatusCode)

	var body struct {
		Metadata struct {
			VisitCount int64 `json:"visit_count"`
			Counted    bool  `json:"counted"`
		} `json:"metadata"`
	}
	decodeJSONBody(t, resp2, &body)
	assert.False(t, body.Metadata.Counted)
	assert.Equal(t, int64(1), body.Metadata.VisitCount)
}

func TestInvitePage_RendersEventDetails(t *testing.T) {
	app, db := setupHandlersTest(t)
	inv := seedInvite(t, db, limit(5))

	resp, err := app.Test(httptest.NewRequest("GET", "/invite/"+inv.InviteID, nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(b), "Launch Party")
	assert.Contains(t, string(b), "Any dietary restrictions?")
}

func TestInvitePage_NotFound(t *testing.T) {
	app, _ := setupHandlersTest(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/invite/missing1", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(b), "Invite not found")
}

func TestInvitePage_QuotaExceeded(t *testing.T) {
	app, db := setupHandlersTest(t)
	inv := seedInvite(t, db, limit(0))

	resp, err := app.Test(httptest.NewRequest("GET", "/invite/"+inv.InviteID, nil))
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(b), "view limit")
}
