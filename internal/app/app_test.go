package app

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"eventlink-backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// With no database or Redis configured the app still serves the catalog,
// payment simulation and health routes.
func TestCreateApp_WithoutBackends(t *testing.T) {
	app, db, rdb, err := CreateApp(&config.Config{Env: "test", Port: "0"})
	require.NoError(t, err)
	assert.Nil(t, db)
	assert.Nil(t, rdb)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/plans", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, &body))
	require.Len(t, body.Data, 4)
	assert.Equal(t, "free", body.Data[0].ID)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/v1/templates", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/health/json", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestCreateApp_InviteRoutesNeedDatabase(t *testing.T) {
	app, _, _, err := CreateApp(&config.Config{Env: "test"})
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest("GET", "/invite/abc12345", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}
