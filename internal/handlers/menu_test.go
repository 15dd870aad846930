package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMenuHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	NewMenuHandler("1.2.3")(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp MenuResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "notes-service", resp.Service)
	assert.Equal(t, "1.2.3", resp.Version)
	assert.NotEmpty(t, resp.Routes)

	paths := make([]string, 0, len(resp.Routes))
	for _, route := range resp.Routes {
		paths = append(paths, route.Path)
	}
	assert.Contains(t, paths, "/register")
	assert.Contains(t, paths, "/login")
	assert.Contains(t, paths, "/logout")
	assert.Contains(t, paths, "/homenotes")
	assert.Contains(t, paths, "/search")
}
