package handlers

import (
	"encoding/json"
	"net/http"
)

// MenuRoute describes a single route of the service
// swagger:model MenuRoute
type MenuRoute struct {
	// Route path
	// default: /homenotes
	Path string `json:"path"`

	// What the route does
	// default: List and manage your notes
	Description string `json:"description"`
}

// MenuResponse represents the landing page descriptor
// swagger:model MenuResponse
type MenuResponse struct {
	// Service name
	// default: notes-service
	Service string `json:"service"`

	// Service version
	// default: 1.0.0
	Version string `json:"version"`

	// Available routes
	Routes []MenuRoute `json:"routes"`
}

// NewMenuHandler returns an HTTP handler for the landing/menu page.
// @Summary Landing page
// @Description Lists the routes of the service
// @Tags menu
// @Produce json
// @Success 200 {object} handlers.MenuResponse "Service descriptor"
// @Router / [get]
func NewMenuHandler(version string) http.HandlerFunc {
	routes := []MenuRoute{
		{Path: "/register", Description: "Register a new user"},
		{Path: "/login", Description: "Log in, optionally with remember_me"},
		{Path: "/logout", Description: "Terminate the current session"},
		{Path: "/homenotes", Description: "List, create and update your notes"},
		{Path: "/delete/{note_id}", Description: "Confirm and commit note deletion"},
		{Path: "/search", Description: "Search your notes by title or content"},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MenuResponse{
			Service: "notes-service",
			Version: version,
			Routes:  routes,
		})
	}
}
