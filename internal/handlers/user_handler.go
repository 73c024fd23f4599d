package handlers

import (
	"net/http"

	"github.com/acme-labs/showcase-api/internal/middleware"
)

// UserHandler handles user listing requests
type UserHandler struct{}

// NewUserHandler creates a new user handler
func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// ListUsers handles GET /users/
// Echoes the common query parameters resolved by the middleware
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	params := middleware.CommonParamsFromContext(r.Context())
	writeJSON(w, http.StatusOK, params)
}
