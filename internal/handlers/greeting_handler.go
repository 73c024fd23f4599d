package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GreetingHandler handles the hello endpoints
type GreetingHandler struct{}

// NewGreetingHandler creates a new greeting handler
func NewGreetingHandler() *GreetingHandler {
	return &GreetingHandler{}
}

// Root handles GET /
func (h *GreetingHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Hello World"})
}

// SayHello handles GET /hello/{name}
func (h *GreetingHandler) SayHello(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	writeJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Hello %s", name),
	})
}
