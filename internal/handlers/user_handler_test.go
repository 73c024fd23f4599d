package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/acme-labs/showcase-api/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func TestListUsers(t *testing.T) {
	handler := NewUserHandler()

	r := chi.NewRouter()
	r.With(middleware.CommonQueryParams).Get("/users/", handler.ListUsers)

	req := httptest.NewRequest(http.MethodGet, "/users/?q=ana&skip=5&limit=2", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var params middleware.CommonParams
	if err := json.NewDecoder(w.Body).Decode(&params); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if params.Q == nil || *params.Q != "ana" {
		t.Errorf("expected q 'ana', got %v", params.Q)
	}
	if params.Skip != 5 {
		t.Errorf("expected skip 5, got %d", params.Skip)
	}
	if params.Limit != 2 {
		t.Errorf("expected limit 2, got %d", params.Limit)
	}
}
