package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/acme-labs/showcase-api/internal/models"
	"github.com/acme-labs/showcase-api/internal/repository"
	"github.com/acme-labs/showcase-api/internal/service"
	"github.com/acme-labs/showcase-api/pkg/logger"
	"github.com/go-chi/chi/v5"
)

func newItemRouter() *chi.Mux {
	repo := repository.NewInMemoryItemRepository()
	svc := service.NewItemService(repo)
	log := logger.New("error")
	handler := NewItemHandler(svc, log)

	r := chi.NewRouter()
	r.Get("/items/{itemID}", handler.ReadItem)
	r.Post("/items/", handler.CreateItem)
	r.Post("/items/save", handler.SaveItem)
	r.Post("/nested/parameters", handler.NestedParameters)
	r.Post("/nested/models", handler.NestedModels)
	r.Get("/item/{id}", handler.LookupItem)

	return r
}

func TestReadItem(t *testing.T) {
	r := newItemRouter()

	req := httptest.NewRequest(http.MethodGet, "/items/42", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var response map[string]int64
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response["item_id"] != 42 {
		t.Errorf("expected item_id 42, got %d", response["item_id"])
	}
}

func TestReadItem_InvalidID(t *testing.T) {
	r := newItemRouter()

	testCases := []struct {
		name string
		id   string
	}{
		{"letters", "invalid"},
		{"special chars", "abc@123"},
		{"float", "12.34"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/items/"+tc.id, nil)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400 for ID %s, got %d", tc.id, w.Code)
			}

			var response map[string]string
			if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
				t.Fatalf("failed to decode error response: %v", err)
			}

			if response["error"] != "Invalid ID supplied" {
				t.Errorf("expected error message 'Invalid ID supplied', got %s", response["error"])
			}
		})
	}
}

func TestCreateItem_Success(t *testing.T) {
	r := newItemRouter()

	body := `{"name":"Plumbus","description":"A fine plumbus","price":12.5,"tax":0.6}`
	req := httptest.NewRequest(http.MethodPost, "/items/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w.Code)
	}

	var item models.Item
	if err := json.NewDecoder(w.Body).Decode(&item); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if item.ID == "" {
		t.Error("expected generated item ID")
	}

	if item.Name != "Plumbus" {
		t.Errorf("expected name 'Plumbus', got %s", item.Name)
	}

	if item.Price != 12.5 {
		t.Errorf("expected price 12.5, got %f", item.Price)
	}

	if item.Tax == nil || *item.Tax != 0.6 {
		t.Errorf("expected tax 0.6, got %v", item.Tax)
	}
}

func TestCreateItem_ValidationFailures(t *testing.T) {
	r := newItemRouter()

	testCases := []struct {
		name  string
		body  string
		field string
	}{
		{"missing name", `{"price":9.99}`, "name"},
		{"missing price", `{"name":"Plumbus"}`, "price"},
		{"negative price", `{"name":"Plumbus","price":-1}`, "price"},
		{"negative tax", `{"name":"Plumbus","price":9.99,"tax":-0.5}`, "tax"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/items/", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", w.Code)
			}

			var response struct {
				Error  string `json:"error"`
				Fields []struct {
					Field string `json:"field"`
					Error string `json:"error"`
				} `json:"fields"`
			}
			if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
				t.Fatalf("failed to decode error response: %v", err)
			}

			found := false
			for _, fe := range response.Fields {
				if fe.Field == tc.field {
					found = true
				}
			}
			if !found {
				t.Errorf("expected a field error for %s, got %+v", tc.field, response.Fields)
			}
		})
	}
}

func TestCreateItem_MalformedBody(t *testing.T) {
	r := newItemRouter()

	req := httptest.NewRequest(http.MethodPost, "/items/", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestSaveItem_Defaults(t *testing.T) {
	r := newItemRouter()

	// An empty payload comes back with item_id null and tags []
	req := httptest.NewRequest(http.MethodPost, "/items/save", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	body := strings.TrimSpace(w.Body.String())
	expected := `{"item_id":null,"tags":[]}`
	if body != expected {
		t.Errorf("expected body %s, got %s", expected, body)
	}
}

func TestNestedModels_Echo(t *testing.T) {
	r := newItemRouter()

	req := httptest.NewRequest(http.MethodPost, "/nested/models",
		strings.NewReader(`{"item_id":"1","tags":["ana","banana"]}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	body := strings.TrimSpace(w.Body.String())
	expected := `{"item_id":"1","tags":["ana","banana"]}`
	if body != expected {
		t.Errorf("expected body %s, got %s", expected, body)
	}
}

func TestNestedParameters(t *testing.T) {
	r := newItemRouter()

	t.Run("success", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/nested/parameters",
			strings.NewReader(`{"user":{"username":"ana"},"item":{"item_id":"1"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Code)
		}

		var response struct {
			User models.User      `json:"user"`
			Item models.SavedItem `json:"item"`
		}
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}

		if response.User.Username != "ana" {
			t.Errorf("expected username 'ana', got %s", response.User.Username)
		}

		if response.Item.ItemID == nil || *response.Item.ItemID != "1" {
			t.Errorf("expected item_id '1', got %v", response.Item.ItemID)
		}
	})

	t.Run("missing username", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/nested/parameters",
			strings.NewReader(`{"user":{},"item":{}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", w.Code)
		}
	})
}

func TestLookupItem_Success(t *testing.T) {
	r := newItemRouter()

	req := httptest.NewRequest(http.MethodGet, "/item/foo", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response["item"] != "The Foo Wrestlers" {
		t.Errorf("expected item 'The Foo Wrestlers', got %s", response["item"])
	}
}

func TestLookupItem_NotFound(t *testing.T) {
	r := newItemRouter()

	req := httptest.NewRequest(http.MethodGet, "/item/bar", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}

	// The 404 carries a custom header alongside the JSON body
	if got := w.Header().Get("X-Error"); got != "There goes my error" {
		t.Errorf("expected X-Error header 'There goes my error', got %q", got)
	}

	var response map[string]string
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}

	if response["error"] != "Item not found" {
		t.Errorf("expected error message 'Item not found', got %s", response["error"])
	}
}
