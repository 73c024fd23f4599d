package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/acme-labs/showcase-api/internal/middleware"
	"github.com/acme-labs/showcase-api/internal/models"
	"github.com/acme-labs/showcase-api/internal/repository"
	"github.com/acme-labs/showcase-api/internal/service"
	"github.com/acme-labs/showcase-api/internal/validation"
	"github.com/go-chi/chi/v5"
)

// ItemHandler handles item-related HTTP requests
type ItemHandler struct {
	service *service.ItemService
	logger  *slog.Logger
}

// NewItemHandler creates a new item handler
func NewItemHandler(service *service.ItemService, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{
		service: service,
		logger:  logger,
	}
}

// ReadItem handles GET /items/{itemID}
// The path parameter must be an integer; it is echoed back as item_id
func (h *ItemHandler) ReadItem(w http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "itemID")

	itemID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		h.logger.Warn("invalid item ID format", "itemID", rawID, "error", err)
		writeError(w, http.StatusBadRequest, "Invalid ID supplied")
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"item_id": itemID})
}

// CreateItem handles POST /items/
// The body is validated against the ItemCreate schema before the item
// is stored; on success the created item is returned with its ID
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.ItemCreate
	if err := decodeJSON(r, &req); err != nil {
		h.logger.Warn("malformed item create body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if fields := validation.Struct(req); fields != nil {
		h.logger.Warn("item create validation failed", "fields", len(fields))
		writeValidationError(w, fields)
		return
	}

	item, err := h.service.CreateItem(ctx, req)
	if err != nil {
		h.logger.Error("failed to create item", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

// SaveItem handles POST /items/save
// Echoes the payload back with defaults applied
func (h *ItemHandler) SaveItem(w http.ResponseWriter, r *http.Request) {
	var item models.SavedItem
	if err := decodeJSON(r, &item); err != nil {
		h.logger.Warn("malformed item save body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item.Normalize()
	writeJSON(w, http.StatusOK, item)
}

// NestedParameters handles POST /nested/parameters
// The body carries a user and an item under separate keys; both are
// echoed back after validation
func (h *ItemHandler) NestedParameters(w http.ResponseWriter, r *http.Request) {
	var payload models.NestedPayload
	if err := decodeJSON(r, &payload); err != nil {
		h.logger.Warn("malformed nested body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if fields := validation.Struct(payload); fields != nil {
		h.logger.Warn("nested payload validation failed", "fields", len(fields))
		writeValidationError(w, fields)
		return
	}

	payload.Item.Normalize()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user": payload.User,
		"item": payload.Item,
	})
}

// NestedModels handles POST /nested/models
// Echoes the item payload back with defaults applied
func (h *ItemHandler) NestedModels(w http.ResponseWriter, r *http.Request) {
	var item models.SavedItem
	if err := decodeJSON(r, &item); err != nil {
		h.logger.Warn("malformed nested model body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item.Normalize()
	writeJSON(w, http.StatusOK, item)
}

// LookupItem handles GET /item/{id}
// Looks up a legacy named item. A miss produces a 404 carrying an
// X-Error header alongside the JSON error body.
func (h *ItemHandler) LookupItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	desc, err := h.service.LookupNamed(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			h.logger.Info("named item not found", "id", id)
			w.Header().Set("X-Error", "There goes my error")
			writeError(w, http.StatusNotFound, "Item not found")
			return
		}

		h.logger.Error("failed to look up named item", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"item": desc})
}

// ListItems handles GET /items/
// Echoes the common query parameters resolved by the middleware
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	params := middleware.CommonParamsFromContext(r.Context())
	writeJSON(w, http.StatusOK, params)
}
