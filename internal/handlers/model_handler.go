package handlers

import (
	"log/slog"
	"net/http"

	"github.com/acme-labs/showcase-api/internal/service"
	"github.com/go-chi/chi/v5"
)

// ModelHandler handles model catalog HTTP requests
type ModelHandler struct {
	catalog *service.ModelCatalog
	logger  *slog.Logger
}

// NewModelHandler creates a new model handler
func NewModelHandler(catalog *service.ModelCatalog, logger *slog.Logger) *ModelHandler {
	return &ModelHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// GetModel handles GET /models/{modelName}
// The path parameter must be one of the known model names
func (h *ModelHandler) GetModel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "modelName")

	desc, err := h.catalog.Describe(ctx, name)
	if err != nil {
		h.logger.Warn("unknown model requested", "modelName", name)
		writeError(w, http.StatusBadRequest, "Invalid model name")
		return
	}

	writeJSON(w, http.StatusOK, desc)
}
