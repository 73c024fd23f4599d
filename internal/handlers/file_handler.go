package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/acme-labs/showcase-api/internal/config"
	"github.com/google/uuid"
)

// FileHandler handles multipart file uploads
type FileHandler struct {
	cfg    config.UploadConfig
	logger *slog.Logger
}

// NewFileHandler creates a new file handler
func NewFileHandler(cfg config.UploadConfig, logger *slog.Logger) *FileHandler {
	return &FileHandler{
		cfg:    cfg,
		logger: logger,
	}
}

// maxBytes returns the configured upload limit in bytes
func (h *FileHandler) maxBytes() int64 {
	return h.cfg.MaxSizeMB << 20
}

// CreateFile handles POST /files
// Reads the uploaded file into memory and reports its size
func (h *FileHandler) CreateFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes())

	file, _, err := r.FormFile("file")
	if err != nil {
		h.logger.Warn("missing or unreadable file field", "error", err)
		writeError(w, http.StatusBadRequest, "A file field is required")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("failed to read uploaded file", "error", err)
		writeError(w, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"file_size": len(content)})
}

// UploadFile handles POST /upload-file
// Persists the uploaded file under a generated name and reports the
// original filename
func (h *FileHandler) UploadFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes())

	file, header, err := r.FormFile("file")
	if err != nil {
		h.logger.Warn("missing or unreadable file field", "error", err)
		writeError(w, http.StatusBadRequest, "A file field is required")
		return
	}
	defer file.Close()

	storedName := uuid.New().String() + filepath.Ext(header.Filename)
	storedPath := filepath.Join(h.cfg.Dir, storedName)

	dst, err := os.Create(storedPath)
	if err != nil {
		h.logger.Error("failed to create stored file", "path", storedPath, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to store uploaded file")
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		h.logger.Error("failed to write stored file", "path", storedPath, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to store uploaded file")
		return
	}

	h.logger.Info("stored uploaded file",
		"filename", header.Filename,
		"stored_name", storedName,
		"size", header.Size,
	)

	writeJSON(w, http.StatusOK, map[string]string{"filename": header.Filename})
}
