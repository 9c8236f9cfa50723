package httpadapter

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	"gopkg.in/yaml.v3"

	"keyword-planner/internal/core/domain"
	"keyword-planner/internal/core/port"
)

// maxRequestBytes bounds a JSON research request body.
const maxRequestBytes = 1 << 20

// handleSearch runs keyword research for a JSON request body. Malformed
// JSON and invalid requests produce HTTP 400, bodies over maxRequestBytes
// HTTP 413. Source and model failures are not errors here; they show up as
// a degraded deliverable.
func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)

	var req domain.ResearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	h.research(w, r, req, http.StatusBadRequest)
}

// handleSearchFromConfig runs keyword research for the request stored in
// the configured YAML file. A missing file is HTTP 404; an empty or invalid
// file is HTTP 422.
func (h *Handler) handleSearchFromConfig(w http.ResponseWriter, r *http.Request) {
	raw, err := os.ReadFile(h.configFile)
	if errors.Is(err, fs.ErrNotExist) {
		http.Error(w, "config file not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("read config file error", slog.String("path", h.configFile), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	var req domain.ResearchRequest
	if err = yaml.Unmarshal(raw, &req); err != nil {
		http.Error(w, "invalid config file", http.StatusUnprocessableEntity)
		return
	}
	h.logger.Info("research request loaded from file", slog.String("path", h.configFile))
	h.research(w, r, req, http.StatusUnprocessableEntity)
}

func (h *Handler) research(w http.ResponseWriter, r *http.Request, req domain.ResearchRequest, invalidStatus int) {
	resp, err := h.svc.Research(r.Context(), req)
	if errors.Is(err, port.ErrInvalidRequest) {
		http.Error(w, err.Error(), invalidStatus)
		return
	}
	if err != nil {
		h.logger.Error("research error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}
