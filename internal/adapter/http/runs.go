package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"keyword-planner/internal/core/domain"
	"keyword-planner/internal/core/port"
)

type runResponse struct {
	ID                uuid.UUID          `json:"id"`
	BrandWebsite      string             `json:"brand_website"`
	CompetitorWebsite string             `json:"competitor_website"`
	Location          string             `json:"location"`
	TotalKeywords     int                `json:"total_keywords"`
	ProcessingTime    float64            `json:"processing_time"`
	Deliverable       domain.Deliverable `json:"deliverable"`
	CreatedAt         string             `json:"created_at"`
}

// handleGetRun returns a persisted research run. It expects an {id} path
// parameter. A malformed id results in HTTP 400 and an unknown one in 404.
func (h *Handler) handleGetRun(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid run id", http.StatusBadRequest)
		return
	}

	run, err := h.svc.GetRun(r.Context(), id)
	if errors.Is(err, port.ErrRunNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.logger.Error("get run error", slog.String("run_id", id.String()), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, runResponse{
		ID:                run.ID,
		BrandWebsite:      run.BrandWebsite,
		CompetitorWebsite: run.CompetitorWebsite,
		Location:          run.Location,
		TotalKeywords:     run.TotalKeywords,
		ProcessingTime:    run.ProcessingTime,
		Deliverable:       run.Deliverable,
		CreatedAt:         run.CreatedAt.UTC().Format(time.RFC3339),
	})
}
