package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"keyword-planner/internal/core/port"
)

// Options configures the HTTP handler.
type Options struct {
	// AllowedOrigins lists browser origins accepted by the CORS middleware.
	AllowedOrigins []string
	// ConfigFile is the YAML research request served by
	// /api/v1/search-from-config.
	ConfigFile string
	// Gatherer is exposed on /metrics. Defaults to prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP exposing the research use case on a chi.Router.
type Handler struct {
	svc        port.ResearchUseCase
	logger     *slog.Logger
	configFile string
	router     chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.ResearchUseCase, logger *slog.Logger, opts Options) *Handler {
	h := &Handler{svc: svc, logger: logger, configFile: opts.ConfigFile}
	if h.configFile == "" {
		h.configFile = "config.yaml"
	}
	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	r.Get("/", h.handleRoot)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/search", h.handleSearch)
		r.Post("/search-from-config", h.handleSearchFromConfig)
		r.Get("/health", h.handleHealth)
		r.Get("/runs/{id}", h.handleGetRun)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status is already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
