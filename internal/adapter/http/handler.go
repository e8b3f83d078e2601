package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"affiliate-tracker/internal/config/configs"
	"affiliate-tracker/internal/core/port"
	"affiliate-tracker/internal/dashboard"
)

// Handler contains dependencies and routes. It is the inbound HTTP adapter:
// it holds the tracking usecase, a structured logger, and the chi router
// with all endpoints registered. The dashboard pages are served from the
// same router so the tracker ships as a single binary.
type Handler struct {
	svc    port.TrackingUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. CORS is applied
// from the configured allow-list (default all origins) and every request is
// bounded by the configured timeout. The dashboard may be nil, in which
// case only the API endpoints are served.
func NewHandler(svc port.TrackingUseCase, logger *slog.Logger, cfg configs.HTTP, dash *dashboard.Dashboard) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
	}))

	r.Get("/health", h.handleHealth)
	r.Get("/affiliates", h.handleListAffiliates)
	r.Get("/campaigns", h.handleListCampaigns)
	r.Get("/click", h.handleClick)
	r.Get("/postback", h.handlePostback)
	r.Get("/affiliates/{id}/overview", h.handleOverview)

	if dash != nil {
		r.Get("/", dash.Index)
		r.Get("/dashboard", dash.Overview)
		r.Get("/env.js", dash.EnvJS)
	}

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
