package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"jeju-ads/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP: requests are decoded and validated here, then handed to the ad use
// case. Routes are registered on a chi.Router.
type Handler struct {
	svc            port.AdUseCase
	auth           *Authenticator
	logger         *slog.Logger
	maxUploadBytes int64
	router         chi.Router
}

// Options holds the optional parts of the router.
type Options struct {
	AllowedOrigins []string
	// Metrics is mounted on /metrics when set.
	Metrics        http.Handler
	MaxUploadBytes int64
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.AdUseCase, auth *Authenticator, logger *slog.Logger, opts Options) *Handler {
	h := &Handler{svc: svc, auth: auth, logger: logger, maxUploadBytes: opts.MaxUploadBytes}
	r := chi.NewRouter()
	r.Use(recoverer(logger))
	r.Use(requestLogger(logger))
	if len(opts.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: opts.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", requestIDHeader},
			ExposedHeaders: []string{requestIDHeader},
			MaxAge:         300,
		}))
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics)
	}

	r.Route("/api/v1", func(r chi.Router) {
		// public surface used by the feed and the click pipeline
		r.Get("/ads", h.handleFeed)
		r.Get("/ads/{id}", h.handleGetAd)
		r.Post("/ads/{id}/budget", h.handleBillClick)
		r.Group(func(r chi.Router) {
			r.Use(auth.Optional)
			r.Post("/ads/impression", h.handleImpression)
			r.Post("/ads/click", h.handleClick)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.Require)
			r.Post("/ads", h.handleCreateAd)
			r.Put("/ads/{id}", h.handleUpdateAd)
			r.Delete("/ads/{id}", h.handleDeleteAd)
			r.Post("/ads/{id}/image", h.handleUploadImage)
			r.Get("/ads/{id}/budget", h.handleBudgetStatus)
			r.Put("/ads/{id}/budget", h.handleUpdateBudget)
			r.Get("/advertiser/ads", h.handleAdvertiserAds)
			r.Get("/dashboard", h.handleDashboard)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
