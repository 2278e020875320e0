package routes

import (
	"net/http"

	"github.com/Dosada05/cricket-tournament/handlers"
	"github.com/Dosada05/cricket-tournament/middleware"
	"github.com/Dosada05/cricket-tournament/models"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"
)

// Handlers groups everything SetupRoutes mounts.
type Handlers struct {
	Tournaments *handlers.CRUDHandler[*models.Tournament]
	Teams       *handlers.CRUDHandler[*models.Team]
	Players     *handlers.CRUDHandler[*models.Player]
	Matches     *handlers.CRUDHandler[*models.Match]
	Legacy      *handlers.LegacyHandler
	Dashboard   *handlers.DashboardHandler
	Export      *handlers.ExportHandler
	Health      *handlers.HealthHandler
	WebSocket   *handlers.WebSocketHandler
}

type Options struct {
	AllowedOrigins []string
	Metrics        *middleware.Metrics
	MetricsHandler http.Handler
	RequestLogging bool
}

func SetupRoutes(router chi.Router, h Handlers, opts Options) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	if opts.RequestLogging {
		router.Use(chiMiddleware.Logger)
	}
	router.Use(chiMiddleware.Recoverer)
	if opts.Metrics != nil {
		router.Use(opts.Metrics.Handler)
	}
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))

	if h.Health != nil {
		router.Get("/healthz", h.Health.Health)
	}
	if opts.MetricsHandler != nil {
		router.Handle("/metrics", opts.MetricsHandler)
	}

	router.Route("/api", func(r chi.Router) {
		r.Mount("/tournament", h.Tournaments.Routes())
		r.Mount("/team", h.Teams.Routes())
		r.Mount("/player", h.Players.Routes())
		r.Mount("/match", h.Matches.Routes())

		if h.Legacy != nil {
			r.Get("/tournaments", h.Legacy.Tournaments)
			r.Get("/teams", h.Legacy.Teams)
			r.Get("/players", h.Legacy.Players)
			r.Get("/matches", h.Legacy.Matches)
		}
		if h.Dashboard != nil {
			r.Get("/dashboard/stats", h.Dashboard.Stats)
		}
		if h.Export != nil {
			r.Post("/admin/export", h.Export.Export)
		}
	})

	if h.WebSocket != nil {
		router.Get("/ws/events", h.WebSocket.ServeWs)
		router.Get("/ws/events/{kind}", h.WebSocket.ServeWs)
	}
}
