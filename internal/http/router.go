package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/preston-bernstein/sports-intel-service/internal/http/handlers"
	"github.com/preston-bernstein/sports-intel-service/internal/http/middleware"
	"github.com/preston-bernstein/sports-intel-service/internal/metrics"
)

// RouterConfig carries the cross-cutting pieces the router installs.
type RouterConfig struct {
	Logger         *slog.Logger
	Recorder       *metrics.Recorder
	AllowedOrigins []string
}

// NewRouter registers HTTP routes on a chi router.
func NewRouter(handler *handlers.Handler, cfg RouterConfig) nethttp.Handler {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))
	r.Use(middleware.RequestLogger(cfg.Logger, cfg.Recorder))

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)

	r.Route("/api", func(r chi.Router) {
		r.Post("/scrape", handler.Scrape)
		r.Get("/dashboard", handler.Dashboard)
		r.Get("/leagues", handler.Leagues)
		r.Get("/odds", handler.Odds)
		r.Get("/odds/best", handler.BestOdds)
		r.Post("/odds/best", handler.BestOddsForGame)
	})

	return r
}
