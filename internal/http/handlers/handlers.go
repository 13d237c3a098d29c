package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/sports-intel-service/internal/app/scrape"
	"github.com/preston-bernstein/sports-intel-service/internal/catalog"
	domainodds "github.com/preston-bernstein/sports-intel-service/internal/domain/odds"
)

const maxBodyBytes = 1 << 20

// ScrapeService is the normalizer surface behind /api/scrape and /api/dashboard.
type ScrapeService interface {
	Handle(ctx context.Context, req scrape.Request) (any, error)
	Dashboard(ctx context.Context, teamName string) (scrape.Dashboard, error)
}

// OddsService is the pricing surface behind /api/odds.
type OddsService interface {
	Games(ctx context.Context, league string) ([]domainodds.Game, error)
	Best(ctx context.Context, league, gameID, market, outcome string) (domainodds.BestPrice, error)
	BestFor(game domainodds.Game, market, outcome string) domainodds.BestPrice
}

// LeagueLister lists the supported leagues.
type LeagueLister interface {
	Leagues() []catalog.League
}

// Handler wires HTTP routes to the application services.
type Handler struct {
	scrape  ScrapeService
	odds    OddsService
	leagues LeagueLister
	logger  *slog.Logger
}

// NewHandler constructs a Handler. odds may be nil when no odds provider is configured.
func NewHandler(scrapeSvc ScrapeService, oddsSvc OddsService, leagues LeagueLister, logger *slog.Logger) *Handler {
	return &Handler{
		scrape:  scrapeSvc,
		odds:    oddsSvc,
		leagues: leagues,
		logger:  logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic once the league catalog is loaded.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.leagues == nil || len(h.leagues.Leagues()) == 0 {
		writeError(w, r, http.StatusServiceUnavailable, "catalog not loaded", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// NotFound answers unmatched routes with a JSON error.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed answers known routes hit with the wrong verb.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
}

var errEmptyBody = errors.New("request body is required")

func decodeBody(r *http.Request, w http.ResponseWriter, dest any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dest); err != nil {
		if errors.Is(err, io.EOF) {
			return errEmptyBody
		}
		return err
	}
	return nil
}
