package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	domainodds "github.com/preston-bernstein/sports-intel-service/internal/domain/odds"
	"github.com/preston-bernstein/sports-intel-service/internal/logging"
)

type oddsResponse struct {
	League string            `json:"league"`
	Games  []domainodds.Game `json:"games"`
}

type bestOddsRequest struct {
	Game    domainodds.Game `json:"game"`
	Market  string          `json:"market"`
	Outcome string          `json:"outcome"`
}

// Odds returns normalized games with bookmakers for ?league=.
func (h *Handler) Odds(w http.ResponseWriter, r *http.Request) {
	if h.odds == nil {
		writeError(w, r, http.StatusServiceUnavailable, "odds provider not configured", h.logger)
		return
	}
	league := r.URL.Query().Get("league")
	games, err := h.odds.Games(r.Context(), league)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	if games == nil {
		games = []domainodds.Game{}
	}
	if logger := loggerFromContext(r, h.logger); logger != nil {
		logger.Info("served odds",
			slog.String(logging.FieldLeague, league),
			slog.Int(logging.FieldCount, len(games)),
		)
	}
	writeJSON(w, http.StatusOK, oddsResponse{League: strings.ToLower(strings.TrimSpace(league)), Games: games}, h.logger)
}

// BestOdds finds the best price for one outcome of a live game.
func (h *Handler) BestOdds(w http.ResponseWriter, r *http.Request) {
	if h.odds == nil {
		writeError(w, r, http.StatusServiceUnavailable, "odds provider not configured", h.logger)
		return
	}
	q := r.URL.Query()
	best, err := h.odds.Best(r.Context(), q.Get("league"), q.Get("gameId"), q.Get("market"), q.Get("outcome"))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, best, h.logger)
}

// BestOddsForGame runs the comparison on a game supplied in the body.
func (h *Handler) BestOddsForGame(w http.ResponseWriter, r *http.Request) {
	if h.odds == nil {
		writeError(w, r, http.StatusServiceUnavailable, "odds provider not configured", h.logger)
		return
	}
	var req bestOddsRequest
	if err := decodeBody(r, w, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body: "+err.Error(), h.logger)
		return
	}
	if strings.TrimSpace(req.Outcome) == "" {
		writeError(w, r, http.StatusBadRequest, "outcome is required", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, h.odds.BestFor(req.Game, req.Market, req.Outcome), h.logger)
}
