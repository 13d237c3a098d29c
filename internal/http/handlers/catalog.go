package handlers

import (
	"net/http"

	"github.com/preston-bernstein/sports-intel-service/internal/catalog"
)

type leaguesResponse struct {
	Leagues []catalog.League `json:"leagues"`
}

// Leagues lists the leagues the normalizer can resolve.
func (h *Handler) Leagues(w http.ResponseWriter, r *http.Request) {
	var leagues []catalog.League
	if h.leagues != nil {
		leagues = h.leagues.Leagues()
	}
	if leagues == nil {
		leagues = []catalog.League{}
	}
	writeJSON(w, http.StatusOK, leaguesResponse{Leagues: leagues}, h.logger)
}
