package handlers

import (
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/sports-intel-service/internal/app/scrape"
	"github.com/preston-bernstein/sports-intel-service/internal/logging"
)

type scrapeResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// Scrape dispatches a normalizer request by type.
func (h *Handler) Scrape(w http.ResponseWriter, r *http.Request) {
	var req scrape.Request
	if err := decodeBody(r, w, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body: "+err.Error(), h.logger)
		return
	}

	data, err := h.scrape.Handle(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, scrapeResponse{Success: true, Data: data}, h.logger)
}

// Dashboard returns the joined overview, fixtures and standings for ?team=.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	team := r.URL.Query().Get("team")
	dash, err := h.scrape.Dashboard(r.Context(), team)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	if logger := loggerFromContext(r, h.logger); logger != nil {
		logger.Info("served dashboard",
			slog.String(logging.FieldTeam, dash.Team),
			slog.String(logging.FieldLeague, dash.League),
		)
	}
	writeJSON(w, http.StatusOK, dash, h.logger)
}
