package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"affiliate-tracker/internal/core/domain"
	"affiliate-tracker/internal/core/port"
)

// handleListAffiliates returns all affiliates ordered by id. A database
// failure is a server error: detail is logged, the response stays generic.
func (h *Handler) handleListAffiliates(w http.ResponseWriter, r *http.Request) {
	affiliates, err := h.svc.ListAffiliates(r.Context())
	if err != nil {
		h.logger.Error("list affiliates error", slog.Any("error", err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
		return
	}
	if affiliates == nil {
		affiliates = []domain.Affiliate{}
	}
	writeJSON(w, http.StatusOK, affiliates)
}

// handleListCampaigns returns all campaigns ordered by id.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.svc.ListCampaigns(r.Context())
	if err != nil {
		h.logger.Error("list campaigns error", slog.Any("error", err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
		return
	}
	if campaigns == nil {
		campaigns = []domain.Campaign{}
	}
	writeJSON(w, http.StatusOK, campaigns)
}

// handleOverview returns the read-only aggregate for one affiliate: the
// affiliate record plus its clicks and conversions, newest first. The path
// id must coerce to a positive integer (400 otherwise); an unknown
// affiliate is a 404.
func (h *Handler) handleOverview(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid affiliate id"})
		return
	}

	overview, err := h.svc.AffiliateOverview(r.Context(), id)
	if err != nil {
		if errors.Is(err, port.ErrAffiliateNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Affiliate not found"})
			return
		}
		h.logger.Error("affiliate overview error", slog.Any("error", err), slog.Int64("affiliate_id", id))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, overview)
}
