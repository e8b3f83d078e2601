package httpadapter

import (
	"log/slog"
	"net/http"
)

// handleClick logs a click identified by affiliate, campaign and the
// caller-supplied click_id token. The operation is idempotent: the same
// triple always resolves to the same row id, which is returned either way.
// Missing or malformed parameters produce HTTP 400, as does any database
// failure (for example a foreign key violation when the affiliate does not
// exist), with the driver detail attached.
func (h *Handler) handleClick(w http.ResponseWriter, r *http.Request) {
	req, err := parseLogClickReq(r.URL.Query())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	rowID, err := h.svc.LogClick(r.Context(), req)
	if err != nil {
		h.logger.Error("log click error", slog.Any("error", err))
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "Failed to log click",
			"detail": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":       "success",
		"click_row_id": rowID,
	})
}
