package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"affiliate-tracker/internal/core/port"
)

// handlePostback records a conversion for the most recent click matching
// (affiliate_id, click_id). A postback never creates a click: when no click
// matches, the response is HTTP 404. There is no idempotency key, so two
// identical postbacks record two conversions. Missing parameters and
// database failures produce HTTP 400.
func (h *Handler) handlePostback(w http.ResponseWriter, r *http.Request) {
	req, err := parsePostbackReq(r.URL.Query())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if err = h.svc.RecordPostback(r.Context(), req); err != nil {
		if errors.Is(err, port.ErrClickNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{
				"status":  "error",
				"message": "No matching click found",
			})
			return
		}
		h.logger.Error("postback error", slog.Any("error", err))
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"status":  "error",
			"message": "Failed to process postback",
			"detail":  err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": "Conversion tracked",
	})
}
