package httpadapter

import (
	"net/http"

	"jeju-ads/internal/core/domain"
)

// handleDashboard returns aggregated statistics for the caller's ads created
// within the requested period (today, week, month or all; default all).
// Admins may inspect another advertiser with the advertiserId parameter.
func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	period, err := domain.ParsePeriod(q.Get("period"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", err.Error(), nil)
		return
	}

	claims, _ := claimsFrom(r.Context())
	advertiserID := claims.Subject
	if other := q.Get("advertiserId"); other != "" && other != advertiserID {
		if claims.Role != RoleAdmin {
			writeError(w, http.StatusForbidden, "FORBIDDEN", "cannot view another advertiser", nil)
			return
		}
		advertiserID = other
	}

	stats, err := h.svc.Dashboard(r.Context(), advertiserID, period)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
