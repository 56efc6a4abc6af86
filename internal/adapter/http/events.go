package httpadapter

import (
	"net/http"

	"jeju-ads/internal/core/domain"
)

// viewer collects the request metadata stored with every event.
type viewer struct {
	userID, userAgent, ip, referrer string
}

func viewerOf(r *http.Request) viewer {
	v := viewer{
		userAgent: r.UserAgent(),
		ip:        clientIP(r),
		referrer:  r.Referer(),
	}
	if claims, ok := claimsFrom(r.Context()); ok {
		v.userID = claims.Subject
	}
	return v
}

func (h *Handler) handleImpression(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if !decode(w, r, &req, false) {
		return
	}
	v := viewerOf(r)
	id, err := h.svc.RecordImpression(r.Context(), domain.Impression{
		AdID:      req.AdID,
		UserID:    v.userID,
		UserAgent: v.userAgent,
		IPAddress: v.ip,
		Referrer:  v.referrer,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"impressionId": id})
}

// handleClick records the click and returns where the client should go.
// Billing is a separate call on the budget endpoint.
func (h *Handler) handleClick(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if !decode(w, r, &req, false) {
		return
	}
	v := viewerOf(r)
	res, err := h.svc.RecordClick(r.Context(), domain.Click{
		AdID:      req.AdID,
		UserID:    v.userID,
		UserAgent: v.userAgent,
		IPAddress: v.ip,
		Referrer:  v.referrer,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}
