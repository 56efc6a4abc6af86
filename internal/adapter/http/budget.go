package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"jeju-ads/internal/core/domain"
)

func (h *Handler) handleBudgetStatus(w http.ResponseWriter, r *http.Request) {
	ad, err := h.ownedAd(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	status, err := h.svc.BudgetStatus(r.Context(), ad.ID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

// handleUpdateBudget applies one of update_budget, add_budget or reset_spent.
func (h *Handler) handleUpdateBudget(w http.ResponseWriter, r *http.Request) {
	var req updateBudgetRequest
	if !decode(w, r, &req, false) {
		return
	}
	ad, err := h.ownedAd(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	res, err := h.svc.UpdateBudget(r.Context(), ad.ID, domain.BudgetAction(req.Action), req.Budget)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleBillClick charges one click. The body is optional; without a
// costPerClick the configured default is charged.
func (h *Handler) handleBillClick(w http.ResponseWriter, r *http.Request) {
	var req billClickRequest
	if !decode(w, r, &req, true) {
		return
	}
	res, err := h.svc.BillClick(r.Context(), chi.URLParam(r, "id"), req.CostPerClick)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
