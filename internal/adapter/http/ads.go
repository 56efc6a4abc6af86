package httpadapter

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"jeju-ads/internal/core/domain"
	"jeju-ads/internal/core/port"
)

// ownedAd loads the ad named in the path and checks that the caller may
// manage it. Admins may manage every ad.
func (h *Handler) ownedAd(r *http.Request) (*domain.Advertisement, error) {
	claims, ok := claimsFrom(r.Context())
	if !ok {
		return nil, port.ErrForbidden
	}
	ad, err := h.svc.GetAd(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return nil, err
	}
	if claims.Role != RoleAdmin && ad.AdvertiserID != claims.Subject {
		return nil, port.ErrForbidden
	}
	return ad, nil
}

func (h *Handler) handleCreateAd(w http.ResponseWriter, r *http.Request) {
	var req createAdRequest
	if !decode(w, r, &req, false) {
		return
	}
	claims, _ := claimsFrom(r.Context())
	ad, err := h.svc.CreateAd(r.Context(), claims.Subject, req.input())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, ad)
}

func (h *Handler) handleGetAd(w http.ResponseWriter, r *http.Request) {
	ad, err := h.svc.GetAd(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ad)
}

func (h *Handler) handleUpdateAd(w http.ResponseWriter, r *http.Request) {
	var req updateAdRequest
	if !decode(w, r, &req, false) {
		return
	}
	ad, err := h.ownedAd(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	ad, err = h.svc.UpdateAd(r.Context(), ad.ID, req.input())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ad)
}

func (h *Handler) handleDeleteAd(w http.ResponseWriter, r *http.Request) {
	ad, err := h.ownedAd(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err = h.svc.DeleteAd(r.Context(), ad.ID); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleFeed lists servable ads. Query parameters: category, location,
// limit and page. Non-numeric limit or page values fall back to defaults.
func (h *Handler) handleFeed(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := port.FeedQuery{
		Category: domain.Category(q.Get("category")),
		Location: q.Get("location"),
	}
	query.Limit, _ = strconv.Atoi(q.Get("limit"))
	query.Page, _ = strconv.Atoi(q.Get("page"))

	page, err := h.svc.Feed(r.Context(), query)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *Handler) handleAdvertiserAds(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFrom(r.Context())
	ads, err := h.svc.AdvertiserAds(r.Context(), claims.Subject)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ads": ads})
}

// handleUploadImage accepts a multipart form with an "image" file part.
func (h *Handler) handleUploadImage(w http.ResponseWriter, r *http.Request) {
	ad, err := h.ownedAd(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if h.maxUploadBytes > 0 {
		// room for the multipart envelope
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+1<<20)
	}
	if err = r.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "TOO_LARGE", "image too large", nil)
			return
		}
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid multipart form", nil)
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "VALIDATION_FAILED", "request validation failed",
			map[string]string{"image": "this field is required"})
		return
	}
	defer file.Close()

	ad, err = h.svc.AttachImage(r.Context(), ad.ID, port.ImageUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ad)
}
