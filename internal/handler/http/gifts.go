// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-scratch-gift/internal/logger"
	"github.com/MKhiriev/go-scratch-gift/internal/service"
	"github.com/MKhiriev/go-scratch-gift/internal/utils"
	"github.com/MKhiriev/go-scratch-gift/models"
	"github.com/go-chi/chi/v5"
)

const (
	// formOverhead is the room left in the request body for the text fields
	// and multipart boundaries on top of the image size limit.
	formOverhead = 1 << 20

	// formMemory is how much of the form is kept in memory before parts
	// spill into temporary files.
	formMemory = 1 << 20
)

func (h *Handler) createGift(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, h.files.MaxFileSize+formOverhead)
	if err := r.ParseMultipartForm(formMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeError(w, r, fmt.Errorf("%w: body exceeds %d bytes", service.ErrImageTooLarge, tooLarge.Limit))
			return
		}
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidFormData, err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	theme, _ := models.ParseTheme(r.FormValue("theme"))
	req := models.CreateGiftRequest{
		Message:        r.FormValue("message"),
		Theme:          theme,
		CreatorAddress: clientAddress(r),
	}

	file, header, err := r.FormFile("image")
	switch {
	case err == nil:
		defer file.Close()
		req.Image = &models.ImageUpload{
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Content:     file,
		}
	case errors.Is(err, http.ErrMissingFile):
	default:
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidFormData, err))
		return
	}

	gift, err := h.services.GiftService.CreateGift(ctx, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Str("gift_id", gift.ID).Str("address", req.CreatorAddress).Msg("gift stored")

	utils.WriteJSON(w, models.CreateGiftResponse{
		Success: true,
		GiftID:  gift.ID,
		GiftURL: h.giftURL(r, gift.ID),
	}, http.StatusOK)
}

func (h *Handler) getGift(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	gift, err := h.services.GiftService.GetGift(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.GiftResponse{Success: true, Gift: gift}, http.StatusOK)
}

func (h *Handler) remainingQuota(w http.ResponseWriter, r *http.Request) {
	remaining := h.services.GiftService.RemainingQuota(r.Context(), clientAddress(r))

	utils.WriteJSON(w, models.RemainingQuotaResponse{
		Success:   true,
		Remaining: remaining,
		Total:     models.MaxGiftsPerAddress,
	}, http.StatusOK)
}

// giftURL builds {origin}/gift/{id}. The configured public URL wins over the
// request's own scheme and host.
func (h *Handler) giftURL(r *http.Request, id string) string {
	origin := strings.TrimRight(h.app.PublicURL, "/")
	if origin == "" {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		origin = scheme + "://" + r.Host
	}

	return origin + "/gift/" + id
}
