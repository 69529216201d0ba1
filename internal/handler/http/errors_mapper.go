// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-scratch-gift/internal/app"
	"github.com/MKhiriev/go-scratch-gift/internal/logger"
	"github.com/MKhiriev/go-scratch-gift/internal/service"
	"github.com/MKhiriev/go-scratch-gift/internal/store"
	"github.com/MKhiriev/go-scratch-gift/internal/utils"
	"github.com/MKhiriev/go-scratch-gift/models"
)

var errorStatusMap = map[error]int{
	service.ErrEmptyMessage:         http.StatusBadRequest,
	service.ErrUnknownTheme:         http.StatusBadRequest,
	service.ErrThemeNotSelected:     http.StatusBadRequest,
	service.ErrUnsupportedImageType: http.StatusBadRequest,
	service.ErrImageTooLarge:        http.StatusRequestEntityTooLarge,
	ErrInvalidFormData:              http.StatusBadRequest,

	store.ErrQuotaExceeded: http.StatusTooManyRequests,
	store.ErrGiftNotFound:  http.StatusNotFound,
}

var errorMessageMap = map[error]string{
	service.ErrEmptyMessage:         app.MsgMessageRequired,
	service.ErrUnknownTheme:         app.MsgInvalidTheme,
	service.ErrThemeNotSelected:     app.MsgInvalidTheme,
	service.ErrUnsupportedImageType: app.MsgInvalidFileType,
	service.ErrImageTooLarge:        app.MsgFileTooLarge,
	ErrInvalidFormData:              app.MsgInvalidFormData,

	store.ErrQuotaExceeded: app.MsgQuotaExceeded,
	store.ErrGiftNotFound:  app.MsgGiftNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}
	return app.MsgInternalServerError
}

// writeError answers with the envelope matching err. Internal errors only
// expose their text in development mode.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	msg := messageFromError(err)

	if status == http.StatusInternalServerError {
		log.Err(err).Msg("internal error while handling request")
		if h.app.IsDevelopment() {
			msg = err.Error()
		}
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	writeFailure(w, msg, status)
}

func writeFailure(w http.ResponseWriter, msg string, status int) {
	utils.WriteJSON(w, models.Response{Success: false, Error: msg}, status)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeFailure(w, app.MsgNotFound, http.StatusNotFound)
}
