// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-scratch-gift/internal/app"
	"github.com/MKhiriev/go-scratch-gift/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := errorText(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusRequestEntityTooLarge:
		return fmt.Errorf("%w: %s", ErrPayloadTooLarge, body)
	case http.StatusTooManyRequests:
		if body == app.MsgQuotaExceeded {
			return fmt.Errorf("%w: %s", ErrQuotaExceeded, body)
		}
		return fmt.Errorf("%w: %s", ErrTooManyRequests, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		return fmt.Errorf("%w %d: %s", ErrUnexpectedStatus, resp.StatusCode(), body)
	}
}

// errorText returns the "error" field of a JSON envelope, the raw body when it
// is not one, or the status text when the body is empty.
func errorText(resp *resty.Response) string {
	raw := strings.TrimSpace(string(resp.Body()))

	var envelope models.Response
	if err := json.Unmarshal([]byte(raw), &envelope); err == nil && envelope.Error != "" {
		return envelope.Error
	}

	if raw == "" {
		return http.StatusText(resp.StatusCode())
	}
	return raw
}
