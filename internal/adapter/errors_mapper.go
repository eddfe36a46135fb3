// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/gameflow-harness/internal/utils"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusInternalServerError: ErrInternalServerError,
}

// mapHTTPError converts a non-2xx response into a wrapped sentinel error.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	msg := responseMessage(resp.Body())
	if target, ok := statusErrors[code]; ok {
		return fmt.Errorf("%w: %s", target, msg)
	}
	if msg == "" {
		msg = http.StatusText(code)
	}
	return fmt.Errorf("http %d: %s", code, msg)
}

// responseMessage returns the "error" field of a JSON error body, or the
// trimmed body itself.
func responseMessage(body []byte) string {
	var e utils.ErrorBody
	if err := json.Unmarshal(body, &e); err == nil && e.Error != "" {
		return e.Error
	}
	return strings.TrimSpace(string(body))
}
