// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/gameflow-harness/internal/config"
	"github.com/MKhiriev/gameflow-harness/internal/logger"
	"github.com/MKhiriev/gameflow-harness/internal/utils"
	"github.com/MKhiriev/gameflow-harness/models"
)

type httpAdminAdapter struct {
	client *utils.HTTPClient
	prefix string

	logger *logger.Logger
}

// NewHTTPAdminAdapter constructs an HTTP/REST implementation of [AdminAPI]
// for the given account and application. It normalises and validates the
// base URL from adminCfg.Address and configures the request timeout.
//
// Returns an error if adminCfg.Address is empty or cannot be parsed as a
// valid URL.
func NewHTTPAdminAdapter(adminCfg config.Admin, account, application string, log *logger.Logger) (AdminAPI, error) {
	baseURL, err := normalizeBaseURL(adminCfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid admin address: %w", err)
	}
	if account == "" || application == "" {
		return nil, fmt.Errorf("invalid admin target: account and application are required")
	}
	if log == nil {
		log = logger.Nop()
	}

	return &httpAdminAdapter{
		client: utils.NewHTTPClient(baseURL, adminCfg.RequestTimeout),
		prefix: "/_app/" + url.PathEscape(account) + "/" + url.PathEscape(application) + "/_admin",
		logger: log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// KickUser implements [AdminAPI]. It POSTs the reason to
// POST {prefix}/_users/{id}/_kick?id={id}.
func (h *httpAdminAdapter) KickUser(ctx context.Context, userID, reason string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("userID", userID).
		SetQueryParam("id", userID).
		SetBody(models.KickRequest{Reason: reason}).
		Post(h.prefix + "/_users/{userID}/_kick")
	if err != nil {
		return fmt.Errorf("kick request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.logger.Debug().Str("user_id", userID).Str("reason", reason).Msg("user kicked")
	return nil
}

// SendNotification implements [AdminAPI]. It POSTs req to
// POST {prefix}/_notifications/send and returns the delivered count.
func (h *httpAdminAdapter) SendNotification(ctx context.Context, req models.NotificationRequest) (int, error) {
	var result struct {
		Delivered int `json:"delivered"`
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post(h.prefix + "/_notifications/send")
	if err != nil {
		return 0, fmt.Errorf("send notification request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	h.logger.Debug().Str("type", req.Type).Int("delivered", result.Delivered).Msg("notification sent")
	return result.Delivered, nil
}

// ListUsers implements [AdminAPI] via GET {prefix}/_users.
func (h *httpAdminAdapter) ListUsers(ctx context.Context) ([]string, error) {
	var users models.ConnectedUsers

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&users).
		Get(h.prefix + "/_users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return users.UserIDs, nil
}
