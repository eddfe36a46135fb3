// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the game server's
// administrative HTTP API.
//
// The primary abstraction is [AdminAPI], which decouples scenarios from the
// underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPAdminAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for an
// unknown user).
package adapter

import (
	"context"

	"github.com/MKhiriev/gameflow-harness/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/admin_adapter_mock.go -package=mock

// AdminAPI performs administrative actions on one application of the game
// server.
type AdminAPI interface {
	// KickUser forcibly disconnects userID. The server reports reason to the
	// client's scenes and connection state observers.
	KickUser(ctx context.Context, userID, reason string) error

	// SendNotification broadcasts an in-app notification and returns the
	// number of recipients.
	SendNotification(ctx context.Context, req models.NotificationRequest) (int, error)

	// ListUsers returns the ids of the authenticated users.
	ListUsers(ctx context.Context) ([]string, error)
}
