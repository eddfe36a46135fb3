// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// InAppNotification is a server-originated message delivered to a user.
type InAppNotification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Data      string    `json:"data"`
	CreatedOn time.Time `json:"createdOn"`
}

// AllUsers addresses every connected user in a NotificationRequest.
const AllUsers = "*"

// NotificationRequest is the admin payload for broadcasting a notification.
// UserIDs is either AllUsers or a comma separated list of user ids.
type NotificationRequest struct {
	UserIDs string `json:"userIds"`
	Type    string `json:"type"`
	Message string `json:"message"`
	Data    string `json:"data"`
}

// KickRequest is the admin payload for forcibly disconnecting a user.
type KickRequest struct {
	Reason string `json:"reason"`
}

// ConnectedUsers lists the users currently authenticated on the server.
type ConnectedUsers struct {
	UserIDs []string `json:"userIds"`
}
