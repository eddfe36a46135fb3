// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sdk

//go:generate mockgen -source=interfaces.go -destination=../mock/sdk_mock.go -package=mock

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/gameflow-harness/internal/task"
	"github.com/MKhiriev/gameflow-harness/models"
)

// Driver creates the transport-level connection of a client.
type Driver interface {
	Connect(ctx context.Context, id int, cfg *Configuration) (Connection, error)
}

// Connection is one client's link to the server. It exposes every API family;
// which ones a client may use is decided by its installed plugins.
type Connection interface {
	Users() UsersAPI
	Party() PartyAPI
	GameFinder() GameFinderAPI
	GameSessions() GameSessionsAPI
	Notifications() NotificationsAPI
	PeerConfiguration() PeerConfigurationAPI
	ConnectionQueue() ConnectionQueueAPI
	ConnectToScene(ctx context.Context, sceneID string) (Scene, error)
	Close() error
}

// CredentialsCallback supplies authentication parameters on every (re)login.
type CredentialsCallback func(ctx context.Context) (models.AuthParameters, error)

// ReconnectFilter decides whether the client logs in again after the server
// disconnected it with the given reason.
type ReconnectFilter func(reason string) bool

// OperationRequest is a server-to-client or client-to-client request.
type OperationRequest struct {
	Operation string
	// OriginID is the sender user id, empty for server requests.
	OriginID string
	Payload  json.RawMessage
}

// OperationHandler answers an OperationRequest. The returned value is JSON
// encoded and sent back to the caller.
type OperationHandler func(ctx context.Context, req OperationRequest) (any, error)

type UsersAPI interface {
	SetCredentialsCallback(cb CredentialsCallback)
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	UserID() string
	ConnectionState() models.GameConnectionState
	SubscribeConnectionState(fn func(models.ConnectionStateChange)) *Subscription
	SetReconnectFilter(f ReconnectFilter)
	SetOperationHandler(operation string, h OperationHandler)
	SendRequestToUser(ctx context.Context, userID, operation string, in, out any) error
}

type PartyAPI interface {
	CreatePartyIfNotJoined(ctx context.Context, req models.PartyRequest) error
	JoinPartyByInvitationCode(ctx context.Context, code string) error
	CreateInvitationCode(ctx context.Context) (string, error)
	UpdatePlayerStatus(ctx context.Context, status models.PartyUserStatus) error
	UpdatePlayerData(ctx context.Context, data string) error
	LeaveParty(ctx context.Context) error
	IsInParty() bool
	PartyID() string
	SubscribePartyJoined(fn func(models.PartyJoined)) *Subscription
}

type GameFinderAPI interface {
	// WaitGameFound registers for the next game found event and returns a
	// task completing with it. Call it before triggering matchmaking.
	WaitGameFound() *task.Task[models.GameFoundEvent]
	SubscribeGameFound(fn func(models.GameFoundEvent)) *Subscription
}

type GameSessionsAPI interface {
	ConnectToGameSession(ctx context.Context, token string) (models.GameSessionConnectionParameters, error)
	SetPlayerReady(ctx context.Context, data string) error
	Disconnect(ctx context.Context) error
}

type NotificationsAPI interface {
	Subscribe(fn func([]models.InAppNotification)) *Subscription
}

type PeerConfigurationAPI interface {
	Subscribe(fn func(string)) *Subscription
	Current() string
}

type ConnectionQueueAPI interface {
	IsInQueue() bool
	// Rank is the 1-based position in the admission queue, 0 when not queued.
	Rank() int
}

// Scene is a connected scene.
type Scene interface {
	ID() string
	State() models.SceneState
	Send(route string, payload any) error
	RPC(ctx context.Context, route string, in, out any) error
	SubscribeState(fn func(models.SceneStateChange)) *Subscription
	Disconnect(ctx context.Context) error
}
