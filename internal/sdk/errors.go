// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sdk

import "errors"

var (
	ErrNotRegistered          = errors.New("api not registered: plugin missing from configuration")
	ErrNoConfigurator         = errors.New("no configurator for client id")
	ErrClientReleased         = errors.New("client released")
	ErrLoginInProgress        = errors.New("login already in progress")
	ErrInvalidConfiguration   = errors.New("invalid client configuration")
	ErrNotAuthenticated       = errors.New("client not authenticated")
	ErrSceneNotFound          = errors.New("can't get the scene endpoint response: failed to get token for scene")
	ErrRouteNotFound          = errors.New("the scene peer does not contain a route")
	ErrSceneDisconnected      = errors.New("scene disconnected")
	ErrInvitationCodeNotFound = errors.New("invitation code not found")
	ErrGameFinderNotFound     = errors.New("game finder not found")
	ErrInvalidToken           = errors.New("invalid game session token")
	ErrNotInParty             = errors.New("user is not in a party")
	ErrNotInGameSession       = errors.New("user is not in a game session")
	ErrOperationNotFound      = errors.New("no handler for operation")
	ErrUserNotFound           = errors.New("user not found")
)

// ClientError is a rejection raised by server-side application code, for
// example a scene refusing a connection. Message is the exact text the server
// sent.
type ClientError struct {
	Message string
}

func (e *ClientError) Error() string {
	return e.Message
}

// NewClientError returns a *ClientError carrying msg.
func NewClientError(msg string) error {
	return &ClientError{Message: msg}
}

// ClientErrorMessage returns the message of the first *ClientError in err's
// chain, and false when there is none.
func ClientErrorMessage(err error) (string, bool) {
	var ce *ClientError
	if errors.As(err, &ce) {
		return ce.Message, true
	}
	return "", false
}
