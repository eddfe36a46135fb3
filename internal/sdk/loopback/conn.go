// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loopback

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/gameflow-harness/internal/sdk"
	"github.com/MKhiriev/gameflow-harness/internal/task"
	"github.com/MKhiriev/gameflow-harness/models"
)

// conn is one client's connection. All fields below cfg are guarded by
// srv.mu.
type conn struct {
	srv *Server
	id  int
	cfg *sdk.Configuration

	closed     bool
	state      models.GameConnectionState
	userID     string
	creds      sdk.CredentialsCallback
	reconnect  sdk.ReconnectFilter
	ops        map[string]sdk.OperationHandler
	admitted   chan error
	party      *party
	game       *game
	scenes     map[*scene]struct{}
	peerConfig string

	stateSubs        handlerSet[models.ConnectionStateChange]
	partySubs        handlerSet[models.PartyJoined]
	gameFoundSubs    handlerSet[models.GameFoundEvent]
	gameFoundWaiters []task.Completer[models.GameFoundEvent]
	notificationSubs handlerSet[[]models.InAppNotification]
	peerConfigSubs   handlerSet[string]
}

func newConn(s *Server, id int, cfg *sdk.Configuration) *conn {
	return &conn{
		srv:    s,
		id:     id,
		cfg:    cfg,
		ops:    make(map[string]sdk.OperationHandler),
		scenes: make(map[*scene]struct{}),
	}
}

func (c *conn) Users() sdk.UsersAPI                         { return usersAPI{c} }
func (c *conn) Party() sdk.PartyAPI                         { return partyAPI{c} }
func (c *conn) GameFinder() sdk.GameFinderAPI               { return gameFinderAPI{c} }
func (c *conn) GameSessions() sdk.GameSessionsAPI           { return gameSessionsAPI{c} }
func (c *conn) Notifications() sdk.NotificationsAPI         { return notificationsAPI{c} }
func (c *conn) PeerConfiguration() sdk.PeerConfigurationAPI { return peerConfigurationAPI{c} }
func (c *conn) ConnectionQueue() sdk.ConnectionQueueAPI     { return connectionQueueAPI{c} }

// Close logs the client out and drops every subscription.
func (c *conn) Close() error {
	s := c.srv
	var out outbox

	s.mu.Lock()
	if c.closed {
		s.mu.Unlock()
		return nil
	}
	c.closed = true
	s.deauthenticate(&out, c, "client released")
	delete(s.conns, c)
	s.mu.Unlock()
	out.flush()

	s.mu.Lock()
	c.stateSubs.clear()
	c.partySubs.clear()
	c.gameFoundSubs.clear()
	c.notificationSubs.clear()
	c.peerConfigSubs.clear()
	c.gameFoundWaiters = nil
	s.mu.Unlock()
	return nil
}

// setState changes the connection state and notifies subscribers. Called
// with srv.mu held.
func (c *conn) setState(out *outbox, state models.GameConnectionState, reason string) {
	if c.state == state {
		return
	}
	c.state = state
	emit(out, c.cfg.Dispatcher, &c.stateSubs, models.ConnectionStateChange{State: state, Reason: reason})
}

// requireAuth is called with srv.mu held.
func (c *conn) requireAuth() error {
	if c.closed {
		return sdk.ErrClientReleased
	}
	if c.state != models.Authenticated {
		return sdk.ErrNotAuthenticated
	}
	return nil
}

// convert copies src into dst through JSON, the way payloads cross the wire.
func convert(src, dst any) error {
	if dst == nil {
		return nil
	}
	data, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}
	if err = json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}
