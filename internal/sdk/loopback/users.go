// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loopback

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/gameflow-harness/internal/sdk"
	"github.com/MKhiriev/gameflow-harness/models"
)

type usersAPI struct{ *conn }

func (u usersAPI) SetCredentialsCallback(cb sdk.CredentialsCallback) {
	u.srv.mu.Lock()
	defer u.srv.mu.Unlock()
	u.creds = cb
}

func (u usersAPI) Login(ctx context.Context) error {
	return u.login(ctx)
}

func (c *conn) login(ctx context.Context) error {
	s := c.srv

	s.mu.Lock()
	switch {
	case c.closed:
		s.mu.Unlock()
		return sdk.ErrClientReleased
	case c.state == models.Authenticated:
		s.mu.Unlock()
		return nil
	case c.state == models.Connecting:
		s.mu.Unlock()
		return sdk.ErrLoginInProgress
	}
	creds := c.creds
	s.mu.Unlock()

	params := models.EphemeralAuth()
	if creds != nil {
		p, err := creds(ctx)
		if err != nil {
			return fmt.Errorf("get credentials: %w", err)
		}
		params = p
	}
	if params.Type != models.AuthTypeEphemeral {
		return sdk.NewClientError(AuthProviderNotFound)
	}
	if device := params.Parameters[models.ParamDeviceIdentifier]; device != "" {
		s.log.Debug().Int("client", c.id).Str("device", device).Msg("ephemeral login")
	}

	return s.admit(ctx, c)
}

func (u usersAPI) Logout(ctx context.Context) error {
	s := u.srv
	var out outbox

	s.mu.Lock()
	if u.closed {
		s.mu.Unlock()
		return sdk.ErrClientReleased
	}
	s.deauthenticate(&out, u.conn, "")
	s.mu.Unlock()
	out.flush()
	return ctx.Err()
}

func (u usersAPI) UserID() string {
	u.srv.mu.Lock()
	defer u.srv.mu.Unlock()
	return u.userID
}

func (u usersAPI) ConnectionState() models.GameConnectionState {
	u.srv.mu.Lock()
	defer u.srv.mu.Unlock()
	return u.state
}

func (u usersAPI) SubscribeConnectionState(fn func(models.ConnectionStateChange)) *sdk.Subscription {
	return subscribe(u.srv, &u.stateSubs, fn)
}

func (u usersAPI) SetReconnectFilter(f sdk.ReconnectFilter) {
	u.srv.mu.Lock()
	defer u.srv.mu.Unlock()
	u.reconnect = f
}

func (u usersAPI) SetOperationHandler(operation string, h sdk.OperationHandler) {
	u.srv.mu.Lock()
	defer u.srv.mu.Unlock()
	if h == nil {
		delete(u.ops, operation)
		return
	}
	u.ops[operation] = h
}

func (u usersAPI) SendRequestToUser(ctx context.Context, userID, operation string, in, out any) error {
	s := u.srv

	s.mu.Lock()
	if err := u.requireAuth(); err != nil {
		s.mu.Unlock()
		return err
	}
	target, ok := s.sessions[userID]
	origin := u.userID
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", sdk.ErrUserNotFound, userID)
	}
	return s.request(ctx, target, origin, operation, in, out)
}

type reply struct {
	value any
	err   error
}

// request runs target's handler for operation on target's dispatcher and
// waits for its answer.
func (s *Server) request(ctx context.Context, target *conn, origin, operation string, in, out any) error {
	var payload json.RawMessage
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = data
	}

	s.mu.Lock()
	h, ok := target.ops[operation]
	d := target.cfg.Dispatcher
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", sdk.ErrOperationNotFound, operation)
	}

	replies := make(chan reply, 1)
	req := sdk.OperationRequest{Operation: operation, OriginID: origin, Payload: payload}
	d.Post(func() {
		v, err := h(ctx, req)
		replies <- reply{value: v, err: err}
	})

	select {
	case r := <-replies:
		if r.err != nil {
			return fmt.Errorf("operation %s: %w", operation, r.err)
		}
		if out == nil || r.value == nil {
			return nil
		}
		return convert(r.value, out)
	case <-ctx.Done():
		return ctx.Err()
	}
}

type connectionQueueAPI struct{ *conn }

func (q connectionQueueAPI) IsInQueue() bool {
	q.srv.mu.Lock()
	defer q.srv.mu.Unlock()
	return q.admitted != nil
}

func (q connectionQueueAPI) Rank() int {
	q.srv.mu.Lock()
	defer q.srv.mu.Unlock()
	return q.srv.rank(q.conn)
}
