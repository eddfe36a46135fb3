// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loopback

import (
	"context"
	"fmt"

	"github.com/MKhiriev/gameflow-harness/internal/sdk"
	"github.com/MKhiriev/gameflow-harness/internal/utils"
	"github.com/MKhiriev/gameflow-harness/models"
)

type game struct {
	id      string
	finder  string
	players map[string]bool
	members map[*conn]bool
	joined  int
	host    *conn
	hostID  string
	// ready is closed when the host called SetPlayerReady.
	ready       chan struct{}
	hostIsReady bool
}

type gameSessionsAPI struct{ *conn }

// ConnectToGameSession validates token and joins its game session. The first
// player to connect becomes the host and returns immediately; the others
// return once the host is ready.
func (g gameSessionsAPI) ConnectToGameSession(ctx context.Context, token string) (models.GameSessionConnectionParameters, error) {
	s := g.srv

	claims, err := utils.ParseSessionToken(token, s.opts.TokenSecret, s.opts.TokenIssuer)
	if err != nil {
		return models.GameSessionConnectionParameters{}, fmt.Errorf("%w: %v", sdk.ErrInvalidToken, err)
	}

	s.mu.Lock()
	if err = g.requireAuth(); err != nil {
		s.mu.Unlock()
		return models.GameSessionConnectionParameters{}, err
	}
	gm, ok := s.games[claims.GameSessionID]
	if !ok || claims.Subject != g.userID || !gm.players[g.userID] {
		s.mu.Unlock()
		return models.GameSessionConnectionParameters{}, fmt.Errorf("%w: not issued for this user or session", sdk.ErrInvalidToken)
	}

	if g.game != gm {
		s.leaveGame(g.conn)
		g.game = gm
		gm.members[g.conn] = true
		gm.joined++
	}

	if gm.host == nil || gm.host == g.conn {
		gm.host = g.conn
		gm.hostID = g.userID
		s.mu.Unlock()
		return models.GameSessionConnectionParameters{IsHost: true, HostID: g.userID}, nil
	}
	ready := gm.ready
	s.mu.Unlock()

	select {
	case <-ready:
	case <-ctx.Done():
		return models.GameSessionConnectionParameters{}, ctx.Err()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	port := sdk.DefaultServerGamePort
	if gm.host != nil {
		port = gm.host.cfg.ServerGamePort
	}
	return models.GameSessionConnectionParameters{
		IsHost:   false,
		HostID:   gm.hostID,
		Endpoint: fmt.Sprintf("127.0.0.1:%d", port),
	}, nil
}

func (g gameSessionsAPI) SetPlayerReady(ctx context.Context, data string) error {
	s := g.srv
	s.mu.Lock()
	defer s.mu.Unlock()

	gm := g.game
	if gm == nil {
		return sdk.ErrNotInGameSession
	}
	if gm.host == g.conn && !gm.hostIsReady {
		gm.hostIsReady = true
		close(gm.ready)
	}
	return ctx.Err()
}

func (g gameSessionsAPI) Disconnect(ctx context.Context) error {
	s := g.srv
	s.mu.Lock()
	defer s.mu.Unlock()

	if g.game == nil {
		return sdk.ErrNotInGameSession
	}
	s.leaveGame(g.conn)
	return ctx.Err()
}

// leaveGame removes c from its game session. The session is dropped once
// every player joined and left.
func (s *Server) leaveGame(c *conn) {
	gm := c.game
	if gm == nil {
		return
	}
	c.game = nil
	delete(gm.members, c)
	if len(gm.members) == 0 && gm.joined >= len(gm.players) {
		delete(s.games, gm.id)
	}
}
