// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loopback

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/MKhiriev/gameflow-harness/internal/logger"
	"github.com/MKhiriev/gameflow-harness/internal/sdk"
	"github.com/MKhiriev/gameflow-harness/internal/utils"
	"github.com/MKhiriev/gameflow-harness/models"
)

// ErrApplicationNotFound is returned by Connect for a foreign account or
// application.
var ErrApplicationNotFound = errors.New("application not found")

// Server is the in-process backend. A single mutex guards all state.
type Server struct {
	opts Options
	log  *logger.Logger
	ids  *utils.UUIDGenerator

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	conns    map[*conn]struct{}
	sessions map[string]*conn
	waiting  []*conn
	parties  map[string]*party
	codes    map[string]*party
	queues   map[string][]*party
	games    map[string]*game
}

// NewServer returns a running backend.
func NewServer(opts Options) *Server {
	opts.applyDefaults()
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		opts:     opts,
		log:      opts.Logger,
		ids:      utils.NewUUIDGenerator(),
		ctx:      ctx,
		cancel:   cancel,
		conns:    make(map[*conn]struct{}),
		sessions: make(map[string]*conn),
		parties:  make(map[string]*party),
		codes:    make(map[string]*party),
		queues:   make(map[string][]*party),
		games:    make(map[string]*game),
	}
}

// Options returns the effective options.
func (s *Server) Options() Options {
	return s.opts
}

// Connect implements sdk.Driver.
func (s *Server) Connect(ctx context.Context, id int, cfg *sdk.Configuration) (sdk.Connection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if cfg.Account != s.opts.Account || cfg.Application != s.opts.Application {
		return nil, fmt.Errorf("%w: %s/%s", ErrApplicationNotFound, cfg.Account, cfg.Application)
	}

	c := newConn(s, id, cfg)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctx.Err() != nil {
		return nil, sdk.ErrClientReleased
	}
	s.conns[c] = struct{}{}
	return c, nil
}

// Close disconnects every client and stops pending reconnections.
func (s *Server) Close() {
	s.cancel()

	s.mu.Lock()
	conns := make([]*conn, 0, len(s.conns))
	for c := range s.conns {
		conns = append(conns, c)
	}
	s.mu.Unlock()

	for _, c := range conns {
		_ = c.Close()
	}
}

// ConnectedUsers returns the ids of authenticated users, sorted.
func (s *Server) ConnectedUsers() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// QueueLength returns the number of logins waiting for a free slot.
func (s *Server) QueueLength() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.waiting)
}

// KickUser disconnects userID with reason. When the client's reconnect
// filter accepts the reason it logs in again in the background.
func (s *Server) KickUser(userID, reason string) error {
	s.mu.Lock()
	c, ok := s.sessions[userID]
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", sdk.ErrUserNotFound, userID)
	}

	s.forceDisconnect(c, reason)
	return nil
}

func (s *Server) forceDisconnect(c *conn, reason string) {
	var out outbox
	s.mu.Lock()
	s.deauthenticate(&out, c, reason)
	filter := c.reconnect
	s.mu.Unlock()
	out.flush()

	s.log.Info().Int("client", c.id).Str("reason", reason).Msg("user disconnected by server")

	if filter != nil && filter(reason) {
		go s.relogin(c)
	}
}

func (s *Server) relogin(c *conn) {
	var out outbox
	s.mu.Lock()
	if c.closed {
		s.mu.Unlock()
		return
	}
	c.setState(&out, models.Reconnecting, "")
	s.mu.Unlock()
	out.flush()

	if err := c.login(s.ctx); err != nil {
		s.log.Warn().Err(err).Int("client", c.id).Msg("reconnection failed")
	}
}

// Notify delivers an in-app notification. UserIDs is models.AllUsers or a
// comma separated list; unknown ids are skipped. It returns the number of
// recipients and sdk.ErrUserNotFound when there is none.
func (s *Server) Notify(req models.NotificationRequest) (int, error) {
	var out outbox
	s.mu.Lock()

	var targets []*conn
	if strings.TrimSpace(req.UserIDs) == models.AllUsers {
		for _, id := range sortedKeys(s.sessions) {
			targets = append(targets, s.sessions[id])
		}
	} else {
		for _, id := range strings.Split(req.UserIDs, ",") {
			if c, ok := s.sessions[strings.TrimSpace(id)]; ok {
				targets = append(targets, c)
			}
		}
	}

	now := s.opts.Now()
	for _, c := range targets {
		n := models.InAppNotification{
			ID:        s.ids.Generate(),
			UserID:    c.userID,
			Type:      req.Type,
			Message:   req.Message,
			Data:      req.Data,
			CreatedOn: now,
		}
		emit(&out, c.cfg.Dispatcher, &c.notificationSubs, []models.InAppNotification{n})
	}
	s.mu.Unlock()
	out.flush()

	if len(targets) == 0 {
		return 0, fmt.Errorf("%w: %s", sdk.ErrUserNotFound, req.UserIDs)
	}
	s.log.Debug().Int("recipients", len(targets)).Str("type", req.Type).Msg("notification sent")
	return len(targets), nil
}

// ── admission ──

// admit authenticates c, waiting in the admission queue when the CCU limit
// is reached.
func (s *Server) admit(ctx context.Context, c *conn) error {
	var out outbox
	s.mu.Lock()

	if c.closed {
		s.mu.Unlock()
		return sdk.ErrClientReleased
	}
	if c.state == models.Authenticated {
		s.mu.Unlock()
		return nil
	}
	c.setState(&out, models.Connecting, "")

	if s.opts.CCULimit > 0 && len(s.sessions) >= s.opts.CCULimit {
		admitted := make(chan error, 1)
		c.admitted = admitted
		s.waiting = append(s.waiting, c)
		s.log.Debug().Int("client", c.id).Int("rank", len(s.waiting)).Msg("login queued")
		s.mu.Unlock()
		out.flush()

		select {
		case err := <-admitted:
			return err
		case <-ctx.Done():
			var cancelled outbox
			s.mu.Lock()
			if c.state == models.Authenticated {
				s.mu.Unlock()
				return nil
			}
			s.dequeue(c, ctx.Err())
			c.setState(&cancelled, models.Disconnected, "login cancelled")
			s.mu.Unlock()
			cancelled.flush()
			return ctx.Err()
		}
	}

	s.authenticate(&out, c)
	s.mu.Unlock()
	out.flush()
	return nil
}

func (s *Server) authenticate(out *outbox, c *conn) {
	c.admitted = nil
	c.userID = s.ids.Generate()
	s.sessions[c.userID] = c
	c.setState(out, models.Authenticated, "")

	c.peerConfig = s.opts.PeerConfiguration
	emit(out, c.cfg.Dispatcher, &c.peerConfigSubs, c.peerConfig)

	s.log.Debug().Int("client", c.id).Str("user", c.userID).Int("ccu", len(s.sessions)).Msg("user authenticated")
}

// promote admits queued logins while slots are free.
func (s *Server) promote(out *outbox) {
	for len(s.waiting) > 0 && (s.opts.CCULimit <= 0 || len(s.sessions) < s.opts.CCULimit) {
		c := s.waiting[0]
		s.waiting = s.waiting[1:]
		admitted := c.admitted
		s.authenticate(out, c)
		admitted <- nil
	}
}

// dequeue removes c from the admission queue and fails its pending login.
func (s *Server) dequeue(c *conn, err error) {
	for i, w := range s.waiting {
		if w == c {
			s.waiting = append(s.waiting[:i], s.waiting[i+1:]...)
			break
		}
	}
	if c.admitted != nil {
		c.admitted <- err
		c.admitted = nil
	}
}

func (s *Server) rank(c *conn) int {
	for i, w := range s.waiting {
		if w == c {
			return i + 1
		}
	}
	return 0
}

// deauthenticate tears down everything owned by c's session.
func (s *Server) deauthenticate(out *outbox, c *conn, reason string) {
	if c.admitted != nil {
		s.dequeue(c, sdk.ErrNotAuthenticated)
	}
	if c.state != models.Authenticated {
		c.setState(out, models.Disconnected, reason)
		return
	}

	s.leaveParty(c)
	s.leaveGame(c)
	for sc := range c.scenes {
		sc.setState(out, models.SceneDisconnected, reason)
	}
	clear(c.scenes)

	delete(s.sessions, c.userID)
	c.userID = ""
	c.setState(out, models.Disconnected, reason)
	s.promote(out)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
