// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/MKhiriev/gameflow-harness/internal/config"
	"github.com/MKhiriev/gameflow-harness/internal/logger"
	"github.com/MKhiriev/gameflow-harness/internal/sdk"
	"github.com/MKhiriev/gameflow-harness/models"
)

// Worker names.
const (
	Connection = "connection"
	Messages   = "messages"
)

// Workers builds workers by name. Every worker it builds shares one client
// factory, so concurrent workers must use distinct client ids.
type Workers struct {
	builders map[string]func() Worker
}

// NewWorkers returns a registry holding the connection and messages
// workers.
func NewWorkers(factory *sdk.ClientFactory, cfg *config.StructuredConfig, log *logger.Logger) *Workers {
	w := &Workers{}
	w.builders = map[string]func() Worker{
		Connection: func() Worker { return NewConnectionWorker(factory, cfg.Target, log) },
		Messages:   func() Worker { return NewMessagesWorker(factory, cfg.Target, cfg.Stress.Messages, log) },
	}
	return w
}

// Get returns the worker called name.
func (w *Workers) Get(name string) (Worker, error) {
	build, ok := w.builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWorker, name)
	}
	return build(), nil
}

// Names lists the known workers in alphabetical order.
func (w *Workers) Names() []string {
	names := make([]string, 0, len(w.builders))
	for name := range w.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// session configures, logs in and releases one client.
type session struct {
	factory *sdk.ClientFactory
	target  config.Target
	logger  *logger.Logger
}

func newSession(factory *sdk.ClientFactory, target config.Target, log *logger.Logger) session {
	if log == nil {
		log = logger.Nop()
	}
	return session{factory: factory, target: target, logger: log}
}

// open registers a users-only configuration for id, creates the client and
// prepares ephemeral credentials.
func (s session) open(ctx context.Context, id int) (*sdk.Client, sdk.UsersAPI, error) {
	s.factory.SetConfig(id, func(int) (*sdk.Configuration, error) {
		cfg := sdk.NewConfiguration(s.target.Endpoint, s.target.Account, s.target.Application)
		cfg.AddPlugin(sdk.UsersPlugin())
		cfg.ServerGamePort = s.target.ServerGamePort
		return cfg, nil
	})

	c, err := s.factory.GetClient(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	users, err := sdk.Resolve[sdk.UsersAPI](c)
	if err != nil {
		return nil, nil, err
	}
	users.SetCredentialsCallback(sdk.EphemeralCredentials())
	return c, users, nil
}

func (s session) release(id int) {
	if err := s.factory.ReleaseClient(id); err != nil {
		s.logger.Warn().Err(err).Int("client", id).Msg("release client")
	}
}

func (s session) result(id int, start time.Time, err error) models.Result {
	res := models.Result{WorkerID: id, Success: err == nil, Duration: time.Since(start), Err: err}
	if err != nil {
		s.logger.Debug().Err(err).Int("client", id).Msg("worker failed")
	}
	return res
}

// ConnectionWorker measures an ephemeral login.
type ConnectionWorker struct {
	session session
}

func NewConnectionWorker(factory *sdk.ClientFactory, target config.Target, log *logger.Logger) *ConnectionWorker {
	return &ConnectionWorker{session: newSession(factory, target, log)}
}

// Run implements [Worker]. Only the login is timed.
func (w *ConnectionWorker) Run(ctx context.Context, id int) models.Result {
	defer w.session.release(id)

	_, users, err := w.session.open(ctx, id)
	if err != nil {
		return w.session.result(id, time.Now(), err)
	}

	start := time.Now()
	err = users.Login(ctx)
	return w.session.result(id, start, err)
}

// Echo scene and route the messages worker talks to.
const (
	EchoScene = "test-scene"
	EchoRoute = "Test.TestSameSceneS2S"
)

// MessagesWorker logs in, connects to the echo scene and round-trips a
// number of RPCs.
type MessagesWorker struct {
	session  session
	messages int
}

func NewMessagesWorker(factory *sdk.ClientFactory, target config.Target, messages int, log *logger.Logger) *MessagesWorker {
	return &MessagesWorker{session: newSession(factory, target, log), messages: messages}
}

// Run implements [Worker]. The whole session after client creation is timed.
func (w *MessagesWorker) Run(ctx context.Context, id int) models.Result {
	defer w.session.release(id)

	c, users, err := w.session.open(ctx, id)
	if err != nil {
		return w.session.result(id, time.Now(), err)
	}

	start := time.Now()
	if err = users.Login(ctx); err != nil {
		return w.session.result(id, start, err)
	}

	scene, err := c.ConnectToScene(ctx, EchoScene)
	if err != nil {
		return w.session.result(id, start, err)
	}

	for i := range w.messages {
		payload := fmt.Sprintf("%d-%d", id, i)
		var echo string
		if err = scene.RPC(ctx, EchoRoute, payload, &echo); err != nil {
			return w.session.result(id, start, err)
		}
		if echo != payload {
			return w.session.result(id, start, fmt.Errorf("%w: got %q, want %q", ErrBadEcho, echo, payload))
		}
	}
	return w.session.result(id, start, nil)
}
