// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package scenario

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/gameflow-harness/internal/adapter"
	"github.com/MKhiriev/gameflow-harness/internal/config"
	"github.com/MKhiriev/gameflow-harness/internal/dispatch"
	"github.com/MKhiriev/gameflow-harness/internal/logger"
	"github.com/MKhiriev/gameflow-harness/internal/sdk"
)

// Env is what a scenario body works with.
type Env struct {
	Factory    *sdk.ClientFactory
	Dispatcher dispatch.Dispatcher
	Admin      adapter.AdminAPI
	Config     *config.StructuredConfig
	Logger     *logger.Logger

	mu          sync.Mutex
	fileLoggers []*logger.FileLogger
}

// NewEnv returns an Env whose clients get every plugin unless Use narrows
// them down.
func NewEnv(factory *sdk.ClientFactory, d dispatch.Dispatcher, admin adapter.AdminAPI, cfg *config.StructuredConfig, log *logger.Logger) *Env {
	if log == nil {
		log = logger.Nop()
	}
	e := &Env{Factory: factory, Dispatcher: d, Admin: admin, Config: cfg, Logger: log}
	factory.SetDefaultConfigurator(e.Configurator(sdk.AllPlugins()...))
	return e
}

// Configurator builds client configurations for the target application with
// the given plugins, the env dispatcher and, when Log.ClientDir is set, a
// per-client file logger.
func (e *Env) Configurator(plugins ...sdk.Plugin) sdk.Configurator {
	return func(id int) (*sdk.Configuration, error) {
		t := e.Config.Target
		cfg := sdk.NewConfiguration(t.Endpoint, t.Account, t.Application)
		for _, p := range plugins {
			cfg.AddPlugin(p)
		}
		cfg.Dispatcher = e.Dispatcher
		cfg.ServerGamePort = t.ServerGamePort
		cfg.Logger = e.Logger

		if dir := e.Config.Log.ClientDir; dir != "" {
			fl, err := logger.NewFileLogger(dir, id)
			if err != nil {
				return nil, err
			}
			e.mu.Lock()
			e.fileLoggers = append(e.fileLoggers, fl)
			e.mu.Unlock()
			cfg.Logger = fl.Logger
		}
		return cfg, nil
	}
}

// Use restricts client id to plugins.
func (e *Env) Use(id int, plugins ...sdk.Plugin) {
	e.Factory.SetConfig(id, e.Configurator(plugins...))
}

// Client returns client id, creating it on first use.
func (e *Env) Client(ctx context.Context, id int) (*sdk.Client, error) {
	return e.Factory.GetClient(ctx, id)
}

// Login resolves the users API of client id, configures ephemeral
// credentials and logs in.
func (e *Env) Login(ctx context.Context, id int) (*sdk.Client, sdk.UsersAPI, error) {
	c, users, err := e.Users(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if err = users.Login(ctx); err != nil {
		return nil, nil, fmt.Errorf("client %d login: %w", id, err)
	}
	return c, users, nil
}

// Users resolves the users API of client id and configures ephemeral
// credentials without logging in.
func (e *Env) Users(ctx context.Context, id int) (*sdk.Client, sdk.UsersAPI, error) {
	c, err := e.Client(ctx, id)
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

// Close releases every client and closes the client log files.
func (e *Env) Close() error {
	err := e.Factory.ReleaseAll()

	e.mu.Lock()
	defer e.mu.Unlock()
	for _, fl := range e.fileLoggers {
		err = errors.Join(err, fl.Close())
	}
	e.fileLoggers = nil
	return err
}

// expect returns an assertion error when cond is false.
func expect(cond bool, format string, args ...any) error {
	if cond {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrAssertion, fmt.Sprintf(format, args...))
}
