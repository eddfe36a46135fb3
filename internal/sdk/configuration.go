// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sdk

import (
	"fmt"

	"github.com/MKhiriev/gameflow-harness/internal/dispatch"
	"github.com/MKhiriev/gameflow-harness/internal/logger"
)

// DefaultServerGamePort is the UDP port a non-host player is told to reach
// the host on.
const DefaultServerGamePort = 7777

// Configuration holds everything needed to create one client.
type Configuration struct {
	// Endpoint is the base URL of the server (e.g. http://localhost).
	Endpoint string
	// Account and Application identify the hosted application.
	Account     string
	Application string
	// Plugins are installed in order when the client is created.
	Plugins []Plugin
	// Dispatcher receives every SDK callback. Defaults to dispatch.Inline.
	Dispatcher dispatch.Dispatcher
	Logger     *logger.Logger
	// ServerGamePort is advertised to game session peers.
	ServerGamePort int
}

// NewConfiguration returns a configuration with an inline dispatcher, a
// discarding logger and the default game port.
func NewConfiguration(endpoint, account, application string) *Configuration {
	return &Configuration{
		Endpoint:       endpoint,
		Account:        account,
		Application:    application,
		Dispatcher:     dispatch.Inline{},
		Logger:         logger.Nop(),
		ServerGamePort: DefaultServerGamePort,
	}
}

// AddPlugin appends p and returns the configuration for chaining.
func (c *Configuration) AddPlugin(p Plugin) *Configuration {
	c.Plugins = append(c.Plugins, p)
	return c
}

// HasPlugin reports whether a plugin named name is installed.
func (c *Configuration) HasPlugin(name string) bool {
	for _, p := range c.Plugins {
		if p.Name() == name {
			return true
		}
	}
	return false
}

// Validate checks the mandatory fields and fills defaults for the optional
// ones.
func (c *Configuration) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("%w: endpoint is empty", ErrInvalidConfiguration)
	}
	if c.Account == "" || c.Application == "" {
		return fmt.Errorf("%w: account and application are required", ErrInvalidConfiguration)
	}
	if c.ServerGamePort < 0 || c.ServerGamePort > 65535 {
		return fmt.Errorf("%w: server game port %d out of range", ErrInvalidConfiguration, c.ServerGamePort)
	}
	if c.ServerGamePort == 0 {
		c.ServerGamePort = DefaultServerGamePort
	}
	if c.Dispatcher == nil {
		c.Dispatcher = dispatch.Inline{}
	}
	if c.Logger == nil {
		c.Logger = logger.Nop()
	}
	return nil
}

// Configurator builds the configuration of the client with the given id.
type Configurator func(id int) (*Configuration, error)
