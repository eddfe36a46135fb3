// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sdk

import (
	"context"
	"sync/atomic"

	"github.com/MKhiriev/gameflow-harness/internal/logger"
)

// Client is one SDK client instance.
type Client struct {
	id       int
	cfg      *Configuration
	conn     Connection
	resolver *Resolver
	released atomic.Bool
}

func newClient(id int, cfg *Configuration, conn Connection) *Client {
	c := &Client{
		id:       id,
		cfg:      cfg,
		conn:     conn,
		resolver: NewResolver(),
	}
	Register(c.resolver, c)
	for _, p := range cfg.Plugins {
		p.Install(c.resolver, conn)
	}
	return c
}

func (c *Client) ID() int {
	return c.id
}

func (c *Client) Configuration() *Configuration {
	return c.cfg
}

func (c *Client) Resolver() *Resolver {
	return c.resolver
}

func (c *Client) Logger() *logger.Logger {
	return c.cfg.Logger
}

// Released reports whether the client was released by its factory.
func (c *Client) Released() bool {
	return c.released.Load()
}

// ConnectToScene connects to a public scene.
func (c *Client) ConnectToScene(ctx context.Context, sceneID string) (Scene, error) {
	if c.Released() {
		return nil, ErrClientReleased
	}
	return c.conn.ConnectToScene(ctx, sceneID)
}

func (c *Client) release() error {
	if c.released.Swap(true) {
		return nil
	}
	return c.conn.Close()
}
