// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sdk

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/MKhiriev/gameflow-harness/internal/logger"
	"github.com/MKhiriev/gameflow-harness/internal/utils"
)

// ClientFactory creates clients on demand and caches them by id.
type ClientFactory struct {
	driver Driver
	log    *logger.Logger

	mu            sync.Mutex
	configurators map[int]Configurator
	fallback      Configurator
	clients       map[int]*Client
}

func NewClientFactory(driver Driver, log *logger.Logger) *ClientFactory {
	if log == nil {
		log = logger.Nop()
	}
	return &ClientFactory{
		driver:        driver,
		log:           log,
		configurators: make(map[int]Configurator),
		clients:       make(map[int]*Client),
	}
}

// SetConfig registers the configurator of client id. It only affects clients
// created afterwards.
func (f *ClientFactory) SetConfig(id int, c Configurator) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.configurators[id] = c
}

// SetDefaultConfigurator is used for ids without a dedicated configurator.
func (f *ClientFactory) SetDefaultConfigurator(c Configurator) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fallback = c
}

// GetClient returns the cached client for id or creates it. The driver
// connects outside the factory lock; when two callers race for the same id
// the first stored client wins and the other connection is closed.
func (f *ClientFactory) GetClient(ctx context.Context, id int) (*Client, error) {
	f.mu.Lock()
	if c, ok := f.clients[id]; ok {
		f.mu.Unlock()
		return c, nil
	}
	configure, ok := f.configurators[id]
	if !ok {
		configure = f.fallback
	}
	f.mu.Unlock()

	if configure == nil {
		return nil, fmt.Errorf("%w: %d", ErrNoConfigurator, id)
	}

	cfg, err := configure(id)
	if err != nil {
		return nil, fmt.Errorf("configure client %d: %w", id, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	conn, err := f.driver.Connect(ctx, id, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect client %d: %w", id, err)
	}

	f.mu.Lock()
	if existing, ok := f.clients[id]; ok {
		f.mu.Unlock()
		if closeErr := conn.Close(); closeErr != nil {
			f.log.Warn().Err(closeErr).Int("client", id).Msg("close duplicate connection")
		}
		return existing, nil
	}
	c := newClient(id, cfg, conn)
	f.clients[id] = c
	f.mu.Unlock()

	ev := f.log.Debug().Int("client", id).Str("endpoint", cfg.Endpoint)
	if name, ok := utils.GetScenarioFromContext(ctx); ok {
		ev = ev.Str("scenario", name)
	}
	ev.Msg("client created")
	return c, nil
}

// ReleaseClient disconnects and forgets client id. Unknown ids are ignored.
func (f *ClientFactory) ReleaseClient(id int) error {
	f.mu.Lock()
	c, ok := f.clients[id]
	delete(f.clients, id)
	f.mu.Unlock()

	if !ok {
		return nil
	}
	f.log.Debug().Int("client", id).Msg("client released")
	return c.release()
}

// ReleaseAll releases every cached client and joins the close errors.
func (f *ClientFactory) ReleaseAll() error {
	var errs []error
	for _, id := range f.IDs() {
		if err := f.ReleaseClient(id); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// IDs returns the ids of the cached clients in ascending order.
func (f *ClientFactory) IDs() []int {
	f.mu.Lock()
	defer f.mu.Unlock()

	ids := make([]int, 0, len(f.clients))
	for id := range f.clients {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
