// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loopback

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/gameflow-harness/internal/logger"
	"github.com/MKhiriev/gameflow-harness/internal/sdk"
)

// harness wires a loopback server to a client factory with inline dispatch.
type harness struct {
	srv     *Server
	factory *sdk.ClientFactory
}

func newHarness(t *testing.T, opts Options) *harness {
	t.Helper()
	srv := NewServer(opts)
	f := sdk.NewClientFactory(srv, logger.Nop())
	f.SetDefaultConfigurator(func(int) (*sdk.Configuration, error) {
		cfg := sdk.NewConfiguration("http://localhost", DefaultAccount, DefaultApplication)
		for _, p := range sdk.AllPlugins() {
			cfg.AddPlugin(p)
		}
		return cfg, nil
	})
	t.Cleanup(func() {
		_ = f.ReleaseAll()
		srv.Close()
	})
	return &harness{srv: srv, factory: f}
}

func (h *harness) client(t *testing.T, id int) *sdk.Client {
	t.Helper()
	c, err := h.factory.GetClient(context.Background(), id)
	require.NoError(t, err)
	return c
}

func (h *harness) login(t *testing.T, id int) (*sdk.Client, sdk.UsersAPI) {
	t.Helper()
	c := h.client(t, id)
	users := sdk.MustResolve[sdk.UsersAPI](c)
	require.NoError(t, users.Login(testCtx(t)))
	return c, users
}

func testCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}
