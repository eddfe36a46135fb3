// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package backend provisions the server side a scenario or stress run talks
// to: an SDK driver plus the administrative API of the same application.
package backend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/gameflow-harness/internal/adapter"
	"github.com/MKhiriev/gameflow-harness/internal/config"
	"github.com/MKhiriev/gameflow-harness/internal/logger"
	"github.com/MKhiriev/gameflow-harness/internal/sdk"
	"github.com/MKhiriev/gameflow-harness/internal/sdk/loopback"
	"github.com/MKhiriev/gameflow-harness/internal/server"
)

const shutdownTimeout = 5 * time.Second

// Requirements are the server-side settings a caller needs.
type Requirements struct {
	// CCULimit overrides the configured admission limit when positive.
	CCULimit int
}

// Target is a provisioned backend.
type Target struct {
	Driver sdk.Driver
	Admin  adapter.AdminAPI
	// AdminURL is the base URL the Admin adapter talks to.
	AdminURL string

	closeFn func(ctx context.Context) error
}

// Close releases the backend.
func (t *Target) Close() error {
	if t.closeFn == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return t.closeFn(ctx)
}

// Provisioner creates backends.
type Provisioner interface {
	Provision(ctx context.Context, req Requirements) (*Target, error)
}

// Loopback provisions an in-process loopback server whose admin API is
// served on cfg.Loopback.AdminAddress.
type Loopback struct {
	cfg *config.StructuredConfig
	log *logger.Logger
}

// NewLoopback returns a loopback provisioner.
func NewLoopback(cfg *config.StructuredConfig, log *logger.Logger) *Loopback {
	if log == nil {
		log = logger.Nop()
	}
	return &Loopback{cfg: cfg, log: log}
}

// New returns the provisioner for cfg.Target.Driver.
func New(cfg *config.StructuredConfig, log *logger.Logger) (Provisioner, error) {
	switch cfg.Target.Driver {
	case config.DriverLoopback:
		return NewLoopback(cfg, log), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Target.Driver)
	}
}

// Provision implements [Provisioner].
func (b *Loopback) Provision(ctx context.Context, req Requirements) (*Target, error) {
	ccu := b.cfg.Loopback.CCULimit
	if req.CCULimit > 0 {
		ccu = req.CCULimit
	}

	srv := loopback.NewServer(loopback.Options{
		Account:           b.cfg.Target.Account,
		Application:       b.cfg.Target.Application,
		CCULimit:          ccu,
		PeerConfiguration: b.cfg.Loopback.PeerConfiguration,
		Logger:            b.log,
	})

	httpSrv, err := server.NewHTTPServer(ctx, "loopback-admin", b.cfg.Loopback.AdminAddress, srv.AdminHandler(), b.log)
	if err != nil {
		srv.Close()
		return nil, fmt.Errorf("start loopback admin api: %w", err)
	}
	httpSrv.Start()

	adminCfg := config.Admin{Address: httpSrv.URL(), RequestTimeout: b.cfg.Admin.RequestTimeout}
	admin, err := adapter.NewHTTPAdminAdapter(adminCfg, b.cfg.Target.Account, b.cfg.Target.Application, b.log)
	if err != nil {
		_ = httpSrv.Shutdown(ctx)
		srv.Close()
		return nil, err
	}

	b.log.Debug().Int("ccu_limit", ccu).Str("admin", httpSrv.URL()).Msg("loopback backend provisioned")

	return &Target{
		Driver:   srv,
		Admin:    admin,
		AdminURL: httpSrv.URL(),
		closeFn: func(ctx context.Context) error {
			srv.Close()
			return httpSrv.Shutdown(ctx)
		},
	}, nil
}

// ErrUnsupportedDriver is returned by New for an unknown driver name.
var ErrUnsupportedDriver = errors.New("unsupported driver")
