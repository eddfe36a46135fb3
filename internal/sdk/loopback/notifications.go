// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loopback

import (
	"github.com/MKhiriev/gameflow-harness/internal/sdk"
	"github.com/MKhiriev/gameflow-harness/models"
)

type notificationsAPI struct{ *conn }

func (n notificationsAPI) Subscribe(fn func([]models.InAppNotification)) *sdk.Subscription {
	return subscribe(n.srv, &n.notificationSubs, fn)
}

type peerConfigurationAPI struct{ *conn }

// Subscribe registers fn and replays the current configuration, if any.
func (p peerConfigurationAPI) Subscribe(fn func(string)) *sdk.Subscription {
	sub := subscribe(p.srv, &p.peerConfigSubs, fn)

	p.srv.mu.Lock()
	current := p.peerConfig
	d := p.cfg.Dispatcher
	p.srv.mu.Unlock()

	if current != "" {
		d.Post(func() { fn(current) })
	}
	return sub
}

func (p peerConfigurationAPI) Current() string {
	p.srv.mu.Lock()
	defer p.srv.mu.Unlock()
	return p.peerConfig
}
