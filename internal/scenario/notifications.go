// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package scenario

import (
	"context"

	"github.com/MKhiriev/gameflow-harness/internal/sdk"
	"github.com/MKhiriev/gameflow-harness/internal/task"
	"github.com/MKhiriev/gameflow-harness/models"
)

// ReceiveNotification broadcasts an admin notification to every user once
// the client is authenticated and waits for it.
func ReceiveNotification(ctx context.Context, env *Env) error {
	c, _, err := env.Login(ctx, 0)
	if err != nil {
		return err
	}
	notifications, err := sdk.Resolve[sdk.NotificationsAPI](c)
	if err != nil {
		return err
	}

	got, complete := task.New[models.InAppNotification]()
	sub := notifications.Subscribe(func(batch []models.InAppNotification) {
		for _, n := range batch {
			if n.Type == NotificationType {
				complete.Complete(n)
			}
		}
	})
	defer sub.Unsubscribe()

	if _, err = env.Admin.SendNotification(ctx, models.NotificationRequest{
		UserIDs: models.AllUsers,
		Type:    NotificationType,
		Message: NotificationMessage,
		Data:    NotificationData,
	}); err != nil {
		return err
	}

	n, err := got.Await(ctx)
	if err != nil {
		return err
	}
	return expect(n.Message == NotificationMessage && n.Data == NotificationData,
		"unexpected notification %+v", n)
}

// ReceivePeerConfiguration subscribes before login and waits for the
// configuration the server pushes after authentication.
func ReceivePeerConfiguration(ctx context.Context, env *Env) error {
	env.Use(0, sdk.UsersPlugin(), sdk.PeerConfigurationPlugin())

	c, users, err := env.Users(ctx, 0)
	if err != nil {
		return err
	}
	peerConfig, err := sdk.Resolve[sdk.PeerConfigurationAPI](c)
	if err != nil {
		return err
	}

	got, complete := task.New[string]()
	sub := peerConfig.Subscribe(func(cfg string) {
		if cfg != "" {
			complete.Complete(cfg)
		}
	})
	defer sub.Unsubscribe()

	if err = users.Login(ctx); err != nil {
		return err
	}

	cfg, err := got.Await(ctx)
	if err != nil {
		return err
	}
	return expect(cfg == peerConfig.Current(), "pushed %q, current %q", cfg, peerConfig.Current())
}
