// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package scenario

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/gameflow-harness/internal/sdk"
	"github.com/MKhiriev/gameflow-harness/internal/task"
	"github.com/MKhiriev/gameflow-harness/models"
)

// Kick asks the admin API to kick the user, with reconnection disabled, and
// expects the client to end up disconnected.
func Kick(ctx context.Context, env *Env) error {
	env.Use(0, sdk.UsersPlugin())

	_, users, err := env.Users(ctx, 0)
	if err != nil {
		return err
	}
	users.SetReconnectFilter(func(string) bool { return false })
	if err = users.Login(ctx); err != nil {
		return err
	}

	disconnected := task.NewEvent()
	sub := users.SubscribeConnectionState(func(change models.ConnectionStateChange) {
		if change.State == models.Disconnected {
			env.Logger.Debug().Str("reason", change.Reason).Msg("disconnected")
			disconnected.Set()
		}
	})
	defer sub.Unsubscribe()

	if err = env.Admin.KickUser(ctx, users.UserID(), KickReason); err != nil {
		return err
	}
	if err = disconnected.Wait(ctx); err != nil {
		return err
	}
	return expect(users.ConnectionState() == models.Disconnected, "state is %s", users.ConnectionState())
}

// ServerToClientRequest lets the server run the client operations "a", "b"
// and "c" through the UsersTest routes.
func ServerToClientRequest(ctx context.Context, env *Env) error {
	c, users, err := env.Login(ctx, 0)
	if err != nil {
		return err
	}

	ranA := task.NewEvent()
	users.SetOperationHandler("a", func(context.Context, sdk.OperationRequest) (any, error) {
		ranA.Set()
		return nil, nil
	})

	const data = "blabliblo"
	users.SetOperationHandler("b", func(_ context.Context, req sdk.OperationRequest) (any, error) {
		var got string
		if err := json.Unmarshal(req.Payload, &got); err != nil {
			return nil, err
		}
		return got == data, nil
	})

	received := make(chan string, 1)
	users.SetOperationHandler("c", func(_ context.Context, req sdk.OperationRequest) (any, error) {
		var got string
		if err := json.Unmarshal(req.Payload, &got); err != nil {
			return nil, err
		}
		received <- got
		return nil, nil
	})

	scene, err := c.ConnectToScene(ctx, SceneTest)
	if err != nil {
		return err
	}

	if err = scene.RPC(ctx, RouteSendRequest, nil, nil); err != nil {
		return err
	}
	if err = ranA.Wait(ctx); err != nil {
		return err
	}

	var matched bool
	if err = scene.RPC(ctx, RouteSendRequestGeneric, data, &matched); err != nil {
		return err
	}
	if err = expect(matched, "operation b did not receive %q", data); err != nil {
		return err
	}

	const data2 = "b"
	if err = scene.RPC(ctx, RouteSendRequestGeneric2, data2, nil); err != nil {
		return err
	}
	select {
	case got := <-received:
		return expect(got == data2, "operation c received %q, want %q", got, data2)
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ClientToClientRequest has client 0 run operation "a" of client 1 and
// checks the echoed payload and the origin.
func ClientToClientRequest(ctx context.Context, env *Env) error {
	_, sender, err := env.Login(ctx, 0)
	if err != nil {
		return err
	}
	_, target, err := env.Login(ctx, 1)
	if err != nil {
		return err
	}

	origins := make(chan string, 1)
	target.SetOperationHandler("a", func(_ context.Context, req sdk.OperationRequest) (any, error) {
		origins <- req.OriginID
		var msg string
		if err := json.Unmarshal(req.Payload, &msg); err != nil {
			return nil, err
		}
		return msg, nil
	})

	const msg = "hello"
	var echo string
	if err = sender.SendRequestToUser(ctx, target.UserID(), "a", msg, &echo); err != nil {
		return err
	}
	if err = expect(echo == msg, "echo %q, want %q", echo, msg); err != nil {
		return err
	}
	origin := <-origins
	return expect(origin == sender.UserID(), "origin %q, want %q", origin, sender.UserID())
}
