// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package scenario

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/gameflow-harness/internal/sdk"
	"github.com/MKhiriev/gameflow-harness/internal/task"
	"github.com/MKhiriev/gameflow-harness/models"
)

func connectTestScene(ctx context.Context, env *Env, id int) (*sdk.Client, sdk.Scene, error) {
	c, _, err := env.Login(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	scene, err := c.ConnectToScene(ctx, SceneTest)
	if err != nil {
		return nil, nil, err
	}
	return c, scene, nil
}

// Connect logs in and connects to the test scene.
func Connect(ctx context.Context, env *Env) error {
	_, scene, err := connectTestScene(ctx, env, 0)
	if err != nil {
		return err
	}
	return expect(scene.State() == models.SceneConnected, "scene state is %s", scene.State())
}

// SceneNotFound connects to a scene the application does not declare.
func SceneNotFound(ctx context.Context, env *Env) error {
	c, _, err := env.Login(ctx, 0)
	if err != nil {
		return err
	}

	_, err = c.ConnectToScene(ctx, SceneMissing)
	if err == nil {
		return expect(false, "connected to %s", SceneMissing)
	}
	return expect(errors.Is(err, sdk.ErrSceneNotFound) && strings.HasPrefix(err.Error(), sdk.ErrSceneNotFound.Error()),
		"unexpected error %q", err)
}

// RouteNotFound sends a message to a route the scene does not expose.
func RouteNotFound(ctx context.Context, env *Env) error {
	_, scene, err := connectTestScene(ctx, env, 0)
	if err != nil {
		return err
	}

	err = scene.Send(RouteMissing, nil)
	if err == nil {
		return expect(false, "send to %s succeeded", RouteMissing)
	}
	want := sdk.ErrRouteNotFound.Error() + " named " + RouteMissing
	return expect(errors.Is(err, sdk.ErrRouteNotFound) && strings.HasPrefix(err.Error(), want),
		"unexpected error %q", err)
}

// RejectConnection connects to the scene whose server-side handler refuses
// every peer.
func RejectConnection(ctx context.Context, env *Env) error {
	c, _, err := env.Login(ctx, 0)
	if err != nil {
		return err
	}

	_, err = c.ConnectToScene(ctx, SceneRejection)
	msg, ok := sdk.ClientErrorMessage(err)
	return expect(ok && msg == RejectionMessage, "expected rejection %q, got %v", RejectionMessage, err)
}

// ServerForceDisconnect asks the server to drop the scene connection and
// expects the disconnection reason within a deadline.
func ServerForceDisconnect(ctx context.Context, env *Env) error {
	_, scene, err := connectTestScene(ctx, env, 0)
	if err != nil {
		return err
	}

	disconnected := task.NewEvent()
	sub := scene.SubscribeState(func(change models.SceneStateChange) {
		if change.State != models.SceneDisconnected {
			return
		}
		if change.Reason != ForceDisconnectReason {
			disconnected.SetError(fmt.Errorf("%w: disconnected with reason %q", ErrAssertion, change.Reason))
			return
		}
		disconnected.Set()
	})
	defer sub.Unsubscribe()

	if err = scene.Send(RouteServerForceDisconnect, ForceDisconnectReason); err != nil {
		return err
	}

	waitCtx, cancel := context.WithTimeout(ctx, forceDisconnectDeadline)
	defer cancel()
	return disconnected.Wait(waitCtx)
}

// AppGlobalFunction counts the S2S template scenes on every host.
func AppGlobalFunction(ctx context.Context, env *Env) error {
	_, scene, err := connectTestScene(ctx, env, 0)
	if err != nil {
		return err
	}

	var counts []int
	if err = scene.RPC(ctx, RouteAppGlobalFunction, nil, &counts); err != nil {
		return err
	}
	return expect(len(counts) > 0, "no host answered")
}

// SameSceneS2S echoes a message through an S2S call targeting the same
// scene.
func SameSceneS2S(ctx context.Context, env *Env) error {
	_, scene, err := connectTestScene(ctx, env, 0)
	if err != nil {
		return err
	}

	const msg = "ping"
	var echo string
	if err = scene.RPC(ctx, RouteSameSceneS2S, msg, &echo); err != nil {
		return err
	}
	return expect(echo == msg, "echo %q, want %q", echo, msg)
}

// S2S aggregates the DTOs streamed by the template S2S scenes.
func S2S(ctx context.Context, env *Env) error {
	_, scene, err := connectTestScene(ctx, env, 0)
	if err != nil {
		return err
	}

	var items []models.TestDto
	if err = scene.RPC(ctx, RouteS2S, nil, &items); err != nil {
		return err
	}
	return expect(len(items) == S2SResultCount, "got %d items, want %d", len(items), S2SResultCount)
}
