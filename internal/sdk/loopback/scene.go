// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loopback

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/gameflow-harness/internal/sdk"
	"github.com/MKhiriev/gameflow-harness/models"
)

type scene struct {
	id    string
	c     *conn
	state models.SceneState
	subs  handlerSet[models.SceneStateChange]
}

// ConnectToScene implements sdk.Connection. Only public scenes can be
// reached; the S2S scenes are private to the server.
func (c *conn) ConnectToScene(ctx context.Context, sceneID string) (sdk.Scene, error) {
	s := c.srv
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	switch sceneID {
	case SceneTest:
	case SceneRejection:
		return nil, sdk.NewClientError(RejectionMessage)
	default:
		return nil, fmt.Errorf("%w %s", sdk.ErrSceneNotFound, sceneID)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sc := &scene{id: sceneID, c: c, state: models.SceneConnected}
	c.scenes[sc] = struct{}{}
	s.log.Debug().Int("client", c.id).Str("scene", sceneID).Msg("scene connected")
	return sc, nil
}

func (sc *scene) ID() string {
	return sc.id
}

func (sc *scene) State() models.SceneState {
	sc.c.srv.mu.Lock()
	defer sc.c.srv.mu.Unlock()
	return sc.state
}

func (sc *scene) SubscribeState(fn func(models.SceneStateChange)) *sdk.Subscription {
	return subscribe(sc.c.srv, &sc.subs, fn)
}

// setState is called with srv.mu held.
func (sc *scene) setState(out *outbox, state models.SceneState, reason string) {
	if sc.state == state {
		return
	}
	sc.state = state
	emit(out, sc.c.cfg.Dispatcher, &sc.subs, models.SceneStateChange{State: state, Reason: reason})
}

func (sc *scene) connected() error {
	if sc.state != models.SceneConnected {
		return fmt.Errorf("%w: %s", sdk.ErrSceneDisconnected, sc.id)
	}
	return nil
}

// Send delivers a fire-and-forget message to a server route.
func (sc *scene) Send(route string, payload any) error {
	s := sc.c.srv
	s.mu.Lock()
	err := sc.connected()
	s.mu.Unlock()
	if err != nil {
		return err
	}

	switch route {
	case RouteServerForceDisconnect:
		s.forceDisconnect(sc.c, ForceDisconnectReason)
		return nil
	default:
		return fmt.Errorf("%w named %s", sdk.ErrRouteNotFound, route)
	}
}

// RPC calls a server route and decodes its answer into out.
func (sc *scene) RPC(ctx context.Context, route string, in, out any) error {
	s := sc.c.srv
	s.mu.Lock()
	err := sc.connected()
	s.mu.Unlock()
	if err != nil {
		return err
	}

	switch route {
	case RouteSameSceneS2S:
		var msg string
		if err = convert(in, &msg); err != nil {
			return err
		}
		return convert(msg, out)

	case RouteAppGlobalFunction:
		// one entry per host, the loopback runs a single host
		return convert([]int{countByTemplate(s2sScenes(), S2SSceneTemplate)}, out)

	case RouteS2S:
		scenes := s2sScenes()
		items := make([]models.TestDto, 0, len(scenes)*S2SItemsPerScene)
		for range scenes {
			for v := range S2SItemsPerScene {
				items = append(items, models.TestDto{Number: v, Value: strconv.Itoa(v)})
			}
		}
		return convert(items, out)

	case RouteSendRequest:
		return s.request(ctx, sc.c, "", "a", "", nil)

	case RouteSendRequestGeneric:
		var v string
		if err = convert(in, &v); err != nil {
			return err
		}
		var ok bool
		if err = s.request(ctx, sc.c, "", "b", v, &ok); err != nil {
			return err
		}
		return convert(ok, out)

	case RouteSendRequestGeneric2:
		var v string
		if err = convert(in, &v); err != nil {
			return err
		}
		return s.request(ctx, sc.c, "", "c", v, nil)

	default:
		return fmt.Errorf("%w named %s", sdk.ErrRouteNotFound, route)
	}
}

// Disconnect leaves the scene.
func (sc *scene) Disconnect(ctx context.Context) error {
	s := sc.c.srv
	var out outbox

	s.mu.Lock()
	sc.setState(&out, models.SceneDisconnected, "")
	delete(sc.c.scenes, sc)
	s.mu.Unlock()
	out.flush()
	return ctx.Err()
}

// s2sScenes lists the private scenes created from S2SSceneTemplate.
func s2sScenes() []string {
	ids := make([]string, S2SSceneCount)
	for i := range ids {
		ids[i] = S2SSceneTemplate + "-" + strconv.Itoa(i)
	}
	return ids
}

func countByTemplate(ids []string, template string) int {
	n := 0
	for _, id := range ids {
		if strings.HasPrefix(id, template+"-") {
			n++
		}
	}
	return n
}
