// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package scenario

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/gameflow-harness/internal/admission"
	"github.com/MKhiriev/gameflow-harness/internal/sdk"
	"github.com/MKhiriev/gameflow-harness/internal/task"
)

// AuthenticationQueue logs QueueAgents clients in against a server limited
// to QueueCCULimit concurrent users. Every agent stays connected for
// QueueHold and is then released, which admits the next queued one.
func AuthenticationQueue(ctx context.Context, env *Env) error {
	tracker := admission.NewTracker(QueueHold)
	logins := make([]*task.Task[struct{}], 0, QueueAgents)

	for id := range QueueAgents {
		env.Use(id, sdk.UsersPlugin(), sdk.ConnectionQueuePlugin())
		c, users, err := env.Users(ctx, id)
		if err != nil {
			return err
		}
		queue, err := sdk.Resolve[sdk.ConnectionQueueAPI](c)
		if err != nil {
			return err
		}

		tracker.Add(id, users, queue, func() {
			if err := env.Factory.ReleaseClient(id); err != nil {
				env.Logger.Warn().Err(err).Int("client", id).Msg("release failed")
			}
		})
		logins = append(logins, task.Go(ctx, func(ctx context.Context) (struct{}, error) {
			if err := users.Login(ctx); err != nil {
				return struct{}{}, fmt.Errorf("client %d login: %w", id, err)
			}
			return struct{}{}, nil
		}))
	}

	tick := time.NewTicker(env.Config.Dispatch.Idle)
	defer tick.Stop()
	for !tracker.Done() {
		select {
		case now := <-tick.C:
			tracker.Tick(now)
		case <-ctx.Done():
			return fmt.Errorf("admission queue did not drain: %+v: %w", tracker.Snapshot(), ctx.Err())
		}
	}

	if _, err := task.WhenAll(logins...).Await(ctx); err != nil {
		return err
	}

	snap := tracker.Snapshot()
	env.Logger.Info().
		Int("max_concurrent", snap.MaxConcurrent).
		Int("max_queue_depth", snap.MaxQueueDepth).
		Msg("admission queue drained")

	if err := expect(snap.MaxConcurrent <= QueueCCULimit, "%d concurrent users above limit %d", snap.MaxConcurrent, QueueCCULimit); err != nil {
		return err
	}
	if err := expect(snap.MaxQueueDepth >= 1, "no agent was ever queued"); err != nil {
		return err
	}
	return expect(snap.EverConnected == QueueAgents, "%d of %d agents connected", snap.EverConnected, QueueAgents)
}
