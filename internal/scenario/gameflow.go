// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package scenario

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/MKhiriev/gameflow-harness/internal/sdk"
	"github.com/MKhiriev/gameflow-harness/internal/task"
	"github.com/MKhiriev/gameflow-harness/models"
)

// Authenticate logs a single client in with the users plugin only.
func Authenticate(ctx context.Context, env *Env) error {
	env.Use(0, sdk.UsersPlugin())

	_, users, err := env.Login(ctx, 0)
	if err != nil {
		return err
	}
	if err = expect(users.ConnectionState() == models.Authenticated, "state is %s", users.ConnectionState()); err != nil {
		return err
	}
	return expect(users.UserID() != "", "empty user id")
}

// CreateParty creates a party and expects exactly one party joined event,
// even when creation is requested twice.
func CreateParty(ctx context.Context, env *Env) error {
	c, _, err := env.Login(ctx, 0)
	if err != nil {
		return err
	}
	party, err := sdk.Resolve[sdk.PartyAPI](c)
	if err != nil {
		return err
	}

	var joinedCount atomic.Int32
	joined := task.NewEvent()
	sub := party.SubscribePartyJoined(func(models.PartyJoined) {
		joinedCount.Add(1)
		joined.Set()
	})
	defer sub.Unsubscribe()

	req := models.PartyRequest{GameFinderName: GameFinderName}
	if err = party.CreatePartyIfNotJoined(ctx, req); err != nil {
		return err
	}
	if err = joined.Wait(ctx); err != nil {
		return err
	}
	if err = party.CreatePartyIfNotJoined(ctx, req); err != nil {
		return err
	}
	if err = flush(ctx, env); err != nil {
		return err
	}

	if err = expect(party.IsInParty(), "not in party"); err != nil {
		return err
	}
	return expect(joinedCount.Load() == 1, "%d party joined events", joinedCount.Load())
}

// JoinPartyWithCode has client 0 create a party and an invitation code that
// client 1 uses to join.
func JoinPartyWithCode(ctx context.Context, env *Env) error {
	leaderParty, err := partyOf(ctx, env, 0)
	if err != nil {
		return err
	}
	if err = leaderParty.CreatePartyIfNotJoined(ctx, models.PartyRequest{GameFinderName: GameFinderName}); err != nil {
		return err
	}
	code, err := leaderParty.CreateInvitationCode(ctx)
	if err != nil {
		return err
	}

	memberParty, err := partyOf(ctx, env, 1)
	if err != nil {
		return err
	}
	if err = memberParty.JoinPartyByInvitationCode(ctx, code); err != nil {
		return err
	}

	if err = expect(memberParty.IsInParty(), "member not in party"); err != nil {
		return err
	}
	return expect(memberParty.PartyID() == leaderParty.PartyID(),
		"member joined %q, leader is in %q", memberParty.PartyID(), leaderParty.PartyID())
}

// FindGame readies two single player parties and expects both to be matched
// into the same game session.
func FindGame(ctx context.Context, env *Env) error {
	events, err := findGames(ctx, env, 0, 1)
	if err != nil {
		return err
	}
	for _, ev := range events {
		if err = expect(ev.Data.ConnectionToken != "", "empty connection token"); err != nil {
			return err
		}
	}
	return expect(events[0].Data.GameSessionID == events[1].Data.GameSessionID,
		"matched into different sessions %q and %q", events[0].Data.GameSessionID, events[1].Data.GameSessionID)
}

// JoinGameSession matches two clients and connects both to the game
// session. The host declares itself ready, which lets the other peer
// connect.
func JoinGameSession(ctx context.Context, env *Env) error {
	ids := []int{0, 1}
	tasks := make([]*task.Task[models.GameSessionConnectionParameters], 0, len(ids))
	for _, id := range ids {
		tasks = append(tasks, task.Go(ctx, func(ctx context.Context) (models.GameSessionConnectionParameters, error) {
			return joinGame(ctx, env, id)
		}))
	}

	params, err := task.WhenAll(tasks...).Await(ctx)
	if err != nil {
		return err
	}

	hosts := 0
	for _, p := range params {
		if p.IsHost {
			hosts++
			continue
		}
		if err = expect(p.Endpoint != "", "non-host without endpoint"); err != nil {
			return err
		}
	}
	return expect(hosts == 1, "%d hosts", hosts)
}

func joinGame(ctx context.Context, env *Env, id int) (models.GameSessionConnectionParameters, error) {
	ev, err := findGame(ctx, env, id)
	if err != nil {
		return models.GameSessionConnectionParameters{}, err
	}
	c, err := env.Client(ctx, id)
	if err != nil {
		return models.GameSessionConnectionParameters{}, err
	}
	sessions, err := sdk.Resolve[sdk.GameSessionsAPI](c)
	if err != nil {
		return models.GameSessionConnectionParameters{}, err
	}

	params, err := sessions.ConnectToGameSession(ctx, ev.Data.ConnectionToken)
	if err != nil {
		return params, fmt.Errorf("client %d connect to game session: %w", id, err)
	}
	env.Logger.Debug().Int("client", id).Bool("host", params.IsHost).Str("endpoint", params.Endpoint).Msg("joined game session")

	if err = sessions.SetPlayerReady(ctx, ""); err != nil {
		return params, fmt.Errorf("client %d set player ready: %w", id, err)
	}
	return params, nil
}

// findGames runs findGame for every id concurrently.
func findGames(ctx context.Context, env *Env, ids ...int) ([]models.GameFoundEvent, error) {
	tasks := make([]*task.Task[models.GameFoundEvent], 0, len(ids))
	for _, id := range ids {
		tasks = append(tasks, task.Go(ctx, func(ctx context.Context) (models.GameFoundEvent, error) {
			return findGame(ctx, env, id)
		}))
	}
	return task.WhenAll(tasks...).Await(ctx)
}

// findGame logs id in, registers for the game found event, creates a party
// and declares the player ready.
func findGame(ctx context.Context, env *Env, id int) (models.GameFoundEvent, error) {
	c, _, err := env.Login(ctx, id)
	if err != nil {
		return models.GameFoundEvent{}, err
	}
	gameFinder, err := sdk.Resolve[sdk.GameFinderAPI](c)
	if err != nil {
		return models.GameFoundEvent{}, err
	}
	party, err := sdk.Resolve[sdk.PartyAPI](c)
	if err != nil {
		return models.GameFoundEvent{}, err
	}

	found := gameFinder.WaitGameFound()

	if err = party.CreatePartyIfNotJoined(ctx, models.PartyRequest{GameFinderName: GameFinderName}); err != nil {
		return models.GameFoundEvent{}, fmt.Errorf("client %d create party: %w", id, err)
	}
	env.Logger.Debug().Int("client", id).Msg("connected to party")

	if err = party.UpdatePlayerStatus(ctx, models.Ready); err != nil {
		return models.GameFoundEvent{}, fmt.Errorf("client %d update player status: %w", id, err)
	}
	return found.Await(ctx)
}

func partyOf(ctx context.Context, env *Env, id int) (sdk.PartyAPI, error) {
	c, _, err := env.Login(ctx, id)
	if err != nil {
		return nil, err
	}
	return sdk.Resolve[sdk.PartyAPI](c)
}

// flush waits until every callback posted so far ran on the dispatcher.
func flush(ctx context.Context, env *Env) error {
	barrier := task.NewEvent()
	env.Dispatcher.Post(barrier.Set)
	return barrier.Wait(ctx)
}
