// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loopback

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/gameflow-harness/internal/dispatch"
	"github.com/MKhiriev/gameflow-harness/internal/sdk"
	"github.com/MKhiriev/gameflow-harness/models"
)

// ── Connect ──

func TestConnect_UnknownApplication(t *testing.T) {
	srv := NewServer(Options{})
	defer srv.Close()

	cfg := sdk.NewConfiguration("http://localhost", "other", "app")
	_, err := srv.Connect(context.Background(), 0, cfg)
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}

// ── Login ──

func TestLogin_EphemeralPushesPeerConfiguration(t *testing.T) {
	h := newHarness(t, Options{})
	c := h.client(t, 0)
	users := sdk.MustResolve[sdk.UsersAPI](c)
	peer := sdk.MustResolve[sdk.PeerConfigurationAPI](c)

	var states []models.GameConnectionState
	users.SubscribeConnectionState(func(ch models.ConnectionStateChange) { states = append(states, ch.State) })

	var received string
	peer.Subscribe(func(cfg string) { received = cfg })

	require.NoError(t, users.Login(testCtx(t)))

	assert.Equal(t, models.Authenticated, users.ConnectionState())
	assert.NotEmpty(t, users.UserID())
	assert.Equal(t, DefaultPeerConfiguration, received)
	assert.Equal(t, DefaultPeerConfiguration, peer.Current())
	assert.Equal(t, []models.GameConnectionState{models.Connecting, models.Authenticated}, states)
	assert.Equal(t, []string{users.UserID()}, h.srv.ConnectedUsers())
}

func TestLogin_Idempotent(t *testing.T) {
	h := newHarness(t, Options{})
	_, users := h.login(t, 0)
	id := users.UserID()

	require.NoError(t, users.Login(testCtx(t)))
	assert.Equal(t, id, users.UserID())
}

func TestLogin_UnknownProvider(t *testing.T) {
	h := newHarness(t, Options{})
	users := sdk.MustResolve[sdk.UsersAPI](h.client(t, 0))
	users.SetCredentialsCallback(func(context.Context) (models.AuthParameters, error) {
		return models.AuthParameters{Type: "steam"}, nil
	})

	err := users.Login(testCtx(t))

	msg, ok := sdk.ClientErrorMessage(err)
	require.True(t, ok)
	assert.Equal(t, AuthProviderNotFound, msg)
	assert.Equal(t, models.Disconnected, users.ConnectionState())
}

func TestLogin_CredentialsError(t *testing.T) {
	h := newHarness(t, Options{})
	users := sdk.MustResolve[sdk.UsersAPI](h.client(t, 0))
	boom := errors.New("no device")
	users.SetCredentialsCallback(func(context.Context) (models.AuthParameters, error) {
		return models.AuthParameters{}, boom
	})

	assert.ErrorIs(t, users.Login(testCtx(t)), boom)
}

func TestLogout_FreesSession(t *testing.T) {
	h := newHarness(t, Options{})
	_, users := h.login(t, 0)

	require.NoError(t, users.Logout(testCtx(t)))
	assert.Equal(t, models.Disconnected, users.ConnectionState())
	assert.Empty(t, users.UserID())
	assert.Empty(t, h.srv.ConnectedUsers())
}

func TestRelease_DisconnectsClient(t *testing.T) {
	h := newHarness(t, Options{})
	c, users := h.login(t, 0)

	require.NoError(t, h.factory.ReleaseClient(c.ID()))
	assert.Empty(t, h.srv.ConnectedUsers())
	assert.ErrorIs(t, users.Login(testCtx(t)), sdk.ErrClientReleased)
}

// ── Admission queue ──

func TestAdmission_QueuesAboveLimit(t *testing.T) {
	h := newHarness(t, Options{CCULimit: 1})
	_, first := h.login(t, 0)

	second := h.client(t, 1)
	users := sdk.MustResolve[sdk.UsersAPI](second)
	queue := sdk.MustResolve[sdk.ConnectionQueueAPI](second)

	var wg sync.WaitGroup
	var loginErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		loginErr = users.Login(testCtx(t))
	}()

	require.Eventually(t, queue.IsInQueue, time.Second, time.Millisecond)
	assert.Equal(t, 1, queue.Rank())
	assert.Equal(t, 1, h.srv.QueueLength())
	assert.Equal(t, models.Connecting, users.ConnectionState())

	require.NoError(t, first.Logout(testCtx(t)))
	wg.Wait()

	require.NoError(t, loginErr)
	assert.False(t, queue.IsInQueue())
	assert.Zero(t, queue.Rank())
	assert.Equal(t, models.Authenticated, users.ConnectionState())
}

func TestAdmission_RankIsFIFO(t *testing.T) {
	h := newHarness(t, Options{CCULimit: 1})
	h.login(t, 0)

	queues := make([]sdk.ConnectionQueueAPI, 0, 2)
	for id := 1; id <= 2; id++ {
		c := h.client(t, id)
		users := sdk.MustResolve[sdk.UsersAPI](c)
		q := sdk.MustResolve[sdk.ConnectionQueueAPI](c)
		queues = append(queues, q)

		go func() { _ = users.Login(testCtx(t)) }()
		require.Eventually(t, q.IsInQueue, time.Second, time.Millisecond)
	}

	assert.Equal(t, 1, queues[0].Rank())
	assert.Equal(t, 2, queues[1].Rank())
}

func TestAdmission_CancelLeavesQueue(t *testing.T) {
	h := newHarness(t, Options{CCULimit: 1})
	h.login(t, 0)

	users := sdk.MustResolve[sdk.UsersAPI](h.client(t, 1))
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := users.Login(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Zero(t, h.srv.QueueLength())
	assert.Equal(t, models.Disconnected, users.ConnectionState())
}

// ── Kick ──

func TestKick_WithoutReconnect(t *testing.T) {
	h := newHarness(t, Options{})
	_, users := h.login(t, 0)
	users.SetReconnectFilter(func(string) bool { return false })

	var last models.ConnectionStateChange
	users.SubscribeConnectionState(func(ch models.ConnectionStateChange) { last = ch })

	require.NoError(t, h.srv.KickUser(users.UserID(), "test"))

	assert.Equal(t, models.Disconnected, users.ConnectionState())
	assert.Equal(t, models.ConnectionStateChange{State: models.Disconnected, Reason: "test"}, last)
}

func TestKick_ReconnectFilterAccepts(t *testing.T) {
	h := newHarness(t, Options{})
	_, users := h.login(t, 0)
	before := users.UserID()
	users.SetReconnectFilter(func(reason string) bool { return reason == "maintenance" })

	require.NoError(t, h.srv.KickUser(before, "maintenance"))

	require.Eventually(t, func() bool {
		return users.ConnectionState() == models.Authenticated
	}, time.Second, time.Millisecond)
	assert.NotEqual(t, before, users.UserID())
}

func TestKick_UnknownUser(t *testing.T) {
	h := newHarness(t, Options{})
	assert.ErrorIs(t, h.srv.KickUser("nobody", "test"), sdk.ErrUserNotFound)
}

// ── Notifications ──

func TestNotify_AllUsers(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	h := newHarness(t, Options{Now: func() time.Time { return now }})
	c, users := h.login(t, 0)

	var got []models.InAppNotification
	sdk.MustResolve[sdk.NotificationsAPI](c).Subscribe(func(n []models.InAppNotification) {
		got = append(got, n...)
	})

	n, err := h.srv.Notify(models.NotificationRequest{
		UserIDs: models.AllUsers,
		Type:    "customType",
		Message: "A notification message",
		Data:    "custom_data",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.Len(t, got, 1)
	assert.Equal(t, users.UserID(), got[0].UserID)
	assert.Equal(t, "A notification message", got[0].Message)
	assert.Equal(t, "custom_data", got[0].Data)
	assert.Equal(t, now, got[0].CreatedOn)
	assert.NotEmpty(t, got[0].ID)
}

func TestNotify_ExplicitList(t *testing.T) {
	h := newHarness(t, Options{})
	_, a := h.login(t, 0)
	_, b := h.login(t, 1)

	n, err := h.srv.Notify(models.NotificationRequest{UserIDs: a.UserID() + ", " + b.UserID() + ",ghost", Type: "t"})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = h.srv.Notify(models.NotificationRequest{UserIDs: "ghost", Type: "t"})
	assert.ErrorIs(t, err, sdk.ErrUserNotFound)
}

// ── Requests ──

func TestSendRequestToUser(t *testing.T) {
	h := newHarness(t, Options{})
	_, caller := h.login(t, 0)
	_, callee := h.login(t, 1)

	callee.SetOperationHandler("echo", func(_ context.Context, req sdk.OperationRequest) (any, error) {
		assert.Equal(t, caller.UserID(), req.OriginID)
		assert.JSONEq(t, `"ping"`, string(req.Payload))
		return "pong", nil
	})

	var answer string
	require.NoError(t, caller.SendRequestToUser(testCtx(t), callee.UserID(), "echo", "ping", &answer))
	assert.Equal(t, "pong", answer)

	err := caller.SendRequestToUser(testCtx(t), callee.UserID(), "missing", nil, nil)
	assert.ErrorIs(t, err, sdk.ErrOperationNotFound)

	err = caller.SendRequestToUser(testCtx(t), "ghost", "echo", nil, nil)
	assert.ErrorIs(t, err, sdk.ErrUserNotFound)
}

func TestSendRequestToUser_HandlerError(t *testing.T) {
	h := newHarness(t, Options{})
	_, caller := h.login(t, 0)
	_, callee := h.login(t, 1)

	boom := errors.New("refused")
	callee.SetOperationHandler("op", func(context.Context, sdk.OperationRequest) (any, error) {
		return nil, boom
	})

	err := caller.SendRequestToUser(testCtx(t), callee.UserID(), "op", nil, nil)
	assert.ErrorIs(t, err, boom)
}

// ── Dispatch ──

func TestEvents_PostedThroughDispatcher(t *testing.T) {
	srv := NewServer(Options{})
	defer srv.Close()

	d := dispatch.NewMainThreadDispatcher()
	f := sdk.NewClientFactory(srv, nil)
	f.SetDefaultConfigurator(func(int) (*sdk.Configuration, error) {
		cfg := sdk.NewConfiguration("http://localhost", DefaultAccount, DefaultApplication).AddPlugin(sdk.UsersPlugin())
		cfg.Dispatcher = d
		return cfg, nil
	})
	defer f.ReleaseAll()

	c, err := f.GetClient(context.Background(), 0)
	require.NoError(t, err)
	users := sdk.MustResolve[sdk.UsersAPI](c)

	var events int
	users.SubscribeConnectionState(func(models.ConnectionStateChange) { events++ })

	require.NoError(t, users.Login(testCtx(t)))
	assert.Zero(t, events)
	assert.Equal(t, 2, d.Pending())

	assert.Equal(t, 2, d.Update(time.Second))
	assert.Equal(t, 2, events)
}
