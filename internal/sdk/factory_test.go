// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sdk_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/gameflow-harness/internal/mock"
	"github.com/MKhiriev/gameflow-harness/internal/sdk"
)

func testConfigurator(plugins ...sdk.Plugin) sdk.Configurator {
	return func(int) (*sdk.Configuration, error) {
		cfg := sdk.NewConfiguration("http://localhost", "tests", "test")
		for _, p := range plugins {
			cfg.AddPlugin(p)
		}
		return cfg, nil
	}
}

// ── GetClient ──

func TestGetClient_CreatesOncePerID(t *testing.T) {
	ctrl := gomock.NewController(t)
	driver := mock.NewMockDriver(ctrl)
	conn := mock.NewMockConnection(ctrl)
	users := mock.NewMockUsersAPI(ctrl)

	driver.EXPECT().Connect(gomock.Any(), 3, gomock.Any()).Return(conn, nil).Times(1)
	conn.EXPECT().Users().Return(users).Times(1)

	f := sdk.NewClientFactory(driver, nil)
	f.SetDefaultConfigurator(testConfigurator(sdk.UsersPlugin()))

	first, err := f.GetClient(context.Background(), 3)
	require.NoError(t, err)
	second, err := f.GetClient(context.Background(), 3)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 3, first.ID())
	assert.Equal(t, []int{3}, f.IDs())

	resolved, err := sdk.Resolve[sdk.UsersAPI](first)
	require.NoError(t, err)
	assert.Same(t, users, resolved)
}

func TestGetClient_PerIDConfiguratorWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	driver := mock.NewMockDriver(ctrl)
	conn := mock.NewMockConnection(ctrl)

	driver.EXPECT().Connect(gomock.Any(), 1, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int, cfg *sdk.Configuration) (sdk.Connection, error) {
			assert.Equal(t, "http://other", cfg.Endpoint)
			return conn, nil
		})

	f := sdk.NewClientFactory(driver, nil)
	f.SetDefaultConfigurator(testConfigurator())
	f.SetConfig(1, func(int) (*sdk.Configuration, error) {
		return sdk.NewConfiguration("http://other", "tests", "test"), nil
	})

	_, err := f.GetClient(context.Background(), 1)
	require.NoError(t, err)
}

func TestGetClient_NoConfigurator(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := sdk.NewClientFactory(mock.NewMockDriver(ctrl), nil)

	_, err := f.GetClient(context.Background(), 0)
	assert.ErrorIs(t, err, sdk.ErrNoConfigurator)
}

func TestGetClient_ConfiguratorError(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := sdk.NewClientFactory(mock.NewMockDriver(ctrl), nil)
	boom := errors.New("boom")
	f.SetDefaultConfigurator(func(int) (*sdk.Configuration, error) { return nil, boom })

	_, err := f.GetClient(context.Background(), 0)
	assert.ErrorIs(t, err, boom)
}

func TestGetClient_InvalidConfiguration(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := sdk.NewClientFactory(mock.NewMockDriver(ctrl), nil)
	f.SetDefaultConfigurator(func(int) (*sdk.Configuration, error) {
		return sdk.NewConfiguration("", "tests", "test"), nil
	})

	_, err := f.GetClient(context.Background(), 0)
	assert.ErrorIs(t, err, sdk.ErrInvalidConfiguration)
}

func TestGetClient_DriverError(t *testing.T) {
	ctrl := gomock.NewController(t)
	driver := mock.NewMockDriver(ctrl)
	boom := errors.New("unreachable")
	driver.EXPECT().Connect(gomock.Any(), 0, gomock.Any()).Return(nil, boom)

	f := sdk.NewClientFactory(driver, nil)
	f.SetDefaultConfigurator(testConfigurator())

	_, err := f.GetClient(context.Background(), 0)
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, f.IDs())
}

func TestGetClient_SlowConnectDoesNotBlockOtherIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	driver := mock.NewMockDriver(ctrl)
	slow := mock.NewMockConnection(ctrl)
	fast := mock.NewMockConnection(ctrl)

	started := make(chan struct{})
	release := make(chan struct{})
	driver.EXPECT().Connect(gomock.Any(), 1, gomock.Any()).
		DoAndReturn(func(context.Context, int, *sdk.Configuration) (sdk.Connection, error) {
			close(started)
			<-release
			return slow, nil
		})
	driver.EXPECT().Connect(gomock.Any(), 2, gomock.Any()).Return(fast, nil)

	f := sdk.NewClientFactory(driver, nil)
	f.SetDefaultConfigurator(testConfigurator())

	slowDone := make(chan error, 1)
	go func() {
		_, err := f.GetClient(context.Background(), 1)
		slowDone <- err
	}()
	<-started

	fastDone := make(chan error, 1)
	go func() {
		_, err := f.GetClient(context.Background(), 2)
		fastDone <- err
	}()

	select {
	case err := <-fastDone:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		close(release)
		t.Fatal("GetClient(2) blocked behind a pending connect")
	}

	close(release)
	require.NoError(t, <-slowDone)
	assert.Equal(t, []int{1, 2}, f.IDs())
}

func TestGetClient_RaceForSameIDClosesLoser(t *testing.T) {
	ctrl := gomock.NewController(t)
	driver := mock.NewMockDriver(ctrl)
	loser := mock.NewMockConnection(ctrl)
	winner := mock.NewMockConnection(ctrl)

	started := make(chan struct{})
	release := make(chan struct{})
	gomock.InOrder(
		driver.EXPECT().Connect(gomock.Any(), 5, gomock.Any()).
			DoAndReturn(func(context.Context, int, *sdk.Configuration) (sdk.Connection, error) {
				close(started)
				<-release
				return loser, nil
			}),
		driver.EXPECT().Connect(gomock.Any(), 5, gomock.Any()).Return(winner, nil),
	)
	loser.EXPECT().Close().Return(nil)

	f := sdk.NewClientFactory(driver, nil)
	f.SetDefaultConfigurator(testConfigurator())

	late := make(chan *sdk.Client, 1)
	go func() {
		c, err := f.GetClient(context.Background(), 5)
		assert.NoError(t, err)
		late <- c
	}()
	<-started

	first, err := f.GetClient(context.Background(), 5)
	require.NoError(t, err)
	close(release)

	assert.Same(t, first, <-late)
	assert.Equal(t, []int{5}, f.IDs())
}

// ── Release ──

func TestReleaseClient_ClosesAndForgets(t *testing.T) {
	ctrl := gomock.NewController(t)
	driver := mock.NewMockDriver(ctrl)
	conn := mock.NewMockConnection(ctrl)
	users := mock.NewMockUsersAPI(ctrl)

	driver.EXPECT().Connect(gomock.Any(), 0, gomock.Any()).Return(conn, nil)
	conn.EXPECT().Users().Return(users)
	conn.EXPECT().Close().Return(nil).Times(1)

	f := sdk.NewClientFactory(driver, nil)
	f.SetDefaultConfigurator(testConfigurator(sdk.UsersPlugin()))

	c, err := f.GetClient(context.Background(), 0)
	require.NoError(t, err)

	require.NoError(t, f.ReleaseClient(0))
	require.NoError(t, f.ReleaseClient(0))
	require.NoError(t, f.ReleaseClient(42))

	assert.True(t, c.Released())
	_, err = sdk.Resolve[sdk.UsersAPI](c)
	assert.ErrorIs(t, err, sdk.ErrClientReleased)
	_, err = c.ConnectToScene(context.Background(), "test-scene")
	assert.ErrorIs(t, err, sdk.ErrClientReleased)
}

func TestReleaseAll_JoinsErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	driver := mock.NewMockDriver(ctrl)
	ok := mock.NewMockConnection(ctrl)
	failing := mock.NewMockConnection(ctrl)
	boom := errors.New("close failed")

	driver.EXPECT().Connect(gomock.Any(), 0, gomock.Any()).Return(ok, nil)
	driver.EXPECT().Connect(gomock.Any(), 1, gomock.Any()).Return(failing, nil)
	ok.EXPECT().Close().Return(nil)
	failing.EXPECT().Close().Return(boom)

	f := sdk.NewClientFactory(driver, nil)
	f.SetDefaultConfigurator(testConfigurator())

	for id := range 2 {
		_, err := f.GetClient(context.Background(), id)
		require.NoError(t, err)
	}

	assert.ErrorIs(t, f.ReleaseAll(), boom)
	assert.Empty(t, f.IDs())
}

// ── Resolve ──

func TestResolve_MissingPlugin(t *testing.T) {
	ctrl := gomock.NewController(t)
	driver := mock.NewMockDriver(ctrl)
	driver.EXPECT().Connect(gomock.Any(), 0, gomock.Any()).Return(mock.NewMockConnection(ctrl), nil)

	f := sdk.NewClientFactory(driver, nil)
	f.SetDefaultConfigurator(testConfigurator())

	c, err := f.GetClient(context.Background(), 0)
	require.NoError(t, err)

	_, err = sdk.Resolve[sdk.PartyAPI](c)
	assert.ErrorIs(t, err, sdk.ErrNotRegistered)
	assert.Panics(t, func() { sdk.MustResolve[sdk.GameFinderAPI](c) })

	self, err := sdk.Resolve[*sdk.Client](c)
	require.NoError(t, err)
	assert.Same(t, c, self)
}

func TestAllPlugins_RegisterEveryAPI(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn := mock.NewMockConnection(ctrl)
	conn.EXPECT().Users().Return(mock.NewMockUsersAPI(ctrl))
	conn.EXPECT().Party().Return(mock.NewMockPartyAPI(ctrl))
	conn.EXPECT().GameFinder().Return(mock.NewMockGameFinderAPI(ctrl))
	conn.EXPECT().GameSessions().Return(mock.NewMockGameSessionsAPI(ctrl))
	conn.EXPECT().Notifications().Return(mock.NewMockNotificationsAPI(ctrl))
	conn.EXPECT().PeerConfiguration().Return(mock.NewMockPeerConfigurationAPI(ctrl))
	conn.EXPECT().ConnectionQueue().Return(mock.NewMockConnectionQueueAPI(ctrl))

	r := sdk.NewResolver()
	for _, p := range sdk.AllPlugins() {
		p.Install(r, conn)
	}

	_, err := sdk.Lookup[sdk.UsersAPI](r)
	assert.NoError(t, err)
	_, err = sdk.Lookup[sdk.PartyAPI](r)
	assert.NoError(t, err)
	_, err = sdk.Lookup[sdk.GameFinderAPI](r)
	assert.NoError(t, err)
	_, err = sdk.Lookup[sdk.GameSessionsAPI](r)
	assert.NoError(t, err)
	_, err = sdk.Lookup[sdk.NotificationsAPI](r)
	assert.NoError(t, err)
	_, err = sdk.Lookup[sdk.PeerConfigurationAPI](r)
	assert.NoError(t, err)
	_, err = sdk.Lookup[sdk.ConnectionQueueAPI](r)
	assert.NoError(t, err)
}
