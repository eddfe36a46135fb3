// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loopback

import (
	"crypto/rand"
	"time"

	"github.com/MKhiriev/gameflow-harness/internal/logger"
)

// Scene ids and routes of the test application.
const (
	SceneTest      = "test-scene"
	SceneRejection = "rejection-test-scene"

	// S2SSceneTemplate is the template of the private scenes counted by
	// RouteAppGlobalFunction.
	S2SSceneTemplate = "template-s2s"
	S2SSceneCount    = 10
	S2SItemsPerScene = 10

	RouteServerForceDisconnect = "Test.ServerForceDisconnect"
	RouteSameSceneS2S          = "Test.TestSameSceneS2S"
	RouteAppGlobalFunction     = "Test.TestAppGlobalFunction"
	RouteS2S                   = "Test.TestS2S"
	RouteSendRequest           = "UsersTest.TestSendRequest"
	RouteSendRequestGeneric    = "UsersTest.TestSendRequestGeneric"
	RouteSendRequestGeneric2   = "UsersTest.TestSendRequestGeneric2"

	// ForceDisconnectReason is the reason sent by RouteServerForceDisconnect.
	ForceDisconnectReason = "test"
	// RejectionMessage is the error raised when connecting to SceneRejection.
	RejectionMessage = "reject"
	// AuthProviderNotFound is raised for non ephemeral logins.
	AuthProviderNotFound = "auth provider not found"
)

// GameFinderConfig configures a quick-queue game finder.
type GameFinderConfig struct {
	Teams    int
	TeamSize int
}

// Options configure a Server. Zero values are replaced by defaults.
type Options struct {
	Account     string
	Application string
	// CCULimit caps the number of authenticated users. Zero disables the
	// admission queue.
	CCULimit          int
	MaxPartySize      int
	PeerConfiguration string
	GameFinders       map[string]GameFinderConfig
	TokenIssuer       string
	TokenSecret       []byte
	TokenTTL          time.Duration
	Logger            *logger.Logger
	Now               func() time.Time
}

// Defaults of the test application.
const (
	DefaultAccount           = "tests"
	DefaultApplication       = "test"
	DefaultGameFinder        = "matchmaking"
	DefaultMaxPartySize      = 4
	DefaultPeerConfiguration = `{"region":"local","maxPlayers":2}`
	DefaultTokenIssuer       = "loopback"
	DefaultTokenTTL          = 5 * time.Minute
)

// DefaultGameFinders is the "matchmaking" quick queue: 2 teams of 1 player.
func DefaultGameFinders() map[string]GameFinderConfig {
	return map[string]GameFinderConfig{
		DefaultGameFinder: {Teams: 2, TeamSize: 1},
	}
}

func (o *Options) applyDefaults() {
	if o.Account == "" {
		o.Account = DefaultAccount
	}
	if o.Application == "" {
		o.Application = DefaultApplication
	}
	if o.MaxPartySize <= 0 {
		o.MaxPartySize = DefaultMaxPartySize
	}
	if o.PeerConfiguration == "" {
		o.PeerConfiguration = DefaultPeerConfiguration
	}
	if len(o.GameFinders) == 0 {
		o.GameFinders = DefaultGameFinders()
	}
	if o.TokenIssuer == "" {
		o.TokenIssuer = DefaultTokenIssuer
	}
	if len(o.TokenSecret) == 0 {
		o.TokenSecret = make([]byte, 32)
		_, _ = rand.Read(o.TokenSecret)
	}
	if o.TokenTTL <= 0 {
		o.TokenTTL = DefaultTokenTTL
	}
	if o.Logger == nil {
		o.Logger = logger.Nop()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
}
