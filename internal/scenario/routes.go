// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package scenario

import "time"

// Scenes and routes of the test application.
const (
	SceneTest      = "test-scene"
	SceneRejection = "rejection-test-scene"
	SceneMissing   = "missing-scene"
	RouteMissing   = "missing-route"

	RouteServerForceDisconnect = "Test.ServerForceDisconnect"
	RouteSameSceneS2S          = "Test.TestSameSceneS2S"
	RouteAppGlobalFunction     = "Test.TestAppGlobalFunction"
	RouteS2S                   = "Test.TestS2S"
	RouteSendRequest           = "UsersTest.TestSendRequest"
	RouteSendRequestGeneric    = "UsersTest.TestSendRequestGeneric"
	RouteSendRequestGeneric2   = "UsersTest.TestSendRequestGeneric2"

	GameFinderName = "matchmaking"

	// S2SResultCount is the number of DTOs returned by RouteS2S: 10 scenes
	// answering 10 items each.
	S2SResultCount = 100

	ForceDisconnectReason = "test"
	RejectionMessage      = "reject"
	KickReason            = "test"

	NotificationType    = "customType"
	NotificationMessage = "A notification message"
	NotificationData    = "custom_data"

	// QueueCCULimit is the admission limit enforced during
	// AuthenticationQueue; QueueAgents clients compete for it.
	QueueCCULimit = 2
	QueueAgents   = QueueCCULimit + 3
	QueueHold     = 150 * time.Millisecond

	forceDisconnectDeadline = 400 * time.Millisecond
)
