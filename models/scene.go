// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SceneState is the connection state of a single scene.
type SceneState int

const (
	SceneDisconnected SceneState = iota
	SceneConnecting
	SceneConnected
	SceneDisconnecting
)

func (s SceneState) String() string {
	switch s {
	case SceneConnecting:
		return "connecting"
	case SceneConnected:
		return "connected"
	case SceneDisconnecting:
		return "disconnecting"
	default:
		return "disconnected"
	}
}

// SceneStateChange is delivered to scene state subscribers.
type SceneStateChange struct {
	State  SceneState
	Reason string
}

// TestDto is the value streamed by the test server S2S routes.
type TestDto struct {
	Value   string `json:"value"`
	Boolean bool   `json:"boolean"`
	Number  int    `json:"number"`
}
