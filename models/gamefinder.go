// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// GameFoundEvent is raised by the game finder when a match was formed.
type GameFoundEvent struct {
	GameFinderName string
	Data           GameFinderResponse
}

// GameFinderResponse holds what a player needs to join the game session.
type GameFinderResponse struct {
	// ConnectionToken is presented to ConnectToGameSession.
	ConnectionToken string `json:"connectionToken"`
	// GameSessionID identifies the created game session.
	GameSessionID string `json:"gameSessionId"`
}

// GameSessionConnectionParameters describes the established game session link.
//
// On the host the parameters are returned immediately. On other players they
// are returned once the host called SetPlayerReady, and Endpoint holds the
// address datagrams should be sent to.
type GameSessionConnectionParameters struct {
	IsHost   bool   `json:"isHost"`
	Endpoint string `json:"endpoint,omitempty"`
	HostID   string `json:"hostId"`
}
