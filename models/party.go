// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PartyRequest describes the party to create. GameFinderName must match a
// game finder configured on the server (e.g. "matchmaking").
type PartyRequest struct {
	GameFinderName string `json:"gameFinderName"`
	CustomData     string `json:"customData,omitempty"`
}

// PartyUserStatus is a member's readiness. Matchmaking starts once every
// member of a party is Ready.
type PartyUserStatus int

const (
	NotReady PartyUserStatus = iota
	Ready
)

func (s PartyUserStatus) String() string {
	if s == Ready {
		return "ready"
	}
	return "not_ready"
}

// PartyJoined is delivered to party-joined subscribers.
type PartyJoined struct {
	PartyID string
	UserID  string
}
