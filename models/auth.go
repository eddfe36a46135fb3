// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthTypeEphemeral is the anonymous authentication provider: no user is
// stored in a database, the server issues a fresh identity per login.
const AuthTypeEphemeral = "ephemeral"

// AuthParameters is returned by the credentials callback whenever the SDK
// needs to (re)authenticate a client.
type AuthParameters struct {
	// Type names the server-side auth provider (e.g. "ephemeral").
	Type string `json:"type"`
	// Parameters carries provider-specific values such as a device identifier.
	Parameters map[string]string `json:"parameters,omitempty"`
}

// ParamDeviceIdentifier names the device id among the ephemeral parameters.
const ParamDeviceIdentifier = "deviceidentifier"

// EphemeralAuth returns parameters for the ephemeral provider.
func EphemeralAuth() AuthParameters {
	return AuthParameters{Type: AuthTypeEphemeral}
}

// EphemeralDeviceAuth returns ephemeral parameters naming device.
func EphemeralDeviceAuth(device string) AuthParameters {
	return AuthParameters{
		Type:       AuthTypeEphemeral,
		Parameters: map[string]string{ParamDeviceIdentifier: device},
	}
}

// GameConnectionState is the authentication-level state of a client.
type GameConnectionState int

const (
	Disconnected GameConnectionState = iota
	Connecting
	Authenticated
	Disconnecting
	Reconnecting
)

func (s GameConnectionState) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Connecting:
		return "connecting"
	case Authenticated:
		return "authenticated"
	case Disconnecting:
		return "disconnecting"
	case Reconnecting:
		return "reconnecting"
	default:
		return "unknown"
	}
}

// ConnectionStateChange is delivered to connection state subscribers.
type ConnectionStateChange struct {
	State  GameConnectionState
	Reason string
}
