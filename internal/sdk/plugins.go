// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sdk

// Plugin installs an API family in a client's resolver.
type Plugin interface {
	Name() string
	Install(r *Resolver, conn Connection)
}

type plugin struct {
	name    string
	install func(r *Resolver, conn Connection)
}

func (p plugin) Name() string                         { return p.name }
func (p plugin) Install(r *Resolver, conn Connection) { p.install(r, conn) }

// Plugin names.
const (
	PluginUsers             = "users"
	PluginParty             = "party"
	PluginGameFinder        = "gamefinder"
	PluginGameSessions      = "gamesessions"
	PluginNotifications     = "notifications"
	PluginPeerConfiguration = "peerconfiguration"
	PluginConnectionQueue   = "connectionqueue"
)

func UsersPlugin() Plugin {
	return plugin{PluginUsers, func(r *Resolver, c Connection) { Register(r, c.Users()) }}
}

func PartyPlugin() Plugin {
	return plugin{PluginParty, func(r *Resolver, c Connection) { Register(r, c.Party()) }}
}

func GameFinderPlugin() Plugin {
	return plugin{PluginGameFinder, func(r *Resolver, c Connection) { Register(r, c.GameFinder()) }}
}

func GameSessionsPlugin() Plugin {
	return plugin{PluginGameSessions, func(r *Resolver, c Connection) { Register(r, c.GameSessions()) }}
}

func NotificationsPlugin() Plugin {
	return plugin{PluginNotifications, func(r *Resolver, c Connection) { Register(r, c.Notifications()) }}
}

func PeerConfigurationPlugin() Plugin {
	return plugin{PluginPeerConfiguration, func(r *Resolver, c Connection) { Register(r, c.PeerConfiguration()) }}
}

func ConnectionQueuePlugin() Plugin {
	return plugin{PluginConnectionQueue, func(r *Resolver, c Connection) { Register(r, c.ConnectionQueue()) }}
}

// PluginByName returns the built-in plugin called name.
func PluginByName(name string) (Plugin, bool) {
	switch name {
	case PluginUsers:
		return UsersPlugin(), true
	case PluginParty:
		return PartyPlugin(), true
	case PluginGameFinder:
		return GameFinderPlugin(), true
	case PluginGameSessions:
		return GameSessionsPlugin(), true
	case PluginNotifications:
		return NotificationsPlugin(), true
	case PluginPeerConfiguration:
		return PeerConfigurationPlugin(), true
	case PluginConnectionQueue:
		return ConnectionQueuePlugin(), true
	}
	return nil, false
}

// AllPlugins returns every built-in plugin.
func AllPlugins() []Plugin {
	return []Plugin{
		UsersPlugin(),
		PartyPlugin(),
		GameFinderPlugin(),
		GameSessionsPlugin(),
		NotificationsPlugin(),
		PeerConfigurationPlugin(),
		ConnectionQueuePlugin(),
	}
}
