// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package admission

import (
	"sync"
	"time"

	"github.com/MKhiriev/gameflow-harness/internal/sdk"
	"github.com/MKhiriev/gameflow-harness/models"
)

// State is the lifecycle of an agent as seen by the tracker.
type State int

const (
	InQueue State = iota
	Connected
	Disconnecting
	Disconnected
)

func (s State) String() string {
	switch s {
	case InQueue:
		return "in_queue"
	case Connected:
		return "connected"
	case Disconnecting:
		return "disconnecting"
	case Disconnected:
		return "disconnected"
	default:
		return "unknown"
	}
}

// Agent is one simulated client.
type Agent struct {
	ID    int
	Users sdk.UsersAPI
	Queue sdk.ConnectionQueueAPI
	// Release is invoked once when the agent leaves the Connected state.
	Release func()

	State       State
	ConnectedAt time.Time

	everConnected bool
}

// Snapshot is a point-in-time copy of the tracker counters.
type Snapshot struct {
	Agents        int
	Queued        int
	Connected     int
	Disconnecting int
	Disconnected  int
	EverConnected int
	MaxConcurrent int
	MaxQueueDepth int
}

// Tracker advances agent states on every Tick. Tick, Done and Snapshot may
// be called from different goroutines; release funcs run outside the lock.
type Tracker struct {
	hold time.Duration

	mu            sync.Mutex
	agents        []*Agent
	maxConcurrent int
	maxQueueDepth int
}

// NewTracker returns a tracker that keeps each agent connected for hold
// before releasing it.
func NewTracker(hold time.Duration) *Tracker {
	return &Tracker{hold: hold}
}

// Add registers an agent in the InQueue state.
func (t *Tracker) Add(id int, users sdk.UsersAPI, queue sdk.ConnectionQueueAPI, release func()) *Agent {
	a := &Agent{ID: id, Users: users, Queue: queue, Release: release, State: InQueue}

	t.mu.Lock()
	t.agents = append(t.agents, a)
	t.mu.Unlock()
	return a
}

// Tick inspects every agent once.
func (t *Tracker) Tick(now time.Time) {
	var releases []func()

	t.mu.Lock()
	queued, concurrent, maxRank := 0, 0, 0
	for _, a := range t.agents {
		switch a.State {
		case InQueue:
			if a.Queue.IsInQueue() {
				queued++
				if r := a.Queue.Rank(); r > maxRank {
					maxRank = r
				}
				break
			}
			if a.Users.ConnectionState() == models.Authenticated {
				a.State = Connected
				a.ConnectedAt = now
				a.everConnected = true
				concurrent++
			}
		case Connected:
			// still authenticated until its release runs below
			concurrent++
			if now.Sub(a.ConnectedAt) >= t.hold {
				a.State = Disconnecting
				if a.Release != nil {
					releases = append(releases, a.Release)
				}
			}
		case Disconnecting:
			if a.Users.ConnectionState() == models.Disconnected {
				a.State = Disconnected
			}
		}
	}

	t.maxConcurrent = max(t.maxConcurrent, concurrent)
	t.maxQueueDepth = max(t.maxQueueDepth, queued, maxRank)
	t.mu.Unlock()

	for _, release := range releases {
		release()
	}
}

// Done reports whether every agent reached Disconnected.
func (t *Tracker) Done() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, a := range t.agents {
		if a.State != Disconnected {
			return false
		}
	}
	return true
}

// Snapshot returns the current counters.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := Snapshot{
		Agents:        len(t.agents),
		MaxConcurrent: t.maxConcurrent,
		MaxQueueDepth: t.maxQueueDepth,
	}
	for _, a := range t.agents {
		switch a.State {
		case InQueue:
			s.Queued++
		case Connected:
			s.Connected++
		case Disconnecting:
			s.Disconnecting++
		case Disconnected:
			s.Disconnected++
		}
		if a.everConnected {
			s.EverConnected++
		}
	}
	return s
}
