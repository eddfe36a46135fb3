// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package scenario

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// Func is the body of a scenario.
type Func func(ctx context.Context, env *Env) error

// Scenario is a named scripted sequence.
type Scenario struct {
	Name        string
	Description string
	// CCULimit is the admission limit the backend must enforce; zero keeps
	// the configured one.
	CCULimit int
	Run      Func
}

// Result is the outcome of one scenario.
type Result struct {
	Name      string        `json:"name"`
	Succeeded bool          `json:"succeeded"`
	Duration  time.Duration `json:"duration"`
	Err       error         `json:"-"`
}

// Error returns the failure message or an empty string.
func (r Result) Error() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// Registry indexes scenarios by name.
type Registry struct {
	mu        sync.RWMutex
	scenarios map[string]Scenario
}

// NewRegistry returns a registry holding scenarios.
func NewRegistry(scenarios ...Scenario) (*Registry, error) {
	r := &Registry{scenarios: make(map[string]Scenario, len(scenarios))}
	for _, s := range scenarios {
		if err := r.Register(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds s.
func (r *Registry) Register(s Scenario) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.scenarios[s.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateScenario, s.Name)
	}
	r.scenarios[s.Name] = s
	return nil
}

// Lookup returns the scenario registered under name.
func (r *Registry) Lookup(name string) (Scenario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.scenarios[name]
	if !ok {
		return Scenario{}, fmt.Errorf("%w: %s", ErrUnknownScenario, name)
	}
	return s, nil
}

// Names returns the registered names sorted alphabetically.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.scenarios))
	for name := range r.scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select resolves names in order. No names selects every scenario.
func (r *Registry) Select(names []string) ([]Scenario, error) {
	if len(names) == 0 {
		names = r.Names()
	}
	out := make([]Scenario, 0, len(names))
	for _, name := range names {
		s, err := r.Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// All returns the built-in scenarios.
func All() []Scenario {
	return []Scenario{
		{Name: "authenticate", Description: "ephemeral login", Run: Authenticate},
		{Name: "connect", Description: "connect to the test scene", Run: Connect},
		{Name: "scene-not-found", Description: "connecting to a missing scene fails", Run: SceneNotFound},
		{Name: "route-not-found", Description: "sending to a missing route fails", Run: RouteNotFound},
		{Name: "reject-connection", Description: "the rejection scene refuses with \"reject\"", Run: RejectConnection},
		{Name: "server-force-disconnect", Description: "the server disconnects the scene with reason \"test\"", Run: ServerForceDisconnect},
		{Name: "app-global-function", Description: "count S2S scenes per host", Run: AppGlobalFunction},
		{Name: "same-scene-s2s", Description: "echo through a same scene S2S call", Run: SameSceneS2S},
		{Name: "s2s", Description: "aggregate DTOs from S2S scenes", Run: S2S},
		{Name: "create-party", Description: "a single party joined event", Run: CreateParty},
		{Name: "join-party-with-code", Description: "a second client joins by invitation code", Run: JoinPartyWithCode},
		{Name: "find-game", Description: "two ready parties are matched", Run: FindGame},
		{Name: "join-game-session", Description: "two matched clients join the game session", Run: JoinGameSession},
		{Name: "kick", Description: "an admin kick disconnects the user", Run: Kick},
		{Name: "receive-notification", Description: "an admin notification reaches the user", Run: ReceiveNotification},
		{Name: "receive-peer-configuration", Description: "peer configuration is pushed after login", Run: ReceivePeerConfiguration},
		{Name: "server-to-client-request", Description: "the server runs client operations", Run: ServerToClientRequest},
		{Name: "client-to-client-request", Description: "a client runs another client's operation", Run: ClientToClientRequest},
		{Name: "authentication-queue", Description: "logins above the CCU limit wait in the queue", CCULimit: QueueCCULimit, Run: AuthenticationQueue},
	}
}

// DefaultRegistry returns a registry with All scenarios.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(All()...)
	if err != nil {
		panic(err)
	}
	return r
}
