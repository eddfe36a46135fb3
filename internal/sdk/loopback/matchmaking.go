// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loopback

import (
	"slices"

	"github.com/MKhiriev/gameflow-harness/internal/task"
	"github.com/MKhiriev/gameflow-harness/internal/utils"
	"github.com/MKhiriev/gameflow-harness/models"
)

// WaitGameFound registers a one-shot waiter resolved by the next match.
func (g gameFinderAPI) WaitGameFound() *task.Task[models.GameFoundEvent] {
	t, c := task.New[models.GameFoundEvent]()

	g.srv.mu.Lock()
	g.gameFoundWaiters = append(g.gameFoundWaiters, c)
	g.srv.mu.Unlock()
	return t
}

// matchmake runs the quick queue of finder: parties are packed first-fit, in
// queue order, into Teams teams of TeamSize players. When every team is full
// a game session is created for the packed parties.
func (s *Server) matchmake(out *outbox, finder string) {
	cfg := s.opts.GameFinders[finder]
	queue := s.queues[finder]

	for {
		teams := make([]int, cfg.Teams)
		var picked []*party

		for _, pt := range queue {
			size := len(pt.members)
			for i := range teams {
				if teams[i]+size <= cfg.TeamSize {
					teams[i] += size
					picked = append(picked, pt)
					break
				}
			}
			if full(teams, cfg.TeamSize) {
				break
			}
		}
		if !full(teams, cfg.TeamSize) {
			break
		}

		queue = slices.DeleteFunc(queue, func(pt *party) bool { return slices.Contains(picked, pt) })
		s.startGame(out, finder, picked)
	}
	s.queues[finder] = queue
}

func full(teams []int, size int) bool {
	for _, n := range teams {
		if n < size {
			return false
		}
	}
	return len(teams) > 0
}

func (s *Server) startGame(out *outbox, finder string, parties []*party) {
	g := &game{
		id:      s.ids.Generate(),
		finder:  finder,
		players: make(map[string]bool),
		members: make(map[*conn]bool),
		ready:   make(chan struct{}),
	}
	s.games[g.id] = g

	for _, pt := range parties {
		for _, m := range pt.members {
			g.players[m.userID] = true
		}
	}

	for _, pt := range parties {
		pt.resetStatus()
		for _, m := range pt.members {
			token, err := utils.GenerateSessionToken(s.opts.TokenIssuer, m.userID, g.id, s.opts.TokenTTL, s.opts.TokenSecret)
			if err != nil {
				s.log.Error().Err(err).Str("user", m.userID).Msg("issue game session token")
				continue
			}

			ev := models.GameFoundEvent{
				GameFinderName: finder,
				Data:           models.GameFinderResponse{ConnectionToken: token, GameSessionID: g.id},
			}
			emit(out, m.cfg.Dispatcher, &m.gameFoundSubs, ev)
			for _, w := range m.gameFoundWaiters {
				out.post(m.cfg.Dispatcher, func() { w.Complete(ev) })
			}
			m.gameFoundWaiters = nil
		}
	}

	s.log.Info().Str("finder", finder).Str("game_session", g.id).Int("players", len(g.players)).Msg("game found")
}
