// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loopback

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/gameflow-harness/internal/sdk"
	"github.com/MKhiriev/gameflow-harness/models"
)

type party struct {
	id         string
	finder     string
	customData string
	code       string
	members    []*conn
	status     map[*conn]models.PartyUserStatus
	data       map[*conn]string
}

func (p *party) allReady() bool {
	for _, m := range p.members {
		if p.status[m] != models.Ready {
			return false
		}
	}
	return len(p.members) > 0
}

func (p *party) resetStatus() {
	for _, m := range p.members {
		p.status[m] = models.NotReady
	}
}

type partyAPI struct{ *conn }

func (p partyAPI) CreatePartyIfNotJoined(ctx context.Context, req models.PartyRequest) error {
	s := p.srv
	var out outbox

	s.mu.Lock()
	if err := p.requireAuth(); err != nil {
		s.mu.Unlock()
		return err
	}
	if p.party != nil {
		s.mu.Unlock()
		return nil
	}
	if _, ok := s.opts.GameFinders[req.GameFinderName]; !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", sdk.ErrGameFinderNotFound, req.GameFinderName)
	}

	pt := &party{
		id:         s.ids.Generate(),
		finder:     req.GameFinderName,
		customData: req.CustomData,
		status:     make(map[*conn]models.PartyUserStatus),
		data:       make(map[*conn]string),
	}
	s.parties[pt.id] = pt
	s.join(&out, pt, p.conn)
	s.mu.Unlock()
	out.flush()

	s.log.Debug().Int("client", p.id).Str("party", pt.id).Msg("party created")
	return ctx.Err()
}

func (p partyAPI) CreateInvitationCode(ctx context.Context) (string, error) {
	s := p.srv
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := p.requireAuth(); err != nil {
		return "", err
	}
	if p.party == nil {
		return "", sdk.ErrNotInParty
	}
	if p.party.code == "" {
		p.party.code = s.ids.ShortCode(8)
		s.codes[p.party.code] = p.party
	}
	return p.party.code, ctx.Err()
}

func (p partyAPI) JoinPartyByInvitationCode(ctx context.Context, code string) error {
	s := p.srv
	var out outbox

	s.mu.Lock()
	if err := p.requireAuth(); err != nil {
		s.mu.Unlock()
		return err
	}
	pt, ok := s.codes[code]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", sdk.ErrInvitationCodeNotFound, code)
	}
	if p.party == pt {
		s.mu.Unlock()
		return nil
	}
	if len(pt.members) >= s.opts.MaxPartySize {
		s.mu.Unlock()
		return sdk.NewClientError("party is full")
	}
	s.leaveParty(p.conn)
	s.unqueue(pt)
	pt.resetStatus()
	s.join(&out, pt, p.conn)
	s.mu.Unlock()
	out.flush()
	return ctx.Err()
}

func (p partyAPI) UpdatePlayerStatus(ctx context.Context, status models.PartyUserStatus) error {
	s := p.srv
	var out outbox

	s.mu.Lock()
	if err := p.requireAuth(); err != nil {
		s.mu.Unlock()
		return err
	}
	pt := p.party
	if pt == nil {
		s.mu.Unlock()
		return sdk.ErrNotInParty
	}

	pt.status[p.conn] = status
	if status != models.Ready {
		s.unqueue(pt)
		s.mu.Unlock()
		return ctx.Err()
	}
	if !pt.allReady() {
		s.mu.Unlock()
		return ctx.Err()
	}

	finder := s.opts.GameFinders[pt.finder]
	if len(pt.members) > finder.TeamSize {
		pt.resetStatus()
		s.mu.Unlock()
		return sdk.NewClientError(fmt.Sprintf("party of %d players exceeds team size %d of game finder %s",
			len(pt.members), finder.TeamSize, pt.finder))
	}
	if !slices.Contains(s.queues[pt.finder], pt) {
		s.queues[pt.finder] = append(s.queues[pt.finder], pt)
	}
	s.matchmake(&out, pt.finder)
	s.mu.Unlock()
	out.flush()
	return ctx.Err()
}

func (p partyAPI) UpdatePlayerData(ctx context.Context, data string) error {
	s := p.srv
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := p.requireAuth(); err != nil {
		return err
	}
	if p.party == nil {
		return sdk.ErrNotInParty
	}
	p.party.data[p.conn] = data
	return ctx.Err()
}

func (p partyAPI) LeaveParty(ctx context.Context) error {
	s := p.srv
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.party == nil {
		return sdk.ErrNotInParty
	}
	s.leaveParty(p.conn)
	return ctx.Err()
}

func (p partyAPI) IsInParty() bool {
	p.srv.mu.Lock()
	defer p.srv.mu.Unlock()
	return p.party != nil
}

func (p partyAPI) PartyID() string {
	p.srv.mu.Lock()
	defer p.srv.mu.Unlock()
	if p.party == nil {
		return ""
	}
	return p.party.id
}

func (p partyAPI) SubscribePartyJoined(fn func(models.PartyJoined)) *sdk.Subscription {
	return subscribe(p.srv, &p.partySubs, fn)
}

// join adds c to pt and raises the party joined event on c.
func (s *Server) join(out *outbox, pt *party, c *conn) {
	pt.members = append(pt.members, c)
	pt.status[c] = models.NotReady
	c.party = pt
	emit(out, c.cfg.Dispatcher, &c.partySubs, models.PartyJoined{PartyID: pt.id, UserID: c.userID})
}

func (s *Server) leaveParty(c *conn) {
	pt := c.party
	if pt == nil {
		return
	}
	c.party = nil
	pt.members = slices.DeleteFunc(pt.members, func(m *conn) bool { return m == c })
	delete(pt.status, c)
	delete(pt.data, c)
	s.unqueue(pt)

	if len(pt.members) == 0 {
		delete(s.parties, pt.id)
		if pt.code != "" {
			delete(s.codes, pt.code)
		}
	}
}

func (s *Server) unqueue(pt *party) {
	s.queues[pt.finder] = slices.DeleteFunc(s.queues[pt.finder], func(q *party) bool { return q == pt })
}

type gameFinderAPI struct{ *conn }

func (g gameFinderAPI) SubscribeGameFound(fn func(models.GameFoundEvent)) *sdk.Subscription {
	return subscribe(g.srv, &g.gameFoundSubs, fn)
}
