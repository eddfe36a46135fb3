// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sdk

import "sync"

// Subscription keeps an event handler registered until Unsubscribe.
type Subscription struct {
	once   sync.Once
	cancel func()
}

// NewSubscription wraps cancel, which runs at most once.
func NewSubscription(cancel func()) *Subscription {
	return &Subscription{cancel: cancel}
}

// Unsubscribe removes the handler. It is safe to call more than once and on
// a nil subscription.
func (s *Subscription) Unsubscribe() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		if s.cancel != nil {
			s.cancel()
		}
	})
}
