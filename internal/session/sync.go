// Copyright (c) 2026 Wili
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"wili/cli/internal/store"
)

// syncLoop replays storage mutations made by other wili processes into
// this container. It runs for the process lifetime; the channel closes
// only when the underlying watcher shuts down.
func (c *Container) syncLoop(events <-chan store.Event) {
	for e := range events {
		c.applyRemote(e)
	}
}

// applyRemote applies one foreign slot change. Slots are applied
// independently as notifications arrive: when a remote login writes all
// three keys there is no atomicity across them, so this container may
// briefly hold a user without a token until the remaining notifications
// land. That transient state is accepted and converges per key.
func (c *Container) applyRemote(e store.Event) {
	switch e.Key {
	case TokenKey:
		c.Update(func(s State) State {
			if e.Value == nil {
				s.Token = ""
			} else {
				s.Token = *e.Value
			}
			return s
		})
	case UserKey:
		c.Update(func(s State) State {
			if e.Value == nil {
				s.User = nil
			} else {
				// A value that fails to parse nulls the user for this
				// update only; the listener must survive corrupt slots.
				s.User = parseUser(*e.Value)
			}
			return s
		})
	case JustLoggedInKey:
		c.Update(func(s State) State {
			s.JustLoggedIn = e.Value != nil && *e.Value == "true"
			return s
		})
	}
}
