// Copyright (c) 2026 Wili
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"sync"

	"wili/cli/internal/backend"
	"wili/cli/internal/store"
)

// Container is the single observable holder of session State. It is
// constructed explicitly and injected into every consumer; there is no
// ambient global.
type Container struct {
	mu    sync.Mutex
	state State
	subs  []subscriber
	next  int
	kv    store.KV
	// watching records whether the storage watcher has been installed.
	// Initialize is safe to call repeatedly but installs it at most once.
	watching bool
}

type subscriber struct {
	id int
	fn func(State)
}

// NewContainer creates a container over the given durable store. The
// state starts loading until Initialize has read the persisted slots.
func NewContainer(kv store.KV) *Container {
	return &Container{
		state: State{IsLoading: true},
		kv:    kv,
	}
}

// Initialize computes the initial State from the persisted slots and
// installs the cross-process storage watcher. It is idempotent: repeated
// calls re-read the slots but never install a second watcher.
//
// A stale serialized user with no token slot is nulled here: a user record
// must never be presented without a token backing it.
func (c *Container) Initialize() {
	token, _ := c.kv.Get(TokenKey)
	var user *backend.User
	if token != "" {
		if raw, ok := c.kv.Get(UserKey); ok {
			user = parseUser(raw)
		}
	}
	justLoggedIn, _ := c.kv.Get(JustLoggedInKey)

	c.Set(State{
		Token:        token,
		User:         user,
		IsLoading:    false,
		JustLoggedIn: justLoggedIn == "true",
	})

	// Decide and mark in one critical section so concurrent Initialize
	// calls cannot both start a sync loop.
	c.mu.Lock()
	if c.watching {
		c.mu.Unlock()
		return
	}
	events, ok := c.kv.Watch()
	if ok {
		c.watching = true
	}
	c.mu.Unlock()

	if ok {
		go c.syncLoop(events)
	}
}

// Current returns the present state.
func (c *Container) Current() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Set replaces the whole state and notifies subscribers once.
func (c *Container) Set(s State) {
	c.mu.Lock()
	c.state = s
	subs := append([]subscriber(nil), c.subs...)
	c.mu.Unlock()

	for _, sub := range subs {
		sub.fn(s)
	}
}

// Update applies a pure transition to the previous state and notifies
// subscribers once.
func (c *Container) Update(fn func(State) State) {
	c.mu.Lock()
	c.state = fn(c.state)
	s := c.state
	subs := append([]subscriber(nil), c.subs...)
	c.mu.Unlock()

	for _, sub := range subs {
		sub.fn(s)
	}
}

// Subscribe registers fn to run synchronously on every Set/Update with
// the new state. The returned function cancels the subscription.
func (c *Container) Subscribe(fn func(State)) (cancel func()) {
	c.mu.Lock()
	id := c.next
	c.next++
	c.subs = append(c.subs, subscriber{id: id, fn: fn})
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, sub := range c.subs {
			if sub.id == id {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				return
			}
		}
	}
}
