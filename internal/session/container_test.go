// Copyright (c) 2026 Wili
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"sync"
	"testing"

	"wili/cli/internal/store"
)

func TestInitializeEmptyStore(t *testing.T) {
	c := NewContainer(store.NewMemory())

	if st := c.Current(); !st.IsLoading {
		t.Error("state before Initialize() should be loading")
	}

	c.Initialize()
	st := c.Current()
	if st.Token != "" {
		t.Errorf("Token = %q, want empty", st.Token)
	}
	if st.User != nil {
		t.Errorf("User = %+v, want nil", st.User)
	}
	if st.IsLoading {
		t.Error("IsLoading = true after Initialize()")
	}
	if st.JustLoggedIn {
		t.Error("JustLoggedIn = true on empty store")
	}
	if st.LoggedIn() {
		t.Error("LoggedIn() = true on empty store")
	}
}

func TestInitializeReadsSlots(t *testing.T) {
	kv := store.NewMemory()
	kv.Set(TokenKey, "tok-1")
	kv.Set(UserKey, `{"id":"8c2f6b3a-93c8-4f5a-9d6e-111111111111","displayName":"Ann"}`)
	kv.Set(JustLoggedInKey, "true")

	c := NewContainer(kv)
	c.Initialize()

	st := c.Current()
	if st.Token != "tok-1" {
		t.Errorf("Token = %q, want %q", st.Token, "tok-1")
	}
	if st.User == nil || st.User.DisplayName != "Ann" {
		t.Errorf("User = %+v, want displayName Ann", st.User)
	}
	if !st.JustLoggedIn {
		t.Error("JustLoggedIn = false, want true")
	}
}

func TestInitializeNullsUserWithoutToken(t *testing.T) {
	kv := store.NewMemory()
	// Stale user slot left behind without a token: must not surface.
	kv.Set(UserKey, `{"id":"8c2f6b3a-93c8-4f5a-9d6e-111111111111","displayName":"Ghost"}`)

	c := NewContainer(kv)
	c.Initialize()

	st := c.Current()
	if st.User != nil {
		t.Errorf("User = %+v, want nil when no token is stored", st.User)
	}
	if st.LoggedIn() {
		t.Error("LoggedIn() = true without a token")
	}
}

func TestInitializeCorruptUser(t *testing.T) {
	kv := store.NewMemory()
	kv.Set(TokenKey, "tok-1")
	kv.Set(UserKey, "{not json")

	c := NewContainer(kv)
	c.Initialize()

	st := c.Current()
	if st.Token != "tok-1" {
		t.Errorf("Token = %q, want %q", st.Token, "tok-1")
	}
	if st.User != nil {
		t.Errorf("User = %+v, want nil for corrupt slot", st.User)
	}
}

func TestSubscribeAndCancel(t *testing.T) {
	c := NewContainer(store.NewMemory())

	var got []State
	cancel := c.Subscribe(func(s State) { got = append(got, s) })

	c.Set(State{Token: "a"})
	c.Update(func(s State) State {
		s.Token = "b"
		return s
	})
	if len(got) != 2 {
		t.Fatalf("subscriber ran %d times, want 2", len(got))
	}
	if got[0].Token != "a" || got[1].Token != "b" {
		t.Errorf("observed tokens %q, %q; want a, b", got[0].Token, got[1].Token)
	}

	cancel()
	c.Set(State{Token: "c"})
	if len(got) != 2 {
		t.Errorf("subscriber ran after cancel; %d notifications", len(got))
	}
}

func TestInitializeIdempotent(t *testing.T) {
	kv := store.NewMemory()
	kv.Set(TokenKey, "tok-1")

	c := NewContainer(kv)
	c.Initialize()
	c.Initialize()

	if st := c.Current(); st.Token != "tok-1" {
		t.Errorf("Token = %q after repeated Initialize(), want %q", st.Token, "tok-1")
	}
}

// watchableKV wraps Memory with a Watch that counts how often the watcher
// was actually installed.
type watchableKV struct {
	*store.Memory

	mu         sync.Mutex
	watchCalls int
	events     chan store.Event
}

func (w *watchableKV) Watch() (<-chan store.Event, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.watchCalls++
	return w.events, true
}

func TestInitializeConcurrentSingleWatcher(t *testing.T) {
	kv := &watchableKV{Memory: store.NewMemory(), events: make(chan store.Event)}
	c := NewContainer(kv)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Initialize()
		}()
	}
	wg.Wait()

	kv.mu.Lock()
	calls := kv.watchCalls
	kv.mu.Unlock()
	if calls != 1 {
		t.Errorf("watcher installed %d times under concurrent Initialize, want 1", calls)
	}
}
