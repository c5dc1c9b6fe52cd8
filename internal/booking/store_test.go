// Copyright (c) 2026 Wili
// Licensed under the MIT License. See LICENSE file in the project root for details.

package booking

import (
	"testing"
	"time"

	"wili/cli/internal/store"
)

func newTestStore() *Store {
	s := NewStore(store.NewMemory())
	s.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return s
}

func TestSaveAndGet(t *testing.T) {
	s := newTestStore()

	s.Save("wl-1", "item-1", "cancel-abc")

	got, ok := s.Get("wl-1", "item-1")
	if !ok || got != "cancel-abc" {
		t.Errorf("Get() = %q, %v; want %q, true", got, ok, "cancel-abc")
	}
	if !s.Has("wl-1", "item-1") {
		t.Error("Has() = false for saved token")
	}
	if s.Has("wl-1", "item-2") {
		t.Error("Has() = true for unknown item")
	}
}

func TestSaveReplacesSamePair(t *testing.T) {
	s := newTestStore()

	s.Save("wl-1", "item-1", "first")
	s.Save("wl-1", "item-1", "second")

	if got, _ := s.Get("wl-1", "item-1"); got != "second" {
		t.Errorf("Get() = %q, want %q (last write wins)", got, "second")
	}
	if n := len(s.All()); n != 1 {
		t.Errorf("All() has %d tokens, want 1 (no accumulation)", n)
	}
}

func TestSaveKeepsOtherPairs(t *testing.T) {
	s := newTestStore()

	s.Save("wl-1", "item-1", "a")
	s.Save("wl-1", "item-2", "b")
	s.Save("wl-2", "item-1", "c")

	if n := len(s.All()); n != 3 {
		t.Fatalf("All() has %d tokens, want 3", n)
	}
	if got, _ := s.Get("wl-1", "item-2"); got != "b" {
		t.Errorf("Get(wl-1, item-2) = %q, want %q", got, "b")
	}
}

func TestRemove(t *testing.T) {
	s := newTestStore()

	s.Save("wl-1", "item-1", "a")
	s.Save("wl-1", "item-2", "b")

	s.Remove("wl-1", "item-1")
	if s.Has("wl-1", "item-1") {
		t.Error("Has() = true after Remove()")
	}
	if !s.Has("wl-1", "item-2") {
		t.Error("Remove() dropped an unrelated token")
	}

	// Unknown pair is a no-op.
	s.Remove("wl-9", "item-9")
}

func TestCorruptSlotReadsEmpty(t *testing.T) {
	kv := store.NewMemory()
	kv.Set(storageKey, "{not an array")
	s := NewStore(kv)

	if n := len(s.All()); n != 0 {
		t.Errorf("All() on corrupt slot has %d tokens, want 0", n)
	}

	// A save over the corrupt slot repairs it.
	s.Save("wl-1", "item-1", "fresh")
	if !s.Has("wl-1", "item-1") {
		t.Error("Save() over corrupt slot did not persist")
	}
}

func TestBookedAtRecorded(t *testing.T) {
	s := newTestStore()
	s.Save("wl-1", "item-1", "a")

	all := s.All()
	if len(all) != 1 {
		t.Fatalf("All() has %d tokens, want 1", len(all))
	}
	want := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	if !all[0].BookedAt.Equal(want) {
		t.Errorf("BookedAt = %v, want %v", all[0].BookedAt, want)
	}
}
