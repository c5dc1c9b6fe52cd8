// Copyright (c) 2026 Wili
// Licensed under the MIT License. See LICENSE file in the project root for details.

package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileRoundTrip(t *testing.T) {
	f, err := NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("NewFile() error: %v", err)
	}

	if _, ok := f.Get("wili_jwt"); ok {
		t.Fatal("Get() on empty store reported presence")
	}

	f.Set("wili_jwt", "tok-123")
	got, ok := f.Get("wili_jwt")
	if !ok || got != "tok-123" {
		t.Errorf("Get() = %q, %v; want %q, true", got, ok, "tok-123")
	}

	f.Set("wili_jwt", "tok-456")
	got, _ = f.Get("wili_jwt")
	if got != "tok-456" {
		t.Errorf("Get() after overwrite = %q, want %q", got, "tok-456")
	}
}

func TestFileRemove(t *testing.T) {
	f, err := NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("NewFile() error: %v", err)
	}

	f.Set("wili_user", `{"id":"x"}`)
	f.Remove("wili_user")
	if _, ok := f.Get("wili_user"); ok {
		t.Error("Get() after Remove() reported presence")
	}

	// Removing a missing key must not panic or error.
	f.Remove("never_set")
}

func TestFileWatchForeignWrite(t *testing.T) {
	dir := t.TempDir()
	f, err := NewFile(dir)
	if err != nil {
		t.Fatalf("NewFile() error: %v", err)
	}
	defer f.Close()

	events, ok := f.Watch()
	if !ok {
		t.Skip("watch unavailable on this filesystem")
	}

	// Another process writes the slot directly.
	if err := os.WriteFile(filepath.Join(dir, "wili_jwt"), []byte("foreign-tok"), 0o600); err != nil {
		t.Fatalf("foreign write failed: %v", err)
	}

	e := waitEvent(t, events)
	if e.Key != "wili_jwt" {
		t.Errorf("event key = %q, want %q", e.Key, "wili_jwt")
	}
	if e.Value == nil || *e.Value != "foreign-tok" {
		t.Errorf("event value = %v, want %q", e.Value, "foreign-tok")
	}
}

func TestFileWatchForeignRemove(t *testing.T) {
	dir := t.TempDir()
	f, err := NewFile(dir)
	if err != nil {
		t.Fatalf("NewFile() error: %v", err)
	}
	defer f.Close()

	if err := os.WriteFile(filepath.Join(dir, "wili_jwt"), []byte("tok"), 0o600); err != nil {
		t.Fatalf("seed write failed: %v", err)
	}

	events, ok := f.Watch()
	if !ok {
		t.Skip("watch unavailable on this filesystem")
	}

	if err := os.Remove(filepath.Join(dir, "wili_jwt")); err != nil {
		t.Fatalf("foreign remove failed: %v", err)
	}

	e := waitEvent(t, events)
	if e.Key != "wili_jwt" {
		t.Errorf("event key = %q, want %q", e.Key, "wili_jwt")
	}
	if e.Value != nil {
		t.Errorf("event value = %q, want nil (removal)", *e.Value)
	}
}

func TestFileWatchSelfWriteSuppressed(t *testing.T) {
	dir := t.TempDir()
	f, err := NewFile(dir)
	if err != nil {
		t.Fatalf("NewFile() error: %v", err)
	}
	defer f.Close()

	events, ok := f.Watch()
	if !ok {
		t.Skip("watch unavailable on this filesystem")
	}

	// Our own write must not come back as an event; a later foreign write
	// of a different key must be the first thing observed.
	f.Set("wili_jwt", "own-tok")
	time.Sleep(50 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(dir, "wili_user"), []byte(`{"id":"y"}`), 0o600); err != nil {
		t.Fatalf("foreign write failed: %v", err)
	}

	e := waitEvent(t, events)
	if e.Key != "wili_user" {
		t.Errorf("first observed event key = %q, want %q (self-write leaked)", e.Key, "wili_user")
	}
}

// waitEvent receives one event or fails the test after a timeout.
func waitEvent(t *testing.T, events <-chan Event) Event {
	t.Helper()
	select {
	case e, ok := <-events:
		if !ok {
			t.Fatal("event channel closed")
		}
		return e
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for storage event")
		return Event{}
	}
}
