// Copyright (c) 2026 Wili
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package store implements durable key/value persistence for session and
// booking state. All wili processes of the same user share one storage
// namespace, the way browser tabs of one origin share localStorage.
//
// Storage failures never surface to callers: reads on broken or missing
// storage come back empty and writes are silently discarded. That keeps
// start-up robust when the state directory or keychain is unavailable.
package store

// Event describes a change made to a key by another process sharing the
// same storage namespace. Value is nil when the key was removed.
type Event struct {
	Key   string
	Value *string
}

// KV is the key/value contract for session and booking persistence.
type KV interface {
	// Get returns the stored value. Absent keys and unreadable storage
	// both yield ok=false.
	Get(key string) (value string, ok bool)
	// Set stores the value. Failures are discarded.
	Set(key, value string)
	// Remove deletes the key. Removing an absent key is a no-op.
	Remove(key string)
	// Watch reports changes made by other processes. Implementations
	// without change-notification support return ok=false; callers branch
	// on this declared capability, never on the environment.
	Watch() (events <-chan Event, ok bool)
}
