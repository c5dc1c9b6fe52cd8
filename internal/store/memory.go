// Copyright (c) 2026 Wili
// Licensed under the MIT License. See LICENSE file in the project root for details.

package store

import "sync"

// Memory is a process-lifetime KV, the analogue of session-scoped browser
// storage. The Telegram handshake state lives here so it cannot outlive
// the process that initiated the login, and it doubles as a test store.
type Memory struct {
	mu sync.Mutex
	m  map[string]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{m: make(map[string]string)}
}

func (s *Memory) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[key]
	return v, ok
}

func (s *Memory) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
}

func (s *Memory) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
}

// Watch reports no change-notification capability: nothing outside this
// process can mutate a Memory store.
func (s *Memory) Watch() (<-chan Event, bool) {
	return nil, false
}
