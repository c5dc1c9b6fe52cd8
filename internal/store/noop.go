// Copyright (c) 2026 Wili
// Licensed under the MIT License. See LICENSE file in the project root for details.

package store

// Noop is the KV used when no storage mechanism is available at all.
// Every read is empty and every write is discarded, so the rest of the
// client behaves as a permanently logged-out, memory-only session.
type Noop struct{}

func (Noop) Get(string) (string, bool) { return "", false }

func (Noop) Set(string, string) {}

func (Noop) Remove(string) {}

func (Noop) Watch() (<-chan Event, bool) { return nil, false }
