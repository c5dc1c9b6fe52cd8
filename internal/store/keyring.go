// Copyright (c) 2026 Wili
// Licensed under the MIT License. See LICENSE file in the project root for details.

package store

import (
	"wili/cli/internal/keychain"
	"wili/cli/internal/logging"
)

// Keyring is a durable KV backed by the OS keychain. It is the secure
// alternative to the file store: values never touch disk in plain text,
// at the cost of change notifications — keychains have none, so Watch
// reports the capability as unavailable and cross-process session
// synchronization does not apply.
type Keyring struct {
	m *keychain.Manager
}

// NewKeyring wraps a keychain manager as a KV.
func NewKeyring(m *keychain.Manager) *Keyring {
	return &Keyring{m: m}
}

// Get treats both missing keys and keychain failures as absence. An empty
// stored value also reads as absent, matching the contract that an absent
// token slot is the canonical logged-out signal.
func (k *Keyring) Get(key string) (string, bool) {
	v, err := k.m.Get(key)
	if err != nil || v == "" {
		return "", false
	}
	return v, true
}

func (k *Keyring) Set(key, value string) {
	if err := k.m.Set(key, value); err != nil {
		logging.Logger().Debug().Err(err).Str("key", key).Msg("keychain write failed")
	}
}

func (k *Keyring) Remove(key string) {
	if err := k.m.Delete(key); err != nil {
		logging.Logger().Debug().Err(err).Str("key", key).Msg("keychain delete failed")
	}
}

// Watch reports no change-notification capability.
func (k *Keyring) Watch() (<-chan Event, bool) {
	return nil, false
}
