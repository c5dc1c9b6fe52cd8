// Copyright (c) 2026 Wili
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"path/filepath"

	"wili/cli/internal/auth"
	"wili/cli/internal/backend"
	"wili/cli/internal/booking"
	"wili/cli/internal/config"
	"wili/cli/internal/keychain"
	"wili/cli/internal/logging"
	"wili/cli/internal/session"
	"wili/cli/internal/store"
	"wili/cli/internal/xdg"
)

// app wires configuration, storage, session state and the backend client
// together for a single command invocation.
type app struct {
	cfg      config.Config
	kv       store.KV
	sessions *session.Container
	svc      *auth.Service
	be       backend.API
	bookings *booking.Store
}

// newApp builds the shared object graph every command runs against. The
// backend's unauthorized hook points back at the auth service so that a 401
// on any authenticated call force-logs the session out before the error
// reaches the caller.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logging.Setup(cfg.LogLevel)

	kv := openDurableStore(cfg)
	sessions := session.NewContainer(kv)

	var svc *auth.Service
	be := backend.New(cfg.APIBase(), cfg.AuthBaseURL(), func() {
		if svc != nil {
			svc.Logout()
		}
	})
	svc = auth.NewService(be, sessions, kv, store.NewMemory(), cfg.WebOrigin, cfg.YandexClientID)

	sessions.Initialize()

	return &app{
		cfg:      cfg,
		kv:       kv,
		sessions: sessions,
		svc:      svc,
		be:       be,
		bookings: booking.NewStore(kv),
	}, nil
}

// openDurableStore picks the persistence backend for session slots.
// Keychain when configured, otherwise the shared XDG state directory,
// otherwise an in-process fallback that persists nothing.
func openDurableStore(cfg config.Config) store.KV {
	if cfg.SecureStorage {
		if m, err := keychain.GetManager(); err == nil {
			return store.NewKeyring(m)
		}
		logging.Logger().Warn().Msg("keychain unavailable; falling back to state directory")
	}
	if dir, err := xdg.StateDir(); err == nil {
		if f, err := store.NewFile(filepath.Join(dir, "kv")); err == nil {
			return f
		}
	}
	logging.Logger().Warn().Msg("no durable storage available; session will not persist")
	return store.Noop{}
}

// token returns the current session token, or "" when logged out.
func (a *app) token() string {
	return a.sessions.Current().Token
}
