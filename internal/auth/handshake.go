// Copyright (c) 2026 Wili
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"wili/cli/internal/logging"
	"wili/cli/internal/session"
)

// handshakeStateKey is the session-scoped slot holding the single-use
// state that binds a deep-link login initiation to its callback.
const handshakeStateKey = "wili_tg_auth_state"

// RedirectToTelegramBot starts the deep-link login flow: it generates a
// single-use random state, stores it for the lifetime of this process
// and navigates to the bot with the state embedded in the start
// parameter. With an empty bot username the whole operation is a no-op
// apart from a warning.
//
// Returns the deep link for display, or "" when nothing happened.
func (s *Service) RedirectToTelegramBot(botUsername string) string {
	if strings.TrimSpace(botUsername) == "" {
		warnf("telegram bot username not configured; skipping redirect")
		return ""
	}

	state, err := newHandshakeState()
	if err != nil {
		warnf("could not generate handshake state; skipping redirect")
		return ""
	}
	s.tab.Set(handshakeStateKey, state)

	link := fmt.Sprintf("https://t.me/%s?start=webauth_%s", botUsername, state)
	s.navigate(link)
	return link
}

// HandleTelegramCallback completes the deep-link flow with the token and
// state presented by the bot. The stored state is compared exactly once
// and deleted regardless of outcome, so a replayed callback always fails.
//
// On a match the token is persisted immediately — the session is valid
// before the profile arrives — and the user profile is fetched by a
// detached task. A failed profile fetch leaves the session authenticated
// with no user; token validity is authoritative.
func (s *Service) HandleTelegramCallback(token, state string) bool {
	stored, ok := s.tab.Get(handshakeStateKey)
	s.tab.Remove(handshakeStateKey) // single use, even on mismatch

	if !ok || state == "" || stored != state {
		logging.Logger().Warn().Msg("telegram callback state mismatch; rejecting login")
		return false
	}

	s.kv.Set(session.TokenKey, token)
	s.kv.Set(session.JustLoggedInKey, "true")
	s.sessions.Update(func(st session.State) session.State {
		st.Token = token
		st.IsLoading = false
		st.JustLoggedIn = true
		return st
	})

	s.fetchWG.Add(1)
	go func() {
		defer s.fetchWG.Done()
		s.fetchProfile(token)
	}()
	return true
}

// fetchProfile completes the optimistic handshake with the user record.
// It deliberately runs on a background context: the flow cannot be
// cancelled once issued, and its late writes must stay harmless even if
// nobody is subscribed anymore.
func (s *Service) fetchProfile(token string) {
	u, err := s.be.GetMe(context.Background(), token)
	if err != nil {
		logging.Logger().Debug().Msg(logging.PresentError("profile fetch after handshake failed; session stays valid", err))
		return
	}
	s.persistUser(u)
}

// newHandshakeState returns a 16-character lowercase hex token.
func newHandshakeState() (string, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(b[:]), nil
}
