// Copyright (c) 2026 Wili
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package auth orchestrates the login flows against the wili identity
// endpoint and normalizes their outcome into the session container.
// Three entry points exist — Yandex OAuth code exchange, Telegram
// init-data exchange and the Telegram deep-link handshake — and all of
// them converge on the same success postcondition: token and user
// persisted, just-logged-in flag raised, session state replaced.
package auth

import (
	"context"
	"encoding/json"
	"net/url"
	"sync"

	"wili/cli/internal/backend"
	apperrors "wili/cli/internal/errors"
	"wili/cli/internal/logging"
	"wili/cli/internal/session"
	"wili/cli/internal/store"
)

// yandexAuthorizeURL is the external authorization endpoint. Yandex owns
// its own CSRF-state mechanism for this flow; no local state is created.
const yandexAuthorizeURL = "https://oauth.yandex.ru/authorize"

// Service centralizes authentication flows against the identity endpoint
// and local session persistence.
type Service struct {
	be       backend.API
	sessions *session.Container
	// kv is the durable store shared across wili processes.
	kv store.KV
	// tab is the session-scoped (process-lifetime) store holding the
	// Telegram handshake state.
	tab store.KV

	webOrigin      string
	yandexClientID string

	// navigate opens an external URL; replaced in tests.
	navigate func(url string)

	// fetchWG tracks detached profile fetches spawned by the deep-link
	// handshake so tests can wait for them to settle.
	fetchWG sync.WaitGroup
}

// NewService constructs an auth Service.
func NewService(be backend.API, sessions *session.Container, durable, tab store.KV, webOrigin, yandexClientID string) *Service {
	return &Service{
		be:             be,
		sessions:       sessions,
		kv:             durable,
		tab:            tab,
		webOrigin:      webOrigin,
		yandexClientID: yandexClientID,
		navigate:       OpenBrowser,
	}
}

// redirectURI is where the OAuth provider sends the user back; it lives
// on the web app origin even when the code is exchanged from the CLI.
func (s *Service) redirectURI() string {
	return s.webOrigin + "/auth/callback"
}

// ExchangeCode trades a Yandex authorization code for a session. A
// rejected exchange surfaces as AuthenticationFailed and persists nothing.
func (s *Service) ExchangeCode(ctx context.Context, code string) error {
	resp, err := s.be.ExchangeYandexCode(ctx, code, s.redirectURI())
	if err != nil {
		return apperrors.Wrap(apperrors.AuthenticationFailed, "yandex code exchange rejected", err)
	}
	s.applySuccess(resp.AccessToken, &resp.User)
	return nil
}

// ExchangeTelegramInitData trades signed Telegram mini-app init data for
// a session. Same contract as ExchangeCode.
func (s *Service) ExchangeTelegramInitData(ctx context.Context, initData string) error {
	resp, err := s.be.ExchangeTelegramInitData(ctx, initData)
	if err != nil {
		return apperrors.Wrap(apperrors.AuthenticationFailed, "telegram auth rejected", err)
	}
	s.applySuccess(resp.AccessToken, &resp.User)
	return nil
}

// RedirectToYandex builds the external authorization URL and navigates
// there. Returns the URL for display.
func (s *Service) RedirectToYandex() string {
	q := url.Values{}
	q.Set("response_type", "code")
	q.Set("client_id", s.yandexClientID)
	q.Set("redirect_uri", s.redirectURI())
	q.Set("scope", "login:email login:info")
	u := yandexAuthorizeURL + "?" + q.Encode()
	s.navigate(u)
	return u
}

// Logout clears every persisted auth slot and resets the session to the
// logged-out state. Safe to call when already logged out; never errors.
// Booking tokens are intentionally left alone: they belong to the
// machine, not the account.
func (s *Service) Logout() {
	s.kv.Remove(session.TokenKey)
	s.kv.Remove(session.UserKey)
	s.kv.Remove(session.JustLoggedInKey)
	s.sessions.Set(session.State{User: nil, IsLoading: false, JustLoggedIn: false})
}

// applySuccess is the shared success postcondition of every login flow.
func (s *Service) applySuccess(token string, user *backend.User) {
	s.kv.Set(session.TokenKey, token)
	if b, err := json.Marshal(user); err == nil {
		s.kv.Set(session.UserKey, string(b))
	}
	s.kv.Set(session.JustLoggedInKey, "true")
	s.sessions.Set(session.State{
		Token:        token,
		User:         user,
		IsLoading:    false,
		JustLoggedIn: true,
	})
}

// persistUser refreshes the serialized user slot and the in-memory user.
func (s *Service) persistUser(user *backend.User) {
	if b, err := json.Marshal(user); err == nil {
		s.kv.Set(session.UserKey, string(b))
	}
	s.sessions.Update(func(st session.State) session.State {
		st.User = user
		return st
	})
}

// WaitForProfile blocks until any detached profile fetch spawned by the
// deep-link handshake has settled. The session is already valid before
// this returns; it only matters for callers that want to display the
// profile right after login.
func (s *Service) WaitForProfile() {
	s.fetchWG.Wait()
}

func warnf(msg string) {
	logging.Logger().Warn().Msg(msg)
}
