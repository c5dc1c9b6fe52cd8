// Copyright (c) 2026 Wili
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"wili/cli/internal/backend"
	"wili/cli/internal/session"
)

var stateRe = regexp.MustCompile(`^[0-9a-f]{16}$`)

func TestRedirectToTelegramBot(t *testing.T) {
	svc, _, tab, _ := newTestService(&fakeAPI{})
	var opened string
	svc.navigate = func(u string) { opened = u }

	link := svc.RedirectToTelegramBot("wili_login_bot")
	if link == "" {
		t.Fatal("RedirectToTelegramBot() returned empty link")
	}
	if link != opened {
		t.Errorf("returned link %q differs from navigated link %q", link, opened)
	}

	const prefix = "https://t.me/wili_login_bot?start=webauth_"
	if !strings.HasPrefix(link, prefix) {
		t.Fatalf("link = %q, want prefix %q", link, prefix)
	}
	state := strings.TrimPrefix(link, prefix)
	if !stateRe.MatchString(state) {
		t.Errorf("state %q is not 16 lowercase hex chars", state)
	}

	stored, ok := tab.Get(handshakeStateKey)
	if !ok || stored != state {
		t.Errorf("stored state = %q, %v; want the linked state %q", stored, ok, state)
	}
}

func TestRedirectToTelegramBotUnconfigured(t *testing.T) {
	svc, _, tab, _ := newTestService(&fakeAPI{})
	navigated := false
	svc.navigate = func(string) { navigated = true }

	if link := svc.RedirectToTelegramBot("  "); link != "" {
		t.Errorf("link = %q for blank bot username, want empty", link)
	}
	if navigated {
		t.Error("navigated despite missing bot username")
	}
	if _, ok := tab.Get(handshakeStateKey); ok {
		t.Error("handshake state stored despite missing bot username")
	}
}

func TestHandleTelegramCallbackSuccess(t *testing.T) {
	u := testUser()
	api := &fakeAPI{
		getMe: func(token string) (*backend.User, error) {
			if token != "tok-tg" {
				t.Errorf("profile fetched with token %q, want tok-tg", token)
			}
			return &u, nil
		},
	}
	svc, kv, tab, sessions := newTestService(api)
	svc.navigate = func(string) {}

	link := svc.RedirectToTelegramBot("wili_login_bot")
	state, _ := tab.Get(handshakeStateKey)
	if link == "" || state == "" {
		t.Fatal("handshake initiation failed")
	}

	if !svc.HandleTelegramCallback("tok-tg", state) {
		t.Fatal("HandleTelegramCallback() = false for matching state")
	}

	// The session is valid before the profile arrives.
	if tok, _ := kv.Get(session.TokenKey); tok != "tok-tg" {
		t.Errorf("persisted token = %q, want tok-tg", tok)
	}
	st := sessions.Current()
	if !st.LoggedIn() || !st.JustLoggedIn || st.IsLoading {
		t.Errorf("state right after callback = %+v, want logged in", st)
	}

	svc.WaitForProfile()
	st = sessions.Current()
	if st.User == nil || st.User.DisplayName != "Ann" {
		t.Errorf("state after profile fetch = %+v, want user Ann", st)
	}
	if _, ok := kv.Get(session.UserKey); !ok {
		t.Error("user slot not persisted after profile fetch")
	}
}

func TestHandleTelegramCallbackSingleUse(t *testing.T) {
	u := testUser()
	api := &fakeAPI{
		getMe: func(string) (*backend.User, error) { return &u, nil },
	}
	svc, _, tab, _ := newTestService(api)
	svc.navigate = func(string) {}

	svc.RedirectToTelegramBot("wili_login_bot")
	state, _ := tab.Get(handshakeStateKey)

	if !svc.HandleTelegramCallback("tok-1", state) {
		t.Fatal("first callback rejected")
	}
	svc.WaitForProfile()

	// The state was consumed; a replay must fail.
	if svc.HandleTelegramCallback("tok-2", state) {
		t.Error("replayed callback accepted")
	}
}

func TestHandleTelegramCallbackMismatch(t *testing.T) {
	svc, kv, tab, sessions := newTestService(&fakeAPI{})
	svc.navigate = func(string) {}

	svc.RedirectToTelegramBot("wili_login_bot")

	if svc.HandleTelegramCallback("tok-x", "0000000000000000") {
		t.Fatal("callback accepted with wrong state")
	}
	// A failed comparison still consumes the stored state.
	if _, ok := tab.Get(handshakeStateKey); ok {
		t.Error("handshake state survived a failed comparison")
	}
	if _, ok := kv.Get(session.TokenKey); ok {
		t.Error("token persisted after rejected callback")
	}
	if sessions.Current().LoggedIn() {
		t.Error("session logged in after rejected callback")
	}
}

func TestHandleTelegramCallbackEmptyState(t *testing.T) {
	svc, _, _, _ := newTestService(&fakeAPI{})
	svc.navigate = func(string) {}

	svc.RedirectToTelegramBot("wili_login_bot")
	if svc.HandleTelegramCallback("tok-x", "") {
		t.Error("callback accepted with empty state")
	}
}

func TestProfileFetchFailureKeepsSession(t *testing.T) {
	api := &fakeAPI{
		getMe: func(string) (*backend.User, error) {
			return nil, errors.New("network down")
		},
	}
	svc, kv, tab, sessions := newTestService(api)
	svc.navigate = func(string) {}

	svc.RedirectToTelegramBot("wili_login_bot")
	state, _ := tab.Get(handshakeStateKey)

	if !svc.HandleTelegramCallback("tok-tg", state) {
		t.Fatal("callback rejected")
	}
	svc.WaitForProfile()

	st := sessions.Current()
	if !st.LoggedIn() {
		t.Error("session invalidated by a failed profile fetch")
	}
	if st.User != nil {
		t.Errorf("User = %+v, want nil after failed fetch", st.User)
	}
	if tok, _ := kv.Get(session.TokenKey); tok != "tok-tg" {
		t.Errorf("persisted token = %q, want tok-tg", tok)
	}
}
