// Copyright (c) 2026 Wili
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
)

// yandexAuthRequest is the body of POST {authBase}/auth/yandex.
type yandexAuthRequest struct {
	Code        string `json:"code"`
	RedirectURI string `json:"redirectUri"`
}

// telegramAuthRequest is the body of POST {authBase}/auth/telegram.
type telegramAuthRequest struct {
	InitData string `json:"initData"`
}

// ExchangeYandexCode posts the authorization code and redirect URI to the
// identity endpoint's OAuth-code path. A non-2xx response comes back as a
// StatusError; nothing is persisted here.
func (h *HTTP) ExchangeYandexCode(ctx context.Context, code, redirectURI string) (*AuthResponse, error) {
	return h.exchange(ctx, "/auth/yandex", yandexAuthRequest{Code: code, RedirectURI: redirectURI})
}

// ExchangeTelegramInitData posts signed mini-app init data to the identity
// endpoint's Telegram path. Same contract as ExchangeYandexCode,
// distinguished only by endpoint and request shape.
func (h *HTTP) ExchangeTelegramInitData(ctx context.Context, initData string) (*AuthResponse, error) {
	return h.exchange(ctx, "/auth/telegram", telegramAuthRequest{InitData: initData})
}
