// Copyright (c) 2026 Wili
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"net/http"
	"net/url"
)

// GetMe calls GET {authBase}/users/me with the Authorization header and
// returns the token owner's profile.
func (h *HTTP) GetMe(ctx context.Context, token string) (*User, error) {
	var u User
	if err := h.request(ctx, http.MethodGet, h.authBase+"/users/me", nil, token, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateMe calls PUT {authBase}/users/me to change the current profile.
func (h *HTTP) UpdateMe(ctx context.Context, req UpdateUserRequest, token string) (*User, error) {
	var u User
	if err := h.request(ctx, http.MethodPut, h.authBase+"/users/me", req, token, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUser fetches a user's public profile. The token is optional.
func (h *HTTP) GetUser(ctx context.Context, id string, token string) (*User, error) {
	var u User
	if err := h.request(ctx, http.MethodGet, h.authBase+"/users/"+url.PathEscape(id), nil, token, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
