// Copyright (c) 2026 Wili
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package backend provides interfaces and implementations for communicating with the wili backend services.
// It defines the API contract for identity exchanges, user profile access and wishlist
// resources. The package includes both interface definitions and the HTTP-based implementation.
package backend

import "context"

// API defines backend operations the CLI depends on.
// Implementations may call real HTTP endpoints or provide mocks for tests.
type API interface {
	// ExchangeYandexCode trades an OAuth authorization code for a session
	// token and user record at the identity endpoint.
	ExchangeYandexCode(ctx context.Context, code, redirectURI string) (*AuthResponse, error)
	// ExchangeTelegramInitData trades signed Telegram mini-app init data
	// for a session token and user record.
	ExchangeTelegramInitData(ctx context.Context, initData string) (*AuthResponse, error)

	// GetMe retrieves the profile of the token's owner.
	GetMe(ctx context.Context, token string) (*User, error)
	// UpdateMe updates the profile of the token's owner.
	UpdateMe(ctx context.Context, req UpdateUserRequest, token string) (*User, error)
	// GetUser retrieves a user's public profile. Token is optional.
	GetUser(ctx context.Context, id string, token string) (*User, error)

	GetWishlists(ctx context.Context, token string) ([]Wishlist, error)
	GetWishlist(ctx context.Context, id string, token string) (*Wishlist, error)
	CreateWishlist(ctx context.Context, req CreateWishlistRequest, token string) (*Wishlist, error)
	UpdateWishlist(ctx context.Context, id string, req UpdateWishlistRequest, token string) (*Wishlist, error)
	DeleteWishlist(ctx context.Context, id string, token string) error
	AddWishlistItem(ctx context.Context, wishlistID string, req CreateWishlistItemRequest, token string) (*WishlistItem, error)
	UpdateWishlistItem(ctx context.Context, wishlistID, itemID string, req UpdateWishlistItemRequest, token string) (*WishlistItem, error)
	DeleteWishlistItem(ctx context.Context, wishlistID, itemID string, token string) error
}

// New creates a backend API implementation.
// apiBase serves the wishlist/user resources; authBase serves the identity
// endpoint. onUnauthorized runs whenever an authenticated call comes back 401.
func New(apiBase, authBase string, onUnauthorized func()) API {
	return newHTTP(apiBase, authBase, onUnauthorized)
}
