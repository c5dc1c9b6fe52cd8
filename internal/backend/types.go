// Copyright (c) 2026 Wili
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"time"

	"github.com/google/uuid"
)

// User is the user record owned by the user service.
type User struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"displayName"`
	AvatarURL   *string   `json:"avatarUrl,omitempty"`
	Email       *string   `json:"email,omitempty"`
}

// AuthResponse is the identity endpoint's answer to a successful exchange.
type AuthResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int    `json:"expiresIn"`
	User        User   `json:"user"`
}

// UpdateUserRequest carries profile fields to change.
type UpdateUserRequest struct {
	DisplayName *string `json:"displayName,omitempty"`
}

// Wishlist is a user's wishlist with its items.
type Wishlist struct {
	ID          string         `json:"id"`
	UserID      string         `json:"userId"`
	Title       string         `json:"title"`
	Description *string        `json:"description,omitempty"`
	Items       []WishlistItem `json:"items"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// WishlistItem is a single entry of a wishlist. Data is free-form and
// interpreted per item type by the UI.
type WishlistItem struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Data      map[string]any `json:"data"`
	Booking   *ItemBooking   `json:"booking,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// ItemBooking marks an item as reserved by someone.
type ItemBooking struct {
	BookerName *string   `json:"bookerName,omitempty"`
	Message    *string   `json:"message,omitempty"`
	BookedAt   time.Time `json:"bookedAt"`
}

// CreateWishlistRequest creates a new wishlist.
type CreateWishlistRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
}

// UpdateWishlistRequest changes title and/or description.
type UpdateWishlistRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
}

// CreateWishlistItemRequest adds an item to a wishlist.
type CreateWishlistItemRequest struct {
	Type string         `json:"type"`
	Data map[string]any `json:"data"`
}

// UpdateWishlistItemRequest changes an item's payload.
type UpdateWishlistItemRequest struct {
	Type string         `json:"type"`
	Data map[string]any `json:"data"`
}
