// Copyright (c) 2026 Wili
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"net/http"
	"net/url"
)

// GetWishlists lists the current user's wishlists.
func (h *HTTP) GetWishlists(ctx context.Context, token string) ([]Wishlist, error) {
	var out struct {
		Wishlists []Wishlist `json:"wishlists"`
	}
	if err := h.request(ctx, http.MethodGet, h.apiBase+"/wishlists", nil, token, &out); err != nil {
		return nil, err
	}
	return out.Wishlists, nil
}

// GetWishlist fetches a single wishlist. Shared lists are readable without
// a token, so it is optional here.
func (h *HTTP) GetWishlist(ctx context.Context, id string, token string) (*Wishlist, error) {
	var wl Wishlist
	if err := h.request(ctx, http.MethodGet, h.wishlistURL(id), nil, token, &wl); err != nil {
		return nil, err
	}
	return &wl, nil
}

// CreateWishlist creates a new wishlist for the current user.
func (h *HTTP) CreateWishlist(ctx context.Context, req CreateWishlistRequest, token string) (*Wishlist, error) {
	var wl Wishlist
	if err := h.request(ctx, http.MethodPost, h.apiBase+"/wishlists", req, token, &wl); err != nil {
		return nil, err
	}
	return &wl, nil
}

// UpdateWishlist changes a wishlist's title or description.
func (h *HTTP) UpdateWishlist(ctx context.Context, id string, req UpdateWishlistRequest, token string) (*Wishlist, error) {
	var wl Wishlist
	if err := h.request(ctx, http.MethodPut, h.wishlistURL(id), req, token, &wl); err != nil {
		return nil, err
	}
	return &wl, nil
}

// DeleteWishlist removes a wishlist. The backend answers with no content.
func (h *HTTP) DeleteWishlist(ctx context.Context, id string, token string) error {
	return h.request(ctx, http.MethodDelete, h.wishlistURL(id), nil, token, nil)
}

// AddWishlistItem appends an item to a wishlist.
func (h *HTTP) AddWishlistItem(ctx context.Context, wishlistID string, req CreateWishlistItemRequest, token string) (*WishlistItem, error) {
	var item WishlistItem
	if err := h.request(ctx, http.MethodPost, h.wishlistURL(wishlistID)+"/items", req, token, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateWishlistItem replaces an item's payload.
func (h *HTTP) UpdateWishlistItem(ctx context.Context, wishlistID, itemID string, req UpdateWishlistItemRequest, token string) (*WishlistItem, error) {
	var item WishlistItem
	if err := h.request(ctx, http.MethodPut, h.itemURL(wishlistID, itemID), req, token, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteWishlistItem removes an item. The backend answers with no content.
func (h *HTTP) DeleteWishlistItem(ctx context.Context, wishlistID, itemID string, token string) error {
	return h.request(ctx, http.MethodDelete, h.itemURL(wishlistID, itemID), nil, token, nil)
}

func (h *HTTP) wishlistURL(id string) string {
	return h.apiBase + "/wishlists/" + url.PathEscape(id)
}

func (h *HTTP) itemURL(wishlistID, itemID string) string {
	return h.wishlistURL(wishlistID) + "/items/" + url.PathEscape(itemID)
}
