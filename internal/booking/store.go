// Copyright (c) 2026 Wili
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package booking keeps the cancellation tokens this machine received for
// booked wishlist items. A booking token proves that this client (not
// necessarily the current account) reserved an item and may cancel that
// reservation, so the collection is independent of login state: it
// survives logout and is never transmitted anywhere on its own.
package booking

import (
	"encoding/json"
	"time"

	"wili/cli/internal/store"
)

// storageKey is the durable slot holding the serialized token list.
const storageKey = "wili_booking_tokens"

// Token is proof that this client reserved a specific wishlist item.
type Token struct {
	WishlistID        string    `json:"wishlistId"`
	ItemID            string    `json:"itemId"`
	CancellationToken string    `json:"cancellationToken"`
	BookedAt          time.Time `json:"bookedAt"`
}

// Store reads and writes booking tokens in the shared durable store.
type Store struct {
	kv  store.KV
	now func() time.Time
}

// NewStore creates a booking token store over the given KV.
func NewStore(kv store.KV) *Store {
	return &Store{kv: kv, now: time.Now}
}

// Save records a cancellation token for the (wishlist, item) pair.
// An existing token for the same pair is replaced, never accumulated.
func (s *Store) Save(wishlistID, itemID, cancellationToken string) {
	tokens := s.load()
	filtered := tokens[:0]
	for _, t := range tokens {
		if t.WishlistID != wishlistID || t.ItemID != itemID {
			filtered = append(filtered, t)
		}
	}
	filtered = append(filtered, Token{
		WishlistID:        wishlistID,
		ItemID:            itemID,
		CancellationToken: cancellationToken,
		BookedAt:          s.now().UTC(),
	})
	s.save(filtered)
}

// Get returns the cancellation token for the pair, if one is held.
func (s *Store) Get(wishlistID, itemID string) (string, bool) {
	for _, t := range s.load() {
		if t.WishlistID == wishlistID && t.ItemID == itemID {
			return t.CancellationToken, true
		}
	}
	return "", false
}

// Remove drops the token for the pair. Removing an unknown pair is a no-op.
func (s *Store) Remove(wishlistID, itemID string) {
	tokens := s.load()
	filtered := tokens[:0]
	for _, t := range tokens {
		if t.WishlistID != wishlistID || t.ItemID != itemID {
			filtered = append(filtered, t)
		}
	}
	s.save(filtered)
}

// Has reports whether a token for the pair is held.
func (s *Store) Has(wishlistID, itemID string) bool {
	_, ok := s.Get(wishlistID, itemID)
	return ok
}

// All returns every held booking token.
func (s *Store) All() []Token {
	return s.load()
}

// load reads the token list; a missing or corrupt slot yields an empty list.
func (s *Store) load() []Token {
	raw, ok := s.kv.Get(storageKey)
	if !ok {
		return nil
	}
	var tokens []Token
	if err := json.Unmarshal([]byte(raw), &tokens); err != nil {
		return nil
	}
	return tokens
}

func (s *Store) save(tokens []Token) {
	b, err := json.Marshal(tokens)
	if err != nil {
		return
	}
	s.kv.Set(storageKey, string(b))
}
