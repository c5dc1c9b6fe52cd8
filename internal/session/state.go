// Copyright (c) 2026 Wili
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package session holds the in-memory authentication state of one wili
// process and keeps it consistent with the shared persisted slots. Other
// processes of the same user converge onto the same state through storage
// change notifications.
package session

import (
	"encoding/json"

	"wili/cli/internal/backend"
)

// Persisted slot keys, shared by every wili process of the same user.
// Absence of the token slot is the canonical logged-out signal no matter
// what the other slots hold.
const (
	TokenKey        = "wili_jwt"
	UserKey         = "wili_user"
	JustLoggedInKey = "wili_just_logged_in"
)

// State is the authentication state visible to every consumer.
// An empty Token means logged out.
type State struct {
	Token        string
	User         *backend.User
	IsLoading    bool
	JustLoggedIn bool
}

// LoggedIn reports whether a session token is present.
func (s State) LoggedIn() bool {
	return s.Token != ""
}

// parseUser decodes a persisted user record. Corrupt or unparsable values
// are treated as absent, never surfaced: a broken slot must not take the
// whole client down at start-up.
func parseUser(raw string) *backend.User {
	var u backend.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil
	}
	return &u
}
