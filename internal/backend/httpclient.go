// Copyright (c) 2026 Wili
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"wili/cli/internal/httperrors"
	"wili/cli/internal/logging"
)

// HTTP implements API over the wili REST endpoints.
//
// Every authenticated call goes through request, which injects the bearer
// token and reacts to 401 responses by invoking the unauthorized handler
// before surfacing the error. That handler is the only backend-triggered
// way out of the authenticated state; all other non-2xx statuses are
// surfaced without touching session state.
type HTTP struct {
	// apiBase is the base URL of the wishlist/user REST API.
	apiBase string
	// authBase is the base URL of the identity endpoint.
	authBase string
	// client is the underlying HTTP client with configured timeout.
	client *http.Client
	// onUnauthorized runs when an authenticated call returns 401.
	onUnauthorized func()
}

// newHTTP creates a new HTTP client with the given base URLs.
// It configures a 10-second timeout for all requests.
func newHTTP(apiBase, authBase string, onUnauthorized func()) *HTTP {
	return &HTTP{
		apiBase:        strings.TrimRight(apiBase, "/"),
		authBase:       strings.TrimRight(authBase, "/"),
		client:         &http.Client{Timeout: 10 * time.Second},
		onUnauthorized: onUnauthorized,
	}
}

// request performs an authenticated JSON call against url. When token is
// empty the Authorization header is omitted. A nil out, or an empty
// response body, resolves to no content instead of a decode error.
func (h *HTTP) request(ctx context.Context, method, url string, body any, token string, out any) error {
	resp, err := h.send(ctx, method, url, body, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusUnauthorized && h.onUnauthorized != nil {
			h.onUnauthorized()
		}
		return statusError(resp)
	}

	return decodeBody(resp.Body, out)
}

// exchange performs an anonymous identity exchange against the auth base.
// Exchanges never carry a bearer token and a 401 here means the exchange
// itself failed, so the unauthorized handler stays out of it.
func (h *HTTP) exchange(ctx context.Context, path string, body any) (*AuthResponse, error) {
	resp, err := h.send(ctx, http.MethodPost, h.authBase+path, body, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(resp)
	}

	var out AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (h *HTTP) send(ctx context.Context, method, url string, body any, token string) (*http.Response, error) {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, rd)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json, */*")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		logging.Logger().Debug().Str("url", url).Msg(logging.PresentError("request failed", err))
		return nil, err
	}
	return resp, nil
}

// decodeBody parses a JSON response body into out. Empty bodies resolve
// to no content; they are expected on DELETE-style calls.
func decodeBody(r io.Reader, out any) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(b)) == 0 {
		return nil
	}
	return json.Unmarshal(b, out)
}

// statusError turns a non-2xx response into a StatusError carrying the
// numeric status and reason phrase.
func statusError(resp *http.Response) error {
	// resp.Status is "401 Unauthorized"; keep only the reason phrase.
	status := resp.Status
	if i := strings.IndexByte(status, ' '); i >= 0 {
		status = status[i+1:]
	}
	return &httperrors.StatusError{Code: resp.StatusCode, Status: status}
}
