// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; the session token lives in the
// shared state directory or the OS keychain.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"wili/cli/internal/xdg"
)

// Defaults for the hosted wili.me service.
const (
	DefaultAPIBaseURL = "https://api.wili.me"
	DefaultWebOrigin  = "https://wili.me"
)

// Config holds non-sensitive CLI settings.
type Config struct {
	LogLevel string `json:"log_level"`
	// APIBaseURL is the base URL of the wishlist/user REST API.
	APIBaseURL string `json:"api_base_url"`
	// AuthAPIBaseURL overrides the identity endpoint base; when empty the
	// generic API base (and finally the production host) is used.
	AuthAPIBaseURL string `json:"auth_api_base_url"`
	// WebOrigin is the origin of the web app, used to build OAuth redirect URIs.
	WebOrigin string `json:"web_origin"`
	// YandexClientID identifies this client against the Yandex OAuth provider.
	YandexClientID string `json:"yandex_client_id"`
	// TelegramBot is the username of the login bot for the deep-link flow.
	TelegramBot string `json:"telegram_bot"`
	// SecureStorage keeps the session token in the OS keychain instead of the
	// shared state directory. Keychain-backed sessions are not observable by
	// other wili processes.
	SecureStorage bool `json:"secure_storage"`
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration; a missing file returns defaults.
// Environment variables override whatever is on disk.
func Load() (Config, error) {
	c := defaults()
	p, err := path()
	if err != nil {
		return applyEnv(c), nil
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return applyEnv(c), nil
		}
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, err
	}
	return applyEnv(c), nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}

func defaults() Config {
	return Config{
		LogLevel:  "info",
		WebOrigin: DefaultWebOrigin,
	}
}

func applyEnv(c Config) Config {
	if v := os.Getenv("WILI_API_BASE_URL"); v != "" {
		c.APIBaseURL = v
	}
	if v := os.Getenv("WILI_AUTH_API_BASE_URL"); v != "" {
		c.AuthAPIBaseURL = v
	}
	if v := os.Getenv("WILI_WEB_ORIGIN"); v != "" {
		c.WebOrigin = v
	}
	if v := os.Getenv("WILI_YANDEX_CLIENT_ID"); v != "" {
		c.YandexClientID = v
	}
	if v := os.Getenv("WILI_TELEGRAM_BOT"); v != "" {
		c.TelegramBot = v
	}
	if v := os.Getenv("WILI_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	return c
}

// AuthBaseURL resolves the identity endpoint base URL. Resolution order:
// explicit auth override, generic API base, production fallback.
func (c Config) AuthBaseURL() string {
	if c.AuthAPIBaseURL != "" {
		return c.AuthAPIBaseURL
	}
	if c.APIBaseURL != "" {
		return c.APIBaseURL
	}
	return DefaultAPIBaseURL
}

// APIBase resolves the REST API base URL with the production fallback.
func (c Config) APIBase() string {
	if c.APIBaseURL != "" {
		return c.APIBaseURL
	}
	return DefaultAPIBaseURL
}
