package config

import (
	"testing"
)

func TestAuthBaseURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "explicit auth override wins",
			cfg:  Config{AuthAPIBaseURL: "https://auth.example", APIBaseURL: "https://api.example"},
			want: "https://auth.example",
		},
		{
			name: "generic api base is second",
			cfg:  Config{APIBaseURL: "https://api.example"},
			want: "https://api.example",
		},
		{
			name: "production fallback",
			cfg:  Config{},
			want: DefaultAPIBaseURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.AuthBaseURL(); got != tt.want {
				t.Errorf("AuthBaseURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAPIBase(t *testing.T) {
	if got := (Config{APIBaseURL: "https://api.example"}).APIBase(); got != "https://api.example" {
		t.Errorf("APIBase() = %q, want the configured base", got)
	}
	if got := (Config{}).APIBase(); got != DefaultAPIBaseURL {
		t.Errorf("APIBase() = %q, want %q", got, DefaultAPIBaseURL)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("WILI_API_BASE_URL", "https://env.example")
	t.Setenv("WILI_TELEGRAM_BOT", "env_bot")

	c := applyEnv(Config{APIBaseURL: "https://file.example"})
	if c.APIBaseURL != "https://env.example" {
		t.Errorf("APIBaseURL = %q, want env override", c.APIBaseURL)
	}
	if c.TelegramBot != "env_bot" {
		t.Errorf("TelegramBot = %q, want env_bot", c.TelegramBot)
	}
}
