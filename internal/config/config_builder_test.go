package config

import (
	"errors"
	"testing"
	"time"
)

// buildFrom merges the given configs through the builder pipeline without
// touching process-global state (env, flags).
func buildFrom(t *testing.T, configs ...*StructuredConfig) (*StructuredConfig, error) {
	t.Helper()
	b := newConfigBuilder()
	b.configs = append(b.configs, configs...)
	return b.build()
}

func validBase() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  "key",
			TokenIssuer:   "issuer",
			TokenDuration: 7 * 24 * time.Hour,
		},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/db"}},
		Server:  Server{HTTPAddress: ":8080"},
		Search:  Search{BaseURL: "http://localhost:5000"},
	}
}

func TestBuild_FirstSourceWins(t *testing.T) {
	high := &StructuredConfig{App: App{TokenSignKey: "from-high"}}
	low := validBase()
	low.App.TokenSignKey = "from-low"

	cfg, err := buildFrom(t, high, low)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.TokenSignKey != "from-high" {
		t.Errorf("expected the higher-priority source to win, got %q", cfg.App.TokenSignKey)
	}
	// everything unset by the high source falls through to the low one
	if cfg.Storage.DB.DSN != "postgres://localhost/db" {
		t.Errorf("expected DSN fallthrough, got %q", cfg.Storage.DB.DSN)
	}
}

func TestBuild_DefaultsFillGaps(t *testing.T) {
	partial := &StructuredConfig{
		App:     App{TokenSignKey: "key"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/db"}},
	}

	cfg, err := buildFrom(t, partial, defaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.TokenDuration != 7*24*time.Hour {
		t.Errorf("expected default 7-day token duration, got %v", cfg.App.TokenDuration)
	}
	if cfg.App.OTPValidityHours != 1 {
		t.Errorf("expected default 1-hour OTP window, got %d", cfg.App.OTPValidityHours)
	}
	if cfg.Server.HTTPAddress != ":8080" {
		t.Errorf("expected default address, got %q", cfg.Server.HTTPAddress)
	}
	if cfg.Search.BaseURL != "http://localhost:5000" {
		t.Errorf("expected default search URL, got %q", cfg.Search.BaseURL)
	}
}

func TestBuild_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{"missing DSN", func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
		{"missing sign key", func(c *StructuredConfig) { c.App.TokenSignKey = "" }, ErrInvalidAppConfigs},
		{"zero token duration", func(c *StructuredConfig) { c.App.TokenDuration = 0 }, ErrInvalidAppConfigs},
		{"missing address", func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, ErrInvalidServerConfigs},
		{"missing search URL", func(c *StructuredConfig) { c.Search.BaseURL = "" }, ErrInvalidSearchConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validBase()
			tt.mutate(cfg)

			_, err := buildFrom(t, cfg)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"localhost", "localhost:8080", "localhost:8080", false},
		{"ip", "127.0.0.1:9090", "127.0.0.1:9090", false},
		{"empty host", ":8080", ":8080", false},
		{"no port", "localhost", "", true},
		{"bad port", "localhost:http", "", true},
		{"negative port", "localhost:-1", "", true},
		{"bad ip", "not-an-ip:8080", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if addr.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, addr.String())
			}
		})
	}
}
