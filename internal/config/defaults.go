package config

import "time"

// Built-in fallback values applied when no other configuration source sets
// a field. The 7-day token duration and 1-hour OTP window mirror the public
// API contract; everything else is a local development convenience.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:        "go-doc-manager",
			TokenDuration:      7 * 24 * time.Hour,
			OTPValidityHours:   1,
			OTPCleanupInterval: time.Hour,
		},
		Server: Server{
			HTTPAddress: ":8080",
		},
		Search: Search{
			BaseURL: "http://localhost:5000",
		},
	}
}
