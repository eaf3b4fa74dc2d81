package utils

import (
	"testing"
	"time"

	"github.com/docuvault/go-doc-manager/models"
)

func testUser() models.User {
	return models.User{
		UserID: 123,
		Email:  "alice@example.com",
		Role:   models.RoleEditor,
	}
}

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, testUser(), duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}

	// Verify claims
	if token.Claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, token.Claims.Issuer)
	}
	if token.Claims.Subject != "123" {
		t.Errorf("expected subject '123', got %s", token.Claims.Subject)
	}
	if token.Claims.Email != "alice@example.com" {
		t.Errorf("expected email claim, got %s", token.Claims.Email)
	}
	if token.Claims.Role != models.RoleEditor {
		t.Errorf("expected role Editor, got %s", token.Claims.Role)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, testUser(), tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	issuer := "test-issuer"
	key := "secret-key"

	issued, err := GenerateJWTToken(issuer, testUser(), time.Hour, key)
	if err != nil {
		t.Fatalf("unexpected error issuing token: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, key, issuer)
	if err != nil {
		t.Fatalf("unexpected error parsing token: %v", err)
	}
	if parsed.UserID != 123 {
		t.Errorf("expected UserID=123, got %d", parsed.UserID)
	}
	if parsed.Claims.Email != "alice@example.com" {
		t.Errorf("expected email claim to survive round-trip, got %s", parsed.Claims.Email)
	}
	if parsed.Claims.Role != models.RoleEditor {
		t.Errorf("expected role claim to survive round-trip, got %s", parsed.Claims.Role)
	}
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	issued, err := GenerateJWTToken("iss", testUser(), time.Hour, "right-key")
	if err != nil {
		t.Fatalf("unexpected error issuing token: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(issued.SignedString, "wrong-key", "iss"); err == nil {
		t.Error("expected signature verification error, got nil")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	issued, err := GenerateJWTToken("iss", testUser(), time.Hour, "key")
	if err != nil {
		t.Fatalf("unexpected error issuing token: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(issued.SignedString, "key", "other-iss"); err == nil {
		t.Error("expected issuer mismatch error, got nil")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	issued, err := GenerateJWTToken("iss", testUser(), time.Nanosecond, "key")
	if err != nil {
		t.Fatalf("unexpected error issuing token: %v", err)
	}

	time.Sleep(5 * time.Millisecond)

	if _, err := ValidateAndParseJWTToken(issued.SignedString, "key", "iss"); err == nil {
		t.Error("expected expiry error, got nil")
	}
}
