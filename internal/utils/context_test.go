// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"context"
	"testing"

	"github.com/docuvault/go-doc-manager/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestAuthUserCtxKey(t *testing.T) {
	if AuthUserCtxKey.String() != "authUser" {
		t.Errorf("expected 'authUser', got '%s'", AuthUserCtxKey.String())
	}
}

func TestGetAuthUserFromContext_Success(t *testing.T) {
	want := AuthUser{UserID: 42, Email: "a@b.com", Role: models.RoleAdmin}
	ctx := context.WithValue(context.Background(), AuthUserCtxKey, want)

	got, ok := GetAuthUserFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestGetAuthUserFromContext_Missing(t *testing.T) {
	got, ok := GetAuthUserFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if got != (AuthUser{}) {
		t.Errorf("expected zero value, got %+v", got)
	}
}

func TestGetAuthUserFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), AuthUserCtxKey, "not-an-auth-user")

	if _, ok := GetAuthUserFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}
