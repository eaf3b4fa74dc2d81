// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// email normalization, HTTP response writing, HTTP client initialization,
// JWT token generation and validation, and other common operations.
package utils

import (
	"context"

	"github.com/docuvault/go-doc-manager/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AuthUserCtxKey is the key used to store the authenticated caller's
// identity in the context. Populated by the authentication middleware after
// a bearer token has been validated, and read by downstream handlers via
// [GetAuthUserFromContext].
var AuthUserCtxKey = contextKey("authUser")

// AuthUser is the caller identity decoded from a validated bearer token.
type AuthUser struct {
	UserID int64
	Email  string
	Role   models.Role
}

// GetAuthUserFromContext retrieves the authenticated caller from the context.
//
// Returns the caller identity and an ok flag:
//   - ok == true: value is found and has the correct type
//   - ok == false: value is missing (request did not pass authentication)
func GetAuthUserFromContext(ctx context.Context) (AuthUser, bool) {
	user, ok := ctx.Value(AuthUserCtxKey).(AuthUser)
	return user, ok
}
