package service

import (
	"context"
	"encoding/json"

	"github.com/docuvault/go-doc-manager/models"
)

// VerifyOTPResult reports the outcome of an OTP verification attempt.
//
// A mismatching code is an error (ErrInvalidOTP), not a result. A stale code
// is not an error either: the account gets a fresh code and Reissued is set,
// so the caller can tell the user to check their inbox again.
type VerifyOTPResult struct {
	// User is the sanitized account record. Zero when Reissued is set.
	User models.User

	// Reissued is true when the presented code was stale and a fresh one
	// was generated instead of completing the verification.
	Reissued bool
}

// AuthService implements the account lifecycle: signup with OTP
// verification, password recovery, credential sign-in and profile updates,
// plus JWT issuing and parsing for the HTTP auth middleware.
type AuthService interface {
	// SignUp registers a new account and issues its verification OTP.
	// A verified account with the same email is rejected with
	// ErrUserAlreadyRegistered; an unverified one is replaced.
	// Returns the sanitized stored user.
	SignUp(ctx context.Context, request models.SignUpRequest) (models.User, error)

	// VerifyOTP completes (or re-arms, see VerifyOTPResult) the email
	// verification of the account. Returns ErrUserNotFound when no account
	// with a pending OTP matches the email, ErrInvalidOTP on code mismatch.
	VerifyOTP(ctx context.Context, email string, otp int64) (VerifyOTPResult, error)

	// ForgetPassword issues a fresh OTP for the account so the password can
	// be changed. The verified flag is left untouched.
	ForgetPassword(ctx context.Context, email string) error

	// ChangePassword sets a new password after checking, in order: account
	// existence, OTP match, OTP freshness, password confirmation.
	ChangePassword(ctx context.Context, request models.ChangePasswordRequest) error

	// SignIn authenticates by email and password. Returns the sanitized
	// user together with a signed JWT.
	SignIn(ctx context.Context, email, password string) (models.SignInResponse, error)

	// UpdateProfile merges the allowed fields (email, role) into the
	// account identified by userID and returns the sanitized result.
	UpdateProfile(ctx context.Context, userID int64, update models.UpdateProfileRequest) (models.User, error)

	// CreateToken issues a signed JWT for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a compact JWT string and returns its claims.
	// Returns ErrTokenIsExpiredOrInvalid for anything unusable.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// DocumentService implements the document CRUD and listing operations.
type DocumentService interface {
	// Create stores a new document owned by ownerID.
	// Returns ErrNotAuthenticated when ownerID is zero.
	Create(ctx context.Context, ownerID int64, request models.CreateDocumentRequest) (models.Document, error)

	// Edit applies a partial title/page-size update to the document.
	Edit(ctx context.Context, id int64, request models.EditDocumentRequest) (models.Document, error)

	// Get returns the document with the given identifier.
	Get(ctx context.Context, id int64) (models.Document, error)

	// UpdateStatus sets the document status.
	UpdateStatus(ctx context.Context, id int64, status string) (models.Document, error)

	// Delete removes the document.
	Delete(ctx context.Context, id int64) error

	// List returns one page of active documents ordered by ascending id.
	// page and limit fall back to 1 and 10 when not positive.
	List(ctx context.Context, page, limit int) (models.DocumentPage, error)
}

// SearchService proxies listing requests to the remote document-search
// service.
type SearchService interface {
	// FetchDocuments retrieves one page of documents from the remote
	// service and returns its response body verbatim.
	FetchDocuments(ctx context.Context, page, limit int) (json.RawMessage, error)
}
