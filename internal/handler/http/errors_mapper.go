package http

import (
	"errors"
	"net/http"

	"github.com/docuvault/go-doc-manager/internal/service"
	"github.com/docuvault/go-doc-manager/internal/store"
)

// failureMessage pairs the user-facing envelope message with the HTTP status
// the API contract prescribes for a handled error.
type failureMessage struct {
	message string
	status  int
}

// Handled failures answer with 400 and the exact message the API clients
// already depend on. Anything not listed here is an internal error.
var errorMessageMap = map[error]failureMessage{
	service.ErrInvalidDataProvided:   {message: "Invalid data provided", status: http.StatusBadRequest},
	service.ErrUserAlreadyRegistered: {message: "User already registered.", status: http.StatusBadRequest},
	service.ErrUserNotFound:          {message: "User not found", status: http.StatusBadRequest},
	service.ErrInvalidOTP:            {message: "Invalid OTP", status: http.StatusBadRequest},
	service.ErrOTPExpired:            {message: "OTP has expired", status: http.StatusBadRequest},
	service.ErrPasswordMismatch:      {message: "Password and confirm password should be the same", status: http.StatusBadRequest},
	service.ErrInvalidCredentials:    {message: "Invalid credentials", status: http.StatusBadRequest},
	service.ErrNotAuthenticated:      {message: "User is not authenticated", status: http.StatusBadRequest},
	service.ErrInvalidRole:           {message: "Invalid role", status: http.StatusBadRequest},

	store.ErrEmailAlreadyExists: {message: "Email already in use", status: http.StatusBadRequest},
	store.ErrDocumentNotFound:   {message: "Document not found", status: http.StatusBadRequest},
}

// mapFailure resolves err to its envelope message and status. Unrecognized
// errors collapse into a generic 500 so internals never leak to clients.
func mapFailure(err error) failureMessage {
	for target, failure := range errorMessageMap {
		if errors.Is(err, target) {
			return failure
		}
	}
	return failureMessage{
		message: http.StatusText(http.StatusInternalServerError),
		status:  http.StatusInternalServerError,
	}
}
