package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrUserAlreadyRegistered = errors.New("user already registered")
	ErrUserNotFound          = errors.New("user not found")
	ErrInvalidOTP            = errors.New("invalid OTP")
	ErrOTPExpired            = errors.New("OTP has expired")
	ErrPasswordMismatch      = errors.New("password and confirm password do not match")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrNotAuthenticated      = errors.New("user is not authenticated")
	ErrInvalidRole           = errors.New("invalid role")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrSearchUnavailable = errors.New("document search service unavailable")
)
