package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes, credential data and the pending OTP state.
// Sensitive fields must never be exposed outside trusted boundaries; use
// [User.Sanitized] before writing a user to any response payload.
type User struct {
	// UserID is the internal unique identifier of the user,
	// assigned by the database at creation.
	UserID int64 `json:"id"`

	// FullName is the display name of the user.
	FullName string `json:"fullName"`

	// Email is the unique user identifier used during authentication.
	// It is normalized to lowercase at every read/write boundary.
	Email string `json:"email"`

	// Password stores the bcrypt hash of the user's password.
	// This value MUST be a hash, never plaintext.
	Password string `json:"password,omitempty"`

	// Role determines which operations the user may invoke.
	// Defaults to [RoleViewer] at creation.
	Role Role `json:"role"`

	// IsVerified is false until the signup OTP has been verified once.
	IsVerified bool `json:"isVerified"`

	// OTP is the pending one-time code. It is nil unless a verification
	// or password-reset cycle is in progress, and is always paired with
	// OTPExpiry: both nil or both set.
	OTP *int64 `json:"otp,omitempty"`

	// OTPExpiry is the end of the OTP validity window, paired with OTP.
	OTPExpiry *time.Time `json:"otpExpiry,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// HasPendingOTP reports whether a verification or reset cycle is in progress.
func (u User) HasPendingOTP() bool {
	return u.OTP != nil && u.OTPExpiry != nil
}

// Sanitized returns a copy of the user with the password hash and OTP fields
// stripped, safe to embed in a response payload.
func (u User) Sanitized() User {
	u.Password = ""
	u.OTP = nil
	u.OTPExpiry = nil
	return u
}
