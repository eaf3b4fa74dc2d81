package models

// Request payloads accepted by the REST surface. Field names follow the
// public API contract, not Go conventions.

// SignUpRequest is the body of POST /user/signup.
type SignUpRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// VerifyOTPRequest is the body of POST /user/verify-otp.
type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   int64  `json:"OTP"`
}

// ForgetPasswordRequest is the body of POST /user/forget-password.
type ForgetPasswordRequest struct {
	Email string `json:"email"`
}

// ChangePasswordRequest is the body of POST /user/change-password.
type ChangePasswordRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	OTP             int64  `json:"otp"`
}

// SignInRequest is the body of POST /user/signin.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest is the body of POST /user/update-profile.
// Only the fields listed here may be merged into the stored user record;
// anything else in the body is ignored.
type UpdateProfileRequest struct {
	Email *string `json:"email,omitempty"`
	Role  *string `json:"role,omitempty"`
}

// CreateDocumentRequest is the body of POST /documents/create.
type CreateDocumentRequest struct {
	Title    string `json:"title"`
	PageSize int    `json:"pageSize"`
	Status   string `json:"status,omitempty"`
}

// EditDocumentRequest is the body of POST /documents/edit/{id}.
// Nil fields are left untouched.
type EditDocumentRequest struct {
	Title    *string `json:"title,omitempty"`
	PageSize *int    `json:"pageSize,omitempty"`
}
