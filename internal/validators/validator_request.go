package validators

import (
	"context"

	"github.com/docuvault/go-doc-manager/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldFullName targets the display name of a registering account.
	FieldFullName = "full_name"

	// FieldEmail targets the email address field of a request.
	FieldEmail = "email"

	// FieldPassword targets the plaintext password field of a request.
	FieldPassword = "password"

	// FieldTitle targets the title field of a document request.
	FieldTitle = "title"

	// FieldPageSize targets the page-size field of a document request.
	FieldPageSize = "page_size"
)

// RequestValidator implements the Validator interface for the inbound API
// request models: SignUpRequest, CreateDocumentRequest and
// EditDocumentRequest.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type RequestValidator struct {
}

// NewRequestValidator constructs a new RequestValidator
// and returns it as the Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches validation to the appropriate type-specific method.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignUpRequest:
		return v.validateSignUpRequest(ctx, value, fields...)
	case *models.SignUpRequest:
		return v.validateSignUpRequest(ctx, *value, fields...)

	case models.CreateDocumentRequest:
		return v.validateCreateDocumentRequest(ctx, value, fields...)
	case *models.CreateDocumentRequest:
		return v.validateCreateDocumentRequest(ctx, *value, fields...)

	case models.EditDocumentRequest:
		return v.validateEditDocumentRequest(ctx, value, fields...)
	case *models.EditDocumentRequest:
		return v.validateEditDocumentRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateSignUpRequest(_ context.Context, request models.SignUpRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFullName, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldFullName:
			if request.FullName == "" {
				return ErrEmptyFullName
			}
		case FieldEmail:
			if request.Email == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateCreateDocumentRequest(_ context.Context, request models.CreateDocumentRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if request.Title == "" {
				return ErrEmptyTitle
			}
		case FieldPageSize:
			if request.PageSize < 0 {
				return ErrInvalidPageSize
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateEditDocumentRequest(_ context.Context, request models.EditDocumentRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldPageSize}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if request.Title != nil && *request.Title == "" {
				return ErrEmptyTitle
			}
		case FieldPageSize:
			if request.PageSize != nil && *request.PageSize < 0 {
				return ErrInvalidPageSize
			}
		default:
			return ErrUnknownField
		}
	}

	if request.Title == nil && request.PageSize == nil {
		return ErrNoFieldsToUpdate
	}

	return nil
}
