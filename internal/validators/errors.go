package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyFullName    = errors.New("full name is required")
	ErrEmptyEmail       = errors.New("email is required")
	ErrEmptyPassword    = errors.New("password is required")
	ErrEmptyTitle       = errors.New("title is required")
	ErrInvalidPageSize  = errors.New("invalid page size")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)
