// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"context"
	"testing"

	"github.com/docuvault/go-doc-manager/models"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestRequestValidator_SignUpRequest(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		request models.SignUpRequest
		fields  []string
		wantErr error
	}{
		{
			name:    "valid",
			request: models.SignUpRequest{FullName: "Jane Doe", Email: "jane@example.com", Password: "secret"},
		},
		{
			name:    "missing full name",
			request: models.SignUpRequest{Email: "jane@example.com", Password: "secret"},
			wantErr: ErrEmptyFullName,
		},
		{
			name:    "missing email",
			request: models.SignUpRequest{FullName: "Jane Doe", Password: "secret"},
			wantErr: ErrEmptyEmail,
		},
		{
			name:    "missing password",
			request: models.SignUpRequest{FullName: "Jane Doe", Email: "jane@example.com"},
			wantErr: ErrEmptyPassword,
		},
		{
			name:    "scoped to email only",
			request: models.SignUpRequest{Email: "jane@example.com"},
			fields:  []string{FieldEmail},
		},
		{
			name:    "unknown field",
			request: models.SignUpRequest{FullName: "Jane Doe", Email: "jane@example.com", Password: "secret"},
			fields:  []string{"nope"},
			wantErr: ErrUnknownField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.request, tt.fields...)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRequestValidator_CreateDocumentRequest(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.CreateDocumentRequest{Title: "Quarterly report"}))
	assert.ErrorIs(t, v.Validate(ctx, models.CreateDocumentRequest{}), ErrEmptyTitle)
	assert.ErrorIs(t,
		v.Validate(ctx, models.CreateDocumentRequest{Title: "t", PageSize: -1}, FieldTitle, FieldPageSize),
		ErrInvalidPageSize)
}

func TestRequestValidator_EditDocumentRequest(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		request models.EditDocumentRequest
		wantErr error
	}{
		{name: "title only", request: models.EditDocumentRequest{Title: strPtr("Renamed")}},
		{name: "page size only", request: models.EditDocumentRequest{PageSize: intPtr(20)}},
		{name: "nothing to update", request: models.EditDocumentRequest{}, wantErr: ErrNoFieldsToUpdate},
		{name: "empty title", request: models.EditDocumentRequest{Title: strPtr("")}, wantErr: ErrEmptyTitle},
		{name: "negative page size", request: models.EditDocumentRequest{PageSize: intPtr(-5)}, wantErr: ErrInvalidPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.request)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRequestValidator_PointerAndUnsupported(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, &models.SignUpRequest{FullName: "Jane", Email: "j@e.com", Password: "p"}))
	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
}
