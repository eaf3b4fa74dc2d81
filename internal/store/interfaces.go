package store

import (
	"context"
	"time"

	"github.com/docuvault/go-doc-manager/models"
)

// UserRepository is the data-access contract for user accounts.
//
//go:generate mockgen -source=interfaces.go -destination=../mock/mock_store.go -package=mock
type UserRepository interface {
	// CreateUser persists a new user record and returns the stored row
	// with server-assigned fields (UserID, CreatedAt).
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail retrieves the user whose email matches the given
	// (already normalized) address. Returns ErrNoUserWasFound when absent.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID retrieves the user with the given identifier.
	// Returns ErrNoUserWasFound when absent.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// UpdateUser overwrites the mutable columns of the user row identified
	// by user.UserID and returns the stored row.
	UpdateUser(ctx context.Context, user models.User) (models.User, error)

	// DeleteUserByEmail removes the user row with the given (normalized)
	// email. Deleting an absent row is not an error.
	DeleteUserByEmail(ctx context.Context, email string) error

	// PurgeExpiredUnverifiedUsers deletes unverified accounts whose OTP
	// expired before cutoff and returns how many rows were removed.
	PurgeExpiredUnverifiedUsers(ctx context.Context, cutoff time.Time) (int64, error)
}

// DocumentRepository is the data-access contract for document records.
type DocumentRepository interface {
	// CreateDocument persists a new document and returns the stored row
	// with server-assigned fields (ID, CreatedAt).
	CreateDocument(ctx context.Context, document models.Document) (models.Document, error)

	// FindDocumentByID retrieves the document with the given identifier.
	// Returns ErrDocumentNotFound when absent.
	FindDocumentByID(ctx context.Context, id int64) (models.Document, error)

	// UpdateDocument applies the non-nil fields of update to the document
	// row and returns the stored row. Returns ErrDocumentNotFound when the
	// row does not exist.
	UpdateDocument(ctx context.Context, id int64, update models.DocumentUpdate) (models.Document, error)

	// DeleteDocument removes the document row. Returns ErrDocumentNotFound
	// when the row does not exist.
	DeleteDocument(ctx context.Context, id int64) error

	// ListDocuments returns one page of documents with the given status,
	// ordered by ascending id, together with the total number of matching
	// rows across all pages.
	ListDocuments(ctx context.Context, status string, offset, limit uint64) ([]models.Document, int64, error)
}
