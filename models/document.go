package models

import "time"

// DocumentStatusActive is the default status assigned at creation and the
// only status returned by the paginated listing.
const DocumentStatusActive = "active"

// Document represents one stored document record. Every document has exactly
// one owning user, fixed at creation from the authenticated caller; no
// exposed operation reassigns ownership.
type Document struct {
	// ID is the internal unique identifier assigned by the database.
	ID int64 `json:"id"`

	// Title is the human-readable document title.
	Title string `json:"title"`

	// PageSize is the document's page count, a positive integer.
	PageSize int `json:"pageSize"`

	// Status is a free-form lifecycle tag, "active" by default.
	Status string `json:"status"`

	// CreatedAt is set by the database at creation.
	CreatedAt time.Time `json:"createdAt"`

	// UserID is the identifier of the owning user.
	UserID int64 `json:"userId"`
}

// TableName returns the name of the database table
// associated with the Document model.
func (d Document) TableName() string {
	return "documents"
}

// DocumentUpdate describes a partial update of a document row.
// Nil fields are left untouched.
type DocumentUpdate struct {
	Title    *string
	PageSize *int
	Status   *string
}

// IsEmpty reports whether the update would touch no columns.
func (u DocumentUpdate) IsEmpty() bool {
	return u.Title == nil && u.PageSize == nil && u.Status == nil
}
