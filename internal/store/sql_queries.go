package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/docuvault/go-doc-manager/models"
)

const (
	createUser = `INSERT INTO users (full_name, email, password, role, is_verified, otp, otp_expiry)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING user_id, full_name, email, password, role, is_verified, otp, otp_expiry, created_at;`

	findUserByEmail = `SELECT user_id, full_name, email, password, role, is_verified, otp, otp_expiry, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, full_name, email, password, role, is_verified, otp, otp_expiry, created_at
    FROM users
    WHERE user_id = $1;`

	updateUser = `UPDATE users
    SET full_name = $2, email = $3, password = $4, role = $5, is_verified = $6, otp = $7, otp_expiry = $8
    WHERE user_id = $1
    RETURNING user_id, full_name, email, password, role, is_verified, otp, otp_expiry, created_at;`

	deleteUserByEmail = `DELETE FROM users WHERE email = $1;`

	purgeExpiredUnverifiedUsers = `DELETE FROM users
    WHERE is_verified = false AND otp_expiry IS NOT NULL AND otp_expiry < $1;`

	createDocument = `INSERT INTO documents (title, page_size, status, user_id)
    VALUES ($1, $2, $3, $4)
    RETURNING id, title, page_size, status, created_at, user_id;`

	findDocumentByID = `SELECT id, title, page_size, status, created_at, user_id
    FROM documents
    WHERE id = $1;`

	deleteDocument = `DELETE FROM documents WHERE id = $1;`
)

// psql builds queries with PostgreSQL-style positional placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildUpdateDocumentQuery assembles a partial UPDATE for the non-nil fields
// of update. Returns ErrBuildingSQLQuery when the update would touch no
// columns.
func buildUpdateDocumentQuery(id int64, update models.DocumentUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrBuildingSQLQuery
	}

	builder := psql.Update("documents")

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.PageSize != nil {
		builder = builder.Set("page_size", *update.PageSize)
	}
	if update.Status != nil {
		builder = builder.Set("status", *update.Status)
	}

	return builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, title, page_size, status, created_at, user_id").
		ToSql()
}

// buildListDocumentsQuery assembles one page of the document listing,
// filtered by status and ordered by ascending id.
func buildListDocumentsQuery(status string, offset, limit uint64) (string, []any, error) {
	return psql.
		Select("id", "title", "page_size", "status", "created_at", "user_id").
		From("documents").
		Where(sq.Eq{"status": status}).
		OrderBy("id ASC").
		Offset(offset).
		Limit(limit).
		ToSql()
}

// buildCountDocumentsQuery assembles the total-count companion of the
// document listing.
func buildCountDocumentsQuery(status string) (string, []any, error) {
	return psql.
		Select("COUNT(*)").
		From("documents").
		Where(sq.Eq{"status": status}).
		ToSql()
}
