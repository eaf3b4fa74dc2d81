package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/docuvault/go-doc-manager/internal/logger"
	"github.com/docuvault/go-doc-manager/models"
)

// documentRepository is the PostgreSQL-backed implementation of
// [DocumentRepository]. It executes all document CRUD operations against the
// "documents" table. Static statements live in sql_queries.go; the partial
// update and the paginated listing are built dynamically with squirrel.
type documentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDocumentRepository constructs a [DocumentRepository] backed by the
// provided database connection and logger.
func NewDocumentRepository(db *DB, logger *logger.Logger) DocumentRepository {
	logger.Debug().Msg("creating document repository")
	return &documentRepository{
		db:     db,
		logger: logger,
	}
}

// CreateDocument persists a new document and returns the stored row with
// server-assigned fields (ID, CreatedAt).
func (r *documentRepository) CreateDocument(ctx context.Context, document models.Document) (models.Document, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createDocument,
		document.Title, document.PageSize, document.Status, document.UserID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*documentRepository.CreateDocument").Msg("error: row is nil")
		return models.Document{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	saved, err := scanDocument(row)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.CreateDocument").Msg("error: scanning error")
		return models.Document{}, err
	}

	return saved, nil
}

// FindDocumentByID retrieves the document with the given identifier.
// Returns [ErrDocumentNotFound] when no row matches.
func (r *documentRepository) FindDocumentByID(ctx context.Context, id int64) (models.Document, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findDocumentByID, id)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*documentRepository.FindDocumentByID").Msg("error: row is nil")
		return models.Document{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	found, err := scanDocument(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Document{}, ErrDocumentNotFound
		}
		log.Err(err).Str("func", "*documentRepository.FindDocumentByID").Msg("error: scanning error")
		return models.Document{}, err
	}

	return found, nil
}

// UpdateDocument applies the non-nil fields of update to the document row
// and returns the stored row.
//
// Error handling:
//   - Empty update → [ErrBuildingSQLQuery].
//   - No matching row → [ErrDocumentNotFound].
func (r *documentRepository) UpdateDocument(ctx context.Context, id int64, update models.DocumentUpdate) (models.Document, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateDocumentQuery(id, update)
	if err != nil {
		log.Err(err).
			Str("func", "*documentRepository.UpdateDocument").
			Int64("id", id).
			Msg("failed to build update query")
		return models.Document{}, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*documentRepository.UpdateDocument").Msg("error: row is nil")
		return models.Document{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	saved, err := scanDocument(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Document{}, ErrDocumentNotFound
		}
		log.Err(err).Str("func", "*documentRepository.UpdateDocument").Msg("error: scanning error")
		return models.Document{}, err
	}

	return saved, nil
}

// DeleteDocument removes the document row with the given identifier.
// Returns [ErrDocumentNotFound] when no row was deleted.
func (r *documentRepository) DeleteDocument(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteDocument, id)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.DeleteDocument").Msg("error deleting document")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrDocumentNotFound
	}

	return nil
}

// ListDocuments returns one page of documents with the given status, ordered
// by ascending id, together with the total number of matching rows.
func (r *documentRepository) ListDocuments(ctx context.Context, status string, offset, limit uint64) ([]models.Document, int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListDocumentsQuery(status, offset, limit)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.ListDocuments").Msg("failed to build list query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*documentRepository.ListDocuments").
			Str("status", status).
			Msg("failed to execute query for listing documents")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	documents := make([]models.Document, 0, limit)

	for rows.Next() {
		var d models.Document
		if scanErr := rows.Scan(&d.ID, &d.Title, &d.PageSize, &d.Status, &d.CreatedAt, &d.UserID); scanErr != nil {
			log.Err(scanErr).Str("func", "*documentRepository.ListDocuments").Msg("failed to scan document row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		documents = append(documents, d)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*documentRepository.ListDocuments").Msg("error occurred during rows iteration")
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	total, err := r.countDocuments(ctx, status)
	if err != nil {
		return nil, 0, err
	}

	return documents, total, nil
}

func (r *documentRepository) countDocuments(ctx context.Context, status string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountDocumentsQuery(status)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*documentRepository.countDocuments").Msg("failed to count documents")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}

// scanDocument reads one document row in canonical column order.
func scanDocument(row *sql.Row) (models.Document, error) {
	var d models.Document
	err := row.Scan(&d.ID, &d.Title, &d.PageSize, &d.Status, &d.CreatedAt, &d.UserID)
	return d, err
}
