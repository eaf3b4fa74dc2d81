package service

import (
	"context"
	"fmt"

	"github.com/docuvault/go-doc-manager/internal/logger"
	"github.com/docuvault/go-doc-manager/internal/store"
	"github.com/docuvault/go-doc-manager/internal/validators"
	"github.com/docuvault/go-doc-manager/models"
)

const (
	defaultListPage  = 1
	defaultListLimit = 10
)

// documentService is the concrete implementation of DocumentService.
type documentService struct {
	documentRepository store.DocumentRepository
	validator          validators.Validator
	logger             *logger.Logger
}

// NewDocumentService constructs a DocumentService wired to the given
// DocumentRepository.
func NewDocumentService(documentRepository store.DocumentRepository, validator validators.Validator, logger *logger.Logger) DocumentService {
	return &documentService{
		documentRepository: documentRepository,
		validator:          validator,
		logger:             logger,
	}
}

// Create stores a new document owned by ownerID. An empty status falls back
// to "active". Returns ErrNotAuthenticated when ownerID is zero and
// ErrInvalidDataProvided when the title is empty.
func (d *documentService) Create(ctx context.Context, ownerID int64, request models.CreateDocumentRequest) (models.Document, error) {
	log := logger.FromContext(ctx)

	if ownerID == 0 {
		return models.Document{}, ErrNotAuthenticated
	}
	if err := d.validator.Validate(ctx, request); err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	status := request.Status
	if status == "" {
		status = models.DocumentStatusActive
	}

	created, err := d.documentRepository.CreateDocument(ctx, models.Document{
		Title:    request.Title,
		PageSize: request.PageSize,
		Status:   status,
		UserID:   ownerID,
	})
	if err != nil {
		log.Err(err).Str("func", "*documentService.Create").Msg("document creation ended with error")
		return models.Document{}, fmt.Errorf("document creation ended with error: %w", err)
	}

	return created, nil
}

// Edit applies a partial title/page-size update to the document.
// Returns ErrInvalidDataProvided when the request changes nothing.
func (d *documentService) Edit(ctx context.Context, id int64, request models.EditDocumentRequest) (models.Document, error) {
	log := logger.FromContext(ctx)

	if err := d.validator.Validate(ctx, request); err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	update := models.DocumentUpdate{
		Title:    request.Title,
		PageSize: request.PageSize,
	}

	saved, err := d.documentRepository.UpdateDocument(ctx, id, update)
	if err != nil {
		log.Err(err).Str("func", "*documentService.Edit").Int64("id", id).Msg("document update ended with error")
		return models.Document{}, fmt.Errorf("document update ended with error: %w", err)
	}

	return saved, nil
}

// Get returns the document with the given identifier.
func (d *documentService) Get(ctx context.Context, id int64) (models.Document, error) {
	log := logger.FromContext(ctx)

	found, err := d.documentRepository.FindDocumentByID(ctx, id)
	if err != nil {
		log.Err(err).Str("func", "*documentService.Get").Int64("id", id).Msg("document lookup ended with error")
		return models.Document{}, fmt.Errorf("document lookup ended with error: %w", err)
	}

	return found, nil
}

// UpdateStatus sets the document status.
// Returns ErrInvalidDataProvided when status is empty.
func (d *documentService) UpdateStatus(ctx context.Context, id int64, status string) (models.Document, error) {
	log := logger.FromContext(ctx)

	if status == "" {
		return models.Document{}, ErrInvalidDataProvided
	}

	saved, err := d.documentRepository.UpdateDocument(ctx, id, models.DocumentUpdate{Status: &status})
	if err != nil {
		log.Err(err).Str("func", "*documentService.UpdateStatus").Int64("id", id).Msg("status update ended with error")
		return models.Document{}, fmt.Errorf("status update ended with error: %w", err)
	}

	return saved, nil
}

// Delete removes the document.
func (d *documentService) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if err := d.documentRepository.DeleteDocument(ctx, id); err != nil {
		log.Err(err).Str("func", "*documentService.Delete").Int64("id", id).Msg("document deletion ended with error")
		return fmt.Errorf("document deletion ended with error: %w", err)
	}

	return nil
}

// List returns one page of active documents ordered by ascending id,
// together with pagination metadata. page and limit fall back to their
// defaults (1, 10) when not positive.
func (d *documentService) List(ctx context.Context, page, limit int) (models.DocumentPage, error) {
	log := logger.FromContext(ctx)

	if page < 1 {
		page = defaultListPage
	}
	if limit < 1 {
		limit = defaultListLimit
	}

	offset := uint64(page-1) * uint64(limit)

	documents, total, err := d.documentRepository.ListDocuments(ctx, models.DocumentStatusActive, offset, uint64(limit))
	if err != nil {
		log.Err(err).Str("func", "*documentService.List").Msg("document listing ended with error")
		return models.DocumentPage{}, fmt.Errorf("document listing ended with error: %w", err)
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)

	return models.DocumentPage{
		Data: documents,
		Meta: models.PageMeta{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages,
		},
	}, nil
}
