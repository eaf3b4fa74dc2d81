package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/docuvault/go-doc-manager/internal/adapter"
	"github.com/docuvault/go-doc-manager/internal/logger"
)

// searchService is the concrete implementation of SearchService. It is a
// thin delegation layer over the search adapter: pagination defaults are
// applied here, the response body stays untouched.
type searchService struct {
	searchClient adapter.SearchClient
	logger       *logger.Logger
}

// NewSearchService constructs a SearchService wired to the given
// SearchClient.
func NewSearchService(searchClient adapter.SearchClient, logger *logger.Logger) SearchService {
	return &searchService{
		searchClient: searchClient,
		logger:       logger,
	}
}

// FetchDocuments retrieves one page of documents from the remote search
// service. page and limit fall back to 1 and 10 when not positive. Any
// adapter failure is reported as ErrSearchUnavailable.
func (s *searchService) FetchDocuments(ctx context.Context, page, limit int) (json.RawMessage, error) {
	log := logger.FromContext(ctx)

	if page < 1 {
		page = defaultListPage
	}
	if limit < 1 {
		limit = defaultListLimit
	}

	body, err := s.searchClient.GetDocuments(ctx, page, limit)
	if err != nil {
		log.Err(err).Str("func", "*searchService.FetchDocuments").Msg("search fetch failed")
		return nil, fmt.Errorf("%w: %w", ErrSearchUnavailable, err)
	}

	return body, nil
}
