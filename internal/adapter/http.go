package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/docuvault/go-doc-manager/internal/config"
	"github.com/docuvault/go-doc-manager/internal/logger"
	"github.com/docuvault/go-doc-manager/internal/utils"
)

type httpSearchClient struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPSearchClient constructs an HTTP implementation of [SearchClient].
// It normalises and validates the base URL from cfg.BaseURL and configures
// the underlying HTTP client with the resolved base URL and request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPSearchClient(cfg config.Search, logger *logger.Logger) (SearchClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid search base url: %w", err)
	}

	client := utils.NewHTTPClient(cfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	return &httpSearchClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetDocuments implements [SearchClient]. It issues
// GET /get_documents?page=N&limit=M against the configured base URL and
// returns the response body untouched.
func (h *httpSearchClient) GetDocuments(ctx context.Context, page, limit int) (json.RawMessage, error) {
	log := logger.FromContext(ctx)

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("page", strconv.Itoa(page)).
		SetQueryParam("limit", strconv.Itoa(limit)).
		Get("/get_documents")
	if err != nil {
		log.Err(err).Str("func", "*httpSearchClient.GetDocuments").Msg("search request failed")
		return nil, fmt.Errorf("%w: %w", ErrSearchRequestFailed, err)
	}

	if resp.IsError() {
		log.Error().
			Str("func", "*httpSearchClient.GetDocuments").
			Int("status", resp.StatusCode()).
			Msg("search service returned non-2xx status")
		return nil, fmt.Errorf("%w: %d", ErrSearchBadStatus, resp.StatusCode())
	}

	return json.RawMessage(resp.Body()), nil
}
