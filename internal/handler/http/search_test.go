package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/docuvault/go-doc-manager/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListSearchDocuments_Passthrough(t *testing.T) {
	upstream := json.RawMessage(`[{"id":1,"title":"Quarterly report"}]`)
	search := &mockSearchService{
		fetchDocumentsFn: func(_ context.Context, page, limit int) (json.RawMessage, error) {
			assert.Equal(t, 3, page)
			assert.Equal(t, 7, limit)
			return upstream, nil
		},
	}
	router := newTestHandler(nil, nil, search).Init()

	rr := getWithToken(t, router, "/documents/python/list?page=3&limit=7", "viewer-token")

	require.Equal(t, http.StatusOK, rr.Code)
	envelope := decodeEnvelope(t, rr)
	assert.True(t, envelope.Success)
	assert.Equal(t, "Documents fetched successfully.", envelope.Message)

	data, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	assert.JSONEq(t, string(upstream), string(data), "upstream body must pass through untouched")
}

func TestListSearchDocuments_UpstreamFailure(t *testing.T) {
	search := &mockSearchService{
		fetchDocumentsFn: func(_ context.Context, _, _ int) (json.RawMessage, error) {
			return nil, errors.Join(service.ErrSearchUnavailable, errors.New("connection refused"))
		},
	}
	router := newTestHandler(nil, nil, search).Init()

	rr := getWithToken(t, router, "/documents/python/list", "viewer-token")

	require.Equal(t, http.StatusInternalServerError, rr.Code)

	var response proxyErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.False(t, response.Success)
	assert.Equal(t, "Error fetching documents from search service", response.Message)
	assert.NotEmpty(t, response.Error)
}
