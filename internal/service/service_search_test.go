package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/docuvault/go-doc-manager/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSearchClient is a trivial SearchClient stand-in; a full mockgen mock
// is not worth it for a single method.
type stubSearchClient struct {
	gotPage  int
	gotLimit int
	body     json.RawMessage
	err      error
}

func (s *stubSearchClient) GetDocuments(_ context.Context, page, limit int) (json.RawMessage, error) {
	s.gotPage = page
	s.gotLimit = limit
	return s.body, s.err
}

func TestSearchService_FetchDocuments_Passthrough(t *testing.T) {
	upstream := json.RawMessage(`{"documents":[],"total":0}`)
	client := &stubSearchClient{body: upstream}
	svc := NewSearchService(client, logger.Nop())

	body, err := svc.FetchDocuments(context.Background(), 2, 5)
	require.NoError(t, err)

	assert.Equal(t, upstream, body)
	assert.Equal(t, 2, client.gotPage)
	assert.Equal(t, 5, client.gotLimit)
}

func TestSearchService_FetchDocuments_Defaults(t *testing.T) {
	client := &stubSearchClient{body: json.RawMessage(`{}`)}
	svc := NewSearchService(client, logger.Nop())

	_, err := svc.FetchDocuments(context.Background(), 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 1, client.gotPage)
	assert.Equal(t, 10, client.gotLimit)
}

func TestSearchService_FetchDocuments_UpstreamFailure(t *testing.T) {
	client := &stubSearchClient{err: errors.New("connection refused")}
	svc := NewSearchService(client, logger.Nop())

	_, err := svc.FetchDocuments(context.Background(), 1, 10)
	assert.ErrorIs(t, err, ErrSearchUnavailable)
}
