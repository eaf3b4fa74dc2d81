// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer abstractions for communicating
// with collaborator services.
//
// The primary abstraction is [SearchClient], which decouples the service
// layer from the document-search service's HTTP API. The package ships a
// resty-backed implementation ([NewHTTPSearchClient]).
package adapter

import (
	"context"
	"encoding/json"
)

// SearchClient defines communication with the remote document-search
// service. Implementations are responsible for serialisation and for mapping
// transport-level failures to the sentinel values defined in this package.
type SearchClient interface {
	// GetDocuments fetches one page of documents from the search service and
	// returns the response body verbatim, so the caller can pass it through
	// without reshaping.
	GetDocuments(ctx context.Context, page, limit int) (json.RawMessage, error)
}
