package adapter

import "errors"

var (
	// ErrSearchRequestFailed covers transport-level failures: connection
	// refused, timeout, DNS.
	ErrSearchRequestFailed = errors.New("search request failed")

	// ErrSearchBadStatus covers non-2xx responses from the search service.
	ErrSearchBadStatus = errors.New("search service returned non-2xx status")
)
