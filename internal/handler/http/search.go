package http

import (
	"net/http"

	"github.com/docuvault/go-doc-manager/internal/logger"
	"github.com/docuvault/go-doc-manager/internal/utils"
)

// proxyErrorResponse is the failure shape of the search proxy endpoint:
// unlike the handled-error envelope it carries the upstream error text and
// answers with HTTP 500.
type proxyErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// listSearchDocuments proxies the listing to the remote document-search
// service and passes its response body through untouched.
func (h *Handler) listSearchDocuments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 10)

	body, err := h.services.SearchService.FetchDocuments(ctx, page, limit)
	if err != nil {
		log.Err(err).Msg("search proxy failed")
		response := proxyErrorResponse{
			Message: "Error fetching documents from search service",
			Error:   err.Error(),
		}
		if _, writeErr := utils.WriteJSON(w, response, http.StatusInternalServerError); writeErr != nil {
			log.Err(writeErr).Msg("failed to write response")
		}
		return
	}

	h.respondSuccess(w, r, body, "Documents fetched successfully.")
}
