package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/docuvault/go-doc-manager/internal/logger"
	"github.com/docuvault/go-doc-manager/internal/store"
	"github.com/docuvault/go-doc-manager/internal/utils"
	"github.com/docuvault/go-doc-manager/models"
	"github.com/go-chi/chi/v5"
)

const invalidDocumentIDMessage = "Invalid document id"

func (h *Handler) createDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	caller, _ := utils.GetAuthUserFromContext(ctx)

	var request models.CreateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg(invalidJSONMessage)
		h.respondFailure(w, r, invalidJSONMessage, http.StatusBadRequest)
		return
	}

	created, err := h.services.DocumentService.Create(ctx, caller.UserID, request)
	if err != nil {
		log.Err(err).Msg("document creation failed")
		h.respondError(w, r, err)
		return
	}

	h.respondSuccess(w, r, created, "Document successfully created.")
}

func (h *Handler) editDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := documentIDFromURL(r)
	if err != nil {
		log.Err(err).Msg(invalidDocumentIDMessage)
		h.respondFailure(w, r, invalidDocumentIDMessage, http.StatusBadRequest)
		return
	}

	var request models.EditDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg(invalidJSONMessage)
		h.respondFailure(w, r, invalidJSONMessage, http.StatusBadRequest)
		return
	}

	updated, err := h.services.DocumentService.Edit(ctx, id, request)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("document edit failed")
		if errors.Is(err, store.ErrDocumentNotFound) {
			h.respondFailure(w, r, "Document not found or you do not have access.", http.StatusBadRequest)
			return
		}
		h.respondError(w, r, err)
		return
	}

	h.respondSuccess(w, r, updated, "Document updated successfully.")
}

func (h *Handler) viewDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := documentIDFromURL(r)
	if err != nil {
		log.Err(err).Msg(invalidDocumentIDMessage)
		h.respondFailure(w, r, invalidDocumentIDMessage, http.StatusBadRequest)
		return
	}

	document, err := h.services.DocumentService.Get(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("document lookup failed")
		h.respondError(w, r, err)
		return
	}

	h.respondSuccess(w, r, document, "Document fetched successfully.")
}

func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 10)

	documents, err := h.services.DocumentService.List(ctx, page, limit)
	if err != nil {
		log.Err(err).Msg("document listing failed")
		h.respondError(w, r, err)
		return
	}

	h.respondSuccess(w, r, documents, "Documents fetched successfully.")
}

func (h *Handler) updateDocumentStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := documentIDFromURL(r)
	if err != nil {
		log.Err(err).Msg(invalidDocumentIDMessage)
		h.respondFailure(w, r, invalidDocumentIDMessage, http.StatusBadRequest)
		return
	}

	status := chi.URLParam(r, "status")

	updated, err := h.services.DocumentService.UpdateStatus(ctx, id, status)
	if err != nil {
		log.Err(err).Int64("id", id).Str("status", status).Msg("document status update failed")
		h.respondError(w, r, err)
		return
	}

	h.respondSuccess(w, r, updated, "Document status updated successfully.")
}

func (h *Handler) deleteDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := documentIDFromURL(r)
	if err != nil {
		log.Err(err).Msg(invalidDocumentIDMessage)
		h.respondFailure(w, r, invalidDocumentIDMessage, http.StatusBadRequest)
		return
	}

	if err := h.services.DocumentService.Delete(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("document deletion failed")
		h.respondError(w, r, err)
		return
	}

	h.respondSuccess(w, r, nil, "Document deleted successfully.")
}

// documentIDFromURL parses the {id} route parameter.
func documentIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// queryInt reads an integer query parameter, falling back to def when the
// parameter is absent or malformed.
func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return value
}
