package http

import (
	"net/http"

	"github.com/docuvault/go-doc-manager/internal/logger"
	"github.com/docuvault/go-doc-manager/internal/utils"
	"github.com/docuvault/go-doc-manager/models"
)

// respondSuccess writes the success envelope with HTTP 200.
func (h *Handler) respondSuccess(w http.ResponseWriter, r *http.Request, data any, message string) {
	h.writeEnvelope(w, r, models.Response{Success: true, Message: message, Data: data}, http.StatusOK)
}

// respondError maps err onto its envelope message and status and writes the
// failure envelope.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	failure := mapFailure(err)
	h.respondFailure(w, r, failure.message, failure.status)
}

// respondFailure writes the failure envelope with the given message and
// status.
func (h *Handler) respondFailure(w http.ResponseWriter, r *http.Request, message string, statusCode int) {
	h.writeEnvelope(w, r, models.Response{Success: false, Message: message}, statusCode)
}

func (h *Handler) writeEnvelope(w http.ResponseWriter, r *http.Request, response models.Response, statusCode int) {
	if _, err := utils.WriteJSON(w, response, statusCode); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write response")
	}
}
