package http

import (
	"net/http"

	"github.com/docuvault/go-doc-manager/internal/logger"
	"github.com/docuvault/go-doc-manager/internal/utils"
	"github.com/docuvault/go-doc-manager/models"
)

// requireRoles is an HTTP middleware factory that enforces role-based
// authorization. It must run after [Handler.auth], which puts the caller
// identity into the request context.
//
// A request whose caller role is not in the allowed set is rejected with
// HTTP 403 Forbidden. A request that reaches this middleware without a
// caller identity (auth middleware missing or bypassed) is rejected with
// HTTP 401 Unauthorized. An empty allowed set permits every role.
func (h *Handler) requireRoles(allowed ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			caller, ok := utils.GetAuthUserFromContext(r.Context())
			if !ok {
				log.Error().Msg("no caller identity in context")
				h.respondFailure(w, r, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			if !caller.Role.In(allowed...) {
				log.Warn().
					Int64("user_id", caller.UserID).
					Str("role", string(caller.Role)).
					Msg("role not permitted for this operation")
				h.respondFailure(w, r, "Forbidden resource", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
