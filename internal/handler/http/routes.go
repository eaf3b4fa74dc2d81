package http

import (
	"github.com/docuvault/go-doc-manager/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/user/signup", h.signUp)
		r.Post("/user/verify-otp", h.verifyOTP)
		r.Post("/user/forget-password", h.forgetPassword)
		r.Post("/user/change-password", h.changePassword)
		r.Post("/user/signin", h.signIn)
	})

	// routes behind bearer-token authentication, each with its static
	// allowed-role set
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.With(h.requireRoles(models.RoleAdmin, models.RoleEditor, models.RoleViewer)).
			Post("/user/update-profile", h.updateProfile)

		r.Route("/documents", func(r chi.Router) {
			r.With(h.requireRoles(models.RoleAdmin)).
				Post("/create", h.createDocument)
			r.With(h.requireRoles(models.RoleAdmin, models.RoleEditor)).
				Post("/edit/{id}", h.editDocument)
			r.With(h.requireRoles(models.RoleAdmin, models.RoleEditor, models.RoleViewer)).
				Get("/view/{id}", h.viewDocument)
			r.With(h.requireRoles(models.RoleAdmin, models.RoleEditor, models.RoleViewer)).
				Get("/list", h.listDocuments)
			r.With(h.requireRoles(models.RoleAdmin, models.RoleEditor, models.RoleViewer)).
				Get("/python/list", h.listSearchDocuments)
			r.With(h.requireRoles(models.RoleAdmin)).
				Get("/{id}/{status}", h.updateDocumentStatus)
			r.With(h.requireRoles(models.RoleAdmin)).
				Delete("/{id}", h.deleteDocument)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
