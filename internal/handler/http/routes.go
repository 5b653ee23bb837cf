package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/admin/auth/login", h.login)
		r.Get("/api/version/", h.getServerVersion)
	})

	// admin routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/admin/credentials/batch-add", h.batchAdd)
		r.Post("/api/admin/credentials", h.addCredential)
		r.Get("/api/admin/credentials", h.listCredentials)
		r.Delete("/api/admin/credentials/disabled", h.deleteDisabled)
		r.Post("/api/admin/credentials/{id}/priority", h.setPriority)
		r.Post("/api/admin/credentials/{id}/disabled", h.setDisabled)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
