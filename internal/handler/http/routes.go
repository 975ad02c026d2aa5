package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// public reads
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getVersion)
		r.Post("/api/session", h.issueSession)

		r.Get("/api/contract", h.getContract)
		r.Get("/api/records", h.listRecords)
		r.Get("/api/records/{id}", h.getRecord)
		r.Get("/api/records/{id}/handle", h.getHandle)
		r.Get("/api/tx/{hash}", h.getReceipt)

		r.Post("/api/encrypt", h.encrypt)
		r.Post("/api/public-decrypt", h.publicDecrypt)
	})

	// signer-bound transactions
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/records", h.createRecord)
		r.Post("/api/records/{id}/verify", h.submitVerification)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
