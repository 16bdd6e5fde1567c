// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Velram

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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/users", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// routes behind session authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/auth/logout", h.logout)

		r.Get("/api/reminders", h.listReminders)
		r.Post("/api/reminders", h.createReminder)
		r.Patch("/api/reminders/{id}", h.updateReminder)
		r.Delete("/api/reminders/{id}", h.deleteReminder)
	})

	return router
}
