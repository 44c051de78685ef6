package handler

import (
	"github.com/go-chi/chi/v5"
)

// Routes возвращает таблицу маршрутов страниц. Toggle принимает только
// POST: на остальные методы chi сам отвечает 405.
func Routes(h *TodoHandler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)

	r.Get("/todo/create/", h.CreateForm)
	r.Post("/todo/create/", h.Create)

	r.Get("/todo/{id}/", h.Detail)
	r.Get("/todo/{id}/edit/", h.EditForm)
	r.Post("/todo/{id}/edit/", h.Update)
	r.Get("/todo/{id}/delete/", h.ConfirmDelete)
	r.Post("/todo/{id}/delete/", h.Delete)
	r.Post("/todo/{id}/toggle/", h.Toggle)

	return r
}
