package routes

import (
	"skill-match/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	search *handler.SearchHandler
}

func NewRegistry(search *handler.SearchHandler) *Registry {
	return &Registry{search: search}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil || r == nil {
		return
	}
	r.search.RegisterRoutes(app)
}
