package routes

import (
	"portfolio-backend/internal/delivery/http/handler"
	"portfolio-backend/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
	skills *handler.SkillHandler
	admin  *handler.AdminHandler
	ws     *ws.Handler
}

func NewRegistry(health *handler.HealthHandler, skills *handler.SkillHandler, admin *handler.AdminHandler, wsHandler *ws.Handler) *Registry {
	return &Registry{health: health, skills: skills, admin: admin, ws: wsHandler}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerWS(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.health == nil {
		return
	}
	app.Get("/health", r.health.Check)
}

func (r *Registry) registerWS(app *fiber.App) {
	if r.ws == nil {
		return
	}
	app.Get("/ws/skills", r.ws.HandleSkillsWS)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")

	// must precede the skill routes or /skills/:id swallows it
	if r.health != nil {
		api.Get("/skills/health", r.health.Check)
	}
	if r.skills != nil {
		r.skills.RegisterRoutes(api)
	}
	if r.admin != nil {
		r.admin.RegisterRoutes(api)
	}
}
