package app

import (
	"encoding/json"
	"fmt"
	"strings"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/delivery/http/handler"
	"portfolio-backend/internal/delivery/http/middleware"
	"portfolio-backend/internal/delivery/http/routes"
	"portfolio-backend/internal/ws"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// New builds the HTTP application on top of an existing container.
func New(cfg config.Config, c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName:     cfg.App.AppName,
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})

	registerGlobalMiddleware(f, cfg, c.Logger)
	registerRoutes(f, cfg, c)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return New(cfg, c), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, cfg config.Config, logger *log.Logger) {
	if app == nil {
		return
	}

	httpLogger := logger.WithPrefix("http")
	app.Use(middleware.NewErrorMiddleware(httpLogger).Middleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.App.CORSAllowOrigins,
		AllowMethods: []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodDelete, fiber.MethodOptions},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", middleware.HeaderRequestID},
	}))
	app.Use(middleware.NewAccessLogMiddleware(httpLogger).Middleware())
}

func registerRoutes(app *fiber.App, cfg config.Config, c *Container) {
	if app == nil || c == nil {
		return
	}

	routes.NewRegistry(
		handler.NewHealthHandler(c.Health),
		handler.NewSkillHandler(c.Skills),
		handler.NewAdminHandler(c.Populate),
		ws.NewHandler(c.Hub, cfg.App.CORSAllowOrigins, c.Logger.WithPrefix("ws")),
	).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
