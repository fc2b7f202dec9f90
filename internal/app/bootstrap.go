package app

import (
	"fmt"
	"strings"

	"skill-match/internal/config"
	"skill-match/internal/delivery/http/handler"
	"skill-match/internal/delivery/http/middleware"
	"skill-match/internal/delivery/http/routes"
	"skill-match/internal/search"
	"skill-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber *fiber.App
}

func New(cfg config.Config, uc usecase.SearchUsecase, log *zap.SugaredLogger) *App {
	f := fiber.New(fiber.Config{
		AppName:         cfg.App.AppName,
		StructValidator: middleware.NewStructValidator(),
	})

	registerGlobalMiddleware(f, log)
	routes.NewRegistry(handler.NewSearchHandler(uc, cfg.App.RequestTimeout, log)).Register(f)

	return &App{Fiber: f}
}

// Bootstrap connects the configured store and assembles the HTTP app. The
// returned cleanup closes the store.
func Bootstrap(cfg config.Config, log *zap.SugaredLogger) (*App, func() error, error) {
	c, err := NewContainer(cfg, log)
	if err != nil {
		return nil, nil, fmt.Errorf("init container: %w", err)
	}

	uc := usecase.NewSearchUsecase(c.Users, c.Teams, search.NewDefaultSkillExtractor(), log)
	return New(cfg, uc, log), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, log *zap.SugaredLogger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(log).Middleware())
	app.Use(middleware.NewErrorMiddleware(log).Middleware())
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
