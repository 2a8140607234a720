package http

import (
	"io"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Aquilabot/KreaPC-Builder/internal/models"
)

const requestLogFormat = "${pid} | ${time} | ${latency} | [${ip}]:${port} | ${status} - ${method} ${path}\n"

type Config struct {
	Parts       PartService
	Builds      BuildService
	Retailers   []models.Retailer
	ReadTimeout time.Duration
	// Request log destination; stdout when nil.
	AccessLog io.Writer
}

func NewApp(cfg Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "KreaPC Builder",
		ReadTimeout:           cfg.ReadTimeout,
		UnescapePath:          true,
		DisableStartupMessage: true,
	})

	accessLog := cfg.AccessLog
	if accessLog == nil {
		accessLog = os.Stdout
	}

	app.Use(recover.New())
	app.Use(helmet.New())
	app.Use(logger.New(logger.Config{
		Format: requestLogFormat,
		Output: accessLog,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("SERVING")
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")
	(&partHandler{svc: cfg.Parts}).register(api.Group("/parts"))
	(&buildHandler{svc: cfg.Builds}).register(api)

	retailers := cfg.Retailers
	if retailers == nil {
		retailers = []models.Retailer{}
	}
	api.Get("/retailers", func(c *fiber.Ctx) error {
		return ok(c, fiber.StatusOK, retailers)
	})

	return app
}
