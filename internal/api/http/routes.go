package httpapi

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rabirubia/marine-card/internal/store"
)

// Generator is the subset of the card generator the API needs.
type Generator interface {
	Run(ctx context.Context) error
	CheckReadiness(ctx context.Context) error
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, gen Generator, reports *store.MemoryStore, cardPath string) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "marine-card",
		})
	})

	app.Get("/ready", func(c *fiber.Ctx) error {
		if err := gen.CheckReadiness(c.Context()); err != nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, err.Error())
		}
		return c.JSON(fiber.Map{"status": "ready"})
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	v1 := app.Group("/api/v1")

	v1.Get("/forecast/latest", func(c *fiber.Ctx) error {
		report, err := reports.GetLatest()
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no forecast generated yet")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to load latest forecast")
		}
		return c.JSON(report)
	})

	v1.Get("/card", func(c *fiber.Ctx) error {
		if err := gen.CheckReadiness(c.Context()); err != nil {
			return fiber.NewError(fiber.StatusNotFound, "no card generated yet")
		}
		return c.SendFile(cardPath)
	})

	v1.Post("/card/generate", func(c *fiber.Ctx) error {
		if err := gen.Run(c.Context()); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		report, err := reports.GetLatest()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "run completed but no report stored")
		}
		return c.Status(fiber.StatusCreated).JSON(report)
	})
}
