package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jonboulle/clockwork"

	httpapi "github.com/rabirubia/marine-card/internal/api/http"
	"github.com/rabirubia/marine-card/internal/card"
	"github.com/rabirubia/marine-card/internal/config"
	"github.com/rabirubia/marine-card/internal/forecast"
	"github.com/rabirubia/marine-card/internal/generator"
	"github.com/rabirubia/marine-card/internal/observability"
	"github.com/rabirubia/marine-card/internal/output"
	"github.com/rabirubia/marine-card/internal/scheduler"
	"github.com/rabirubia/marine-card/internal/store"
)

func main() {
	serve := flag.Bool("serve", false, "run as a long-lived service with a daily schedule and HTTP API")
	flag.Parse()

	cfg, err := config.Load(log.Printf)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	// Shared HTTP client for all NWS product fetches.
	httpClient := &http.Client{
		Timeout: cfg.FetchTimeout,
	}

	fetcher := forecast.NewFetcher(httpClient, cfg.NWSBaseURL, cfg.NWSCombinedURL, logger)
	parser := forecast.NewParser()
	service := forecast.NewService(fetcher, parser, clockwork.NewRealClock(), logger)

	// Renderer setup fails only on a broken embedded asset, which is fatal
	// before any work starts.
	renderer, err := card.NewRenderer()
	if err != nil {
		logger.Error("renderer setup failed", "error", err)
		os.Exit(1)
	}

	writer := output.NewWriter(cfg.OutputPath)
	reports := store.NewMemoryStore(cfg.StoreMaxHistory)

	gen := generator.New(service, renderer, writer, reports, logger, metrics)

	if !*serve {
		runOnce(gen, logger)
		return
	}

	// Serve mode: daily schedule plus the HTTP surface.
	sched := scheduler.New(gen, cfg.GenerateAt, 2*time.Minute, logger)
	if err := sched.Start(); err != nil {
		logger.Error("failed to start scheduler", "error", err)
		os.Exit(1)
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:               "marine-card",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	app.Use(fiberlogger.New())
	app.Use(recover.New())

	httpapi.RegisterRoutes(app, gen, reports, cfg.OutputPath)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Error("fiber server stopped", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("error during shutdown", "error", err)
	}
}

// runOnce generates a single card. Per-zone fetch failures degrade to
// placeholders and still exit 0; only a run that produced no artifact
// exits non-zero.
func runOnce(gen *generator.Generator, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := gen.Run(ctx); err != nil {
		logger.Error("card generation failed", "error", err)
		os.Exit(1)
	}
}
