// Package generator orchestrates one card generation run:
// fetch + parse every zone, render the card, replace the artifact.
package generator

import (
	"context"
	"errors"
	"image"
	"log/slog"
	"time"

	"github.com/rabirubia/marine-card/internal/forecast"
	"github.com/rabirubia/marine-card/internal/observability"
)

// ReportBuilder produces the run's complete forecast report.
type ReportBuilder interface {
	BuildReport(ctx context.Context) forecast.Report
}

// CardRenderer composes the fixed-size card image from a report.
type CardRenderer interface {
	Render(report forecast.Report) (image.Image, error)
}

// ArtifactWriter replaces the output artifact with the encoded card.
type ArtifactWriter interface {
	Write(img image.Image) error
	Path() string
}

// ReportStore keeps run reports for the API and readiness checks.
type ReportStore interface {
	SaveReport(report forecast.Report)
	Len() int
}

// Generator wires the stages together and records run metrics. Per-zone
// degradation never fails a run; only render and write errors do.
type Generator struct {
	builder  ReportBuilder
	renderer CardRenderer
	writer   ArtifactWriter
	store    ReportStore
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// New creates a Generator with the given stages and observability.
func New(b ReportBuilder, r CardRenderer, w ArtifactWriter, s ReportStore, logger *slog.Logger, metrics *observability.Metrics) *Generator {
	return &Generator{
		builder:  b,
		renderer: r,
		writer:   w,
		store:    s,
		logger:   logger,
		metrics:  metrics,
	}
}

// Run executes one fetch-parse-render-write cycle. The returned error is
// non-nil only when no artifact could be produced.
func (g *Generator) Run(ctx context.Context) error {
	start := time.Now()
	g.metrics.RunsTotal.Inc()

	report := g.builder.BuildReport(ctx)

	for _, code := range report.FailedZones() {
		g.metrics.ZoneFetchErrors.WithLabelValues(code).Inc()
	}

	img, err := g.renderer.Render(report)
	if err != nil {
		g.metrics.RunFailures.Inc()
		g.logger.Error("card render failed", "error", err)
		return err
	}

	if err := g.writer.Write(img); err != nil {
		g.metrics.RunFailures.Inc()
		g.logger.Error("artifact write failed", "path", g.writer.Path(), "error", err)
		return err
	}

	g.store.SaveReport(report)

	if report.HasActiveAdvisory() {
		g.metrics.AdvisoryActive.Set(1)
	} else {
		g.metrics.AdvisoryActive.Set(0)
	}
	g.metrics.LastRunUnix.Set(float64(report.GeneratedAt.Unix()))
	g.metrics.RenderDuration.Observe(time.Since(start).Seconds())

	g.logger.Info("card generated",
		"path", g.writer.Path(),
		"failed_zones", report.FailedZones(),
		"advisories", report.Advisories,
		"duration", time.Since(start))

	return nil
}

// CheckReadiness returns nil once at least one run has completed, so serve
// mode only reports ready when a card exists.
func (g *Generator) CheckReadiness(_ context.Context) error {
	if g.store.Len() == 0 {
		return errors.New("no card generated yet")
	}
	return nil
}
