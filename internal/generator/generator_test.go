package generator

import (
	"context"
	"errors"
	"image"
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rabirubia/marine-card/internal/forecast"
	"github.com/rabirubia/marine-card/internal/observability"
)

type stubBuilder struct {
	report forecast.Report
}

func (s *stubBuilder) BuildReport(_ context.Context) forecast.Report {
	return s.report
}

type stubRenderer struct {
	err   error
	calls int
}

func (s *stubRenderer) Render(_ forecast.Report) (image.Image, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return image.NewRGBA(image.Rect(0, 0, 1080, 1080)), nil
}

type stubWriter struct {
	err    error
	writes int
}

func (s *stubWriter) Write(_ image.Image) error {
	s.writes++
	return s.err
}

func (s *stubWriter) Path() string { return "output/marine_forecast.jpg" }

type stubStore struct {
	reports []forecast.Report
}

func (s *stubStore) SaveReport(r forecast.Report) { s.reports = append(s.reports, r) }
func (s *stubStore) Len() int                     { return len(s.reports) }

func degradedReport() forecast.Report {
	var rep forecast.Report
	p := forecast.NewParser()
	for i, z := range forecast.Zones {
		rep.Zones[i] = p.ParseZone(z, "")
	}
	rep.Synopsis = forecast.DefaultSynopsis
	rep.Advisories = []string{forecast.NoActiveAdvisories}
	return rep
}

func newTestGenerator(b *stubBuilder, r *stubRenderer, w *stubWriter, s *stubStore) (*Generator, *observability.Metrics) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	metrics := observability.NewMetricsForTesting()
	return New(b, r, w, s, logger, metrics), metrics
}

func TestRun_AllZonesFailedStillWritesArtifact(t *testing.T) {
	builder := &stubBuilder{report: degradedReport()}
	renderer := &stubRenderer{}
	writer := &stubWriter{}
	store := &stubStore{}
	gen, metrics := newTestGenerator(builder, renderer, writer, store)

	require.NoError(t, gen.Run(context.Background()))

	assert.Equal(t, 1, renderer.calls)
	assert.Equal(t, 1, writer.writes)
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.RunFailures))
	for _, z := range forecast.Zones {
		assert.Equal(t, float64(1),
			testutil.ToFloat64(metrics.ZoneFetchErrors.WithLabelValues(z.Code)))
	}
}

func TestRun_RenderErrorFailsRun(t *testing.T) {
	builder := &stubBuilder{report: degradedReport()}
	renderer := &stubRenderer{err: errors.New("font missing")}
	writer := &stubWriter{}
	store := &stubStore{}
	gen, metrics := newTestGenerator(builder, renderer, writer, store)

	err := gen.Run(context.Background())
	require.Error(t, err)

	assert.Equal(t, 0, writer.writes, "nothing must be written after a failed render")
	assert.Equal(t, 0, store.Len())
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.RunFailures))
}

func TestRun_WriteErrorFailsRun(t *testing.T) {
	builder := &stubBuilder{report: degradedReport()}
	renderer := &stubRenderer{}
	writer := &stubWriter{err: errors.New("disk full")}
	store := &stubStore{}
	gen, metrics := newTestGenerator(builder, renderer, writer, store)

	require.Error(t, gen.Run(context.Background()))

	assert.Equal(t, 0, store.Len(), "a failed write must not be recorded as a run")
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.RunFailures))
}

func TestCheckReadiness(t *testing.T) {
	builder := &stubBuilder{report: degradedReport()}
	gen, _ := newTestGenerator(builder, &stubRenderer{}, &stubWriter{}, &stubStore{})

	assert.Error(t, gen.CheckReadiness(context.Background()), "not ready before the first run")

	require.NoError(t, gen.Run(context.Background()))
	assert.NoError(t, gen.CheckReadiness(context.Background()))
}
