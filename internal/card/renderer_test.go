package card

import (
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rabirubia/marine-card/internal/forecast"
)

func testZone(i int, advisory bool) forecast.ZoneForecast {
	zf := forecast.ZoneForecast{
		Zone:       forecast.Zones[i],
		Wind:       "EAST 15 TO 20 kt",
		Gusts:      "Gusts to 25 kt",
		Seas:       "5 TO 7 ft",
		WaveDetail: "E 6ft@8s + NE 2ft@10s",
		Precip:     "Scattered showers and thunderstorms",
		Fetched:    true,
	}
	if advisory {
		zf.Advisory = "Small Craft Advisory"
		zf.AdvisoryActive = true
	}
	return zf
}

func testReport(advisory bool) forecast.Report {
	rep := forecast.Report{
		GeneratedAt: time.Date(2026, 2, 27, 10, 30, 0, 0, time.UTC),
		DateLabel:   "FEB 27",
		TimeLabel:   "6:30 AM",
		Synopsis:    "High pressure north of the area will maintain moderate to fresh easterly winds.",
	}
	for i := range rep.Zones {
		rep.Zones[i] = testZone(i, advisory)
	}
	if advisory {
		rep.Advisories = []string{"Small Craft Advisory"}
	} else {
		rep.Advisories = []string{forecast.NoActiveAdvisories}
	}
	return rep
}

func rgbaPix(t *testing.T, img image.Image) *image.RGBA {
	t.Helper()
	rgba, ok := img.(*image.RGBA)
	require.True(t, ok, "renderer must produce an RGBA image")
	return rgba
}

func TestRender_CardDimensions(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	img, err := r.Render(testReport(true))
	require.NoError(t, err)

	b := img.Bounds()
	assert.Equal(t, Width, b.Dx())
	assert.Equal(t, Height, b.Dy())
}

func TestRender_SameReportSamePixels(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	first, err := r.Render(testReport(true))
	require.NoError(t, err)
	second, err := r.Render(testReport(true))
	require.NoError(t, err)

	assert.Equal(t, rgbaPix(t, first).Pix, rgbaPix(t, second).Pix)
}

func TestRender_BannerColorTracksAdvisory(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	withAdv, err := r.Render(testReport(true))
	require.NoError(t, err)
	calm, err := r.Render(testReport(false))
	require.NoError(t, err)

	// Sample the banner strip away from its text.
	x, y := Width-10, headerH+bannerH/2

	ar, ag, _, _ := withAdv.At(x, y).RGBA()
	assert.Greater(t, ar, ag, "advisory banner should be red")

	cr, cg, _, _ := calm.At(x, y).RGBA()
	assert.Greater(t, cg, cr, "calm banner should be green")
}

func TestRender_FailedZoneDegradesOnlyItsColumn(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	full := testReport(true)
	degraded := testReport(true)
	degraded.Zones[1] = forecast.ZoneForecast{
		Zone: forecast.Zones[1],
		Wind: forecast.DefaultWind,
		Seas: forecast.DefaultSeas,
	}

	fullImg := rgbaPix(t, mustRender(t, r, full))
	degImg := rgbaPix(t, mustRender(t, r, degraded))

	blockW := (Width - 2*marginX - 3*gapX) / 4
	col0 := image.Rect(marginX, gridTop, marginX+blockW, gridTop+gridH)
	col1 := image.Rect(marginX+blockW+gapX, gridTop, marginX+2*blockW+gapX, gridTop+gridH)

	assert.True(t, regionsEqual(fullImg, degImg, col0),
		"healthy column must be unaffected by a neighbor's failure")
	assert.False(t, regionsEqual(fullImg, degImg, col1),
		"failed column must render differently")
}

func mustRender(t *testing.T, r *Renderer, rep forecast.Report) image.Image {
	t.Helper()
	img, err := r.Render(rep)
	require.NoError(t, err)
	return img
}

func regionsEqual(a, b *image.RGBA, rect image.Rectangle) bool {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if a.RGBAAt(x, y) != b.RGBAAt(x, y) {
				return false
			}
		}
	}
	return true
}
