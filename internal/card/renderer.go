package card

import (
	"image"
	"image/color"
	"strings"

	"github.com/fogleman/gg"

	"github.com/rabirubia/marine-card/internal/common"
	"github.com/rabirubia/marine-card/internal/forecast"
)

// Card dimensions are fixed: the artifact is sized for square social posts.
const (
	Width  = 1080
	Height = 1080

	logoSize = 88

	headerH = 124
	bannerH = 40

	gridTop  = 188
	gridH    = 420
	marginX  = 16
	gapX     = 8
	blockPad = 14

	bottomTop = 632
	bottomH   = 372

	footerH = 60
)

// Zone accent colors, one per column.
var accents = [4]string{"#1e88e5", "#0288d1", "#00acc1", "#00897b"}

// Renderer composes the 1080x1080 card. Fonts and the logo are prepared
// once; Render itself is pure: the same Report always produces the same
// pixels.
type Renderer struct {
	fonts *fontSet
	logo  image.Image
}

// NewRenderer loads the embedded fonts and logo. Either failing is fatal
// for the process: without them no card can be produced.
func NewRenderer() (*Renderer, error) {
	fonts, err := loadFonts()
	if err != nil {
		return nil, err
	}
	logo, err := loadLogo(logoSize)
	if err != nil {
		return nil, err
	}
	return &Renderer{fonts: fonts, logo: logo}, nil
}

// Render composes the card for one run's report. Zones whose fetch failed
// render as unavailable blocks; the render itself only fails on internal
// drawing errors, never on degraded data.
func (r *Renderer) Render(report forecast.Report) (image.Image, error) {
	dc := gg.NewContext(Width, Height)

	r.drawBackground(dc)
	r.drawHeader(dc, report)
	r.drawBanner(dc, report)

	blockW := float64(Width-2*marginX-3*gapX) / 4
	for i, zf := range report.Zones {
		x := float64(marginX) + float64(i)*(blockW+gapX)
		r.drawZoneBlock(dc, x, gridTop, blockW, gridH, i, zf)
	}

	r.drawBottomRow(dc, report)
	r.drawFooter(dc)

	return dc.Image(), nil
}

func (r *Renderer) drawBackground(dc *gg.Context) {
	grad := gg.NewLinearGradient(0, 0, Width, Height)
	grad.AddColorStop(0, color.RGBA{0x06, 0x0e, 0x1f, 0xff})
	grad.AddColorStop(0.45, color.RGBA{0x0a, 0x1f, 0x3d, 0xff})
	grad.AddColorStop(1, color.RGBA{0x07, 0x14, 0x28, 0xff})
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, Width, Height)
	dc.Fill()
}

func (r *Renderer) drawHeader(dc *gg.Context, report forecast.Report) {
	grad := gg.NewLinearGradient(0, 0, Width, headerH)
	grad.AddColorStop(0, color.RGBA{0x0d, 0x20, 0x50, 0xff})
	grad.AddColorStop(1, color.RGBA{0x14, 0x2e, 0x6e, 0xff})
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, Width, headerH)
	dc.Fill()

	// Red rule under the header.
	dc.SetHexColor("#cc1818")
	dc.DrawRectangle(0, headerH-4, Width, 4)
	dc.Fill()

	dc.DrawImage(r.logo, 28, (headerH-4-logoSize)/2)

	dc.SetFontFace(r.fonts.brand)
	dc.SetHexColor("#ffffff")
	dc.DrawString("RABIRUBIA WEATHER", 140, 62)

	dc.SetFontFace(r.fonts.sub)
	dc.SetHexColor("#aaddff")
	dc.DrawString("MARINE FORECAST - PR & USVI", 141, 88)

	dc.SetFontFace(r.fonts.dateBig)
	dc.SetHexColor("#dd1c1c")
	dc.DrawStringAnchored(report.DateLabel, Width-28, 58, 1, 0.5)

	dc.SetFontFace(r.fonts.dateTime)
	dc.SetHexColor("#ffffff")
	dc.DrawStringAnchored(report.TimeLabel+" AST", Width-28, 94, 1, 0.5)
}

func (r *Renderer) drawBanner(dc *gg.Context, report forecast.Report) {
	grad := gg.NewLinearGradient(0, headerH, Width, headerH)
	if report.HasActiveAdvisory() {
		grad.AddColorStop(0, color.RGBA{0x8b, 0x00, 0x00, 0xff})
		grad.AddColorStop(0.5, color.RGBA{0xcc, 0x16, 0x16, 0xff})
		grad.AddColorStop(1, color.RGBA{0x8b, 0x00, 0x00, 0xff})
	} else {
		grad.AddColorStop(0, color.RGBA{0x0a, 0x4a, 0x00, 0xff})
		grad.AddColorStop(0.5, color.RGBA{0x0c, 0x7a, 0x00, 0xff})
		grad.AddColorStop(1, color.RGBA{0x0a, 0x4a, 0x00, 0xff})
	}
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, headerH, Width, bannerH)
	dc.Fill()

	dc.SetFontFace(r.fonts.banner)
	dc.SetHexColor("#ffffff")
	dc.DrawStringAnchored(strings.ToUpper(strings.Join(report.Advisories, " | ")),
		28, headerH+bannerH/2, 0, 0.5)
}

func (r *Renderer) drawZoneBlock(dc *gg.Context, x, y, w, h float64, idx int, zf forecast.ZoneForecast) {
	if zf.Fetched {
		dc.SetRGBA(1, 1, 1, 0.07)
	} else {
		dc.SetRGBA(1, 1, 1, 0.03)
	}
	dc.DrawRoundedRectangle(x, y, w, h, 10)
	dc.Fill()

	dc.SetRGBA(1, 1, 1, 0.15)
	dc.SetLineWidth(1)
	dc.DrawRoundedRectangle(x, y, w, h, 10)
	dc.Stroke()

	// Accent bar along the top edge.
	dc.SetHexColor(accents[idx])
	dc.DrawRectangle(x+6, y, w-12, 3)
	dc.Fill()

	dc.SetFontFace(r.fonts.zoneName)
	dc.SetHexColor("#aaddff")
	dc.DrawString(strings.ToUpper(zf.Zone.Name[0]), x+blockPad, y+30)
	dc.DrawString(strings.ToUpper(zf.Zone.Name[1]), x+blockPad, y+48)

	dc.SetRGBA(1, 1, 1, 0.15)
	dc.DrawRectangle(x+blockPad, y+58, w-2*blockPad, 2)
	dc.Fill()

	if !zf.Fetched {
		dc.SetFontFace(r.fonts.statVal)
		dc.SetHexColor("#ffffff")
		dc.DrawStringAnchored("DATA", x+w/2, y+h/2-24, 0.5, 0.5)
		dc.DrawStringAnchored("UNAVAILABLE", x+w/2, y+h/2, 0.5, 0.5)
		dc.SetFontFace(r.fonts.statNote)
		dc.SetHexColor("#88bbdd")
		dc.DrawStringAnchored("CHECK WEATHER.GOV/SJU", x+w/2, y+h/2+28, 0.5, 0.5)
		return
	}

	r.drawStat(dc, x+blockPad, y+88, w-2*blockPad, "WIND", zf.Wind, zf.Gusts)
	r.drawStat(dc, x+blockPad, y+170, w-2*blockPad, "SEAS", zf.Seas, zf.WaveDetail)

	if zf.AdvisoryActive {
		r.drawAdvisoryPill(dc, x+blockPad, y+h-52, w-2*blockPad, zf.Advisory)
	}
}

// drawStat draws one label/value/note group inside a zone block.
func (r *Renderer) drawStat(dc *gg.Context, x, y, w float64, label, value, note string) {
	dc.SetFontFace(r.fonts.statLbl)
	dc.SetHexColor("#88bbdd")
	dc.DrawString(label, x, y)

	dc.SetFontFace(r.fonts.statVal)
	dc.SetHexColor("#ffffff")
	dc.DrawStringWrapped(value, x, y+8, 0, 0, w, 1.1, gg.AlignLeft)

	if note != "" {
		dc.SetFontFace(r.fonts.statNote)
		dc.SetHexColor("#ffffff")
		dc.DrawStringWrapped(note, x, y+58, 0, 0, w, 1.3, gg.AlignLeft)
	}
}

// drawAdvisoryPill marks an active advisory inside a zone block.
func (r *Renderer) drawAdvisoryPill(dc *gg.Context, x, y, w float64, headline string) {
	dc.SetRGBA255(160, 20, 20, 80)
	dc.DrawRoundedRectangle(x, y, w, 38, 19)
	dc.Fill()
	dc.SetRGBA255(220, 60, 60, 160)
	dc.SetLineWidth(1)
	dc.DrawRoundedRectangle(x, y, w, 38, 19)
	dc.Stroke()

	text := headline
	if text == "" {
		text = "Advisory"
	}
	dc.SetFontFace(r.fonts.tag)
	dc.SetHexColor("#ffaaaa")
	dc.DrawStringWrapped(strings.ToUpper(common.Truncate(text, 44)),
		x+w/2, y+19, 0.5, 0.5, w-12, 1.2, gg.AlignCenter)
}

func (r *Renderer) drawBottomRow(dc *gg.Context, report forecast.Report) {
	inner := float64(Width - 2*marginX - 2*gapX)
	quarter := inner / 4
	half := inner / 2

	x0 := float64(marginX)
	x1 := x0 + quarter + gapX
	x2 := x1 + quarter + gapX

	r.drawPanel(dc, x0, bottomTop, quarter, bottomH)
	r.drawPanel(dc, x1, bottomTop, quarter, bottomH)
	r.drawPanel(dc, x2, bottomTop, half, bottomH)

	atl := report.Zones[0]
	car := report.Zones[3]

	// Swell summary.
	dc.SetFontFace(r.fonts.secTitle)
	dc.SetHexColor("#aaddff")
	dc.DrawString("SWELL SUMMARY", x0+blockPad, bottomTop+28)
	r.drawBottomStat(dc, x0+blockPad, bottomTop+58, quarter-2*blockPad, "ATLANTIC SWELL", atl.Seas, orDash(atl.WaveDetail))
	r.drawBottomStat(dc, x0+blockPad, bottomTop+160, quarter-2*blockPad, "CARIBBEAN SEAS", car.Seas, orDash(car.WaveDetail))

	// Conditions.
	dc.SetFontFace(r.fonts.secTitle)
	dc.SetHexColor("#aaddff")
	dc.DrawString("CONDITIONS", x1+blockPad, bottomTop+28)
	r.drawBottomNote(dc, x1+blockPad, bottomTop+58, quarter-2*blockPad, "PRECIP", orDash(atl.Precip))
	r.drawBottomNote(dc, x1+blockPad, bottomTop+170, quarter-2*blockPad, "FISHING", fishingConditions(atl))

	// Synopsis.
	dc.SetFontFace(r.fonts.secTitle)
	dc.SetHexColor("#aaddff")
	dc.DrawString("SYNOPSIS", x2+blockPad, bottomTop+28)
	dc.SetFontFace(r.fonts.synopsis)
	dc.SetHexColor("#ffffff")
	dc.DrawStringWrapped(report.Synopsis, x2+blockPad, bottomTop+44, 0, 0, half-2*blockPad, 1.6, gg.AlignLeft)

	r.drawTags(dc, x2+blockPad, bottomTop+bottomH-64, report.Advisories)
}

func (r *Renderer) drawPanel(dc *gg.Context, x, y, w, h float64) {
	dc.SetRGBA(1, 1, 1, 0.05)
	dc.DrawRoundedRectangle(x, y, w, h, 10)
	dc.Fill()
	dc.SetRGBA(1, 1, 1, 0.10)
	dc.SetLineWidth(1)
	dc.DrawRoundedRectangle(x, y, w, h, 10)
	dc.Stroke()
}

func (r *Renderer) drawBottomStat(dc *gg.Context, x, y, w float64, label, value, note string) {
	dc.SetFontFace(r.fonts.statLbl)
	dc.SetHexColor("#88bbdd")
	dc.DrawString(label, x, y)

	dc.SetFontFace(r.fonts.secVal)
	dc.SetHexColor("#ffffff")
	dc.DrawString(value, x, y+26)

	dc.SetFontFace(r.fonts.secNote)
	dc.SetHexColor("#ffffff")
	dc.DrawStringWrapped(note, x, y+38, 0, 0, w, 1.4, gg.AlignLeft)
}

func (r *Renderer) drawBottomNote(dc *gg.Context, x, y, w float64, label, note string) {
	dc.SetFontFace(r.fonts.statLbl)
	dc.SetHexColor("#88bbdd")
	dc.DrawString(label, x, y)

	dc.SetFontFace(r.fonts.secNote)
	dc.SetHexColor("#ffffff")
	dc.DrawStringWrapped(note, x, y+14, 0, 0, w, 1.4, gg.AlignLeft)
}

// drawTags draws one pill per advisory along the bottom of the synopsis panel.
func (r *Renderer) drawTags(dc *gg.Context, x, y float64, advisories []string) {
	dc.SetFontFace(r.fonts.tag)
	cx := x
	for _, adv := range advisories {
		label := strings.ToUpper(adv)
		tw, _ := dc.MeasureString(label)
		w := tw + 22

		dc.SetRGBA255(160, 20, 20, 76)
		dc.DrawRoundedRectangle(cx, y, w, 28, 14)
		dc.Fill()
		dc.SetRGBA255(220, 60, 60, 150)
		dc.SetLineWidth(1)
		dc.DrawRoundedRectangle(cx, y, w, 28, 14)
		dc.Stroke()

		dc.SetHexColor("#ffaaaa")
		dc.DrawStringAnchored(label, cx+w/2, y+14, 0.5, 0.5)

		cx += w + 8
	}
}

func (r *Renderer) drawFooter(dc *gg.Context) {
	dc.SetRGBA(0, 0, 0, 0.4)
	dc.DrawRectangle(0, Height-footerH, Width, footerH)
	dc.Fill()
	dc.SetRGBA(1, 1, 1, 0.1)
	dc.DrawRectangle(0, Height-footerH, Width, 1)
	dc.Fill()

	dc.SetFontFace(r.fonts.footer)
	dc.SetHexColor("#6699bb")
	dc.DrawStringAnchored("Source: NWS San Juan / NOAA", 28, Height-footerH/2, 0, 0.5)

	dc.SetFontFace(r.fonts.footURL)
	dc.SetHexColor("#4db8ff")
	dc.DrawStringAnchored("www.rabirubiaweather.com", Width-28, Height-footerH/2, 1, 0.5)
}

// fishingConditions mirrors the site's rough-water heuristic on the
// Atlantic seas field.
func fishingConditions(atl forecast.ZoneForecast) string {
	if common.HasAny(atl.Seas, "8 ", "9 ", "10", "11", "12", "13", "14", "15") {
		return "Rough - offshore not recommended"
	}
	return "Moderate - check conditions"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
