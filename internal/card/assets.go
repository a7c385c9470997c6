package card

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/png"

	xdraw "golang.org/x/image/draw"
)

// The station logo ships inside the binary so a run never depends on a
// loose asset file next to the executable.
//
//go:embed assets/logo.png
var logoPNG []byte

// loadLogo decodes the embedded logo and scales it to the header slot.
// A decode failure is fatal at startup: the card cannot be branded without it.
func loadLogo(size int) (image.Image, error) {
	src, err := png.Decode(bytes.NewReader(logoPNG))
	if err != nil {
		return nil, fmt.Errorf("decode embedded logo: %w", err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return dst, nil
}
