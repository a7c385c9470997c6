package output

import (
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidCard(c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 1080, 1080))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = 0xff
	}
	return img
}

func decodeArtifact(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := jpeg.Decode(f)
	require.NoError(t, err)
	return img
}

func TestWrite_CreatesDecodableArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output", "marine_forecast.jpg")
	w := NewWriter(path)

	require.NoError(t, w.Write(solidCard(color.RGBA{R: 0x20, G: 0x40, B: 0x80})))

	img := decodeArtifact(t, path)
	assert.Equal(t, 1080, img.Bounds().Dx())
	assert.Equal(t, 1080, img.Bounds().Dy())
	assert.Equal(t, path, w.Path())
}

func TestWrite_ReplacesPreviousArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "marine_forecast.jpg")
	w := NewWriter(path)

	require.NoError(t, w.Write(solidCard(color.RGBA{R: 0xff})))
	require.NoError(t, w.Write(solidCard(color.RGBA{B: 0xff})))

	img := decodeArtifact(t, path)
	r, _, b, _ := img.At(540, 540).RGBA()
	assert.Greater(t, b, r, "second write must replace the first artifact")
}

func TestWrite_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(filepath.Join(dir, "marine_forecast.jpg"))

	require.NoError(t, w.Write(solidCard(color.RGBA{G: 0xff})))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "marine_forecast.jpg", entries[0].Name())
}
