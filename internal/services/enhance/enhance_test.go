package enhance

import (
	"image"
	"image/color"
	"testing"

	"github.com/eduvision/flux-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 30), B: 120, A: 255})
		}
	}
	return img
}

func TestShouldEnhance(t *testing.T) {
	assert.False(t, ShouldEnhance(models.QualityStandard))
	assert.True(t, ShouldEnhance(models.QualityHigh))
	assert.True(t, ShouldEnhance(models.QualityUltra))
}

func TestEnhancePreservesBounds(t *testing.T) {
	src := testImage()
	out := Enhance(src)

	require.NotNil(t, out)
	assert.Equal(t, src.Bounds().Dx(), out.Bounds().Dx())
	assert.Equal(t, src.Bounds().Dy(), out.Bounds().Dy())
}

func TestEnhanceNilReturnsInput(t *testing.T) {
	// imaging panics on nil input; Enhance must swallow that and hand the
	// original value back rather than propagating.
	out := Enhance(nil)
	assert.Nil(t, out)
}
