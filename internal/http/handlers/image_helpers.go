package handlers

import (
	"bytes"
	"fmt"
	"image"
	"time"

	"github.com/eduvision/flux-backend/internal/models"
	"github.com/eduvision/flux-backend/internal/services/enhance"
	"github.com/eduvision/flux-backend/pkg/utils"

	_ "image/jpeg"
	_ "image/png"
)

func dimensionsValid(width, height int) bool {
	return width >= models.MinDimension && width <= models.MaxDimension &&
		height >= models.MinDimension && height <= models.MaxDimension
}

// processImage verifies the provider bytes decode as an image, applies
// quality enhancement for high/ultra modes and re-encodes as a PNG data URI.
func processImage(data []byte, mode models.QualityMode) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decoding image: %w", err)
	}

	if enhance.ShouldEnhance(mode) {
		img = enhance.Enhance(img)
	}

	return utils.ImageToPNGDataURI(img)
}

func unixTimestamp() float64 {
	return float64(time.Now().UnixNano()) / 1e9
}
