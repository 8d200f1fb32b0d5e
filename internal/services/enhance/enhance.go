// Package enhance post-processes generated images with a fixed set of
// mild quality adjustments.
package enhance

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/eduvision/flux-backend/internal/models"
)

const (
	sharpenSigma    = 0.5
	contrastBoost   = 10 // percent
	saturationBoost = 10 // percent
)

// ShouldEnhance reports whether post-processing applies for a quality mode.
// Standard mode ships the provider output untouched.
func ShouldEnhance(mode models.QualityMode) bool {
	return mode == models.QualityHigh || mode == models.QualityUltra
}

// Enhance sharpens the image, then lifts contrast and saturation.
// Best effort: any failure in the pipeline returns the input unchanged.
func Enhance(img image.Image) (result image.Image) {
	result = img
	defer func() {
		if r := recover(); r != nil {
			result = img
		}
	}()

	out := imaging.Sharpen(img, sharpenSigma)
	out = imaging.AdjustContrast(out, contrastBoost)
	out = imaging.AdjustSaturation(out, saturationBoost)
	return out
}
