package handlers

import (
	"context"

	"github.com/eduvision/flux-backend/internal/models"
)

// ImageGenerator produces raw image bytes for a prompt.
type ImageGenerator interface {
	Generate(ctx context.Context, prompt string, width, height int, mode models.QualityMode) ([]byte, error)
}

// ContentExtractor pulls text out of uploaded files.
type ContentExtractor interface {
	ExtractImage(ctx context.Context, path string) string
	ExtractPDF(path string) (models.ExtractionResult, error)
}

// ContentAnalyzer forwards text to the generative-language backend.
type ContentAnalyzer interface {
	Analyze(ctx context.Context, content, prompt string) (string, error)
}
