package extract

import (
	"context"

	"github.com/eduvision/flux-backend/internal/config"
	"github.com/otiai10/gosseract/v2"
)

// TesseractStrategy runs the local Tesseract engine. It is the cheap first
// attempt before falling back to a cloud vision call.
type TesseractStrategy struct {
	enabled  bool
	language string
}

func NewTesseractStrategy(cfg config.OCRConfig) *TesseractStrategy {
	return &TesseractStrategy{
		enabled:  cfg.Enabled,
		language: cfg.Language,
	}
}

func (s *TesseractStrategy) Name() string { return "tesseract" }

func (s *TesseractStrategy) Available() bool { return s.enabled }

func (s *TesseractStrategy) ExtractImage(_ context.Context, path string) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(s.language); err != nil {
		return "", err
	}
	if err := client.SetImage(path); err != nil {
		return "", err
	}
	return client.Text()
}
