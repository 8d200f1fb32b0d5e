// Package extract turns uploaded files into text. Images go through an
// ordered chain of OCR strategies, PDFs through page-by-page parsing.
package extract

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/eduvision/flux-backend/internal/models"
	"go.uber.org/zap"
)

// CouldNotAnalyze is returned when no strategy is configured or productive.
// It is a soft failure: the upload endpoint still responds 200 with this text.
const CouldNotAnalyze = "Could not analyze image content. No text was detected and no AI analysis is configured."

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
}

type Service struct {
	strategies []ImageStrategy
	pdf        *PDFExtractor
	logger     *zap.Logger
}

func NewService(strategies []ImageStrategy, pdf *PDFExtractor, logger *zap.Logger) *Service {
	return &Service{
		strategies: strategies,
		pdf:        pdf,
		logger:     logger,
	}
}

// DetectKind classifies an uploaded filename by extension.
func DetectKind(filename string) models.FileKind {
	ext := strings.ToLower(filepath.Ext(filename))
	switch {
	case imageExtensions[ext]:
		return models.FileKindImage
	case ext == ".pdf":
		return models.FileKindPDF
	default:
		return models.FileKindUnsupported
	}
}

// ExtractImage runs the strategy chain until one produces non-empty text.
// Unavailable strategies are skipped, strategy errors are logged and the
// chain moves on. When everything comes up empty the fixed CouldNotAnalyze
// message is returned rather than an error.
func (s *Service) ExtractImage(ctx context.Context, path string) string {
	for _, strat := range s.strategies {
		if !strat.Available() {
			continue
		}

		text, err := strat.ExtractImage(ctx, path)
		if err != nil {
			s.logger.Warn("Extraction strategy failed",
				zap.String("strategy", strat.Name()),
				zap.Error(err),
			)
			continue
		}
		if strings.TrimSpace(text) != "" {
			return strings.TrimSpace(text)
		}
	}

	return CouldNotAnalyze
}

// ExtractPDF delegates to the page-by-page PDF extractor.
func (s *Service) ExtractPDF(path string) (models.ExtractionResult, error) {
	return s.pdf.ExtractPDF(path)
}

// Strategies reports the names of the currently available strategies,
// used for startup diagnostics.
func (s *Service) Strategies() []string {
	var names []string
	for _, strat := range s.strategies {
		if strat.Available() {
			names = append(names, strat.Name())
		}
	}
	return names
}
