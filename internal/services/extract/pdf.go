package extract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/eduvision/flux-backend/internal/models"
	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

// ErrNoText reports that every page was processed but nothing readable
// came out. Callers treat it as a client error, not a parse failure.
var ErrNoText = errors.New("no extractable text")

// page is one extraction unit of a document.
type page interface {
	Text() (string, error)
}

type pdfPage struct {
	reader *pdf.Reader
	number int
}

func (p pdfPage) Text() (string, error) {
	pg := p.reader.Page(p.number)
	if pg.V.IsNull() {
		return "", fmt.Errorf("page %d: missing content", p.number)
	}
	return pg.GetPlainText(nil)
}

type PDFExtractor struct {
	logger *zap.Logger
}

func NewPDFExtractor(logger *zap.Logger) *PDFExtractor {
	return &PDFExtractor{logger: logger}
}

// ExtractPDF walks every page of the document and accumulates its text.
// Individual page failures are logged and skipped; the extraction only fails
// when the document cannot be opened or the aggregate text is empty.
func (e *PDFExtractor) ExtractPDF(path string) (models.ExtractionResult, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return models.ExtractionResult{}, fmt.Errorf("opening pdf: %w", err)
	}
	defer f.Close()

	total := reader.NumPage()
	pages := make([]page, 0, total)
	for i := 1; i <= total; i++ {
		pages = append(pages, pdfPage{reader: reader, number: i})
	}

	text, failures := e.aggregate(pages)
	result := models.ExtractionResult{
		Text:     text,
		Pages:    total,
		Failures: failures,
	}

	if strings.TrimSpace(text) == "" {
		return result, fmt.Errorf("%w in %d pages", ErrNoText, total)
	}
	return result, nil
}

func (e *PDFExtractor) aggregate(pages []page) (string, []models.PageFailure) {
	var sb strings.Builder
	var failures []models.PageFailure

	for i, pg := range pages {
		text, err := safeText(pg)
		if err != nil {
			e.logger.Warn("Skipping unreadable page",
				zap.Int("page", i+1),
				zap.Error(err),
			)
			failures = append(failures, models.PageFailure{Page: i + 1, Err: err.Error()})
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return strings.TrimSpace(sb.String()), failures
}

// safeText shields the caller from parser panics on malformed page content,
// so one broken page cannot sink the whole document.
func safeText(pg page) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parse panic: %v", r)
		}
	}()
	return pg.Text()
}
