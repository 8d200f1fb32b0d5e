package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/eduvision/flux-backend/internal/config"
	"github.com/eduvision/flux-backend/internal/models"
	"github.com/eduvision/flux-backend/internal/services/analyze"
	"github.com/eduvision/flux-backend/internal/services/extract"
	"github.com/eduvision/flux-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	uploadPreviewLimit = 500
	pdfPreviewLimit    = 1000
)

type ContentHandler struct {
	extractor ContentExtractor
	analyzer  ContentAnalyzer
	logger    *zap.Logger
	config    *config.Config
}

func NewContentHandler(extractor ContentExtractor, analyzer ContentAnalyzer, logger *zap.Logger, cfg *config.Config) *ContentHandler {
	return &ContentHandler{
		extractor: extractor,
		analyzer:  analyzer,
		logger:    logger,
		config:    cfg,
	}
}

// Upload receives a multipart file, dispatches by detected type and returns
// the extracted text. The temp file is removed on every exit path.
func (h *ContentHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "missing_file",
			Message: "No file provided",
		})
		return
	}
	if header.Filename == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "missing_file",
			Message: "No file selected",
		})
		return
	}

	kind := extract.DetectKind(header.Filename)

	path := filepath.Join(h.config.Upload.Dir, utils.TempFilename(header.Filename))
	if err := c.SaveUploadedFile(header, path); err != nil {
		h.logger.Error("Failed to save upload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   models.ErrInternalServer,
			Message: "Failed to save uploaded file",
		})
		return
	}
	defer os.Remove(path)

	switch kind {
	case models.FileKindImage:
		text := h.extractor.ExtractImage(c.Request.Context(), path)
		c.JSON(http.StatusOK, models.UploadResponse{
			Success:       true,
			Filename:      header.Filename,
			FileType:      string(models.FileKindImage),
			ExtractedText: utils.Truncate(text, uploadPreviewLimit),
			FullText:      text,
		})

	case models.FileKindPDF:
		result, err := h.extractor.ExtractPDF(path)
		if err != nil {
			h.respondPDFError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.UploadResponse{
			Success:       true,
			Filename:      header.Filename,
			FileType:      string(models.FileKindPDF),
			ExtractedText: utils.Truncate(result.Text, uploadPreviewLimit),
			FullText:      result.Text,
		})

	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "unsupported_file_type",
			Message: "Unsupported file type: " + filepath.Ext(header.Filename),
		})
	}
}

// Analyze forwards text content to the AI analyzer. A missing credential is
// a soft failure: the response is still 200 with an explanatory message.
func (h *ContentHandler) Analyze(c *gin.Context) {
	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Content) == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "missing_content",
			Message: "Content is required",
		})
		return
	}

	result, err := h.analyzer.Analyze(c.Request.Context(), req.Content, req.Prompt)
	if err != nil {
		if errors.Is(err, analyze.ErrNotConfigured) {
			c.JSON(http.StatusOK, models.AnalyzeResponse{
				Success: true,
				Result:  analyze.NotConfiguredMessage,
			})
			return
		}

		h.logger.Error("Content analysis failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   models.ErrInternalServer,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.AnalyzeResponse{
		Success: true,
		Result:  result,
	})
}

// ExtractPDF extracts text from an uploaded PDF page by page.
func (h *ContentHandler) ExtractPDF(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "missing_file",
			Message: "No file provided",
		})
		return
	}

	if extract.DetectKind(header.Filename) != models.FileKindPDF {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_file_type",
			Message: "File must be a PDF",
		})
		return
	}

	path := filepath.Join(h.config.Upload.Dir, utils.TempFilename(header.Filename))
	if err := c.SaveUploadedFile(header, path); err != nil {
		h.logger.Error("Failed to save upload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   models.ErrInternalServer,
			Message: "Failed to save uploaded file",
		})
		return
	}
	defer os.Remove(path)

	result, err := h.extractor.ExtractPDF(path)
	if err != nil {
		h.respondPDFError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PDFExtractResponse{
		Success:   true,
		Text:      result.Text,
		Pages:     result.Pages,
		Filename:  header.Filename,
		WordCount: utils.CountWords(result.Text),
		CharCount: len(result.Text),
		Preview:   utils.TruncateEllipsis(result.Text, pdfPreviewLimit),
	})
}

func (h *ContentHandler) respondPDFError(c *gin.Context, err error) {
	if errors.Is(err, extract.ErrNoText) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "empty_extraction",
			Message: "No extractable text found in the PDF",
		})
		return
	}

	h.logger.Error("PDF extraction failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   models.ErrInternalServer,
		Message: err.Error(),
	})
}
