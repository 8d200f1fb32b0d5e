package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/eduvision/flux-backend/internal/config"
	"github.com/eduvision/flux-backend/internal/models"
	"github.com/eduvision/flux-backend/internal/services/provider"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	serviceName = "Hugging Face Flux API"

	defaultTestPrompt = "educational diagram of photosynthesis"
	recommendation    = "Use 'high' for best balance of quality and speed"
)

type ImageHandler struct {
	generator ImageGenerator
	logger    *zap.Logger
	config    *config.Config
}

func NewImageHandler(generator ImageGenerator, logger *zap.Logger, cfg *config.Config) *ImageHandler {
	return &ImageHandler{
		generator: generator,
		logger:    logger,
		config:    cfg,
	}
}

func (h *ImageHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthCheck{
		Status:    "healthy",
		Service:   serviceName,
		Timestamp: unixTimestamp(),
	})
}

// GenerateImage validates the request, calls the provider and wraps the
// result as a base64 PNG data URI.
func (h *ImageHandler) GenerateImage(c *gin.Context) {
	var req models.GenerateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Prompt == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   models.ErrMissingPrompt,
			Message: "Prompt is required",
		})
		return
	}

	if req.Width == 0 {
		req.Width = models.DefaultWidth
	}
	if req.Height == 0 {
		req.Height = models.DefaultHeight
	}

	// Out-of-range dimensions are rejected outright. The internal scaling
	// clamp in the provider only applies to the scaled value.
	if !dimensionsValid(req.Width, req.Height) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   models.ErrInvalidDimensions,
			Message: "Width and height must be between 256 and 1024 pixels",
		})
		return
	}

	mode := models.NormalizeQualityMode(req.QualityMode)

	h.logger.Info("Generating image",
		zap.String("quality_mode", string(mode)),
		zap.String("prompt", req.Prompt),
	)

	data, err := h.generator.Generate(c.Request.Context(), req.Prompt, req.Width, req.Height, mode)
	if err != nil {
		h.respondGenerationError(c, err)
		return
	}

	uri, err := processImage(data, mode)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   models.ErrImageProcessingFailed,
			Message: fmt.Sprintf("Failed to process generated image: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, models.GenerateImageResponse{
		Success: true,
		Image:   uri,
		Metadata: models.ImageMetadata{
			Model:       models.ModelName,
			Prompt:      req.Prompt,
			Dimensions:  fmt.Sprintf("%dx%d", req.Width, req.Height),
			QualityMode: string(mode),
			Timestamp:   unixTimestamp(),
		},
	})
}

func (h *ImageHandler) respondGenerationError(c *gin.Context, err error) {
	var loading *provider.ModelLoadingError
	if errors.As(err, &loading) {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error:      models.ErrModelLoading,
			Message:    "Model is loading, please try again in a few seconds",
			RetryAfter: loading.RetryAfter,
		})
		return
	}

	var status *provider.StatusError
	if errors.As(err, &status) {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   fmt.Sprintf("API error: %d", status.Status),
			Details: status.Body,
		})
		return
	}

	if errors.Is(err, provider.ErrTimeout) {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   models.ErrTimeout,
			Message: "Request timed out",
		})
		return
	}

	h.logger.Error("Image generation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   models.ErrRequestFailed,
		Message: err.Error(),
	})
}

// TestQuality runs the same prompt through every quality mode and reports
// per-mode sizes for comparison. Errors are captured per mode, not fatal.
func (h *ImageHandler) TestQuality(c *gin.Context) {
	var req models.QualityTestRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Prompt == "" {
		req.Prompt = defaultTestPrompt
	}

	results := make(map[string]models.QualityTestResult, 3)
	for _, mode := range models.AllQualityModes() {
		h.logger.Info("Testing quality mode", zap.String("mode", string(mode)))

		data, err := h.generator.Generate(c.Request.Context(), req.Prompt,
			models.DefaultWidth, models.DefaultHeight, mode)
		if err != nil {
			results[string(mode)] = models.QualityTestResult{Error: errorTag(err)}
			continue
		}
		results[string(mode)] = models.QualityTestResult{
			Success:     true,
			SizeKB:      len(data) / 1024,
			QualityMode: string(mode),
		}
	}

	c.JSON(http.StatusOK, models.QualityTestResponse{
		Prompt:            req.Prompt,
		QualityComparison: results,
		Recommendation:    recommendation,
	})
}

func errorTag(err error) string {
	var loading *provider.ModelLoadingError
	if errors.As(err, &loading) {
		return models.ErrModelLoading
	}
	var status *provider.StatusError
	if errors.As(err, &status) {
		return fmt.Sprintf("API error: %d", status.Status)
	}
	if errors.Is(err, provider.ErrTimeout) {
		return models.ErrTimeout
	}
	return models.ErrRequestFailed
}

// ListModels returns the static catalog of the one supported model.
func (h *ImageHandler) ListModels(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"available_models": []gin.H{
			{
				"name":              models.ModelName,
				"description":       "Fast, high-quality image generation with educational enhancements",
				"provider":          "Black Forest Labs",
				"max_resolution":    "1024x1024",
				"supported_formats": []string{"PNG", "JPEG"},
				"quality_modes":     models.AllQualityModes(),
				"features": []string{
					"Educational prompt enhancement",
					"Negative prompt filtering",
					"Post-processing optimization",
					"Variable inference steps",
					"Dynamic resolution scaling",
				},
			},
		},
		"enhancements": gin.H{
			"prompt_engineering": "Advanced educational keywords and quality enhancers",
			"post_processing":    "Sharpness, contrast, and color enhancement",
			"quality_modes": gin.H{
				"standard": "20 steps, 3.5 guidance, 800x450",
				"high":     "25 steps, 5.0 guidance, 1000x562",
				"ultra":    "30 steps, 7.5 guidance, 1200x675",
			},
		},
	})
}
