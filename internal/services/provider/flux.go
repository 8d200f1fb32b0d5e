// Package provider implements the Hugging Face inference API client used
// for diffusion image generation.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/eduvision/flux-backend/internal/config"
	"github.com/eduvision/flux-backend/internal/models"
	"github.com/eduvision/flux-backend/internal/services/prompt"
	"go.uber.org/zap"
)

const (
	negativePrompt = "blurry, low quality, pixelated, distorted, ugly, bad anatomy, text, watermark, logo, signature"

	// Suggested delay while the hosted model is cold-starting.
	modelLoadingRetryAfter = 20
)

type payload struct {
	Inputs     string     `json:"inputs"`
	Parameters parameters `json:"parameters"`
}

type parameters struct {
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	Steps          int     `json:"num_inference_steps"`
	Guidance       float64 `json:"guidance_scale"`
	NegativePrompt string  `json:"negative_prompt"`
}

type Client struct {
	url    string
	token  string
	client *http.Client
	logger *zap.Logger
}

func NewClient(cfg config.HuggingFaceConfig, logger *zap.Logger) *Client {
	return &Client{
		url:   cfg.URL,
		token: cfg.Token,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// Generate normalizes the prompt, scales the requested dimensions by the
// quality profile and issues the inference call. On success it returns the
// raw image bytes; every failure is one of the typed errors in errors.go.
// No retries happen here: a ModelLoadingError pushes retry policy to the caller.
func (c *Client) Generate(ctx context.Context, rawPrompt string, width, height int, mode models.QualityMode) ([]byte, error) {
	profile := models.ProfileFor(mode)
	scaledWidth := scaleDimension(width, profile.ScaleFactor)
	scaledHeight := scaleDimension(height, profile.ScaleFactor)

	body, err := json.Marshal(payload{
		Inputs: prompt.Normalize(rawPrompt),
		Parameters: parameters{
			Width:          scaledWidth,
			Height:         scaledHeight,
			Steps:          profile.Steps,
			Guidance:       profile.Guidance,
			NegativePrompt: negativePrompt,
		},
	})
	if err != nil {
		return nil, &RequestError{Detail: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, &RequestError{Detail: err.Error()}
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	c.logger.Info("Requesting image generation",
		zap.String("quality_mode", string(mode)),
		zap.Int("width", scaledWidth),
		zap.Int("height", scaledHeight),
		zap.Int("steps", profile.Steps),
	)

	resp, err := c.client.Do(req)
	if err != nil {
		var netErr interface{ Timeout() bool }
		if errors.As(err, &netErr) && netErr.Timeout() {
			return nil, ErrTimeout
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrTimeout
		}
		return nil, &RequestError{Detail: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Detail: fmt.Sprintf("reading response: %v", err)}
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return data, nil
	case http.StatusServiceUnavailable:
		return nil, &ModelLoadingError{RetryAfter: modelLoadingRetryAfter}
	default:
		return nil, &StatusError{Status: resp.StatusCode, Body: string(data)}
	}
}

// scaleDimension applies the profile scale factor, capped at the provider
// maximum. The result never drops below the requested value.
func scaleDimension(v int, factor float64) int {
	scaled := int(float64(v) * factor)
	if scaled > models.MaxDimension {
		return models.MaxDimension
	}
	if scaled < v {
		return v
	}
	return scaled
}
