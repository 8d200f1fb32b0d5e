package extract

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/eduvision/flux-backend/internal/config"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const visionInstruction = "Extract all visible text from this image. " +
	"If the image contains no text, describe what it shows in a few sentences instead."

// VisionStrategy sends the image to the Gemini vision model when local OCR
// produced nothing.
type VisionStrategy struct {
	apiKey  string
	model   string
	timeout time.Duration
}

func NewVisionStrategy(cfg config.GeminiConfig) *VisionStrategy {
	return &VisionStrategy{
		apiKey:  strings.TrimSpace(cfg.APIKey),
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}
}

func (s *VisionStrategy) Name() string { return "gemini-vision" }

func (s *VisionStrategy) Available() bool { return s.apiKey != "" }

func (s *VisionStrategy) ExtractImage(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cl, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", err
	}
	defer cl.Close()

	m := cl.GenerativeModel(s.model)
	resp, err := m.GenerateContent(ctx,
		genai.Text(visionInstruction),
		&genai.Blob{MIMEType: http.DetectContentType(data), Data: data},
	)
	if err != nil {
		return "", err
	}

	text := firstText(resp)
	if text == "" {
		return "", fmt.Errorf("vision: empty response")
	}
	return text, nil
}

func firstText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				sb.WriteString(string(t))
			}
		}
	}
	return strings.TrimSpace(sb.String())
}
