// Package analyze forwards text content to the Gemini generative-language
// API for summarization and free-form analysis.
package analyze

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/eduvision/flux-backend/internal/config"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ErrNotConfigured reports that no API key is present. Callers decide how to
// degrade; the HTTP layer maps it to a 200 with NotConfiguredMessage so the
// frontend can show an explanation instead of an error page.
var ErrNotConfigured = errors.New("gemini API key is not configured")

const NotConfiguredMessage = "AI analysis is not configured. Set GEMINI_API_KEY to enable content analysis."

// Both templates demand plain prose. The generative backend is not guaranteed
// to comply, but the request shape is fixed.
const (
	proseRules = "Respond in plain conversational prose. Do not use markdown, asterisks, hashes, " +
		"bullet points, numbered lists, tables, or any structural markup."

	customTemplate = "%s\n\nContent:\n%s\n\n" + proseRules

	autoTemplate = "Analyze the following content. Summarize its key ideas and explain anything " +
		"a student might find difficult, in a helpful and encouraging tone.\n\nContent:\n%s\n\n" + proseRules
)

type Analyzer struct {
	apiKey  string
	model   string
	timeout time.Duration
}

func NewAnalyzer(cfg config.GeminiConfig) *Analyzer {
	return &Analyzer{
		apiKey:  strings.TrimSpace(cfg.APIKey),
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}
}

func (a *Analyzer) Available() bool { return a.apiKey != "" }

// Analyze wraps the content in one of the two fixed instruction templates and
// forwards it to the generative backend.
func (a *Analyzer) Analyze(ctx context.Context, content, customPrompt string) (string, error) {
	if !a.Available() {
		return "", ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	cl, err := genai.NewClient(ctx, option.WithAPIKey(a.apiKey))
	if err != nil {
		return "", err
	}
	defer cl.Close()

	instruction := BuildInstruction(content, customPrompt)

	m := cl.GenerativeModel(a.model)
	resp, err := m.GenerateContent(ctx, genai.Text(instruction))
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		return "", errors.New("empty response from model")
	}
	return text, nil
}

// BuildInstruction picks the custom-prompt template when a prompt is given,
// otherwise the auto-analysis one.
func BuildInstruction(content, customPrompt string) string {
	if strings.TrimSpace(customPrompt) != "" {
		return fmt.Sprintf(customTemplate, strings.TrimSpace(customPrompt), content)
	}
	return fmt.Sprintf(autoTemplate, content)
}

func responseText(resp *genai.GenerateContentResponse) string {
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
