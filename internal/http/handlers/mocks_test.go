package handlers

import (
	"context"

	"github.com/eduvision/flux-backend/internal/models"
)

type mockGenerator struct {
	data      []byte
	err       error
	errByMode map[models.QualityMode]error
	lastMode  models.QualityMode
	calls     int
}

func (m *mockGenerator) Generate(_ context.Context, _ string, _, _ int, mode models.QualityMode) ([]byte, error) {
	m.calls++
	m.lastMode = mode
	if m.errByMode != nil {
		if err, ok := m.errByMode[mode]; ok {
			return nil, err
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.data, nil
}

type mockExtractor struct {
	imageText string
	pdfResult models.ExtractionResult
	pdfErr    error
	lastPath  string
}

func (m *mockExtractor) ExtractImage(_ context.Context, path string) string {
	m.lastPath = path
	return m.imageText
}

func (m *mockExtractor) ExtractPDF(path string) (models.ExtractionResult, error) {
	m.lastPath = path
	return m.pdfResult, m.pdfErr
}

type mockAnalyzer struct {
	result      string
	err         error
	lastContent string
	lastPrompt  string
}

func (m *mockAnalyzer) Analyze(_ context.Context, content, prompt string) (string, error) {
	m.lastContent = content
	m.lastPrompt = prompt
	if m.err != nil {
		return "", m.err
	}
	return m.result, nil
}
