package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/eduvision/flux-backend/internal/config"
	"github.com/eduvision/flux-backend/internal/models"
	"github.com/eduvision/flux-backend/internal/services/analyze"
	"github.com/eduvision/flux-backend/internal/services/extract"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func contentRouter(ext ContentExtractor, an ContentAnalyzer, cfg *config.Config) *gin.Engine {
	h := NewContentHandler(ext, an, zap.NewNop(), cfg)
	r := gin.New()
	api := r.Group("/api")
	api.POST("/upload", h.Upload)
	api.POST("/analyze", h.Analyze)
	api.POST("/extract-pdf", h.ExtractPDF)
	return r
}

func multipartFile(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func postMultipart(r *gin.Engine, path string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func dirEmpty(t *testing.T, dir string) bool {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	return len(entries) == 0
}

func TestUploadMissingFile(t *testing.T) {
	r := contentRouter(&mockExtractor{}, &mockAnalyzer{}, testConfig(t))

	body, contentType := multipartFile(t, "wrong_field", "x.png", []byte("data"))
	w := postMultipart(r, "/api/upload", body, contentType)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing_file")
}

func TestUploadUnsupportedTypeRemovesTempFile(t *testing.T) {
	cfg := testConfig(t)
	r := contentRouter(&mockExtractor{}, &mockAnalyzer{}, cfg)

	body, contentType := multipartFile(t, "file", "notes.txt", []byte("plain text"))
	w := postMultipart(r, "/api/upload", body, contentType)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unsupported_file_type")
	assert.True(t, dirEmpty(t, cfg.Upload.Dir), "temp file must be removed")
}

func TestUploadImageSuccess(t *testing.T) {
	cfg := testConfig(t)
	ext := &mockExtractor{imageText: "extracted from the image"}
	r := contentRouter(ext, &mockAnalyzer{}, cfg)

	body, contentType := multipartFile(t, "file", "scan.png", []byte("fake-png"))
	w := postMultipart(r, "/api/upload", body, contentType)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.UploadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "scan.png", resp.Filename)
	assert.Equal(t, "image", resp.FileType)
	assert.Equal(t, "extracted from the image", resp.FullText)
	assert.Equal(t, resp.FullText, resp.ExtractedText)

	assert.True(t, dirEmpty(t, cfg.Upload.Dir), "temp file must be removed after extraction")
	assert.NotEmpty(t, ext.lastPath)
}

func TestUploadImagePreviewTruncated(t *testing.T) {
	long := make([]byte, 800)
	for i := range long {
		long[i] = 'a'
	}
	ext := &mockExtractor{imageText: string(long)}
	r := contentRouter(ext, &mockAnalyzer{}, testConfig(t))

	body, contentType := multipartFile(t, "file", "scan.jpg", []byte("fake-jpg"))
	w := postMultipart(r, "/api/upload", body, contentType)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.UploadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.ExtractedText, 500)
	assert.Len(t, resp.FullText, 800)
}

func TestUploadPDFSuccess(t *testing.T) {
	cfg := testConfig(t)
	ext := &mockExtractor{pdfResult: models.ExtractionResult{Text: "pdf text", Pages: 2}}
	r := contentRouter(ext, &mockAnalyzer{}, cfg)

	body, contentType := multipartFile(t, "file", "doc.pdf", []byte("%PDF-1.4"))
	w := postMultipart(r, "/api/upload", body, contentType)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"fileType":"pdf"`)
	assert.True(t, dirEmpty(t, cfg.Upload.Dir))
}

func TestAnalyzeMissingContent(t *testing.T) {
	r := contentRouter(&mockExtractor{}, &mockAnalyzer{result: "ok"}, testConfig(t))

	// Empty content is rejected regardless of prompt presence.
	for _, body := range []string{`{}`, `{"content":""}`, `{"content":"  "}`, `{"content":"","prompt":"explain"}`} {
		w := postJSON(r, "/api/analyze", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "missing_content")
	}
}

func TestAnalyzeSuccess(t *testing.T) {
	an := &mockAnalyzer{result: "a clear explanation"}
	r := contentRouter(&mockExtractor{}, an, testConfig(t))

	w := postJSON(r, "/api/analyze", `{"content":"the krebs cycle","prompt":"explain simply"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "a clear explanation", resp.Result)
	assert.Equal(t, "the krebs cycle", an.lastContent)
	assert.Equal(t, "explain simply", an.lastPrompt)
}

func TestAnalyzeNotConfiguredSoftFails(t *testing.T) {
	an := &mockAnalyzer{err: analyze.ErrNotConfigured}
	r := contentRouter(&mockExtractor{}, an, testConfig(t))

	w := postJSON(r, "/api/analyze", `{"content":"something"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, analyze.NotConfiguredMessage, resp.Result)
}

func TestAnalyzeBackendError(t *testing.T) {
	an := &mockAnalyzer{err: errors.New("upstream exploded")}
	r := contentRouter(&mockExtractor{}, an, testConfig(t))

	w := postJSON(r, "/api/analyze", `{"content":"something"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), models.ErrInternalServer)
}

func TestExtractPDFRejectsNonPDF(t *testing.T) {
	cfg := testConfig(t)
	r := contentRouter(&mockExtractor{}, &mockAnalyzer{}, cfg)

	body, contentType := multipartFile(t, "file", "image.png", []byte("fake"))
	w := postMultipart(r, "/api/extract-pdf", body, contentType)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_file_type")
	assert.True(t, dirEmpty(t, cfg.Upload.Dir), "rejected file must not be persisted")
}

func TestExtractPDFEmptyExtraction(t *testing.T) {
	cfg := testConfig(t)
	ext := &mockExtractor{pdfErr: extract.ErrNoText}
	r := contentRouter(ext, &mockAnalyzer{}, cfg)

	body, contentType := multipartFile(t, "file", "empty.pdf", []byte("%PDF-1.4"))
	w := postMultipart(r, "/api/extract-pdf", body, contentType)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "empty_extraction")
	assert.True(t, dirEmpty(t, cfg.Upload.Dir))
}

func TestExtractPDFParseFailure(t *testing.T) {
	ext := &mockExtractor{pdfErr: errors.New("corrupt xref table")}
	r := contentRouter(ext, &mockAnalyzer{}, testConfig(t))

	body, contentType := multipartFile(t, "file", "broken.pdf", []byte("%PDF-1.4"))
	w := postMultipart(r, "/api/extract-pdf", body, contentType)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestExtractPDFSuccess(t *testing.T) {
	cfg := testConfig(t)
	ext := &mockExtractor{pdfResult: models.ExtractionResult{
		Text:  "page one text page two text",
		Pages: 3,
		Failures: []models.PageFailure{
			{Page: 2, Err: "damaged"},
		},
	}}
	r := contentRouter(ext, &mockAnalyzer{}, cfg)

	body, contentType := multipartFile(t, "file", "lesson.pdf", []byte("%PDF-1.4"))
	w := postMultipart(r, "/api/extract-pdf", body, contentType)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.PDFExtractResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 3, resp.Pages)
	assert.Equal(t, "lesson.pdf", resp.Filename)
	assert.Equal(t, 6, resp.WordCount)
	assert.Equal(t, len(resp.Text), resp.CharCount)
	assert.Equal(t, resp.Text, resp.Preview)
	assert.True(t, dirEmpty(t, cfg.Upload.Dir))
}
