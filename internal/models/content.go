package models

// FileKind is the detected category of an uploaded asset.
type FileKind string

const (
	FileKindImage       FileKind = "image"
	FileKindPDF         FileKind = "pdf"
	FileKindUnsupported FileKind = "unsupported"
)

// PageFailure records a single extraction unit that could not be parsed.
type PageFailure struct {
	Page int    `json:"page"`
	Err  string `json:"error"`
}

// ExtractionResult aggregates extracted text with per-unit failures.
// For PDFs a unit is a page; for images the whole file is one unit.
type ExtractionResult struct {
	Text     string
	Pages    int
	Failures []PageFailure
}

type UploadResponse struct {
	Success       bool   `json:"success"`
	Filename      string `json:"filename"`
	FileType      string `json:"fileType"`
	ExtractedText string `json:"extractedText"`
	FullText      string `json:"fullText"`
}

type PDFExtractResponse struct {
	Success   bool   `json:"success"`
	Text      string `json:"text"`
	Pages     int    `json:"pages"`
	Filename  string `json:"filename"`
	WordCount int    `json:"wordCount"`
	CharCount int    `json:"charCount"`
	Preview   string `json:"preview"`
}

type AnalyzeRequest struct {
	Content string `json:"content"`
	Prompt  string `json:"prompt"`
}

type AnalyzeResponse struct {
	Success bool   `json:"success"`
	Result  string `json:"result"`
}
