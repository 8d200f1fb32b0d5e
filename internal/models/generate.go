package models

const (
	MinDimension = 256
	MaxDimension = 1024

	DefaultWidth  = 800
	DefaultHeight = 450

	ModelName = "FLUX.1-schnell"
)

type GenerateImageRequest struct {
	Prompt      string `json:"prompt"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	QualityMode string `json:"quality_mode"`
}

type ImageMetadata struct {
	Model       string  `json:"model"`
	Prompt      string  `json:"prompt"`
	Dimensions  string  `json:"dimensions"`
	QualityMode string  `json:"quality_mode"`
	Timestamp   float64 `json:"timestamp"`
}

type GenerateImageResponse struct {
	Success  bool          `json:"success"`
	Image    string        `json:"image"`
	Metadata ImageMetadata `json:"metadata"`
}

type QualityTestRequest struct {
	Prompt string `json:"prompt"`
}

// QualityTestResult describes one quality mode's outcome in a comparison run.
type QualityTestResult struct {
	Success     bool   `json:"success,omitempty"`
	SizeKB      int    `json:"size_kb,omitempty"`
	QualityMode string `json:"quality_mode,omitempty"`
	Error       string `json:"error,omitempty"`
}

type QualityTestResponse struct {
	Prompt            string                       `json:"prompt"`
	QualityComparison map[string]QualityTestResult `json:"quality_comparison"`
	Recommendation    string                       `json:"recommendation"`
}
