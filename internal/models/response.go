package models

// Error codes surfaced to clients as string tags.
const (
	ErrMissingPrompt         = "missing_prompt"
	ErrInvalidDimensions     = "invalid_dimensions"
	ErrModelLoading          = "model_loading"
	ErrTimeout               = "timeout"
	ErrRequestFailed         = "request_failed"
	ErrImageProcessingFailed = "image_processing_failed"
	ErrInternalServer        = "internal_server_error"
)

type ErrorResponse struct {
	Error      string `json:"error"`
	Message    string `json:"message,omitempty"`
	Details    string `json:"details,omitempty"`
	RetryAfter int    `json:"retry_after,omitempty"`
}
