// Package prompt cleans and enriches user prompts before they are
// sent to the image generation provider.
package prompt

import "strings"

// noisePhrases are boilerplate fragments frontends tend to wrap around
// the actual subject. Removal is case-sensitive, all occurrences.
var noisePhrases = []string{
	"vibrant and illustrative visual that represents the core idea of:",
	"the style should be educational and visually appealing",
	"like a modern textbook illustration",
	"avoid text in the image",
	"image should be",
	"create an image",
	"generate a picture",
}

var educationalKeywords = []string{
	"educational", "learning", "textbook", "academic", "professional",
}

const (
	educationalSuffix = ", professional educational illustration, high-quality textbook style, detailed and informative"
	qualitySuffix     = ", ultra-high quality, detailed, crisp, professional"
)

// Normalize strips noise phrases from a raw prompt and appends the fixed
// educational and quality suffixes. The quality suffix is appended on every
// call, so Normalize is intentionally not idempotent.
func Normalize(raw string) string {
	clean := strings.TrimSpace(raw)

	for _, noise := range noisePhrases {
		clean = strings.TrimSpace(strings.ReplaceAll(clean, noise, ""))
	}

	if !containsAny(strings.ToLower(clean), educationalKeywords) {
		clean += educationalSuffix
	}

	return clean + qualitySuffix
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
