package utils

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ImageToPNGDataURI re-encodes an image as PNG and wraps it in a base64
// data URI suitable for direct embedding in a frontend <img> tag.
func ImageToPNGDataURI(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encoding png: %w", err)
	}
	return MakeDataURI("image/png", buf.Bytes()), nil
}

func MakeDataURI(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// TempFilename builds a collision-free name for a transient upload while
// keeping the original extension for type dispatch.
func TempFilename(original string) string {
	ext := filepath.Ext(original)
	return fmt.Sprintf("upload_%d_%s%s", time.Now().Unix(), uuid.New().String()[:8], ext)
}

// Truncate cuts s to at most n characters.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// TruncateEllipsis cuts s to at most n characters, marking the cut.
func TruncateEllipsis(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// CountWords reports the number of whitespace-separated words in s.
func CountWords(s string) int {
	return len(strings.Fields(s))
}
