package extract

import "context"

// ImageStrategy is one way of pulling text out of an image. Strategies are
// tried in order until one yields non-empty output.
type ImageStrategy interface {
	Name() string
	Available() bool
	ExtractImage(ctx context.Context, path string) (string, error)
}
