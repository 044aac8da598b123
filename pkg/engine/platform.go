package engine

import (
	"context"
	"errors"
)

var (
	// ErrCanvasNotFound is returned when the configured canvas id does not
	// match any element in the document.
	ErrCanvasNotFound = errors.New("canvas element not found")
	// ErrNotCanvas is returned when the element with the canvas id is not
	// a <canvas>.
	ErrNotCanvas = errors.New("element is not a canvas")
)

// Platform holds the parts of startup that differ between the desktop and
// browser builds. DefaultPlatform picks the implementation at build time.
type Platform interface {
	// WindowAttributes completes base with platform-specific attributes.
	WindowAttributes(base WindowAttributes) (WindowAttributes, error)
	// OnFirstWindow performs one-time startup work once the first window
	// exists and returns the size to cache for it.
	OnFirstWindow(ctx context.Context, w Window, task StartupTask) (Size, error)
}
