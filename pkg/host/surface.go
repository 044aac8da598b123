// Package host provides the platform event loops that drive an
// engine.ApplicationHandler: GLFW on desktop builds and the browser's DOM
// event system on js/wasm builds.
package host

import "hearth/pkg/engine"

// Surface is what a window presents into
type Surface interface {
	// Resize updates the drawable extent; size is already clamped to 1x1
	Resize(size engine.Size)

	// Present shows the current frame
	Present()

	// Close releases resources
	Close()
}
