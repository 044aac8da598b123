//go:build js && wasm

package host

import (
	"syscall/js"

	"hearth/pkg/engine"
)

// canvasSurface sizes the canvas backing store; the browser composites the
// canvas itself, so presenting is a no-op
type canvasSurface struct {
	canvas js.Value
	size   engine.Size
}

func newCanvasSurface(canvas js.Value) *canvasSurface {
	return &canvasSurface{
		canvas: canvas,
		size:   engine.CanvasSize(canvas),
	}
}

func (s *canvasSurface) Resize(size engine.Size) {
	if s.size == size {
		return
	}
	s.size = size
	s.canvas.Set("width", size.Width)
	s.canvas.Set("height", size.Height)
}

func (s *canvasSurface) Present() {}

func (s *canvasSurface) Close() {}
