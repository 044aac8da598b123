//go:build !js

package host

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"hearth/pkg/engine"
)

// glSurface presents a GLFW window's default framebuffer
type glSurface struct {
	glw  *glfw.Window
	size engine.Size
}

// newGLSurface loads OpenGL for the window's context, which must be current
func newGLSurface(glw *glfw.Window) (*glSurface, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	s := &glSurface{glw: glw}
	w, h := glw.GetFramebufferSize()
	s.Resize(engine.Size{Width: w, Height: h}.Clamped())
	gl.ClearColor(0, 0, 0, 1)
	return s, nil
}

func (s *glSurface) Resize(size engine.Size) {
	if s.size == size {
		return
	}
	s.size = size
	gl.Viewport(0, 0, int32(size.Width), int32(size.Height))
}

func (s *glSurface) Present() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	s.glw.SwapBuffers()
}

func (s *glSurface) Close() {
	glfw.DetachCurrentContext()
}
